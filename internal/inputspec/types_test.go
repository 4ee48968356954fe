package inputspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerType(t *testing.T) {
	v, err := Integer().Parse(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = Integer().Parse("4.2")
	assert.Error(t, err)

	_, err = Integer().Parse("five")
	assert.Error(t, err)
}

func TestFloatType(t *testing.T) {
	v, err := Float().Parse("50")
	require.NoError(t, err)
	assert.Equal(t, 50.0, v)

	v, err = Float().Parse("-2.5e3")
	require.NoError(t, err)
	assert.Equal(t, -2500.0, v)

	_, err = Float().Parse("NaN-ish")
	assert.Error(t, err)
}

func TestStringListType(t *testing.T) {
	v, err := StringList().Parse("T1, T2 ,T3")
	require.NoError(t, err)
	assert.Equal(t, []string{"T1", "T2", "T3"}, v)

	v, err = StringList().Parse("T1")
	require.NoError(t, err)
	assert.Equal(t, []string{"T1"}, v)
}

func TestEnumType(t *testing.T) {
	enum := Enum("clusterEvalMode", "clustered", "truncated", "full")

	v, err := enum.Parse("truncated")
	require.NoError(t, err)
	assert.Equal(t, "truncated", v)

	_, err = enum.Parse("invalid-mode")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotInEnum)
}
