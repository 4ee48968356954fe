package inputspec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSpec() *Param {
	spec := NewParam("job", nil)
	spec.AddAttr("name", String(), true)
	spec.AddAttr("priority", Integer(), false)
	spec.AddSub(NewParam("retries", Integer()).Default(3))
	spec.AddSub(NewParam("step", String()).Repeatable())
	spec.AddSub(NewParam("timeout", Float()))
	return spec
}

func TestValidateTypedContent(t *testing.T) {
	node := NewNode("job").SetAttr("name", "fit").SetAttr("priority", "7")
	node.Append(NewNode("timeout").SetText("1.5"))
	node.Append(NewNode("step").SetText("first"))
	node.Append(NewNode("step").SetText("second"))

	parsed, err := sampleSpec().Validate(node)
	require.NoError(t, err)

	name, ok := parsed.AttrStr("name")
	require.True(t, ok)
	assert.Equal(t, "fit", name)

	priority, ok := parsed.AttrInt("priority")
	require.True(t, ok)
	assert.Equal(t, 7, priority)

	timeout, ok := parsed.Get("timeout").Float()
	require.True(t, ok)
	assert.Equal(t, 1.5, timeout)

	steps := parsed.GetAll("step")
	require.Len(t, steps, 2)
}

func TestValidateAppliesDefaults(t *testing.T) {
	node := NewNode("job").SetAttr("name", "fit")

	parsed, err := sampleSpec().Validate(node)
	require.NoError(t, err)

	retries := parsed.Get("retries")
	require.NotNil(t, retries)
	v, ok := retries.Int()
	require.True(t, ok)
	assert.Equal(t, 3, v)
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want error
	}{
		{
			name: "wrong root name",
			node: NewNode("task").SetAttr("name", "fit"),
			want: ErrWrongNode,
		},
		{
			name: "missing required attribute",
			node: NewNode("job"),
			want: ErrMissingAttr,
		},
		{
			name: "unknown attribute",
			node: NewNode("job").SetAttr("name", "fit").SetAttr("color", "red"),
			want: ErrUnknownAttr,
		},
		{
			name: "unknown child",
			node: NewNode("job").SetAttr("name", "fit").Append(NewNode("bogus")),
			want: ErrUnknownNode,
		},
		{
			name: "duplicate single-occurrence child",
			node: NewNode("job").SetAttr("name", "fit").
				Append(NewNode("timeout").SetText("1")).
				Append(NewNode("timeout").SetText("2")),
			want: ErrDuplicateNode,
		},
		{
			name: "text on container node",
			node: NewNode("job").SetAttr("name", "fit").SetText("oops"),
			want: ErrUnexpectedText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := sampleSpec().Validate(tt.node)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestValidateBadContent(t *testing.T) {
	node := NewNode("job").SetAttr("name", "fit")
	node.Append(NewNode("retries").SetText("many"))

	_, err := sampleSpec().Validate(node)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "retries")
	assert.Contains(t, err.Error(), "many")
}

func TestValidateEmptyTypedContent(t *testing.T) {
	spec := NewParam("outer", nil)
	spec.AddSub(NewParam("count", Integer()))
	spec.AddSub(NewParam("label", String()))

	// An empty node with numeric content is a parse failure, not a nil value.
	_, err := spec.Validate(NewNode("outer").Append(NewNode("count")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "count")

	// An empty string-typed node still validates, to the empty string.
	parsed, err := spec.Validate(NewNode("outer").Append(NewNode("label")))
	require.NoError(t, err)
	v, ok := parsed.Get("label").Str()
	require.True(t, ok)
	assert.Equal(t, "", v)
}

func TestValidateRequiredChild(t *testing.T) {
	spec := NewParam("outer", nil)
	spec.AddSub(NewParam("inner", Integer()).Required())

	_, err := spec.Validate(NewNode("outer"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingNode)

	parsed, err := spec.Validate(NewNode("outer").Append(NewNode("inner").SetText("1")))
	require.NoError(t, err)
	v, ok := parsed.Get("inner").Int()
	require.True(t, ok)
	assert.Equal(t, 1, v)
}
