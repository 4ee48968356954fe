package iostep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/rove-ml/rove/internal/logger"
	"github.com/rove-ml/rove/internal/supervised"
)

// y = 3*x + 1
func trainedLinear(t *testing.T) (*supervised.Linear, *mat.Dense) {
	t.Helper()
	features := mat.NewDense(3, 1, []float64{0, 1, 2})
	targets := mat.NewDense(3, 1, []float64{1, 4, 7})
	l := supervised.NewLinear([]string{"x"}, "y")
	require.NoError(t, l.Train(features, targets))
	return l, features
}

func TestSaveLoadRoundTrip(t *testing.T) {
	l, features := trainedLinear(t)
	path := filepath.Join(t.TempDir(), "model.rove")

	require.NoError(t, Save(path, l, map[string]string{"run": "origin"}))

	restored, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, supervised.SubtypeLinear, restored.Tag())
	assert.Equal(t, []string{"x"}, restored.Features())
	assert.Equal(t, "y", restored.Target())

	want, err := l.Evaluate(features)
	require.NoError(t, err)
	got, err := restored.Evaluate(features)
	require.NoError(t, err)
	for i := range want["y"] {
		assert.InDelta(t, want["y"][i], got["y"][i], 1e-12)
	}
}

func TestSaveRefusesPlaceholder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "placeholder.rove")

	err := Save(path, supervised.NewPickledROM(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, supervised.ErrROMNotLoaded)
}

func TestSaveRefusesUntrained(t *testing.T) {
	path := filepath.Join(t.TempDir(), "untrained.rove")

	err := Save(path, supervised.NewLinear([]string{"x"}, "y"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, supervised.ErrNotTrained)
}

func TestSaveLeavesNoPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.rove")

	// A refused Save must not create anything at path, staged or final.
	require.Error(t, Save(path, supervised.NewPickledROM(), nil))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// A successful Save leaves exactly the finished artifact behind.
	l, _ := trainedLinear(t)
	require.NoError(t, Save(path, l, nil))
	entries, err = os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "model.rove", entries[0].Name())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.rove"))
	assert.Error(t, err)
}

func TestLoaderCachesByPath(t *testing.T) {
	l, _ := trainedLinear(t)
	path := filepath.Join(t.TempDir(), "model.rove")
	require.NoError(t, Save(path, l, nil))

	loader, err := NewLoader(4, logger.Discard())
	require.NoError(t, err)

	first, err := loader.Load(path)
	require.NoError(t, err)
	second, err := loader.Load(path)
	require.NoError(t, err)
	assert.Same(t, first, second)

	// A direct Load bypasses the cache and builds a fresh instance.
	fresh, err := Load(path)
	require.NoError(t, err)
	assert.NotSame(t, first, fresh)
}
