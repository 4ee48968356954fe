package supervised

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// y = 2*x1 - x2 + 3
func exactLinearData() (features, targets *mat.Dense) {
	features = mat.NewDense(4, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		1, 1,
	})
	targets = mat.NewDense(4, 1, []float64{3, 5, 2, 4})
	return features, targets
}

func TestLinearTrainEvaluate(t *testing.T) {
	features, targets := exactLinearData()
	l := NewLinear([]string{"x1", "x2"}, "y")

	require.NoError(t, l.Train(features, targets))

	preds, err := l.Evaluate(features)
	require.NoError(t, err)
	require.Contains(t, preds, "y")
	for i, want := range []float64{3, 5, 2, 4} {
		assert.InDelta(t, want, preds["y"][i], 1e-9)
	}

	// Exact fit: confidence available with R² of 1.
	conf, ok := l.Confidence(features)
	require.True(t, ok)
	assert.InDelta(t, 1.0, conf, 1e-9)
}

func TestLinearEvaluateBeforeTrain(t *testing.T) {
	l := NewLinear([]string{"x"}, "y")

	_, err := l.Evaluate(mat.NewDense(1, 1, []float64{1}))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotTrained)

	conf, ok := l.Confidence(mat.NewDense(1, 1, []float64{1}))
	assert.False(t, ok)
	assert.Zero(t, conf)
}

func TestLinearDimensionChecks(t *testing.T) {
	l := NewLinear([]string{"x1", "x2"}, "y")

	// Wrong feature column count.
	err := l.Train(mat.NewDense(3, 1, []float64{1, 2, 3}), mat.NewDense(3, 1, []float64{1, 2, 3}))
	assert.ErrorIs(t, err, ErrDimension)

	// Multiple target columns.
	err = l.Train(mat.NewDense(3, 2, nil), mat.NewDense(3, 2, nil))
	assert.ErrorIs(t, err, ErrDimension)

	// Row mismatch.
	err = l.Train(mat.NewDense(3, 2, nil), mat.NewDense(4, 1, nil))
	assert.ErrorIs(t, err, ErrDimension)

	// Underdetermined system.
	err = l.Train(mat.NewDense(2, 2, nil), mat.NewDense(2, 1, nil))
	assert.ErrorIs(t, err, ErrDimension)
}

func TestLinearReset(t *testing.T) {
	features, targets := exactLinearData()
	l := NewLinear([]string{"x1", "x2"}, "y")
	require.NoError(t, l.Train(features, targets))
	require.NotNil(t, l.CurrentSettings())

	l.Reset()

	assert.Nil(t, l.CurrentSettings())
	_, err := l.Evaluate(features)
	assert.ErrorIs(t, err, ErrNotTrained)
}

func TestLinearSettings(t *testing.T) {
	features, targets := exactLinearData()
	l := NewLinear([]string{"x1", "x2"}, "y")

	assert.Nil(t, l.CurrentSettings())
	assert.NotNil(t, l.InitialSettings())

	require.NoError(t, l.Train(features, targets))

	settings := l.CurrentSettings()
	require.NotNil(t, settings)
	assert.InDelta(t, 3.0, settings["intercept"].(float64), 1e-9)
	coefs := settings["coefficients"].([]float64)
	require.Len(t, coefs, 2)
	assert.InDelta(t, 2.0, coefs[0], 1e-9)
	assert.InDelta(t, -1.0, coefs[1], 1e-9)
}

func TestLinearStateDictRoundTrip(t *testing.T) {
	features, targets := exactLinearData()
	l := NewLinear([]string{"x1", "x2"}, "y")
	require.NoError(t, l.Train(features, targets))

	state, err := l.StateDict()
	require.NoError(t, err)
	assert.Equal(t, []string{"x1", "x2"}, state.Features)
	assert.Equal(t, "y", state.Target)

	restored := NewLinear(nil, "")
	require.NoError(t, restored.LoadStateDict(state))

	preds, err := restored.Evaluate(features)
	require.NoError(t, err)
	for i, want := range []float64{3, 5, 2, 4} {
		assert.InDelta(t, want, preds["y"][i], 1e-9)
	}
}

func TestLinearStateDictBeforeTrain(t *testing.T) {
	l := NewLinear([]string{"x"}, "y")
	_, err := l.StateDict()
	assert.ErrorIs(t, err, ErrNotTrained)
}

func TestLinearLoadStateDictRejectsMismatch(t *testing.T) {
	l := NewLinear(nil, "")
	err := l.LoadStateDict(State{
		Features: []string{"x1", "x2"},
		Target:   "y",
		Params:   map[string][]float64{"coefficients": {1, 2}}, // needs 3
	})
	assert.ErrorIs(t, err, ErrDimension)
}
