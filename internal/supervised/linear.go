package supervised

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/rove-ml/rove/internal/inputspec"
)

// SubtypeLinear is the registry name of the linear least-squares ROM.
const SubtypeLinear = "linear"

func init() {
	Register(SubtypeLinear, Entry{
		New:  func() TrainablePredictor { return NewLinear(nil, "") },
		Spec: LinearSpec,
	})
}

// Linear is an ordinary-least-squares ROM: a single target fit as an affine
// function of the features. It is the simplest trainable subtype and the one
// used to exercise the serialize/restore cycle end to end.
type Linear struct {
	base

	coefs   []float64 // intercept first, then one weight per feature
	rsq     float64   // coefficient of determination of the training fit
	trained bool
}

// NewLinear constructs an untrained linear ROM for the given variables.
func NewLinear(features []string, target string) *Linear {
	return &Linear{
		base: base{
			printTag: SubtypeLinear,
			dynamic:  false,
			features: features,
			target:   target,
			initOpts: make(map[string]any),
		},
	}
}

// LinearSpec returns the input schema accepted by a linear ROM node.
func LinearSpec() *inputspec.Param {
	return baseSpec()
}

// Train fits coefficients by QR least squares. Features must have one column
// per declared feature name and targets exactly one column.
func (l *Linear) Train(features, targets mat.Matrix) error {
	n, d := features.Dims()
	tn, tc := targets.Dims()
	if len(l.features) > 0 && d != len(l.features) {
		return romError(l.printTag, fmt.Errorf("%w: %d feature columns, %d declared", ErrDimension, d, len(l.features)))
	}
	if tc != 1 {
		return romError(l.printTag, fmt.Errorf("%w: %d target columns, want 1", ErrDimension, tc))
	}
	if tn != n {
		return romError(l.printTag, fmt.Errorf("%w: %d feature rows, %d target rows", ErrDimension, n, tn))
	}
	if n < d+1 {
		return romError(l.printTag, fmt.Errorf("%w: %d samples cannot determine %d coefficients", ErrDimension, n, d+1))
	}

	// Design matrix with an intercept column.
	design := mat.NewDense(n, d+1, nil)
	for i := 0; i < n; i++ {
		design.Set(i, 0, 1)
		for j := 0; j < d; j++ {
			design.Set(i, j+1, features.At(i, j))
		}
	}

	var qr mat.QR
	qr.Factorize(design)
	var beta mat.Dense
	if err := qr.SolveTo(&beta, false, targets); err != nil {
		return romError(l.printTag, fmt.Errorf("least squares solve failed: %w", err))
	}

	l.coefs = make([]float64, d+1)
	for j := 0; j <= d; j++ {
		l.coefs[j] = beta.At(j, 0)
	}
	l.trained = true
	l.rsq = l.rSquared(features, targets)
	return nil
}

// Evaluate predicts the target at each feature row.
func (l *Linear) Evaluate(features mat.Matrix) (map[string][]float64, error) {
	if !l.trained {
		return nil, romError(l.printTag, ErrNotTrained)
	}
	n, d := features.Dims()
	if d != len(l.coefs)-1 {
		return nil, romError(l.printTag, fmt.Errorf("%w: %d feature columns, %d fitted", ErrDimension, d, len(l.coefs)-1))
	}

	preds := make([]float64, n)
	for i := 0; i < n; i++ {
		preds[i] = l.predictRow(features, i)
	}
	return map[string][]float64{l.target: preds}, nil
}

// Confidence reports the R-squared of the training fit once trained.
func (l *Linear) Confidence(features mat.Matrix) (float64, bool) {
	if !l.trained {
		return 0, false
	}
	return l.rsq, true
}

// Reset discards the fitted coefficients.
func (l *Linear) Reset() {
	l.coefs = nil
	l.rsq = 0
	l.trained = false
}

// CurrentSettings returns the fitted coefficients, or nil before training.
func (l *Linear) CurrentSettings() map[string]any {
	if !l.trained {
		return nil
	}
	return map[string]any{
		"intercept":    l.coefs[0],
		"coefficients": append([]float64(nil), l.coefs[1:]...),
		"r_squared":    l.rsq,
	}
}

// InitialSettings returns the originally configured options.
func (l *Linear) InitialSettings() map[string]any {
	out := make(map[string]any, len(l.initOpts))
	for k, v := range l.initOpts {
		out[k] = v
	}
	return out
}

// StateDict exports the trained state for serialization. Fails before
// training: only trained ROMs may be serialized.
func (l *Linear) StateDict() (State, error) {
	if !l.trained {
		return State{}, romError(l.printTag, ErrNotTrained)
	}
	return State{
		Features: append([]string(nil), l.features...),
		Target:   l.target,
		Options:  map[string]string{"r_squared": strconv.FormatFloat(l.rsq, 'g', -1, 64)},
		Params:   map[string][]float64{"coefficients": append([]float64(nil), l.coefs...)},
	}, nil
}

// LoadStateDict restores a trained linear ROM from its serialized state.
func (l *Linear) LoadStateDict(s State) error {
	coefs, ok := s.Params["coefficients"]
	if !ok || len(coefs) != len(s.Features)+1 {
		return romError(l.printTag, fmt.Errorf("%w: coefficient count does not match features", ErrDimension))
	}
	l.features = append([]string(nil), s.Features...)
	l.target = s.Target
	l.coefs = append([]float64(nil), coefs...)
	if raw, ok := s.Options["r_squared"]; ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			l.rsq = v
		}
	}
	l.trained = true
	return nil
}

func (l *Linear) predictRow(features mat.Matrix, row int) float64 {
	pred := l.coefs[0]
	for j := 1; j < len(l.coefs); j++ {
		pred += l.coefs[j] * features.At(row, j-1)
	}
	return pred
}

func (l *Linear) rSquared(features, targets mat.Matrix) float64 {
	n, _ := features.Dims()
	var mean float64
	for i := 0; i < n; i++ {
		mean += targets.At(i, 0)
	}
	mean /= float64(n)

	var ssRes, ssTot float64
	for i := 0; i < n; i++ {
		y := targets.At(i, 0)
		resid := y - l.predictRow(features, i)
		ssRes += resid * resid
		ssTot += (y - mean) * (y - mean)
	}
	if ssTot == 0 {
		return 1
	}
	return 1 - ssRes/ssTot
}
