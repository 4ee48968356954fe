package supervised

import (
	"gonum.org/v1/gonum/mat"

	"github.com/rove-ml/rove/internal/inputspec"
)

// TrainablePredictor is the lifecycle contract every ROM subtype implements.
//
// Feature matrices are laid out [n_samples, n_features] with columns in the
// order of Features(); target matrices are [n_samples, n_targets].
type TrainablePredictor interface {
	// Train fits the model to the given feature and target values.
	Train(features, targets mat.Matrix) error

	// Evaluate predicts at the given feature values, returning a mapping
	// from target name to the predicted value per sample.
	Evaluate(features mat.Matrix) (map[string][]float64, error)

	// Confidence estimates the quality of a prediction at the given
	// feature values. The second return reports availability: subtypes
	// without a confidence measure return (0, false) and never error.
	Confidence(features mat.Matrix) (float64, bool)

	// Reset discards trained state, leaving only the initial
	// configuration. A no-op when nothing has been trained.
	Reset()

	// CurrentSettings returns the live parameter values, or nil when the
	// subtype does not track them.
	CurrentSettings() map[string]any

	// InitialSettings returns the originally configured parameter values.
	InitialSettings() map[string]any

	// Features returns the ordered input-variable names.
	Features() []string

	// Target returns the output-variable name.
	Target() string

	// Dynamic reports whether the subtype supports time-indexed
	// (dynamic) evaluation.
	Dynamic() bool

	// Tag returns the subtype's diagnostic label used in error reporting.
	Tag() string

	// StateDict exports the model's full trained state for serialization.
	StateDict() (State, error)

	// LoadStateDict restores the model's full state from a state dict.
	LoadStateDict(State) error
}

// State is the serializable snapshot of a trained ROM: everything needed to
// reconstruct the model in a later run. Params holds named numeric
// parameter vectors; Options holds scalar settings as strings.
type State struct {
	Features []string
	Target   string
	Options  map[string]string
	Params   map[string][]float64
}

// base carries the fields every ROM shares. Subtypes embed it and keep it
// coherent with their own state.
type base struct {
	printTag string
	dynamic  bool
	features []string
	target   string
	initOpts map[string]any
}

// Features returns the ordered input-variable names.
func (b *base) Features() []string { return b.features }

// Target returns the output-variable name.
func (b *base) Target() string { return b.target }

// Dynamic reports whether time-indexed evaluation is supported.
func (b *base) Dynamic() bool { return b.dynamic }

// Tag returns the diagnostic label for error reporting.
func (b *base) Tag() string { return b.printTag }

// baseSpec returns the input schema shared by every ROM subtype: the ROM
// node with its identifying attributes and the feature/target declarations.
// Subtype specs extend the returned tree.
func baseSpec() *inputspec.Param {
	spec := inputspec.NewParam("ROM", nil).
		Describe("a reduced-order model standing in for a more expensive model")
	spec.AddAttr("name", inputspec.String(), true)
	spec.AddAttr("subType", inputspec.String(), true)
	spec.AddSub(inputspec.NewParam("Features", inputspec.StringList()).
		Describe("ordered input-variable names"))
	spec.AddSub(inputspec.NewParam("Target", inputspec.String()).
		Describe("output-variable name"))
	return spec
}
