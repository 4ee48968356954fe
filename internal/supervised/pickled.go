package supervised

import (
	"gonum.org/v1/gonum/mat"

	"github.com/rove-ml/rove/internal/inputspec"
)

// SubtypePickled is the registry name of the pickled-ROM placeholder.
const SubtypePickled = "pickledROM"

// placeholderName is the stand-in feature and target name a PickledROM
// carries until restoration; it must never be treated as real schema.
const placeholderName = "PlaceHolder"

func init() {
	Register(SubtypePickled, Entry{
		New:  func() TrainablePredictor { return NewPickledROM() },
		Spec: PickledSpec,
	})
}

// PickledROM holds the place of a ROM that was trained and serialized in a
// previous run. It cannot be trained or evaluated; attempting either fails
// with ErrROMNotLoaded until an IO step restores the original ROM from its
// artifact, at which point the restored subtype takes over entirely.
type PickledROM struct {
	base
}

// NewPickledROM constructs the inert placeholder.
func NewPickledROM() *PickledROM {
	return &PickledROM{
		base: base{
			printTag: SubtypePickled,
			dynamic:  false,
			features: []string{placeholderName},
			target:   placeholderName,
			initOpts: make(map[string]any),
		},
	}
}

// PickledSpec returns the input schema accepted by a pickledROM node. The
// declared names, types, and defaults are the compatibility surface for
// configuration files; the multicycle and growth settings only declare shape
// here and are applied downstream after restoration (see package multicycle).
func PickledSpec() *inputspec.Param {
	spec := baseSpec()

	spec.AddSub(inputspec.NewParam("seed", inputspec.Integer()).
		Describe("seed for sampling; must be set before any training in the originating run"))

	multicycle := inputspec.NewParam("Multicycle", inputspec.String()).
		Describe("each sample yields multiple sequential cycles of output")
	multicycle.AddSub(inputspec.NewParam("cycles", inputspec.Integer()).
		Describe("number of cycles produced per sample").
		Required())

	growth := inputspec.NewParam("growth", inputspec.Float()).
		Describe("per-cycle growth factor in percent; for linear mode the scaling "+
			"factor is 1+y*g/100, for exponential (1+g/100)^y, with y the cycle "+
			"index after the first and g the node's value").
		Repeatable()
	growth.AddAttr("targets", inputspec.StringList(), true)
	growth.AddAttr("start_index", inputspec.Integer(), false)
	growth.AddAttr("end_index", inputspec.Integer(), false)
	growth.AddAttr("mode", inputspec.Enum("growthMode", "exponential", "linear"), true)
	multicycle.AddSub(growth)
	spec.AddSub(multicycle)

	spec.AddSub(inputspec.NewParam("clusterEvalMode",
		inputspec.Enum("clusterEvalMode", "clustered", "truncated", "full")).
		Describe("sample structure for clustered segmented ROMs"))
	spec.AddSub(inputspec.NewParam("maxCycles", inputspec.Integer()).
		Describe("maximum number of cycles to run; unlimited if absent"))

	return spec
}

// setVariables is a no-op: the placeholder feature and target names stay in
// place until restoration, whatever the configuration declares.
func (p *PickledROM) setVariables(features []string, target string) {}

// Train always fails: a pickled ROM was trained in its originating run and
// cannot be retrained through the placeholder.
func (p *PickledROM) Train(features, targets mat.Matrix) error {
	return romError(p.printTag, ErrROMNotLoaded)
}

// Evaluate always fails: the model's identity is unknown until restoration.
func (p *PickledROM) Evaluate(features mat.Matrix) (map[string][]float64, error) {
	return nil, romError(p.printTag, ErrROMNotLoaded)
}

// Confidence reports no estimate is available. Never an error condition.
func (p *PickledROM) Confidence(features mat.Matrix) (float64, bool) {
	return 0, false
}

// Reset is a no-op; there is no trained state to discard.
func (p *PickledROM) Reset() {}

// CurrentSettings returns nil; the placeholder tracks no live parameters.
func (p *PickledROM) CurrentSettings() map[string]any {
	return nil
}

// InitialSettings returns an empty mapping.
func (p *PickledROM) InitialSettings() map[string]any {
	return map[string]any{}
}

// StateDict fails: the placeholder has no state worth serializing.
func (p *PickledROM) StateDict() (State, error) {
	return State{}, romError(p.printTag, ErrROMNotLoaded)
}

// LoadStateDict fails: restoration replaces the placeholder with the
// original subtype rather than loading state into the placeholder itself.
func (p *PickledROM) LoadStateDict(State) error {
	return romError(p.printTag, ErrROMNotLoaded)
}
