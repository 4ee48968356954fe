package supervised

import (
	"fmt"

	"github.com/rove-ml/rove/internal/inputspec"
)

// variableSetter is satisfied by every subtype through the embedded base.
type variableSetter interface {
	setVariables(features []string, target string)
}

func (b *base) setVariables(features []string, target string) {
	if len(features) > 0 {
		b.features = features
	}
	if target != "" {
		b.target = target
	}
}

// FromConfig instantiates a ROM from a validated configuration node: the
// subType attribute picks the registered factory, and Features/Target
// children, when present, override the subtype's defaults. The node must
// already have passed the subtype's input spec.
func FromConfig(parsed *inputspec.Parsed) (TrainablePredictor, error) {
	subtype, ok := parsed.AttrStr("subType")
	if !ok {
		return nil, fmt.Errorf("ROM node is missing a subType attribute")
	}
	rom, err := New(subtype)
	if err != nil {
		return nil, err
	}

	var features []string
	var target string
	if f := parsed.Get("Features"); f != nil {
		features, _ = f.Value.([]string)
	}
	if t := parsed.Get("Target"); t != nil {
		target, _ = t.Value.(string)
	}
	if setter, ok := rom.(variableSetter); ok {
		setter.setVariables(features, target)
	}
	return rom, nil
}
