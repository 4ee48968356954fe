// Package multicycle parses multicycle sampling settings from a validated
// configuration node and computes the per-cycle growth scaling downstream
// samplers apply to ROM output.
package multicycle

import (
	"errors"
	"fmt"
	"math"

	"github.com/rove-ml/rove/internal/inputspec"
)

// Mode selects how a growth factor compounds across cycles.
type Mode string

// Growth modes.
const (
	ModeLinear      Mode = "linear"
	ModeExponential Mode = "exponential"
)

// Common errors.
var (
	ErrNoCycles    = errors.New("Multicycle node is missing a cycles value")
	ErrBadMode     = errors.New("growth mode must be linear or exponential")
	ErrNoTargets   = errors.New("growth node has no targets")
	ErrIndexWindow = errors.New("growth start_index exceeds end_index")
)

// GrowthFactor scales the named targets' histories on successive cycles.
// Percent is the declared growth in percent; a window of applicable cycles
// may be bounded by StartIndex/EndIndex.
type GrowthFactor struct {
	Targets []string
	Mode    Mode
	Percent float64

	StartIndex, EndIndex int
	hasStart, hasEnd     bool
}

// Scale returns the multiplier applied on the given cycle: for linear mode
// 1 + y*g/100, for exponential mode (1+g/100)^y, where y is the cycle index
// after the first and g the growth percent.
func (g GrowthFactor) Scale(cycle int) float64 {
	y := float64(cycle)
	switch g.Mode {
	case ModeExponential:
		return math.Pow(1+g.Percent/100, y)
	default:
		return 1 + y*g.Percent/100
	}
}

// AppliesTo reports whether the factor's cycle window covers the given cycle.
func (g GrowthFactor) AppliesTo(cycle int) bool {
	if g.hasStart && cycle < g.StartIndex {
		return false
	}
	if g.hasEnd && cycle > g.EndIndex {
		return false
	}
	return true
}

// Settings are the parsed multicycle options of a ROM configuration.
// MaxCycles is zero when unlimited.
type Settings struct {
	Cycles    int
	MaxCycles int
	Growth    []GrowthFactor
}

// FromParsed extracts Settings from a validated Multicycle node, with the
// optional maxCycles sibling value. The node must already have passed the
// ROM's input spec; FromParsed still guards the cross-field constraints the
// schema cannot express.
func FromParsed(node *inputspec.Parsed, maxCycles int) (Settings, error) {
	cyclesNode := node.Get("cycles")
	if cyclesNode == nil {
		return Settings{}, ErrNoCycles
	}
	cycles, ok := cyclesNode.Int()
	if !ok {
		return Settings{}, ErrNoCycles
	}

	s := Settings{Cycles: cycles, MaxCycles: maxCycles}
	for _, g := range node.GetAll("growth") {
		factor, err := growthFromParsed(g)
		if err != nil {
			return Settings{}, err
		}
		s.Growth = append(s.Growth, factor)
	}
	return s, nil
}

func growthFromParsed(g *inputspec.Parsed) (GrowthFactor, error) {
	targets, ok := g.AttrStrings("targets")
	if !ok || len(targets) == 0 {
		return GrowthFactor{}, ErrNoTargets
	}
	mode, _ := g.AttrStr("mode")
	if Mode(mode) != ModeLinear && Mode(mode) != ModeExponential {
		return GrowthFactor{}, fmt.Errorf("%w: %q", ErrBadMode, mode)
	}
	percent, _ := g.Float()

	factor := GrowthFactor{Targets: targets, Mode: Mode(mode), Percent: percent}
	if v, ok := g.AttrInt("start_index"); ok {
		factor.StartIndex = v
		factor.hasStart = true
	}
	if v, ok := g.AttrInt("end_index"); ok {
		factor.EndIndex = v
		factor.hasEnd = true
	}
	if factor.hasStart && factor.hasEnd && factor.StartIndex > factor.EndIndex {
		return GrowthFactor{}, ErrIndexWindow
	}
	return factor, nil
}
