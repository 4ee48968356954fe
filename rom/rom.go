// Copyright 2025 Rove ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package rom

import (
	"github.com/rove-ml/rove/internal/inputspec"
	"github.com/rove-ml/rove/internal/iostep"
	"github.com/rove-ml/rove/internal/logger"
	"github.com/rove-ml/rove/internal/supervised"
)

// TrainablePredictor is the lifecycle contract every ROM subtype implements.
type TrainablePredictor = supervised.TrainablePredictor

// State is the serializable snapshot of a trained ROM.
type State = supervised.State

// PickledROM is the placeholder for a ROM serialized in a previous run.
type PickledROM = supervised.PickledROM

// Linear is the ordinary-least-squares ROM subtype.
type Linear = supervised.Linear

// Registered subtype names.
const (
	SubtypePickled = supervised.SubtypePickled
	SubtypeLinear  = supervised.SubtypeLinear
)

// Common errors.
var (
	ErrROMNotLoaded   = supervised.ErrROMNotLoaded
	ErrNotTrained     = supervised.ErrNotTrained
	ErrUnknownSubtype = supervised.ErrUnknownSubtype
)

// NewPickledROM constructs the inert pickled-ROM placeholder.
//
// Example:
//
//	placeholder := rom.NewPickledROM()
//	_, err := placeholder.Evaluate(features) // fails until an IO step restores it
func NewPickledROM() *PickledROM {
	return supervised.NewPickledROM()
}

// NewLinear constructs an untrained linear ROM for the given variables.
//
// Example:
//
//	model := rom.NewLinear([]string{"x1", "x2"}, "y")
//	err := model.Train(features, targets)
func NewLinear(features []string, target string) *Linear {
	return supervised.NewLinear(features, target)
}

// New instantiates the ROM subtype registered under name.
func New(name string) (TrainablePredictor, error) {
	return supervised.New(name)
}

// Spec returns the input schema of the subtype registered under name.
func Spec(name string) (*inputspec.Param, error) {
	return supervised.Spec(name)
}

// Known returns the registered subtype names, sorted.
func Known() []string {
	return supervised.Known()
}

// FromConfig instantiates a ROM from a validated configuration node.
func FromConfig(parsed *inputspec.Parsed) (TrainablePredictor, error) {
	return supervised.FromConfig(parsed)
}

// Save serializes a trained ROM to a .rove artifact.
//
// Example:
//
//	err := rom.Save("model.rove", model, map[string]string{"run": "2026-08"})
func Save(path string, r TrainablePredictor, metadata map[string]string) error {
	return iostep.Save(path, r, metadata)
}

// Load restores a ROM from a .rove artifact. This is the IO step a
// pickledROM placeholder waits for; the returned ROM takes its place.
//
// Example:
//
//	restored, err := rom.Load("model.rove")
//	preds, err := restored.Evaluate(features)
func Load(path string) (TrainablePredictor, error) {
	return iostep.Load(path)
}

// Loader restores ROMs with an LRU cache keyed by artifact path.
type Loader = iostep.Loader

// NewLoader creates a Loader holding at most size restored ROMs. Pass a nil
// logger for the default stderr logger.
func NewLoader(size int, log logger.Logger) (*Loader, error) {
	return iostep.NewLoader(size, log)
}
