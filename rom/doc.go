// Copyright 2025 Rove ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package rom is the public API for reduced-order models: the trainable
// predictor contract, the subtype registry, the pickled-ROM placeholder,
// and artifact save/restore.
//
// A typical two-run workflow:
//
//	// Run 1: train and serialize.
//	model := rom.NewLinear([]string{"x"}, "y")
//	_ = model.Train(features, targets)
//	_ = rom.Save("model.rove", model, nil)
//
//	// Run 2: a placeholder holds the ROM's place until the IO step.
//	placeholder := rom.NewPickledROM()
//	_, err := placeholder.Evaluate(features) // rom.ErrROMNotLoaded
//	restored, _ := rom.Load("model.rove")
//	preds, _ := restored.Evaluate(features)
package rom
