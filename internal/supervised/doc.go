// Package supervised defines the trainable-predictor contract shared by all
// reduced-order models (ROMs) and the subtype registry the workflow engine
// instantiates them from.
//
// A ROM is trained once on feature/target matrices, then evaluated at new
// feature points in place of running the expensive model it stands in for.
// Concrete subtypes register themselves by name at init; the engine resolves
// a configuration's subtype attribute through New and validates the
// configuration body against the subtype's input spec from Spec.
//
// The pickledROM subtype is the placeholder for ROMs trained and serialized
// in a previous run: it refuses training and evaluation until an IO step
// restores the original ROM's state from an artifact (see package iostep).
package supervised
