// Package iostep serializes trained ROMs to .rove artifacts and restores
// them in later runs.
//
// Save refuses untrained ROMs and placeholders: only a ROM trained in the
// current run may be serialized. Load is the restoration step a pickledROM
// placeholder waits for: it reads an artifact, instantiates the original
// subtype from the registry, and restores its full state, returning a ROM
// that behaves exactly as it did when serialized. The workflow engine swaps
// the returned ROM in for the placeholder.
package iostep
