// Package artifact provides the native .rove format for serialized ROMs.
//
// A .rove file carries everything needed to restore a trained ROM in a
// later run:
//
//	Format Structure:
//	  [64 bytes: fixed header]
//	    0x00  Magic "ROVE"
//	    0x04  Version (uint32 LE)
//	    0x08  Flags (uint32 LE)
//	    0x0C  Reserved
//	    0x10  Header size (uint64 LE)
//	    0x18  Payload size (uint64 LE)
//	    0x20  SHA-256 checksum of payload (32 bytes)
//	  [Header: JSON metadata]
//	  [Payload: gob-encoded ROM state, 64-byte aligned]
//
// The JSON header records the ROM subtype, artifact ID, variable names, and
// user metadata; readers verify the payload checksum before handing state to
// the restoration step.
package artifact
