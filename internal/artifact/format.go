package artifact

import "time"

// Format constants.
const (
	MagicBytes      = "ROVE"
	FormatVersion   = 1
	FixedHeaderSize = 64   // fixed header size (0x40 bytes)
	PayloadAlign    = 64   // align payload for mmap-friendly reads
	ChecksumSize    = 32   // SHA-256 checksum size
	ChecksumOffset  = 0x20 // checksum offset in the fixed header
	MaxHeaderSize   = 16 << 20
)

// Flags for the .rove format.
const (
	FlagHasMetadata uint32 = 1 << 0 // bit 0: custom metadata included
)

// Header is the JSON metadata header of a .rove file.
type Header struct {
	FormatVersion int               `json:"format_version"`
	RoveVersion   string            `json:"rove_version"`
	ArtifactID    string            `json:"artifact_id"`
	ROMType       string            `json:"rom_type"`
	CreatedAt     time.Time         `json:"created_at"`
	Features      []string          `json:"features"`
	Target        string            `json:"target"`
	Metadata      map[string]string `json:"metadata"`
}
