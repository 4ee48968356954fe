package artifact

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const roveVersion = "0.1.0" // Current Rove version

// Writer writes ROM artifacts in .rove format.
type Writer struct {
	file   *os.File
	closed bool
}

// NewWriter creates a new .rove file writer.
func NewWriter(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	return &Writer{file: file}, nil
}

// Write serializes one ROM artifact: the header describes the ROM, the
// payload is its opaque serialized state. Format version, Rove version,
// artifact ID, and creation time are filled in here.
func (w *Writer) Write(header Header, payload []byte) error {
	if w.closed {
		return ErrWriterClosed
	}

	header.FormatVersion = FormatVersion
	header.RoveVersion = roveVersion
	header.CreatedAt = time.Now().UTC()
	if header.ArtifactID == "" {
		header.ArtifactID = uuid.NewString()
	}
	if header.Metadata == nil {
		header.Metadata = make(map[string]string)
	}

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	checksum := ComputeChecksum(payload)

	// Fixed 64-byte header.
	fixed := make([]byte, FixedHeaderSize)
	copy(fixed[0:4], MagicBytes)
	binary.LittleEndian.PutUint32(fixed[4:8], uint32(FormatVersion))
	flags := uint32(0)
	if len(header.Metadata) > 0 {
		flags |= FlagHasMetadata
	}
	binary.LittleEndian.PutUint32(fixed[8:12], flags)
	// 0x0C-0x0F reserved, zero from make().
	binary.LittleEndian.PutUint64(fixed[16:24], uint64(len(headerJSON)))
	binary.LittleEndian.PutUint64(fixed[24:32], uint64(len(payload)))
	copy(fixed[ChecksumOffset:ChecksumOffset+ChecksumSize], checksum[:])

	if _, err := w.file.Write(fixed); err != nil {
		return fmt.Errorf("failed to write fixed header: %w", err)
	}
	if _, err := w.file.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// Pad so the payload starts on an alignment boundary.
	pos := int64(FixedHeaderSize) + int64(len(headerJSON))
	if padding := (PayloadAlign - (pos % PayloadAlign)) % PayloadAlign; padding > 0 {
		if _, err := w.file.Write(make([]byte, padding)); err != nil {
			return fmt.Errorf("failed to write padding: %w", err)
		}
	}

	if _, err := w.file.Write(payload); err != nil {
		return fmt.Errorf("failed to write payload: %w", err)
	}
	return nil
}

// Close closes the writer and the underlying file.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	return w.file.Close()
}
