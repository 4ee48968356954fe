package artifact

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
)

// Reader reads ROM artifacts from .rove format.
type Reader struct {
	file        *os.File
	header      Header
	flags       uint32
	payloadOff  int64
	payloadSize int64
	checksum    [32]byte
	opts        ReaderOptions
	closed      bool
}

// ReaderOptions configures the behavior of Reader.
type ReaderOptions struct {
	SkipChecksumValidation bool // skip checksum validation on ReadPayload
}

// NewReader creates a new .rove file reader with default options.
func NewReader(path string) (*Reader, error) {
	return NewReaderWithOptions(path, ReaderOptions{})
}

// NewReaderWithOptions creates a new .rove file reader with custom options.
func NewReaderWithOptions(path string, opts ReaderOptions) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	r := &Reader{file: file, opts: opts}
	if err := r.parseHeader(); err != nil {
		_ = file.Close() // Best effort close on error
		return nil, fmt.Errorf("failed to parse header: %w", err)
	}
	return r, nil
}

// Header returns the artifact's JSON metadata header.
func (r *Reader) Header() Header {
	return r.header
}

// ReadPayload reads the serialized ROM state and verifies its checksum
// unless checksum validation is disabled.
func (r *Reader) ReadPayload() ([]byte, error) {
	payload := make([]byte, r.payloadSize)
	if _, err := r.file.ReadAt(payload, r.payloadOff); err != nil {
		return nil, fmt.Errorf("failed to read payload: %w", err)
	}

	if !r.opts.SkipChecksumValidation {
		if err := ValidateChecksum(ComputeChecksum(payload), r.checksum); err != nil {
			return nil, err
		}
	}
	return payload, nil
}

// Close closes the reader and the underlying file.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.file.Close()
}

func (r *Reader) parseHeader() error {
	fixed := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r.file, fixed); err != nil {
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	}

	if string(fixed[0:4]) != MagicBytes {
		return ErrInvalidMagic
	}
	version := binary.LittleEndian.Uint32(fixed[4:8])
	if version != FormatVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	r.flags = binary.LittleEndian.Uint32(fixed[8:12])

	headerSize := binary.LittleEndian.Uint64(fixed[16:24])
	if headerSize > MaxHeaderSize {
		return ErrHeaderTooLarge
	}
	payloadSize := binary.LittleEndian.Uint64(fixed[24:32])
	copy(r.checksum[:], fixed[ChecksumOffset:ChecksumOffset+ChecksumSize])

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r.file, headerJSON); err != nil {
		return fmt.Errorf("%w: %v", ErrTruncated, err)
	}
	if err := json.Unmarshal(headerJSON, &r.header); err != nil {
		return fmt.Errorf("failed to unmarshal header: %w", err)
	}

	pos := int64(FixedHeaderSize) + int64(headerSize)
	r.payloadOff = pos + (PayloadAlign-(pos%PayloadAlign))%PayloadAlign

	info, err := r.file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	// Bound the declared size by the file size before converting to int64,
	// so a corrupt length field cannot overflow the offset arithmetic.
	if payloadSize > uint64(info.Size()) {
		return ErrTruncated
	}
	r.payloadSize = int64(payloadSize)
	if info.Size() < r.payloadOff+r.payloadSize {
		return ErrTruncated
	}
	return nil
}
