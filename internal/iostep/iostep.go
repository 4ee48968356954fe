package iostep

import (
	"bytes"
	"encoding/gob"
	"os"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/rove-ml/rove/internal/artifact"
	"github.com/rove-ml/rove/internal/logger"
	"github.com/rove-ml/rove/internal/supervised"
)

// Save serializes a trained ROM to a .rove artifact at path. The metadata
// map is carried verbatim in the artifact header. Untrained ROMs and
// unloaded placeholders cannot be serialized; their StateDict reports why.
func Save(path string, rom supervised.TrainablePredictor, metadata map[string]string) error {
	state, err := rom.StateDict()
	if err != nil {
		return errors.Wrap(err, "cannot serialize ROM")
	}

	var payload bytes.Buffer
	if err := gob.NewEncoder(&payload).Encode(state); err != nil {
		return errors.Wrap(err, "failed to encode ROM state")
	}

	// Stage next to the target and rename on success, so a failed write
	// never leaves a partial artifact at path.
	tmp := path + ".tmp"
	w, err := artifact.NewWriter(tmp)
	if err != nil {
		return errors.Wrap(err, "failed to create artifact")
	}

	header := artifact.Header{
		ROMType:  rom.Tag(),
		Features: rom.Features(),
		Target:   rom.Target(),
		Metadata: metadata,
	}
	if err := w.Write(header, payload.Bytes()); err != nil {
		_ = w.Close()
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "failed to write artifact %s", path)
	}
	if err := w.Close(); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "failed to write artifact %s", path)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return errors.Wrapf(err, "failed to finalize artifact %s", path)
	}
	return nil
}

// Load restores a ROM from a .rove artifact: the header's subtype picks the
// registered factory, and the payload state is loaded into the fresh
// instance. The returned ROM replaces the pickledROM placeholder that was
// holding its place in the workflow.
func Load(path string) (supervised.TrainablePredictor, error) {
	r, err := artifact.NewReader(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open artifact %s", path)
	}
	defer func() {
		_ = r.Close()
	}()

	header := r.Header()
	rom, err := supervised.New(header.ROMType)
	if err != nil {
		return nil, errors.Wrapf(err, "artifact %s references an unregistered subtype", path)
	}

	payload, err := r.ReadPayload()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read artifact %s", path)
	}

	var state supervised.State
	if err := gob.NewDecoder(bytes.NewReader(payload)).Decode(&state); err != nil {
		return nil, errors.Wrap(err, "failed to decode ROM state")
	}
	if err := rom.LoadStateDict(state); err != nil {
		return nil, errors.Wrap(err, "failed to restore ROM state")
	}
	return rom, nil
}

// Loader restores ROMs with an LRU cache keyed by artifact path, for
// sampling workflows that reload the same artifact many times. Cached ROMs
// are shared; callers that mutate a loaded ROM should use Load directly.
type Loader struct {
	cache *lru.Cache[string, supervised.TrainablePredictor]
	log   logger.Logger
}

// NewLoader creates a Loader holding at most size restored ROMs.
func NewLoader(size int, log logger.Logger) (*Loader, error) {
	if log == nil {
		log = logger.Default()
	}
	cache, err := lru.New[string, supervised.TrainablePredictor](size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create artifact cache")
	}
	return &Loader{cache: cache, log: log}, nil
}

// Load returns the ROM restored from path, from cache when possible.
func (l *Loader) Load(path string) (supervised.TrainablePredictor, error) {
	if rom, ok := l.cache.Get(path); ok {
		l.log.Debug("artifact cache hit", "path", path)
		return rom, nil
	}

	rom, err := Load(path)
	if err != nil {
		return nil, err
	}
	l.log.Info("restored ROM from artifact", "path", path, "subtype", rom.Tag(), "target", rom.Target())
	l.cache.Add(path, rom)
	return rom, nil
}
