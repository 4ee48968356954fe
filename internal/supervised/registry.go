package supervised

import (
	"sort"
	"sync"

	"github.com/rove-ml/rove/internal/inputspec"
)

// Factory constructs a fresh, unconfigured instance of a ROM subtype.
type Factory func() TrainablePredictor

// SpecFunc returns the input schema accepted by a ROM subtype.
type SpecFunc func() *inputspec.Param

// Entry describes one registered ROM subtype.
type Entry struct {
	New  Factory
	Spec SpecFunc
}

var (
	regMu    sync.RWMutex
	registry = make(map[string]Entry)
)

// Register adds a ROM subtype under the given name. Subtype packages call
// this from init; later registrations under the same name replace earlier
// ones.
func Register(name string, entry Entry) {
	regMu.Lock()
	registry[name] = entry
	regMu.Unlock()
}

// New instantiates the subtype registered under name.
func New(name string) (TrainablePredictor, error) {
	regMu.RLock()
	entry, ok := registry[name]
	regMu.RUnlock()
	if !ok {
		return nil, romError(name, ErrUnknownSubtype)
	}
	return entry.New(), nil
}

// Spec returns the input schema of the subtype registered under name.
func Spec(name string) (*inputspec.Param, error) {
	regMu.RLock()
	entry, ok := registry[name]
	regMu.RUnlock()
	if !ok {
		return nil, romError(name, ErrUnknownSubtype)
	}
	return entry.Spec(), nil
}

// Known returns the registered subtype names, sorted.
func Known() []string {
	regMu.RLock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	regMu.RUnlock()
	sort.Strings(names)
	return names
}
