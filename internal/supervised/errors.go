package supervised

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrROMNotLoaded is the failure every pickledROM operation reports
	// until an IO step restores it. The message text is part of the
	// compatibility surface and must not change.
	ErrROMNotLoaded = errors.New("PickledROM has not been loaded from file yet!  An IO step is required to perform this action.")

	ErrNotTrained     = errors.New("ROM has not been trained yet")
	ErrDimension      = errors.New("matrix dimensions do not match declared variables")
	ErrUnknownSubtype = errors.New("unknown ROM subtype")
)

// romError labels a failure with the reporting ROM's diagnostic tag, the way
// the workflow engine surfaces runtime errors to the user.
func romError(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
