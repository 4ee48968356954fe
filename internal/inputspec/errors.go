package inputspec

import (
	"errors"
	"fmt"
)

// Common validation errors.
var (
	ErrWrongNode      = errors.New("node name does not match schema")
	ErrUnknownNode    = errors.New("unknown node")
	ErrUnknownAttr    = errors.New("unknown attribute")
	ErrMissingAttr    = errors.New("missing required attribute")
	ErrMissingNode    = errors.New("missing required node")
	ErrDuplicateNode  = errors.New("node may appear only once")
	ErrNotInEnum      = errors.New("value not in enumeration")
	ErrUnexpectedText = errors.New("node does not accept content")
)

// ValidationError reports a validation failure at a specific node in the
// configuration tree.
type ValidationError struct {
	Node   string // name of the node being validated
	Attr   string // attribute name, if the failure concerns an attribute
	Value  string // offending raw value, if any
	Reason error  // one of the sentinel errors above, or a parse error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	switch {
	case e.Attr != "" && e.Value != "":
		return fmt.Sprintf("node %q, attribute %q: %v (got %q)", e.Node, e.Attr, e.Reason, e.Value)
	case e.Attr != "":
		return fmt.Sprintf("node %q, attribute %q: %v", e.Node, e.Attr, e.Reason)
	case e.Value != "":
		return fmt.Sprintf("node %q: %v (got %q)", e.Node, e.Reason, e.Value)
	default:
		return fmt.Sprintf("node %q: %v", e.Node, e.Reason)
	}
}

// Unwrap exposes the underlying sentinel for errors.Is checks.
func (e *ValidationError) Unwrap() error {
	return e.Reason
}
