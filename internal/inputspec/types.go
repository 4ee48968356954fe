package inputspec

import (
	"fmt"
	"strconv"
	"strings"
)

// Type converts raw string content or attribute values into typed Go values.
type Type interface {
	// Name returns the type's display name, used in error messages.
	Name() string

	// Parse converts a raw string into the type's Go representation.
	Parse(raw string) (any, error)
}

// Integer returns the integer content type. Parses to int.
func Integer() Type { return intType{} }

// Float returns the floating-point content type. Parses to float64.
func Float() Type { return floatType{} }

// String returns the string content type. Parses to string, trimmed.
func String() Type { return stringType{} }

// StringList returns the string-list content type. Parses a comma-separated
// list to []string with elements trimmed.
func StringList() Type { return stringListType{} }

// Enum returns a string type restricted to the given value set.
func Enum(name string, values ...string) Type {
	return enumType{name: name, values: values}
}

type intType struct{}

func (intType) Name() string { return "integer" }

func (intType) Parse(raw string) (any, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("expected integer: %w", err)
	}
	return v, nil
}

type floatType struct{}

func (floatType) Name() string { return "float" }

func (floatType) Parse(raw string) (any, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil, fmt.Errorf("expected float: %w", err)
	}
	return v, nil
}

type stringType struct{}

func (stringType) Name() string { return "string" }

func (stringType) Parse(raw string) (any, error) {
	return strings.TrimSpace(raw), nil
}

type stringListType struct{}

func (stringListType) Name() string { return "string list" }

func (stringListType) Parse(raw string) (any, error) {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}

type enumType struct {
	name   string
	values []string
}

func (e enumType) Name() string { return e.name }

func (e enumType) Parse(raw string) (any, error) {
	v := strings.TrimSpace(raw)
	for _, allowed := range e.values {
		if v == allowed {
			return v, nil
		}
	}
	return nil, fmt.Errorf("%w: %q is not one of [%s]", ErrNotInEnum, v, strings.Join(e.values, ", "))
}
