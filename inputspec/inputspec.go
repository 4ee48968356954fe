// Copyright 2025 Rove ML Toolkit. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package inputspec is the public API for typed configuration schemas:
// declare a tree of named, typed parameter descriptors, parse configuration
// XML into a raw node tree, and validate one against the other.
package inputspec

import (
	"io"

	"github.com/rove-ml/rove/internal/inputspec"
)

// Param describes one named, typed configuration node.
type Param = inputspec.Param

// Attr describes an accepted attribute on a parameter node.
type Attr = inputspec.Attr

// Node is one element of a raw, untyped configuration tree.
type Node = inputspec.Node

// Parsed is one node of a validated, typed configuration tree.
type Parsed = inputspec.Parsed

// Type converts raw configuration text into typed Go values.
type Type = inputspec.Type

// ValidationError reports a validation failure at a specific node.
type ValidationError = inputspec.ValidationError

// Common validation errors.
var (
	ErrUnknownNode = inputspec.ErrUnknownNode
	ErrUnknownAttr = inputspec.ErrUnknownAttr
	ErrMissingAttr = inputspec.ErrMissingAttr
	ErrMissingNode = inputspec.ErrMissingNode
	ErrNotInEnum   = inputspec.ErrNotInEnum
)

// NewParam creates a parameter descriptor. Pass a nil content type for
// container nodes.
//
// Example:
//
//	spec := inputspec.NewParam("seed", inputspec.Integer())
func NewParam(name string, content Type) *Param {
	return inputspec.NewParam(name, content)
}

// NewNode constructs a raw configuration node.
func NewNode(name string) *Node {
	return inputspec.NewNode(name)
}

// ParseXML reads an XML document into a Node tree.
func ParseXML(r io.Reader) (*Node, error) {
	return inputspec.ParseXML(r)
}

// Integer returns the integer content type.
func Integer() Type { return inputspec.Integer() }

// Float returns the floating-point content type.
func Float() Type { return inputspec.Float() }

// String returns the string content type.
func String() Type { return inputspec.String() }

// StringList returns the comma-separated string-list content type.
func StringList() Type { return inputspec.StringList() }

// Enum returns a string type restricted to the given value set.
func Enum(name string, values ...string) Type {
	return inputspec.Enum(name, values...)
}
