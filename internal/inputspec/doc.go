// Package inputspec declares and validates typed configuration schemas.
//
// A schema is a tree of named parameter descriptors built imperatively:
//
//	spec := inputspec.NewParam("ROM", nil)
//	spec.AddAttr("name", inputspec.String(), true)
//	spec.AddSub(inputspec.NewParam("seed", inputspec.Integer()))
//
// Configuration input parses into a Node tree (from XML or constructed
// programmatically) and validates declaratively against the schema:
//
//	node, err := inputspec.ParseXML(file)
//	parsed, err := spec.Validate(node)
//
// Validation produces a Parsed tree with content and attributes converted to
// their declared Go types. Building a schema never fails; validation returns
// descriptive errors naming the offending node.
package inputspec
