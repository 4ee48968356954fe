package inputspec

// Parsed is one node of a validated configuration tree. Content and
// attribute values are converted to the Go types their schema declares:
// int for Integer, float64 for Float, string for String and Enum,
// []string for StringList.
type Parsed struct {
	Name     string
	Value    any
	Attrs    map[string]any
	Children []*Parsed
}

// Get returns the first child with the given name, or nil.
func (p *Parsed) Get(name string) *Parsed {
	for _, c := range p.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// GetAll returns every child with the given name.
func (p *Parsed) GetAll(name string) []*Parsed {
	var out []*Parsed
	for _, c := range p.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Int returns the node's content as an int.
func (p *Parsed) Int() (int, bool) {
	v, ok := p.Value.(int)
	return v, ok
}

// Float returns the node's content as a float64.
func (p *Parsed) Float() (float64, bool) {
	v, ok := p.Value.(float64)
	return v, ok
}

// Str returns the node's content as a string.
func (p *Parsed) Str() (string, bool) {
	v, ok := p.Value.(string)
	return v, ok
}

// AttrInt returns the named attribute as an int.
func (p *Parsed) AttrInt(name string) (int, bool) {
	v, ok := p.Attrs[name].(int)
	return v, ok
}

// AttrStr returns the named attribute as a string.
func (p *Parsed) AttrStr(name string) (string, bool) {
	v, ok := p.Attrs[name].(string)
	return v, ok
}

// AttrStrings returns the named attribute as a string list.
func (p *Parsed) AttrStrings(name string) ([]string, bool) {
	v, ok := p.Attrs[name].([]string)
	return v, ok
}

// Validate checks a raw node tree against the schema rooted at p and returns
// the typed result. The node's name must match the schema's; every attribute
// and child must be declared; required attributes and children must be
// present; content and attribute values must parse under their declared
// types. Children absent from input but carrying a declared default appear
// in the result with that default.
func (p *Param) Validate(n *Node) (*Parsed, error) {
	if n.Name != p.name {
		return nil, &ValidationError{Node: p.name, Value: n.Name, Reason: ErrWrongNode}
	}

	out := &Parsed{Name: n.Name, Attrs: make(map[string]any)}

	// Attributes: reject undeclared, require declared-required, parse typed.
	for name, raw := range n.Attrs {
		decl, ok := p.attr(name)
		if !ok {
			return nil, &ValidationError{Node: n.Name, Attr: name, Reason: ErrUnknownAttr}
		}
		v, err := decl.Type.Parse(raw)
		if err != nil {
			return nil, &ValidationError{Node: n.Name, Attr: name, Value: raw, Reason: err}
		}
		out.Attrs[name] = v
	}
	for _, decl := range p.attrs {
		if _, seen := n.Attrs[decl.Name]; decl.Required && !seen {
			return nil, &ValidationError{Node: n.Name, Attr: decl.Name, Reason: ErrMissingAttr}
		}
	}

	// Content. Typed nodes always parse their text, so an empty node like
	// <cycles/> fails here instead of validating with no value; containers
	// reject any text.
	if p.content == nil {
		if n.Text != "" {
			return nil, &ValidationError{Node: n.Name, Value: n.Text, Reason: ErrUnexpectedText}
		}
	} else {
		v, err := p.content.Parse(n.Text)
		if err != nil {
			return nil, &ValidationError{Node: n.Name, Value: n.Text, Reason: err}
		}
		out.Value = v
	}

	// Children: each must be declared; validate recursively.
	counts := make(map[string]int)
	for _, child := range n.Children {
		sub := p.Sub(child.Name)
		if sub == nil {
			return nil, &ValidationError{Node: n.Name, Value: child.Name, Reason: ErrUnknownNode}
		}
		counts[child.Name]++
		if counts[child.Name] > 1 && !sub.repeatable {
			return nil, &ValidationError{Node: n.Name, Value: child.Name, Reason: ErrDuplicateNode}
		}
		pc, err := sub.Validate(child)
		if err != nil {
			return nil, err
		}
		out.Children = append(out.Children, pc)
	}

	// Required children and defaults for absent ones.
	for _, sub := range p.subs {
		if counts[sub.name] > 0 {
			continue
		}
		if sub.required {
			return nil, &ValidationError{Node: n.Name, Value: sub.name, Reason: ErrMissingNode}
		}
		if sub.hasDefault {
			out.Children = append(out.Children, &Parsed{
				Name:  sub.name,
				Value: sub.def,
				Attrs: make(map[string]any),
			})
		}
	}

	return out, nil
}
