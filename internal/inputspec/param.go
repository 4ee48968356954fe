package inputspec

// Attr describes an accepted attribute on a parameter node.
type Attr struct {
	Name     string
	Type     Type
	Required bool
}

// Param describes one named, typed configuration node: its content type,
// default value, accepted attributes, and child nodes. A nil content type
// means the node is a pure container and accepts no text.
//
// Params are built imperatively and are not safe for concurrent mutation;
// build the schema once, then validate from any number of goroutines.
type Param struct {
	name       string
	content    Type
	descr      string
	def        any
	hasDefault bool
	required   bool
	repeatable bool
	attrs      []Attr
	subs       []*Param
}

// NewParam creates a parameter descriptor with the given node name and
// content type. Pass a nil content type for container nodes.
func NewParam(name string, content Type) *Param {
	return &Param{name: name, content: content}
}

// Name returns the node name this parameter matches.
func (p *Param) Name() string { return p.name }

// ContentType returns the declared content type, or nil for containers.
func (p *Param) ContentType() Type { return p.content }

// Describe attaches human-readable documentation to the parameter.
func (p *Param) Describe(text string) *Param {
	p.descr = text
	return p
}

// Description returns the documentation attached with Describe.
func (p *Param) Description() string { return p.descr }

// Default declares the value used when the node is absent from input.
func (p *Param) Default(v any) *Param {
	p.def = v
	p.hasDefault = true
	return p
}

// DefaultValue reports the declared default and whether one exists.
func (p *Param) DefaultValue() (any, bool) { return p.def, p.hasDefault }

// Required marks the node as mandatory wherever its parent appears.
func (p *Param) Required() *Param {
	p.required = true
	return p
}

// Repeatable allows the node to appear more than once under its parent.
func (p *Param) Repeatable() *Param {
	p.repeatable = true
	return p
}

// AddAttr declares an accepted attribute with the given value type.
func (p *Param) AddAttr(name string, t Type, required bool) *Param {
	p.attrs = append(p.attrs, Attr{Name: name, Type: t, Required: required})
	return p
}

// AddSub declares a child node. Returns the parent for chaining.
func (p *Param) AddSub(sub *Param) *Param {
	p.subs = append(p.subs, sub)
	return p
}

// Sub returns the child descriptor with the given name, or nil.
func (p *Param) Sub(name string) *Param {
	for _, s := range p.subs {
		if s.name == name {
			return s
		}
	}
	return nil
}

// Subs returns the declared child descriptors in declaration order.
func (p *Param) Subs() []*Param { return p.subs }

// Attrs returns the declared attribute descriptors in declaration order.
func (p *Param) Attrs() []Attr { return p.attrs }

func (p *Param) attr(name string) (Attr, bool) {
	for _, a := range p.attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}
