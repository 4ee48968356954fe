package inputspec

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Node is one element of a raw, untyped configuration tree, as parsed from
// XML or constructed programmatically in tests.
type Node struct {
	Name     string
	Attrs    map[string]string
	Text     string
	Children []*Node
}

// NewNode constructs a raw configuration node.
func NewNode(name string) *Node {
	return &Node{Name: name, Attrs: make(map[string]string)}
}

// SetAttr sets a raw attribute value. Returns the node for chaining.
func (n *Node) SetAttr(name, value string) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[name] = value
	return n
}

// SetText sets the node's text content. Returns the node for chaining.
func (n *Node) SetText(text string) *Node {
	n.Text = text
	return n
}

// Append adds a child node. Returns the parent for chaining.
func (n *Node) Append(child *Node) *Node {
	n.Children = append(n.Children, child)
	return n
}

// ParseXML reads an XML document into a Node tree. Only element names,
// attributes, and character data are retained; comments and processing
// instructions are dropped.
func ParseXML(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)

	var root *Node
	var stack []*Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			node := NewNode(t.Name.Local)
			for _, a := range t.Attr {
				node.Attrs[a.Name.Local] = a.Value
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("multiple root elements")
				}
				root = node
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, node)
			}
			stack = append(stack, node)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("empty document")
	}
	trimText(root)
	return root, nil
}

func trimText(n *Node) {
	n.Text = strings.TrimSpace(n.Text)
	for _, c := range n.Children {
		trimText(c)
	}
}
