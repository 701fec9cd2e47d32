// Package component is a small synchronous component runtime: components render a node
// tree once, listen to DOM-style events on it and emit named events to their parent.
// Mount wraps an instance for driving it from tests and terminals
package component

import (
	"html"
	"maps"
	"slices"
	"strings"
)

// Attrs are node attributes
type Attrs map[string]string

// Event is dispatched to a node and bubbles to its ancestors
type Event struct {
	Type   string
	Target *Node
}

// Listener handles one dispatched event
type Listener func(ev Event)

// Node is one element of a rendered tree
type Node struct {
	Tag      string
	Attrs    Attrs
	Value    string
	Children []*Node

	parent    *Node
	listeners map[string][]Listener
}

// El builds a node, adopting children
func El(tag string, attrs Attrs, children ...*Node) *Node {
	n := &Node{Tag: strings.ToLower(tag), Attrs: maps.Clone(attrs)}
	if n.Attrs == nil {
		n.Attrs = Attrs{}
	}
	for _, c := range children {
		if c == nil {
			continue
		}
		c.parent = n
		n.Children = append(n.Children, c)
	}
	return n
}

// Attr returns an attribute value and whether it is set
func (n *Node) Attr(name string) (string, bool) {
	v, ok := n.Attrs[name]
	return v, ok
}

// Parent returns the enclosing node, nil for the root
func (n *Node) Parent() *Node { return n.parent }

// Editable reports whether SetValue applies to n
func (n *Node) Editable() bool {
	switch n.Tag {
	case "input", "textarea", "select":
		return true
	}
	return false
}

func (n *Node) on(event string, fn Listener) {
	if n.listeners == nil {
		n.listeners = map[string][]Listener{}
	}
	n.listeners[event] = append(n.listeners[event], fn)
}

// dispatch runs listeners on the target, then on each ancestor
func (n *Node) dispatch(ev Event) int {
	called := 0
	for cur := n; cur != nil; cur = cur.parent {
		for _, fn := range slices.Clone(cur.listeners[ev.Type]) {
			fn(ev)
			called++
		}
	}
	return called
}

// walk visits n and its descendants in document order until fn returns false
func (n *Node) walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if !c.walk(fn) {
			return false
		}
	}
	return true
}

// String renders an HTML-ish view for debugging and snapshots
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	b.WriteString("<" + n.Tag)
	for _, k := range slices.Sorted(maps.Keys(n.Attrs)) {
		b.WriteString(" " + k + `="` + html.EscapeString(n.Attrs[k]) + `"`)
	}
	if n.Value != "" {
		b.WriteString(` value="` + html.EscapeString(n.Value) + `"`)
	}
	b.WriteString(">")
	for _, c := range n.Children {
		c.write(b)
	}
	b.WriteString("</" + n.Tag + ">")
}
