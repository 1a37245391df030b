// Package view is the structured output of the storefront views.
//
// A view is a tree of Nodes. Interactive nodes carry a Marker naming the action
// kind and the data it needs; no node ever carries code. Whoever renders the tree
// decides how a marker becomes something a user can trigger.
package view

import "strings"

type Attr struct {
	Key string `json:"k"`
	Val string `json:"v"`
}

// Marker declares a node as interactive. ID is assigned when the tree is bound
// and is only meaningful for that one render.
type Marker struct {
	ID    string `json:"id,omitempty"`
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
}

// Node is an element when Tag is set, otherwise a text run (or a bare group of
// children when Text is empty too).
type Node struct {
	Tag      string  `json:"tag,omitempty"`
	Text     string  `json:"text,omitempty"`
	Attrs    []Attr  `json:"attrs,omitempty"`
	Children []*Node `json:"children,omitempty"`
	Marker   *Marker `json:"marker,omitempty"`
}

// El builds an element. nil children are dropped so optional parts can be
// written inline.
func El(tag string, children ...*Node) *Node {
	return (&Node{Tag: tag}).Append(children...)
}

func Text(s string) *Node { return &Node{Text: s} }

func Group(children ...*Node) *Node { return (&Node{}).Append(children...) }

func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

func (n *Node) Set(key, val string) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Key == key {
			n.Attrs[i].Val = val
			return n
		}
	}
	n.Attrs = append(n.Attrs, Attr{Key: key, Val: val})
	return n
}

func (n *Node) Get(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (n *Node) Class(c string) *Node { return n.Set("class", c) }

func (n *Node) ID(id string) *Node { return n.Set("id", id) }

// On marks n as the trigger of an action of the given kind.
func (n *Node) On(kind, value string) *Node {
	n.Marker = &Marker{Kind: kind, Value: value}
	return n
}

// Walk visits n and its descendants depth-first, parents before children.
func Walk(n *Node, fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, c := range n.Children {
		Walk(c, fn)
	}
}

// Markers lists every marker in document order.
func Markers(root *Node) []*Marker {
	var out []*Marker
	Walk(root, func(n *Node) {
		if n.Marker != nil {
			out = append(out, n.Marker)
		}
	})
	return out
}

func FindID(root *Node, id string) *Node {
	var found *Node
	Walk(root, func(n *Node) {
		if found == nil {
			if v, ok := n.Get("id"); ok && v == id {
				found = n
			}
		}
	})
	return found
}

// TextContent concatenates every text run under n.
func TextContent(n *Node) string {
	var b strings.Builder
	Walk(n, func(c *Node) {
		if c.Tag == "" {
			b.WriteString(c.Text)
		}
	})
	return b.String()
}
