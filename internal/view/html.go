package view

import (
	"bytes"
	"html"
	"io"
)

// ActionFunc returns the URL a bound marker posts to.
type ActionFunc func(m Marker) string

var voidTags = map[string]bool{
	"area": true, "br": true, "col": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "source": true,
}

// WriteHTML encodes the tree. A marked form posts to its action URL; any other
// marked element becomes a submit button wrapped in its own single-button form.
// Unbound markers (no ID) render as plain elements.
func WriteHTML(w io.Writer, n *Node, action ActionFunc) error {
	var buf bytes.Buffer
	writeNode(&buf, n, action)
	_, err := w.Write(buf.Bytes())
	return err
}

func writeNode(b *bytes.Buffer, n *Node, action ActionFunc) {
	if n == nil {
		return
	}
	if n.Tag == "" {
		b.WriteString(html.EscapeString(n.Text))
		writeChildren(b, n, action)
		return
	}

	bound := n.Marker != nil && n.Marker.ID != "" && action != nil
	switch {
	case bound && n.Tag == "form":
		writeOpen(b, n, Attr{"method", "post"}, Attr{"action", action(*n.Marker)})
		writeChildren(b, n, action)
		writeClose(b, n.Tag)
	case bound:
		b.WriteString(`<form method="post" class="marker" action="`)
		b.WriteString(html.EscapeString(action(*n.Marker)))
		b.WriteString(`">`)
		writeOpen(b, &Node{Tag: "button", Attrs: n.Attrs}, Attr{"type", "submit"})
		writeChildren(b, n, action)
		writeClose(b, "button")
		b.WriteString("</form>")
	default:
		writeOpen(b, n)
		if voidTags[n.Tag] {
			return
		}
		writeChildren(b, n, action)
		writeClose(b, n.Tag)
	}
}

func writeOpen(b *bytes.Buffer, n *Node, extra ...Attr) {
	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, a := range append(append([]Attr(nil), n.Attrs...), extra...) {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		if a.Val != "" {
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(a.Val))
			b.WriteByte('"')
		}
	}
	b.WriteByte('>')
}

func writeChildren(b *bytes.Buffer, n *Node, action ActionFunc) {
	for _, c := range n.Children {
		writeNode(b, c, action)
	}
}

func writeClose(b *bytes.Buffer, tag string) {
	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}
