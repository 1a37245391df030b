package view

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func action(m Marker) string { return "/events/" + m.ID }

func render(t *testing.T, n *Node, action ActionFunc) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, WriteHTML(&b, n, action))
	return b.String()
}

func TestEl_DropsNilChildren(t *testing.T) {
	n := El("div", nil, Text("a"), nil, El("span"))
	assert.Len(t, n.Children, 2)
}

func TestSet_ReplacesExistingAttr(t *testing.T) {
	n := El("input").Set("value", "a").Set("value", "b")
	require.Len(t, n.Attrs, 1)
	v, ok := n.Get("value")
	assert.True(t, ok)
	assert.Equal(t, "b", v)

	_, ok = n.Get("name")
	assert.False(t, ok)
}

func TestMarkers_DocumentOrder(t *testing.T) {
	root := Group(
		El("button").On("a", "1"),
		El("div", El("button").On("b", "2"), El("button").On("c", "3")),
		El("button").On("d", ""),
	)
	var kinds []string
	for _, m := range Markers(root) {
		kinds = append(kinds, m.Kind)
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, kinds)
}

func TestFindIDAndTextContent(t *testing.T) {
	root := El("div", El("p", Text("Total: "), El("b", Text("R$ 1,00"))).ID("total"))
	n := FindID(root, "total")
	require.NotNil(t, n)
	assert.Equal(t, "Total: R$ 1,00", TextContent(n))
	assert.Nil(t, FindID(root, "missing"))
}

func TestHTML_EscapesTextAndAttrs(t *testing.T) {
	n := El("p", Text(`<script>alert("x")</script>`)).Set("title", `a"b`)
	got := render(t, n, nil)
	assert.Equal(t, `<p title="a&#34;b">&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;</p>`, got)
}

func TestHTML_VoidAndBareAttrs(t *testing.T) {
	n := El("input").Set("name", "q").Set("required", "")
	assert.Equal(t, `<input name="q" required>`, render(t, n, nil))
}

func TestHTML_BoundButtonBecomesForm(t *testing.T) {
	b := El("button", Text("Adicionar")).Class("btn").On("add-to-cart", "tilapia")
	b.Marker.ID = "add-to-cart-1-0"

	got := render(t, b, action)
	assert.Equal(t,
		`<form method="post" class="marker" action="/events/add-to-cart-1-0"><button class="btn" type="submit">Adicionar</button></form>`,
		got)
}

func TestHTML_BoundFormPosts(t *testing.T) {
	f := El("form", El("input").Set("name", "a")).ID("f").On("confirm", "")
	f.Marker.ID = "confirm-2-0"

	got := render(t, f, action)
	assert.True(t, strings.HasPrefix(got, `<form id="f" method="post" action="/events/confirm-2-0">`), got)
	assert.True(t, strings.HasSuffix(got, `</form>`))
}

func TestHTML_UnboundMarkerIsPlain(t *testing.T) {
	b := El("button", Text("x")).On("unknown", "")
	assert.Equal(t, `<button>x</button>`, render(t, b, action))
}

func TestNode_JSONCarriesNoCode(t *testing.T) {
	b := El("button", Text("Sair")).On("logout", "")
	b.Marker.ID = "logout-1-0"

	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"tag":"button","children":[{"text":"Sair"}],"marker":{"id":"logout-1-0","kind":"logout"}}`,
		string(raw))
}
