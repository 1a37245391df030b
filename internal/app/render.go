package app

import (
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/shop"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/view"
)

// Chrome is the state shown outside the routed view on every page.
type Chrome struct {
	CartCount int    `json:"cart_count"`
	Greeting  string `json:"greeting"`
}

// Frame is the result of one render: the view tree with its marker ids
// assigned, plus the chrome and any notice raised since the last render.
type Frame struct {
	Route  string     `json:"route"`
	Render uint64     `json:"render"`
	Root   *view.Node `json:"root"`
	Chrome Chrome     `json:"chrome"`
	Notice *Notice    `json:"notice,omitempty"`
}

type Renderer struct {
	state    *State
	catalog  shop.Catalog
	registry *Registry
	binder   *Binder

	frame    Frame
	bindings Bindings
	renders  uint64
}

// Render replaces the current frame and its bindings as one unit. Handlers of
// the previous frame are unreachable afterwards.
func (r *Renderer) Render() {
	root := r.registry.Lookup(r.state.Route)(r.state.Snapshot(r.catalog))

	r.renders++
	bindings := r.binder.Bind(root, r.renders)

	r.frame = Frame{
		Route:  r.state.Route,
		Render: r.renders,
		Root:   root,
		Notice: r.state.Notice,
	}
	r.bindings = bindings
	r.state.Notice = nil
	r.RefreshChrome()
}

// RefreshChrome updates the cart badge and the greeting without touching the
// routed content.
func (r *Renderer) RefreshChrome() {
	greeting := "Entrar"
	if u := r.state.User; u != nil && u.FirstName() != "" {
		greeting = u.FirstName()
	}
	r.frame.Chrome = Chrome{CartCount: r.state.Cart.Count(), Greeting: greeting}
}

func (r *Renderer) Frame() Frame { return r.frame }

func (r *Renderer) Handler(markerID string) (Handler, bool) {
	h, ok := r.bindings[markerID]
	return h, ok
}
