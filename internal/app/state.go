package app

import (
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/shop"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/store"
)

// ContactDraft is what the support form currently holds. It is never persisted.
type ContactDraft struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Notice is a message for the user attached to the next frame. A blocking
// notice must be acknowledged before the user carries on.
type Notice struct {
	Message  string `json:"message"`
	Blocking bool   `json:"blocking"`
}

// State is the whole mutable session. Only Actions (and the Router, for Route)
// write to it.
type State struct {
	User      *shop.User
	Cart      shop.Cart
	Order     *shop.Order
	Highlight string
	Route     string

	Contact ContactDraft
	Notice  *Notice
}

// Load restores the persisted slices of a session. pick chooses the highlighted
// product index in [0, n).
func Load(st *store.Store, catalog shop.Catalog, pick func(n int) int) *State {
	s := &State{
		User:  store.Read[*shop.User](st, store.KeyUser, nil),
		Cart:  store.Read(st, store.KeyCart, shop.Cart{}),
		Order: store.Read[*shop.Order](st, store.KeyOrder, nil),
		Route: RouteHome,
	}
	if s.Cart == nil {
		s.Cart = shop.Cart{}
	}
	if len(catalog) > 0 {
		s.Highlight = catalog[pick(len(catalog))].ID
	}
	return s
}

// Snapshot is the read-only copy of State handed to views.
type Snapshot struct {
	User        *shop.User
	Cart        shop.Cart
	Order       *shop.Order
	Highlighted shop.Product
	Route       string
	Contact     ContactDraft
	Catalog     shop.Catalog
}

func (s *State) Snapshot(catalog shop.Catalog) Snapshot {
	snap := Snapshot{
		Cart:    s.Cart.Clone(),
		Route:   s.Route,
		Contact: s.Contact,
		Catalog: catalog,
	}
	if s.User != nil {
		u := *s.User
		snap.User = &u
	}
	if s.Order != nil {
		o := *s.Order
		o.Items = append([]shop.CartItem(nil), s.Order.Items...)
		snap.Order = &o
	}
	if p, ok := catalog.Find(s.Highlight); ok {
		snap.Highlighted = p
	} else if len(catalog) > 0 {
		snap.Highlighted = catalog[0]
	}
	return snap
}
