package app

import (
	"fmt"
	"strings"

	"github.com/Ms-Rodri1k/Projeto-integrador/internal/shop"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/view"
)

// Marker kinds understood by the binder.
const (
	MarkAddToCart     = "add-to-cart"
	MarkQtyInc        = "qty-inc"
	MarkQtyDec        = "qty-dec"
	MarkRemove        = "remove"
	MarkCheckout      = "checkout"
	MarkProfileSubmit = "profile-submit"
	MarkConfirm       = "confirm"
	MarkAdvance       = "advance"
	MarkContactSend   = "contact-send"
	MarkLogout        = "logout"
)

// Event is one user interaction: the submitted form fields, if any.
type Event struct {
	Fields map[string]string
}

func (e Event) Field(name string) string {
	return e.Fields[name]
}

type Handler func(Event)

// Bindings maps the marker ids of one render to their handlers.
type Bindings map[string]Handler

type Binder struct {
	factories map[string]func(m view.Marker) Handler
}

func NewBinder(a *Actions) *Binder {
	return &Binder{factories: map[string]func(view.Marker) Handler{
		MarkAddToCart: func(m view.Marker) Handler {
			return func(Event) { a.AddToCart(m.Value) }
		},
		MarkQtyInc: func(m view.Marker) Handler {
			return func(Event) { a.ChangeQty(m.Value, 1) }
		},
		MarkQtyDec: func(m view.Marker) Handler {
			return func(Event) { a.ChangeQty(m.Value, -1) }
		},
		MarkRemove: func(m view.Marker) Handler {
			return func(Event) { a.RemoveFromCart(m.Value) }
		},
		MarkCheckout: func(view.Marker) Handler {
			return func(Event) { a.EnsureUser() }
		},
		MarkProfileSubmit: func(view.Marker) Handler {
			return func(ev Event) {
				a.Login(shop.User{
					Name:     ev.Field("name"),
					Phone:    ev.Field("phone"),
					Address:  ev.Field("address"),
					Password: ev.Field("password"),
				})
			}
		},
		MarkConfirm: func(view.Marker) Handler {
			return func(ev Event) {
				a.UpdateAddress(ev.Field("address"))
				p, ok := shop.ParsePayment(strings.TrimSpace(ev.Field("payment")))
				if !ok {
					p = shop.PaymentPix
				}
				a.ConfirmOrder(p)
			}
		},
		MarkAdvance: func(view.Marker) Handler {
			return func(Event) { a.AdvanceStatus() }
		},
		MarkContactSend: func(view.Marker) Handler {
			return func(ev Event) {
				a.ContactSend(ContactDraft{
					Name:    ev.Field("name"),
					Phone:   ev.Field("phone"),
					Message: ev.Field("message"),
				})
			}
		},
		MarkLogout: func(view.Marker) Handler {
			return func(Event) { a.Logout() }
		},
	}}
}

// Bind gives every known marker in a freshly rendered tree an id unique to this
// render and returns exactly one handler per marker. Markers of unknown kinds
// stay unbound and inert.
func (b *Binder) Bind(root *view.Node, render uint64) Bindings {
	out := Bindings{}
	for _, m := range view.Markers(root) {
		f, ok := b.factories[m.Kind]
		if !ok {
			continue
		}
		m.ID = fmt.Sprintf("%s-%d-%d", m.Kind, render, len(out))
		out[m.ID] = f(*m)
	}
	return out
}
