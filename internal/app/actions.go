package app

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Ms-Rodri1k/Projeto-integrador/internal/shop"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/store"
)

// OrderEvents receives order changes after they are persisted. Implementations
// must not block; a nil OrderEvents is allowed.
type OrderEvents interface {
	OrderConfirmed(o shop.Order)
	OrderStatusAdvanced(o shop.Order, from shop.Status)
}

const (
	msgContactMissing = "Preencha todos os campos"
	msgContactSent    = "Mensagem registrada. Obrigado pelo contato!"
)

// Actions holds every state mutation. A failed precondition leaves state and
// storage untouched.
type Actions struct {
	state    *State
	store    *store.Store
	catalog  shop.Catalog
	navigate func(route string)
	render   func()
	chrome   func()
	events   OrderEvents
	now      func() time.Time
	log      *zap.Logger
}

func (a *Actions) AddToCart(id string) {
	p, ok := a.catalog.Find(id)
	if !ok {
		return
	}
	a.state.Cart = a.state.Cart.Add(p)
	a.store.Write(store.KeyCart, a.state.Cart)
	a.chrome()
}

func (a *Actions) RemoveFromCart(id string) {
	a.state.Cart = a.state.Cart.Remove(id)
	a.store.Write(store.KeyCart, a.state.Cart)
	a.render()
}

func (a *Actions) ChangeQty(id string, delta int) {
	cart, ok := a.state.Cart.ChangeQty(id, delta)
	if !ok {
		return
	}
	a.state.Cart = cart
	a.store.Write(store.KeyCart, a.state.Cart)
	a.render()
}

func (a *Actions) EnsureUser() {
	if a.state.User == nil {
		a.navigate(RouteLogin)
		return
	}
	a.navigate(RouteCheckout)
}

// UpdateAddress applies the checkout address override. Blank overrides are ignored.
func (a *Actions) UpdateAddress(address string) {
	address = strings.TrimSpace(address)
	if address == "" || a.state.User == nil {
		return
	}
	a.state.User.Address = address
	a.store.Write(store.KeyUser, a.state.User)
}

// ConfirmOrder replaces any previous order with a snapshot of the cart. Only
// one order is ever kept.
func (a *Actions) ConfirmOrder(payment shop.Payment) {
	if a.state.User == nil || len(a.state.Cart) == 0 {
		return
	}
	items := a.state.Cart.Clone()
	order := &shop.Order{
		ID:      "PD" + strconv.FormatInt(a.now().UnixMilli(), 10),
		Status:  shop.StatusReceived,
		Payment: payment,
		Items:   []shop.CartItem(items),
		Total:   items.Total(),
		Address: a.state.User.Address,
	}
	a.state.Order = order
	a.store.Write(store.KeyOrder, order)

	a.state.Cart = shop.Cart{}
	a.store.Write(store.KeyCart, a.state.Cart)

	a.log.Info("order confirmed",
		zap.String("order_id", order.ID),
		zap.String("payment", string(payment)),
		zap.String("total", order.Total.StringFixed(2)),
	)
	if a.events != nil {
		a.events.OrderConfirmed(*order)
	}
	a.navigate(RouteOrder)
}

func (a *Actions) AdvanceStatus() {
	o := a.state.Order
	if o == nil {
		return
	}
	next, ok := o.Status.Next()
	if !ok {
		return
	}
	from := o.Status
	o.Status = next
	a.store.Write(store.KeyOrder, o)

	a.log.Info("order status advanced", zap.String("order_id", o.ID), zap.Stringer("from", from), zap.Stringer("to", next))
	if a.events != nil {
		a.events.OrderStatusAdvanced(*o, from)
	}
	a.render()
}

// Login replaces the user when every field is filled in. The password is kept
// exactly as typed.
func (a *Actions) Login(u shop.User) {
	u.Name = strings.TrimSpace(u.Name)
	u.Phone = strings.TrimSpace(u.Phone)
	u.Address = strings.TrimSpace(u.Address)
	if u.Name == "" || u.Phone == "" || u.Address == "" || strings.TrimSpace(u.Password) == "" {
		return
	}
	a.state.User = &u
	a.store.Write(store.KeyUser, a.state.User)
	a.navigate(RouteCheckout)
}

func (a *Actions) Logout() {
	a.state.User = nil
	a.store.Write(store.KeyUser, nil)
	a.navigate(RouteHome)
}

// ContactSend acknowledges a complete contact form and clears it. Nothing is
// stored or sent anywhere.
func (a *Actions) ContactSend(d ContactDraft) {
	if strings.TrimSpace(d.Name) == "" || strings.TrimSpace(d.Phone) == "" || strings.TrimSpace(d.Message) == "" {
		a.state.Contact = d
		a.state.Notice = &Notice{Message: msgContactMissing, Blocking: true}
		a.render()
		return
	}
	a.state.Contact = ContactDraft{}
	a.state.Notice = &Notice{Message: msgContactSent}
	a.render()
}
