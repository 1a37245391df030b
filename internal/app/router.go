package app

import "strings"

const (
	RouteHome     = "home"
	RouteMenu     = "menu"
	RouteCart     = "cart"
	RouteLogin    = "login"
	RouteCheckout = "checkout"
	RouteOrder    = "order"
	RouteSupport  = "support"
)

type Router struct {
	state  *State
	render func()
}

// SetRoute stores the route and renders, even when it did not change.
func (r *Router) SetRoute(name string) {
	if name == "" {
		name = RouteHome
	}
	r.state.Route = name
	r.render()
}

// OnNavigate handles a location change ("#cart", "/cart", "cart" or "").
func (r *Router) OnNavigate(location string) {
	r.SetRoute(RouteFromLocation(location))
}

// RouteFromLocation strips the delimiter and anything past the route name.
// An empty location maps to home; unknown names are kept and left to the
// view registry's fallback.
func RouteFromLocation(location string) string {
	loc := strings.TrimLeft(strings.TrimSpace(location), "#/")
	if i := strings.IndexAny(loc, "/?#"); i >= 0 {
		loc = loc[:i]
	}
	if loc == "" {
		return RouteHome
	}
	return loc
}
