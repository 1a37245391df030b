package app

import (
	"strconv"

	"github.com/Ms-Rodri1k/Projeto-integrador/internal/shop"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/view"
)

// ViewFunc builds the content of one route. It only reads the snapshot.
type ViewFunc func(Snapshot) *view.Node

type Registry struct {
	views    map[string]ViewFunc
	fallback string
}

// NewRegistry returns the storefront routes with home as the fallback.
func NewRegistry() *Registry {
	r := &Registry{views: map[string]ViewFunc{}, fallback: RouteHome}
	r.Register(RouteHome, viewHome)
	r.Register(RouteMenu, viewMenu)
	r.Register(RouteCart, viewCart)
	r.Register(RouteLogin, viewLogin)
	r.Register(RouteCheckout, viewCheckout)
	r.Register(RouteOrder, viewOrder)
	r.Register(RouteSupport, viewSupport)
	return r
}

func (r *Registry) Register(route string, fn ViewFunc) {
	r.views[route] = fn
}

func (r *Registry) Lookup(route string) ViewFunc {
	if fn, ok := r.views[route]; ok {
		return fn
	}
	return r.views[r.fallback]
}

func link(route, label, class string) *view.Node {
	return view.El("a", view.Text(label)).Set("href", "/"+route).Class(class)
}

func title(s string) *view.Node {
	return view.El("h2", view.Text(s)).Class("section-title")
}

func price(v shop.Product) *view.Node {
	return view.El("span", view.Text(shop.FormatBRL(v.Price))).Class("price")
}

func img(src, alt string) *view.Node {
	return view.El("img").Set("src", src).Set("alt", alt)
}

func productCard(p shop.Product, btnClass string) *view.Node {
	return view.El("article",
		view.El("div", img(p.Image, p.Name)).Class("card-media"),
		view.El("div",
			view.El("div", view.El("span", view.Text(p.Name)), price(p)).Class("card-title"),
			view.El("div",
				view.El("button", view.Text("Adicionar ao carrinho")).Class(btnClass).On(MarkAddToCart, p.ID),
			).Class("actions"),
		).Class("card-body"),
	).Class("card")
}

func totalRow(s Snapshot) *view.Node {
	return view.El("div",
		view.El("span", view.Text("Total")),
		view.El("span", view.Text(shop.FormatBRL(s.Cart.Total()))).ID("total"),
	).Class("total")
}

func field(label string, input *view.Node) *view.Node {
	return view.El("div", view.El("label", view.Text(label)), input).Class("field")
}

func input(name, value string) *view.Node {
	return view.El("input").Set("name", name).Set("value", value)
}

func viewHome(s Snapshot) *view.Node {
	var logout, quickLogout *view.Node
	account := "Cadastro/Login"
	if s.User != nil {
		logout = view.El("button", view.Text("Sair")).Class("btn btn-danger").On(MarkLogout, "")
		quickLogout = view.El("button", view.Text("Sair")).Class("quick-card").On(MarkLogout, "")
		account = "Minha conta"
	}

	var daily, hero *view.Node
	if p := s.Highlighted; p.ID != "" {
		daily = view.Group(
			view.El("div", view.Text("Peixe do dia")).Class("section-title"),
			productCard(p, "btn btn-accent").ID("highlight"),
		)
		hero = view.El("div", img(p.Image, "Peixe do dia")).Class("hero-image")
	}

	return view.El("section",
		view.El("div",
			view.El("h1", view.Text("Frescor do mar na sua casa")).Class("hero-title"),
			view.El("p", view.Text("Peixes selecionados, entrega rápida e qualidade premium.")).Class("hero-sub"),
			view.El("div",
				link(RouteMenu, "Ver cardápio", "btn btn-primary"),
				link(RouteOrder, "Acompanhar pedido", "btn btn-ghost"),
				logout,
			).Class("actions"),
			daily,
			view.El("div", view.Text("Acesso rápido")).Class("section-title"),
			view.El("div",
				link(RouteMenu, "Cardápio", "quick-card"),
				link(RouteCart, "Carrinho", "quick-card"),
				link(RouteLogin, account, "quick-card"),
				link(RouteCheckout, "Finalização", "quick-card"),
				link(RouteOrder, "Acompanhar", "quick-card"),
				link(RouteSupport, "Contato", "quick-card"),
				quickLogout,
			).Class("quick-links"),
		).Class("hero-content"),
		hero,
	).Class("hero")
}

func viewMenu(s Snapshot) *view.Node {
	grid := view.El("div").Class("grid")
	for _, p := range s.Catalog {
		grid.Append(productCard(p, "btn btn-primary"))
	}
	return view.Group(title("Cardápio"), grid)
}

func viewCart(s Snapshot) *view.Node {
	if len(s.Cart) == 0 {
		return view.Group(
			title("Carrinho"),
			view.El("div",
				view.Text("Seu carrinho está vazio. "),
				link(RouteMenu, "Ver cardápio", "btn btn-primary"),
			).Class("card-body").ID("cart-empty"),
		)
	}

	list := view.El("div").Class("cart-list")
	for _, it := range s.Cart {
		list.Append(view.El("div",
			view.El("div", img(it.Image, it.Name)).Class("cart-thumb"),
			view.El("div",
				view.El("div", view.Text(it.Name)).Class("cart-name"),
				view.El("div", view.Text(shop.FormatBRL(it.Price))).Class("cart-price"),
			),
			view.El("div",
				view.El("div",
					view.El("button", view.Text("−")).On(MarkQtyDec, it.ID),
					view.El("span", view.Text(strconv.Itoa(it.Qty))).Class("qty-value"),
					view.El("button", view.Text("+")).On(MarkQtyInc, it.ID),
				).Class("qty"),
				view.El("button", view.Text("Remover")).Class("btn btn-danger").On(MarkRemove, it.ID),
			).Class("cart-controls"),
		).Class("cart-item").Set("data-id", it.ID))
	}

	return view.Group(
		title("Carrinho"),
		list,
		totalRow(s),
		view.El("div",
			view.El("button", view.Text("Finalizar pedido")).Class("btn btn-accent").On(MarkCheckout, ""),
		).Class("actions"),
	)
}

func viewLogin(s Snapshot) *view.Node {
	u := shop.User{}
	if s.User != nil {
		u = *s.User
	}
	return view.Group(
		title("Cadastro / Login"),
		view.El("form",
			field("Nome", input("name", u.Name).Set("required", "")),
			field("Telefone", input("phone", u.Phone).Set("required", "").Set("inputmode", "tel")),
			field("Endereço", input("address", u.Address).Set("required", "")),
			field("Senha", input("password", u.Password).Set("type", "password").Set("required", "")),
			view.El("div",
				view.El("button", view.Text("Salvar e continuar")).Class("btn btn-primary").Set("type", "submit"),
			).Class("actions"),
		).Class("form").ID("auth-form").On(MarkProfileSubmit, ""),
	)
}

func viewCheckout(s Snapshot) *view.Node {
	if s.User == nil {
		return view.El("div",
			view.Text("Faça login para continuar. "),
			link(RouteLogin, "Cadastro / Login", "btn btn-primary"),
		).Class("card-body").ID("login-required")
	}

	radios := view.El("div").Class("radio")
	for i, p := range shop.Payments {
		in := view.El("input").Set("type", "radio").Set("name", "payment").Set("value", string(p))
		if i == 0 {
			in.Set("checked", "")
		}
		radios.Append(view.El("label", in, view.Text(" "+p.Label())))
	}

	return view.Group(
		title("Finalização do pedido"),
		view.El("form",
			field("Endereço", input("address", s.User.Address).ID("address")),
			field("Pagamento", radios),
			totalRow(s),
			view.El("div",
				view.El("button", view.Text("Confirmar pedido")).Class("btn btn-accent").Set("type", "submit"),
			).Class("actions"),
		).Class("form").ID("checkout-form").On(MarkConfirm, ""),
	)
}

func viewOrder(s Snapshot) *view.Node {
	if s.Order == nil {
		return view.El("div",
			view.Text("Nenhum pedido ativo. "),
			link(RouteMenu, "Fazer pedido", "btn btn-primary"),
		).Class("card-body").ID("no-order")
	}
	o := s.Order

	steps := view.El("div").Class("status-steps")
	for _, st := range shop.Steps {
		class := "step"
		if st == o.Status {
			class = "step active"
		}
		steps.Append(view.El("div", view.Text(st.Label())).Class(class).Set("data-status", string(st)))
	}

	advance := view.El("button", view.Text("Avançar status")).Class("btn btn-primary").ID("advance").On(MarkAdvance, "")
	if o.Status.IsTerminal() {
		advance.Set("disabled", "")
	}

	return view.Group(
		title("Acompanhar pedido "+o.ID),
		steps,
		view.El("div",
			view.El("div", view.Text("Pagamento: "+o.Payment.Label())),
			view.El("div", view.Text("Entrega em: "+o.Address)),
			view.El("div", view.Text("Total: "+shop.FormatBRL(o.Total))).ID("order-total"),
		).Class("order-summary"),
		view.El("div", advance).Class("actions"),
	)
}

func viewSupport(s Snapshot) *view.Node {
	c := s.Contact
	return view.Group(
		title("Contato e suporte"),
		view.El("form",
			view.El("div", view.Text("Horário de funcionamento: Seg–Sáb 10h–22h • Domingo 12h–20h")),
			field("Nome", input("name", c.Name).ID("c-name")),
			field("Telefone", input("phone", c.Phone).ID("c-phone").Set("inputmode", "tel")),
			field("Mensagem", view.El("textarea", view.Text(c.Message)).Set("name", "message").ID("c-message")),
			view.El("div",
				view.El("button", view.Text("Enviar")).Class("btn btn-primary").Set("type", "submit"),
			).Class("actions"),
		).Class("form").ID("contact-form").On(MarkContactSend, ""),
	)
}
