package httpx

import (
	"io"
	"net/url"
	"strconv"

	"github.com/Ms-Rodri1k/Projeto-integrador/internal/app"
	"github.com/Ms-Rodri1k/Projeto-integrador/internal/view"
)

func markerAction(m view.Marker) string {
	return "/events/" + url.PathEscape(m.ID)
}

func navLink(route, label string) *view.Node {
	return view.El("a", view.Text(label)).Set("href", "/"+route)
}

// layout wraps the routed content in the chrome shared by every page.
func layout(f app.Frame, year int) *view.Node {
	var notice *view.Node
	if f.Notice != nil {
		class := "notice"
		if f.Notice.Blocking {
			class = "notice notice-blocking"
		}
		notice = view.El("dialog", view.Text(f.Notice.Message)).
			Set("open", "").Class(class).ID("notice")
	}

	header := view.El("header",
		view.El("a", view.Text("Peixaria")).Set("href", "/").Class("brand"),
		view.El("nav",
			navLink(app.RouteHome, "Início"),
			navLink(app.RouteMenu, "Cardápio"),
			view.El("a",
				view.Text("Carrinho "),
				view.El("span", view.Text(strconv.Itoa(f.Chrome.CartCount))).Class("badge").ID("cart-count"),
			).Set("href", "/"+app.RouteCart),
			navLink(app.RouteCheckout, "Finalização"),
			navLink(app.RouteOrder, "Acompanhar"),
			navLink(app.RouteSupport, "Contato"),
			view.El("a", view.Text(f.Chrome.Greeting)).Set("href", "/"+app.RouteLogin).ID("user-link"),
		).Class("nav"),
	).Class("site-header")

	return view.El("html",
		view.El("head",
			view.El("meta").Set("charset", "utf-8"),
			view.El("meta").Set("name", "viewport").Set("content", "width=device-width, initial-scale=1"),
			view.El("title", view.Text("Peixaria")),
			view.El("link").Set("rel", "icon").Set("href", "data:,"),
			view.El("link").Set("rel", "stylesheet").Set("href", "/static/styles.css"),
		),
		view.El("body",
			header,
			notice,
			view.El("main", f.Root).ID("app").Set("data-route", f.Route),
			view.El("footer",
				view.Text("© "),
				view.El("span", view.Text(strconv.Itoa(year))).ID("year"),
				view.Text(" Peixaria"),
			),
		),
	).Set("lang", "pt-BR")
}

func writePage(w io.Writer, f app.Frame, year int) error {
	if _, err := io.WriteString(w, "<!doctype html>\n"); err != nil {
		return err
	}
	return view.WriteHTML(w, layout(f, year), markerAction)
}
