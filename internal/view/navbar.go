package view

import (
	"strconv"

	"PolyXBets/internal/domain/models"
	"PolyXBets/internal/domain/service"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Navbar is the fixed header of the main site.
type Navbar struct {
	pub   service.Publisher
	logos models.Logos
	links []models.NavLink
}

func NewNavbar(pub service.Publisher, logos models.Logos, links []models.NavLink) *Navbar {
	return &Navbar{pub: pub, logos: logos, links: links}
}

func (n *Navbar) Actions() Actions {
	return Actions{
		ActionSignIn: func() { n.pub.Publish("Coming soon!") },
	}
}

// NavbarClass is the header class for the scroll state.
func NavbarClass(scrolled bool) string {
	if scrolled {
		return "fixed top-0 z-50 w-full py-4 px-6 transition-all duration-500 bg-black/80 backdrop-blur-2xl border-b border-white/10 shadow-2xl"
	}
	return "fixed top-0 z-50 w-full py-4 px-6 transition-all duration-500 bg-transparent"
}

func (n *Navbar) Render(scrolled bool) g.Node {
	return Header(
		ID(NavbarID),
		Class(NavbarClass(scrolled)),
		g.Attr("data-scrolled", strconv.FormatBool(scrolled)),
		Div(Class("flex items-center justify-between max-w-7xl mx-auto"),
			A(Href("#hero"), Class("flex items-center gap-3"),
				Img(Src(n.logos.Combined), Alt("logo"), Width("32"), Height("32")),
				Span(Class("font-black text-xl"), gradientTitle("PolyXBets")),
			),
			Nav(Class("hidden md:flex items-center gap-8 text-sm font-medium"),
				g.Map(n.links, func(l models.NavLink) g.Node {
					return A(Href(l.Href), Class("text-gray-300 hover:text-blue-400 py-2"), g.Text(l.Label))
				}),
				actionButton(ActionSignIn, "bg-white/10 border border-white/20 px-4 py-2 text-sm rounded-xl", g.Text("Sign In")),
			),
		),
	)
}
