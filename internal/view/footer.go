package view

import (
	"fmt"

	"PolyXBets/internal/domain/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// SiteFooter renders the page footer stamped with year.
func SiteFooter(logos models.Logos, year int) g.Node {
	return Footer(
		Class("bg-black border-t border-gray-800/50 py-16 px-6"),
		Div(Class("max-w-7xl mx-auto text-center"),
			Div(Class("flex items-center justify-center gap-3 mb-6"),
				Img(Src(logos.Combined), Alt("logo"), Width("40"), Height("40")),
				Span(Class("font-black text-2xl"), gradientTitle("PolyXBets")),
			),
			P(Class("text-gray-500 text-sm"),
				g.Text(fmt.Sprintf("© %d PolyXBets. All rights reserved. Built with ❤️ for traders.", year)),
			),
		),
	)
}
