package view

import (
	"PolyXBets/internal/domain/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Features renders the capability grid.
func Features(features []models.Feature) g.Node {
	return Section(
		ID("features"),
		Class("py-32 px-6 relative"),
		Div(Class("max-w-7xl mx-auto"),
			Div(Class("text-center mb-20"),
				H3(Class("text-5xl md:text-6xl font-black text-white mb-6"), gradientTitle("Why PolyXBets?")),
			),
			Div(Class("grid lg:grid-cols-2 gap-12"),
				g.Map(features, func(f models.Feature) g.Node {
					return Div(Class("p-8 h-full rounded-3xl bg-white/5 border border-white/10"),
						Div(Class("flex items-center gap-4 mb-6"),
							Div(Class("p-4 rounded-2xl bg-gradient-to-r "+f.Color),
								icon(f.Icon.String(), "size-8 text-white"),
							),
							H4(Class("text-2xl font-bold text-white"), g.Text(f.Title)),
						),
						P(Class("text-gray-300 text-lg leading-relaxed"), g.Text(f.Desc)),
					)
				}),
			),
		),
	)
}
