package view

import (
	"PolyXBets/internal/domain/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Intro renders the splash screen for the given beat.
func Intro(logos models.Logos, phase models.IntroPhase) g.Node {
	combined := phase == models.IntroPhaseCombined
	return Div(
		ID("intro"),
		Class("flex flex-col items-center justify-center h-screen gap-8"),
		g.Attr("data-phase", phase.String()),
		g.If(!combined,
			Div(Class("flex gap-32 items-center"),
				Img(Src(logos.X), Alt("X"), Class("w-32 h-32 object-contain")),
				Img(Src(logos.Poly), Alt("Polymarket"), Class("w-32 h-32 object-contain")),
			),
		),
		g.If(combined,
			Img(Src(logos.Combined), Alt("PolyXBets"), Class("w-48 h-48 object-contain")),
		),
		Div(
			Class(titleClass(combined)),
			H1(Class("text-6xl font-black bg-gradient-to-r from-blue-400 via-cyan-300 to-blue-500 bg-clip-text text-transparent"), g.Text("PolyXBets")),
			P(Class("text-xl text-gray-300 mt-4 font-medium"), g.Text("The Future of Prediction Markets")),
		),
	)
}

func titleClass(visible bool) string {
	if visible {
		return "text-center transition-opacity duration-700"
	}
	return "text-center transition-opacity duration-700 opacity-0"
}
