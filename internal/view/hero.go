package view

import (
	"PolyXBets/internal/domain/service"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Hero struct {
	pub service.Publisher
}

func NewHero(pub service.Publisher) *Hero { return &Hero{pub: pub} }

func (h *Hero) Actions() Actions {
	return Actions{
		ActionEarlyAccess: func() { h.pub.Publish("Early access launching soon!") },
		ActionLearnMore:   func() { h.pub.Publish("Documentation coming soon!") },
	}
}

func (h *Hero) Render() g.Node {
	return Section(
		ID("hero"),
		Class("relative flex flex-col items-center justify-center text-center min-h-screen px-4"),
		Div(Class("relative z-10 max-w-6xl mx-auto"),
			Span(Class("inline-flex items-center gap-2 px-4 py-2 border border-blue-400/30 rounded-full text-blue-300 font-medium mb-6"),
				icon("sparkles", "size-4"),
				g.Text("Revolutionary Prediction Markets"),
			),
			H1(Class("text-6xl md:text-8xl font-black leading-tight mb-8"),
				Span(Class("bg-gradient-to-r from-blue-400 via-cyan-300 to-blue-500 bg-clip-text text-transparent"), g.Text("Trade the Future")),
				Br(),
				Span(Class("text-white"), g.Text("Inside X")),
			),
			P(Class("text-xl md:text-2xl text-gray-300 max-w-3xl mx-auto mb-12 leading-relaxed font-medium"),
				g.Text("Experience the next generation of prediction markets with seamless X integration, real-time trading, and unprecedented transparency."),
			),
			Div(Class("flex flex-col sm:flex-row gap-6 justify-center items-center"),
				actionButton(ActionEarlyAccess, "bg-gradient-to-r from-blue-600 to-cyan-500 px-12 py-5 text-xl rounded-2xl",
					icon("zap", "size-5 mr-2"), g.Text("Get Early Access"),
				),
				actionButton(ActionLearnMore, "bg-white/10 border border-white/20 px-12 py-5 text-xl rounded-2xl",
					g.Text("Learn More"),
				),
			),
		),
	)
}
