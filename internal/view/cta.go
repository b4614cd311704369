package view

import (
	"PolyXBets/internal/domain/service"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CTA is the closing call to action.
type CTA struct {
	pub service.Publisher
}

func NewCTA(pub service.Publisher) *CTA { return &CTA{pub: pub} }

func (c *CTA) Actions() Actions {
	return Actions{
		ActionWaitlist: func() { c.pub.Publish("Welcome to the waitlist!") },
	}
}

func (c *CTA) Render() g.Node {
	return Section(
		Class("py-32 px-6 relative overflow-hidden bg-gradient-to-br from-blue-900 via-purple-900 to-cyan-900"),
		Div(Class("relative z-10 text-center max-w-5xl mx-auto"),
			H3(Class("text-5xl md:text-7xl font-black text-white mb-8"),
				g.Text("Ready to Shape "),
				Br(),
				Span(Class("bg-gradient-to-r from-blue-400 via-cyan-300 to-purple-400 bg-clip-text text-transparent"), g.Text("The Future?")),
			),
			P(Class("text-xl md:text-2xl text-gray-300 max-w-3xl mx-auto mb-12 leading-relaxed font-medium"),
				g.Text("Join thousands of forward-thinking traders using PolyXBets to predict and profit from tomorrow's events."),
			),
			Div(Class("flex flex-col sm:flex-row gap-6 justify-center items-center"),
				actionButton(ActionWaitlist, "bg-gradient-to-r from-purple-600 via-blue-600 to-cyan-500 px-12 py-5 text-xl rounded-2xl",
					icon("sparkles", "size-5 mr-2"),
					g.Text("Join the Revolution"),
					icon("arrow-right", "size-5 ml-2"),
				),
			),
		),
	)
}
