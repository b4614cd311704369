package view

import (
	"PolyXBets/internal/domain/models"
	"PolyXBets/internal/domain/service"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type Pricing struct {
	pub   service.Publisher
	tiers []models.PricingTier
}

func NewPricing(pub service.Publisher, tiers []models.PricingTier) *Pricing {
	return &Pricing{pub: pub, tiers: tiers}
}

func (p *Pricing) Actions() Actions {
	a := make(Actions, len(p.tiers))
	for i, t := range p.tiers {
		msg := t.Name + " plan selected - Coming soon!"
		a[PlanAction(i)] = func() { p.pub.Publish(msg) }
	}
	return a
}

func (p *Pricing) Render() g.Node {
	cols := make([]g.Node, 0, len(p.tiers))
	for i, t := range p.tiers {
		cols = append(cols, p.tier(i, t))
	}
	return Section(
		ID("pricing"),
		Class("py-32 px-6 relative"),
		Div(Class("max-w-7xl mx-auto"),
			Div(Class("text-center mb-20"),
				H3(Class("text-5xl md:text-6xl font-black text-white mb-6"), gradientTitle("Choose Your Plan")),
			),
			Div(Class("grid lg:grid-cols-3 gap-8"), g.Group(cols)),
		),
	)
}

func (p *Pricing) tier(i int, t models.PricingTier) g.Node {
	card := "p-8 h-full rounded-3xl bg-white/5 border border-white/10"
	button := "w-full bg-white/10 border border-white/20 px-8 py-4 text-lg rounded-2xl"
	if t.Popular {
		card = "p-8 h-full rounded-3xl bg-gradient-to-br from-blue-900/20 to-purple-900/20 border border-blue-500/30 ring-2 ring-blue-500/50"
		button = "w-full bg-gradient-to-r from-purple-600 via-blue-600 to-cyan-500 px-8 py-4 text-lg rounded-2xl"
	}
	return Div(Class("relative"),
		g.If(t.Popular,
			Div(Class("absolute -top-4 left-1/2 -translate-x-1/2 z-10"),
				Span(Class("bg-gradient-to-r from-blue-500 to-cyan-400 text-white px-6 py-2 rounded-full text-sm font-bold"), g.Text("Most Popular")),
			),
		),
		Div(Class(card),
			Div(Class("flex items-center gap-4 mb-6"),
				Div(Class("p-4 rounded-2xl bg-gradient-to-r from-blue-600 to-cyan-500"), icon(t.Icon.String(), "size-7 text-white")),
				H4(Class("text-2xl font-bold text-white"), g.Text(t.Name)),
			),
			Div(Class("mb-8"),
				Span(Class("text-4xl font-black text-white"), g.Text(t.Price)),
				Span(Class("text-gray-400 font-medium ml-2"), g.Text(t.Period)),
			),
			Div(Class("space-y-6"),
				Ul(Class("space-y-4"),
					g.Map(t.Feats, func(f string) g.Node {
						return Li(Class("flex items-center gap-3 text-gray-300"),
							Div(Class("w-2 h-2 bg-gradient-to-r from-blue-500 to-cyan-400 rounded-full")),
							Span(Class("font-medium"), g.Text(f)),
						)
					}),
				),
				actionButton(PlanAction(i), button, g.Text(t.CallToAction())),
			),
		),
	)
}
