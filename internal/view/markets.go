package view

import (
	"PolyXBets/internal/domain/models"
	"PolyXBets/internal/domain/service"
	"PolyXBets/internal/services/sparkline"
	applogger "PolyXBets/pkg/logger"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Markets is the live markets grid. Card i draws fixture i.
type Markets struct {
	pub      service.Publisher
	markets  []models.Market
	fixtures []models.MarketSeries
	charts   *sparkline.Renderer
	log      *applogger.Logger
}

func NewMarkets(pub service.Publisher, markets []models.Market, fixtures []models.MarketSeries, charts *sparkline.Renderer, log *applogger.Logger) *Markets {
	if log == nil {
		log = applogger.Nop()
	}
	return &Markets{pub: pub, markets: markets, fixtures: fixtures, charts: charts, log: log}
}

func (m *Markets) Actions() Actions {
	a := make(Actions, len(m.markets))
	for i, mk := range m.markets {
		msg := "Trading " + mk.ShortTitle() + " - Coming soon!"
		a[TradeAction(i)] = func() { m.pub.Publish(msg) }
	}
	return a
}

func (m *Markets) Render() g.Node {
	cards := make([]g.Node, 0, len(m.markets))
	for i, mk := range m.markets {
		cards = append(cards, m.card(i, mk))
	}
	return Section(
		ID("markets"),
		Class("py-32 px-6 relative"),
		Div(Class("text-center mb-16"),
			H3(Class("text-5xl md:text-6xl font-black text-white mb-6"), gradientTitle("Live Markets")),
			P(Class("text-xl text-gray-400 max-w-2xl mx-auto"), g.Text("Real-time prediction markets with live pricing and instant settlements")),
		),
		Div(Class("max-w-7xl mx-auto grid lg:grid-cols-3 gap-8"), g.Group(cards)),
	)
}

func (m *Markets) card(i int, mk models.Market) g.Node {
	badge := "text-xs px-2 py-1 rounded-full bg-red-500/20 text-red-400"
	if mk.Rising() {
		badge = "text-xs px-2 py-1 rounded-full bg-green-500/20 text-green-400"
	}
	return Div(
		Class("h-full p-8 rounded-3xl bg-white/5 border border-white/10"),
		Div(Class("flex items-start justify-between mb-4"),
			H4(Class("text-xl font-bold text-white leading-tight flex-1 mr-4"), g.Text(mk.Title)),
			Span(Class(badge), g.Text(mk.Change)),
		),
		Div(Class("text-sm text-gray-400 mb-4"),
			g.Text("Volume: "),
			Span(Class("text-white font-semibold"), g.Text(mk.Volume)),
		),
		Div(Class("space-y-6"),
			m.chart(i, mk),
			Div(Class("flex items-center justify-between p-4 bg-white/5 rounded-2xl"),
				Span(Class("text-gray-300 font-medium"), g.Text("Probability")),
				Span(Class("text-2xl font-black text-white"), g.Text(mk.Percent())),
			),
			actionButton(TradeAction(i), "w-full bg-gradient-to-r from-purple-600 via-blue-600 to-cyan-500 px-6 py-3 rounded-xl",
				icon("trending-up", "size-4 mr-2"), g.Text("Trade Now"),
			),
		),
	)
}

// chart renders the fixture of card i. A failed render leaves an empty
// placeholder of the same height.
func (m *Markets) chart(i int, mk models.Market) g.Node {
	placeholder := Div(Class("mini-chart h-[120px]"))
	if i >= len(m.fixtures) || m.charts == nil {
		return placeholder
	}
	s := m.fixtures[i]
	svg, err := m.charts.Render(s, mk.Color)
	if err != nil {
		m.log.Warn("mini chart render failed", applogger.Int("market", i), applogger.Error(err))
		return placeholder
	}
	return Div(
		Class("mini-chart h-[120px]"),
		Title(sparkline.Tooltip(s.Last())),
		g.Raw(string(svg)),
	)
}
