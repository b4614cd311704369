package view

import (
	"PolyXBets/internal/domain/models"
	"PolyXBets/internal/domain/service"
	"PolyXBets/internal/services/sparkline"
	applogger "PolyXBets/pkg/logger"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Page is one page view: the sections bound to a toast publisher and
// the market fixtures drawn at mount.
type Page struct {
	catalog models.Catalog
	year    int

	navbar  *Navbar
	hero    *Hero
	markets *Markets
	pricing *Pricing
	cta     *CTA
	actions Actions
}

// PageOptions carries what every page view shares.
type PageOptions struct {
	Catalog  models.Catalog
	Fixtures []models.MarketSeries
	Charts   *sparkline.Renderer
	Year     int
	Logger   *applogger.Logger
}

// NewPage binds the interactive sections to pub.
func NewPage(pub service.Publisher, opts PageOptions) *Page {
	cat := opts.Catalog
	p := &Page{
		catalog: cat,
		year:    opts.Year,
		navbar:  NewNavbar(pub, cat.Logos, cat.NavLinks),
		hero:    NewHero(pub),
		markets: NewMarkets(pub, cat.Markets, opts.Fixtures, opts.Charts, opts.Logger),
		pricing: NewPricing(pub, cat.Tiers),
		cta:     NewCTA(pub),
		actions: Actions{},
	}
	p.actions.merge(p.navbar.Actions())
	p.actions.merge(p.hero.Actions())
	p.actions.merge(p.markets.Actions())
	p.actions.merge(p.pricing.Actions())
	p.actions.merge(p.cta.Actions())
	return p
}

// Action returns the handler registered for id.
func (p *Page) Action(id string) (func(), bool) {
	fn, ok := p.actions[id]
	return fn, ok
}

// ActionIDs lists every registered action id.
func (p *Page) ActionIDs() []string {
	ids := make([]string, 0, len(p.actions))
	for id := range p.actions {
		ids = append(ids, id)
	}
	return ids
}

// Root renders the content of the root slot: the splash screen during
// the intro, the main site afterwards.
func (p *Page) Root(s models.ViewState) g.Node {
	if s.Load == models.LoadPhaseIntro {
		return Intro(p.catalog.Logos, s.Intro)
	}
	return Main(
		p.navbar.Render(s.Scrolled),
		p.hero.Render(),
		p.markets.Render(),
		Features(p.catalog.Features),
		p.pricing.Render(),
		p.cta.Render(),
		SiteFooter(p.catalog.Logos, p.year),
	)
}

// Body renders both patchable slots for s.
func (p *Page) Body(s models.ViewState) g.Node {
	return g.Group([]g.Node{
		Div(ID(RootID), p.Root(s)),
		Div(ID(ToastID), ToastSlot(s.Toast)),
	})
}
