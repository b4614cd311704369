package models

import (
	"fmt"
	"math"
	"strings"
)

// Icon is a closed set of capability icons.
type Icon int

const (
	IconShieldCheck Icon = iota
	IconPercent
	IconTwitter
	IconActivity
	IconUsers
	IconTrendingUp
	IconDollarSign
	IconSparkles
	IconZap
	IconArrowRight
)

var iconNames = map[Icon]string{
	IconShieldCheck: "shield-check",
	IconPercent:     "percent",
	IconTwitter:     "twitter",
	IconActivity:    "activity",
	IconUsers:       "users",
	IconTrendingUp:  "trending-up",
	IconDollarSign:  "dollar-sign",
	IconSparkles:    "sparkles",
	IconZap:         "zap",
	IconArrowRight:  "arrow-right",
}

func (i Icon) String() string {
	if n, ok := iconNames[i]; ok {
		return n
	}
	return "circle"
}

// MarshalText encodes the icon by name.
func (i Icon) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

// Market describes one mock market card.
type Market struct {
	Title  string  `json:"title"`
	Prob   float64 `json:"prob"` // fraction in [0,1]
	Color  string  `json:"color"`
	Volume string  `json:"volume"`
	Change string  `json:"change"`
}

// Percent formats the probability as a whole-number percentage.
func (m Market) Percent() string {
	return fmt.Sprintf("%d%%", int(math.Round(m.Prob*100)))
}

// Rising reports whether the change badge is positive.
func (m Market) Rising() bool { return strings.HasPrefix(m.Change, "+") }

// ShortTitle is the title up to the first question mark.
func (m Market) ShortTitle() string {
	title, _, _ := strings.Cut(m.Title, "?")
	return title
}

// Feature is one card of the features grid.
type Feature struct {
	Icon  Icon   `json:"icon"`
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Color string `json:"color"` // gradient classes
}

// PricingTier is one column of the pricing table.
type PricingTier struct {
	Name    string   `json:"name"`
	Price   string   `json:"price"`
	Period  string   `json:"period"`
	Feats   []string `json:"feats"`
	Icon    Icon     `json:"icon"`
	Popular bool     `json:"popular"`
}

// CallToAction is the button label for the tier.
func (t PricingTier) CallToAction() string {
	if t.Price == "Custom" {
		return "Contact Sales"
	}
	return "Get Started"
}

// NavLink is an in-page anchor in the navbar.
type NavLink struct {
	Href  string `json:"href"`
	Label string `json:"label"`
}

// Logos are remote image URLs; fetching them is the browser's job.
type Logos struct {
	X        string `json:"x"`
	Poly     string `json:"poly"`
	Combined string `json:"combined"`
}

// Metadata is static document head configuration.
type Metadata struct {
	Title       string
	Description string
	Keywords    string
	Author      string
	URL         string
	SiteName    string
	ShareTitle  string
	ShareDesc   string
	Image       string
	ImageWidth  int
	ImageHeight int
	Icon        string
	ThemeColor  string
}

// Catalog bundles the static content of the page.
type Catalog struct {
	Logos    Logos         `json:"logos"`
	NavLinks []NavLink     `json:"nav_links"`
	Markets  []Market      `json:"markets"`
	Features []Feature     `json:"features"`
	Tiers    []PricingTier `json:"tiers"`
}
