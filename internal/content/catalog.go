// Package content holds the static copy and assets of the landing page.
package content

import "PolyXBets/internal/domain/models"

var logos = models.Logos{
	X:        "https://polyxnews.com/_assets/media/d1a33af179ca18d1582204e4211a4732.png",
	Poly:     "https://polyxnews.com/_assets/media/10537a121f00f260488b7350434ff984.png",
	Combined: "https://i.postimg.cc/mt2CSs3N/a9ce3ae9-5d24-4460-8508-67e0f709e0b7.png",
}

const shareImage = "https://i.ibb.co/GQBMxRkX/Design-sans-titre-23.png"

// Baselines seed the three market charts, in card order.
var Baselines = [3]int{32, 68, 25}

// Catalog returns a fresh copy of the page content.
func Catalog() models.Catalog {
	return models.Catalog{
		Logos: logos,
		NavLinks: []models.NavLink{
			{Href: "#markets", Label: "Markets"},
			{Href: "#features", Label: "Features"},
			{Href: "#pricing", Label: "Pricing"},
		},
		Markets: []models.Market{
			{Title: "Will OpenAI release GPT-5 before July 2025?", Prob: 0.73, Color: "#ef4444", Volume: "$3.2M", Change: "+18%"},
			{Title: "Bitcoin reaches $150,000 by end of 2025?", Prob: 0.41, Color: "#22c55e", Volume: "$5.7M", Change: "+24%"},
			{Title: "Apple announces AR glasses in 2025?", Prob: 0.68, Color: "#3b82f6", Volume: "$2.1M", Change: "+11%"},
		},
		Features: []models.Feature{
			{Icon: models.IconShieldCheck, Title: "Blockchain Security", Desc: "Military-grade encryption with Ethereum L2 settlement for absolute transparency.", Color: "from-green-500 to-emerald-400"},
			{Icon: models.IconPercent, Title: "Ultra-Low Fees", Desc: "Industry-leading 1.5% trading fee with zero settlement costs.", Color: "from-blue-500 to-cyan-400"},
			{Icon: models.IconTwitter, Title: "X Integration", Desc: "Seamlessly trade directly from your timeline. No context switching.", Color: "from-purple-500 to-pink-400"},
			{Icon: models.IconActivity, Title: "Real-Time Data", Desc: "Lightning-fast price updates every 100ms with professional infrastructure.", Color: "from-orange-500 to-red-400"},
		},
		Tiers: []models.PricingTier{
			{Name: "Starter", Price: "$0", Period: "forever", Feats: []string{"Watch live markets", "Follow top traders", "Share insights"}, Icon: models.IconUsers},
			{Name: "Pro Trader", Price: "$29", Period: "/month", Feats: []string{"Everything in Starter", "Unlimited trades", "Advanced alerts", "API access"}, Icon: models.IconTrendingUp, Popular: true},
			{Name: "Institution", Price: "Custom", Period: "pricing", Feats: []string{"Everything in Pro", "High-volume limits", "Dedicated support"}, Icon: models.IconDollarSign},
		},
	}
}

// Metadata returns the document head configuration. siteURL overrides
// the canonical URL when set.
func Metadata(siteURL string) models.Metadata {
	if siteURL == "" {
		siteURL = "https://polyxbets.vercel.app"
	}
	return models.Metadata{
		Title:       "PolyXBets - The Future of Prediction Markets",
		Description: "Trade the future directly inside X. Revolutionary prediction markets with seamless X integration, real-time trading, and unprecedented transparency.",
		Keywords:    "prediction markets, trading, crypto, blockchain, X integration, polymarket, betting, future trading",
		Author:      "PolyXBets Team",
		URL:         siteURL,
		SiteName:    "PolyXBets",
		ShareTitle:  "PolyXBets - The Future of Prediction Markets",
		ShareDesc:   "Trade the future directly inside X",
		Image:       shareImage,
		ImageWidth:  1200,
		ImageHeight: 630,
		Icon:        shareImage,
		ThemeColor:  "#0ea5e9",
	}
}
