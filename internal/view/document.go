package view

import (
	"strconv"

	"PolyXBets/internal/domain/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Element ids the session patches.
const (
	RootID   = "root"
	ToastID  = "toast"
	NavbarID = "navbar"
)

// Document wraps body in the full HTML document with head metadata and
// the session script.
func Document(meta models.Metadata, body ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(headNodes(meta)...),
			Body(
				Class("min-h-screen bg-neutral-950 text-white overflow-x-hidden scroll-smooth"),
				g.Group(body),
				Script(g.Raw(clientScript)),
			),
		),
	)
}

func headNodes(m models.Metadata) []g.Node {
	property := func(p, v string) g.Node {
		return Meta(g.Attr("property", p), Content(v))
	}
	named := func(n, v string) g.Node {
		return Meta(Name(n), Content(v))
	}
	return []g.Node{
		Meta(Charset("utf-8")),
		named("viewport", "width=device-width, initial-scale=1"),
		TitleEl(g.Text(m.Title)),
		named("description", m.Description),
		named("keywords", m.Keywords),
		named("author", m.Author),
		named("theme-color", m.ThemeColor),

		property("og:title", m.ShareTitle),
		property("og:description", m.ShareDesc),
		property("og:url", m.URL),
		property("og:site_name", m.SiteName),
		property("og:type", "website"),
		property("og:image", m.Image),
		property("og:image:width", strconv.Itoa(m.ImageWidth)),
		property("og:image:height", strconv.Itoa(m.ImageHeight)),

		named("twitter:card", "summary_large_image"),
		named("twitter:title", m.ShareTitle),
		named("twitter:description", m.ShareDesc),
		named("twitter:image", m.Image),

		Link(Rel("icon"), Href(m.Icon)),
		Link(Rel("shortcut icon"), Href(m.Icon)),
		Link(Rel("apple-touch-icon"), Href(m.Icon)),
		Script(Src("https://cdn.tailwindcss.com")),
		Script(Src("https://code.iconify.design/3/3.1.1/iconify.min.js")),
	}
}
