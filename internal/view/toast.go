package view

import (
	"PolyXBets/internal/domain/models"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ToastSlot renders the content of the toast slot. A hidden toast
// renders nothing.
func ToastSlot(t models.Toast) g.Node {
	if !t.Visible {
		return g.Group(nil)
	}
	return Div(
		Class("fixed bottom-8 left-1/2 -translate-x-1/2 bg-gradient-to-r from-blue-600 to-cyan-500 px-6 py-3 rounded-2xl shadow-2xl text-white font-medium z-50"),
		Role("status"),
		Div(Class("flex items-center gap-2"),
			icon("sparkles", "size-4"),
			g.Text(t.Message),
		),
	)
}
