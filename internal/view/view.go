// Package view renders the landing page with gomponents. Sections are
// pure functions of static content and view state; the interactive ones
// also hold the toast Publisher and expose the actions their buttons fire.
package view

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Action ids carried by buttons in data-action.
const (
	ActionSignIn      = "signin"
	ActionEarlyAccess = "early-access"
	ActionLearnMore   = "learn-more"
	ActionWaitlist    = "waitlist"
	actionTrade       = "trade"
	actionPlan        = "plan"
)

// TradeAction is the action id of the Trade Now button of market i.
func TradeAction(i int) string { return fmt.Sprintf("%s:%d", actionTrade, i) }

// PlanAction is the action id of the button of pricing tier i.
func PlanAction(i int) string { return fmt.Sprintf("%s:%d", actionPlan, i) }

// Actions maps action ids to handlers.
type Actions map[string]func()

func (a Actions) merge(other Actions) {
	for id, fn := range other {
		a[id] = fn
	}
}

// Render writes n to a string.
func Render(n g.Node) (string, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func icon(name, class string) g.Node {
	return Span(Class("iconify "+class), g.Attr("data-icon", "lucide:"+name))
}

func actionButton(action, class string, children ...g.Node) g.Node {
	return Button(
		Type("button"),
		Class("font-semibold transition-all duration-300 flex flex-row items-center justify-center "+class),
		g.Attr("data-action", action),
		g.Group(children),
	)
}

func gradientTitle(text string) g.Node {
	return Span(Class("bg-gradient-to-r from-blue-400 to-cyan-300 bg-clip-text text-transparent"), g.Text(text))
}
