package models

// Requests for site HTTP endpoints and session events.

type SeriesRequest struct {
	Baseline *int `query:"baseline" json:"baseline" validate:"required,gte=0,lte=100"`
}

type SeriesResponse struct {
	Baseline int          `json:"baseline"`
	Points   MarketSeries `json:"points"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Sessions int    `json:"sessions"`
}

// Client event types sent over the session socket.
const (
	EventScroll = "scroll"
	EventAction = "action"
)

// ClientEvent is a message from the browser.
type ClientEvent struct {
	Type   string  `json:"type" validate:"required,oneof=scroll action"`
	Offset float64 `json:"offset"`
	Action string  `json:"action" validate:"required_if=Type action,max=64"`
}

// Patch operations pushed to the browser.
const (
	PatchReplace = "replace" // swap inner HTML of Target
	PatchAttr    = "attr"    // set attribute Name on Target
)

// Patch is a message to the browser.
type Patch struct {
	Op     string `json:"op"`
	Target string `json:"target"`
	HTML   string `json:"html,omitempty"`
	Name   string `json:"name,omitempty"`
	Value  string `json:"value,omitempty"`
}
