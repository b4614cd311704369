// Package sparkline renders the mini probability charts of the market
// cards as inline SVG.
package sparkline

import (
	"bytes"
	"fmt"
	"strings"

	"PolyXBets/internal/domain/models"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Probability axis bounds. Fixed so every card shares one scale.
const (
	DomainMin = 0
	DomainMax = 100
)

// Renderer draws area charts with hidden axes.
type Renderer struct {
	Width  int
	Height int
}

// New returns a renderer for charts of the given pixel size.
func New(width, height int) *Renderer {
	return &Renderer{Width: width, Height: height}
}

// Render draws s as an SVG area chart stroked in color (a #rrggbb hex).
func (r *Renderer) Render(s models.MarketSeries, color string) ([]byte, error) {
	if len(s) < 2 {
		return nil, fmt.Errorf("sparkline: need at least 2 points, got %d", len(s))
	}

	xs := make([]float64, len(s))
	ys := make([]float64, len(s))
	for i, p := range s {
		xs[i] = float64(p.T)
		ys[i] = float64(p.P)
	}

	stroke := drawing.ColorFromHex(strings.TrimPrefix(color, "#"))
	ch := chart.Chart{
		Width:      r.Width,
		Height:     r.Height,
		Background: chart.Style{Padding: chart.Box{Top: 2, Left: 1, Right: 1, Bottom: 1}},
		XAxis:      chart.XAxis{Style: chart.Hidden()},
		YAxis: chart.YAxis{
			Style: chart.Hidden(),
			Range: &chart.ContinuousRange{Min: DomainMin, Max: DomainMax},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: xs,
				YValues: ys,
				Style: chart.Style{
					StrokeColor: stroke,
					StrokeWidth: 2,
					FillColor:   stroke.WithAlpha(48),
				},
			},
		},
	}

	var buf bytes.Buffer
	if err := ch.Render(chart.SVG, &buf); err != nil {
		return nil, fmt.Errorf("sparkline: render: %w", err)
	}
	return buf.Bytes(), nil
}

// Tooltip is the hover text for a point.
func Tooltip(p int) string {
	return fmt.Sprintf("%d%% Probability", p)
}
