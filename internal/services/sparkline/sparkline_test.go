package sparkline

import (
	"strings"
	"testing"

	"PolyXBets/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func series(values ...int) models.MarketSeries {
	s := make(models.MarketSeries, len(values))
	for i, v := range values {
		s[i] = models.SeriesPoint{T: i, P: v}
	}
	return s
}

func TestRenderSVG(t *testing.T) {
	r := New(120, 48)
	out, err := r.Render(series(32, 33, 31, 35, 36), "#ef4444")
	require.NoError(t, err)

	svg := string(out)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(svg), "<svg"))
	assert.Contains(t, svg, "</svg>")
}

func TestRenderRejectsShortSeries(t *testing.T) {
	_, err := New(120, 48).Render(series(50), "#22c55e")
	assert.Error(t, err)
}

func TestTooltip(t *testing.T) {
	assert.Equal(t, "73% Probability", Tooltip(73))
}
