package series

import (
	"math"
	"math/rand/v2"

	"PolyXBets/internal/domain/models"
)

const (
	// Length is the number of points in every series.
	Length = 15
	// Min and Max bound every probability in the walk.
	Min = 5
	Max = 95
	// spread scales a centered uniform sample into a step in [-3, 3].
	spread = 6
)

// Source yields uniform samples in [0, 1).
type Source interface {
	Float64() float64
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Generator produces bounded random walks for the market charts.
type Generator struct {
	src Source
}

// New creates a Generator. A nil source uses the unseeded global source.
func New(src Source) *Generator {
	if src == nil {
		src = globalSource{}
	}
	return &Generator{src: src}
}

// Generate walks Length steps from baseline. The first point is the
// clamped baseline; each next point adds a rounded perturbation and is
// clamped again.
func (g *Generator) Generate(baseline int) models.MarketSeries {
	out := make(models.MarketSeries, Length)
	v := clamp(baseline)
	out[0] = models.SeriesPoint{T: 0, P: v}
	for i := 1; i < Length; i++ {
		v = clamp(v + g.step())
		out[i] = models.SeriesPoint{T: i, P: v}
	}
	return out
}

// Fixtures generates one series per baseline, in order.
func (g *Generator) Fixtures(baselines ...int) []models.MarketSeries {
	out := make([]models.MarketSeries, len(baselines))
	for i, b := range baselines {
		out[i] = g.Generate(b)
	}
	return out
}

// step rounds half up so that -2.5 becomes -2, matching a browser Math.round.
func (g *Generator) step() int {
	return int(math.Floor((g.src.Float64()-0.5)*spread + 0.5))
}

func clamp(v int) int {
	return max(Min, min(Max, v))
}
