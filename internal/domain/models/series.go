package models

// SeriesPoint is one sample of a mock market chart.
type SeriesPoint struct {
	T int `json:"t"` // index
	P int `json:"p"` // probability percent
}

// MarketSeries is a synthetic probability walk used for decorative charts.
type MarketSeries []SeriesPoint

// Values returns the probabilities in order.
func (s MarketSeries) Values() []int {
	out := make([]int, len(s))
	for i, p := range s {
		out[i] = p.P
	}
	return out
}

// Last returns the final probability, or 0 for an empty series.
func (s MarketSeries) Last() int {
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1].P
}
