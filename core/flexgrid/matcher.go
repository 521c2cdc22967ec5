package flexgrid

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/kilianp07/flexrate/core/model"
)

// DefaultRatio is the share of the row price the grid is matched against.
const DefaultRatio = 0.75

// Matcher finds the grid entry closest to a target price. It reuses an
// internal buffer and is not safe for concurrent use.
type Matcher struct {
	entries []model.FlexEntry
	prices  []float64
	ratio   float64
	dist    []float64
}

// NewMatcher builds a Matcher over entries, which must be sorted by ascending
// price as returned by Index. A ratio of zero selects DefaultRatio.
func NewMatcher(entries []model.FlexEntry, ratio float64) (*Matcher, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyGrid
	}
	if ratio == 0 {
		ratio = DefaultRatio
	}
	if ratio < 0 || math.IsNaN(ratio) || math.IsInf(ratio, 0) {
		return nil, fmt.Errorf("invalid target ratio %v", ratio)
	}
	prices := make([]float64, len(entries))
	for i, e := range entries {
		prices[i] = e.Price
	}
	return &Matcher{
		entries: entries,
		prices:  prices,
		ratio:   ratio,
		dist:    make([]float64, len(entries)),
	}, nil
}

// Entries returns the indexed entries in ascending price order.
func (m *Matcher) Entries() []model.FlexEntry { return m.entries }

// Nearest returns the entry minimizing |price - target|. On a tie the entry
// that comes first in ascending price order wins.
func (m *Matcher) Nearest(target float64) model.FlexEntry {
	for i, p := range m.prices {
		m.dist[i] = math.Abs(p - target)
	}
	return m.entries[floats.MinIdx(m.dist)]
}

// Rate returns the flex rate label for a row price, or "" when the price is
// not numeric.
func (m *Matcher) Rate(price string) string {
	v, ok := ParsePrice(price)
	if !ok {
		return ""
	}
	return m.Nearest(v * m.ratio).Label()
}
