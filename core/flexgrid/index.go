// Package flexgrid indexes the flex rate grid and matches row prices
// against it.
package flexgrid

import (
	"errors"
	"math"
	"sort"
	"strconv"

	"github.com/kilianp07/flexrate/core/model"
)

// ErrEmptyGrid is returned when the grid has no body rows or no numeric cells.
var ErrEmptyGrid = errors.New("flex data is empty or invalid")

// Index flattens the grid into entries sorted by ascending price. The first
// row holds column labels and the first cell of every other row is its row
// label. Body cells that are not finite numbers are skipped.
func Index(rows [][]string) ([]model.FlexEntry, error) {
	if len(rows) < 2 {
		return nil, ErrEmptyGrid
	}
	cols := rows[0]
	var entries []model.FlexEntry
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		for j := 1; j < len(row); j++ {
			price, ok := ParsePrice(row[j])
			if !ok {
				continue
			}
			var col string
			if j < len(cols) {
				col = cols[j]
			}
			entries = append(entries, model.FlexEntry{RowHeader: row[0], ColHeader: col, Price: price})
		}
	}
	if len(entries) == 0 {
		return nil, ErrEmptyGrid
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Price < entries[j].Price })
	return entries, nil
}

// ParsePrice parses s as a finite float.
func ParsePrice(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
