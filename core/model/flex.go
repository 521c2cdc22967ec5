package model

// FlexEntry is one numeric body cell of the flex rate grid.
type FlexEntry struct {
	RowHeader string
	ColHeader string
	Price     float64
}

// Label returns the flex rate label: row label immediately followed by the
// column label.
func (e FlexEntry) Label() string { return e.RowHeader + e.ColHeader }
