package model

// Sentinel cells of the output document.
const (
	FirstBookDate = "FIRST-BOOK-DATE"
	EndOfFile     = "END OF FILE"
)

// OutputRow holds the seven cells emitted for every surviving row.
type OutputRow struct {
	LocationCode string
	VehicleCode  string
	Description  string
	PickupFrom   string
	PickupTo     string
	FlexRate     string
	Availability string
}

// Cells returns the row in output column order.
func (r OutputRow) Cells() []string {
	return []string{
		r.LocationCode,
		r.VehicleCode,
		r.Description,
		r.PickupFrom,
		r.PickupTo,
		r.FlexRate,
		r.Availability,
	}
}

// Document is the full content of one processed file. The FIRST-BOOK-DATE
// row precedes Rows and the END OF FILE marker follows them.
type Document struct {
	FirstBookDate string
	Rows          []OutputRow
}
