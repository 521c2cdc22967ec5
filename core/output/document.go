// Package output orders normalized rows and renders the processed text file.
package output

import (
	"sort"
	"time"

	"github.com/kilianp07/flexrate/core/dates"
	"github.com/kilianp07/flexrate/core/model"
)

// Sort returns rows ordered by pickup-to date, then pickup-from date, both
// ascending. Dates are compared as calendar dates; a value that cannot be
// parsed sorts after every valid date. Equal keys keep their input order.
func Sort(rows []model.Row) []model.Row {
	type keyed struct {
		row      model.Row
		to, from time.Time
		toOK     bool
		fromOK   bool
	}
	ks := make([]keyed, len(rows))
	for i, r := range rows {
		k := keyed{row: r}
		k.to, k.toOK = dates.Parse(r.PickupDateTo)
		k.from, k.fromOK = dates.Parse(r.PickupDateFrom)
		ks[i] = k
	}
	sort.SliceStable(ks, func(i, j int) bool {
		if c := compare(ks[i].to, ks[i].toOK, ks[j].to, ks[j].toOK); c != 0 {
			return c < 0
		}
		return compare(ks[i].from, ks[i].fromOK, ks[j].from, ks[j].fromOK) < 0
	})
	out := make([]model.Row, len(ks))
	for i, k := range ks {
		out[i] = k.row
	}
	return out
}

func compare(a time.Time, aok bool, b time.Time, bok bool) int {
	switch {
	case aok && bok:
		return a.Compare(b)
	case aok:
		return -1
	case bok:
		return 1
	default:
		return 0
	}
}

// Build orders rows and converts them into a Document. The first book date
// is the formatted pickup-from date of the first ordered row, or "" when
// there are no rows.
func Build(rows []model.Row) model.Document {
	sorted := Sort(rows)
	doc := model.Document{Rows: make([]model.OutputRow, len(sorted))}
	if len(sorted) > 0 {
		doc.FirstBookDate = dates.Format(sorted[0].PickupDateFrom)
	}
	for i, r := range sorted {
		doc.Rows[i] = model.OutputRow{
			LocationCode: r.PickupLocationCode,
			VehicleCode:  r.VehicleCode,
			Description:  r.VehicleDesc,
			PickupFrom:   dates.Format(r.PickupDateFrom),
			PickupTo:     dates.Format(r.PickupDateTo),
			FlexRate:     r.FlexRate,
			Availability: r.Availability,
		}
	}
	return doc
}
