package tabular

import "github.com/kilianp07/flexrate/core/model"

// Binding is the result of mapping a header row onto model.InputRow.
type Binding struct {
	Headers []string
	Rows    []model.InputRow
	// Missing lists required headers absent from the header row. The
	// matching fields are left empty in every row.
	Missing []string
}

type setter func(*model.InputRow, string)

var setters = map[string]setter{
	model.HeaderFromDay:            func(r *model.InputRow, v string) { r.FromDay = v },
	model.HeaderVehicleCode:        func(r *model.InputRow, v string) { r.VehicleCode = v },
	model.HeaderPrice:              func(r *model.InputRow, v string) { r.Price = v },
	model.HeaderPickupLocationCode: func(r *model.InputRow, v string) { r.PickupLocationCode = v },
	model.HeaderPickupDateFrom:     func(r *model.InputRow, v string) { r.PickupDateFrom = v },
	model.HeaderPickupDateTo:       func(r *model.InputRow, v string) { r.PickupDateTo = v },
}

// Bind treats the first row as the header and converts every following row
// into an InputRow. Unknown headers are ignored; when a header repeats, the
// rightmost column wins.
func Bind(rows [][]string) Binding {
	if len(rows) == 0 {
		return Binding{Missing: append([]string(nil), model.RequiredHeaders...)}
	}
	headers := rows[0]
	cols := make(map[string]int, len(setters))
	for i, h := range headers {
		if _, ok := setters[h]; ok {
			cols[h] = i
		}
	}

	b := Binding{Headers: headers, Rows: make([]model.InputRow, 0, len(rows)-1)}
	for _, h := range model.RequiredHeaders {
		if _, ok := cols[h]; !ok {
			b.Missing = append(b.Missing, h)
		}
	}
	for _, line := range rows[1:] {
		var r model.InputRow
		for h, i := range cols {
			if i < len(line) {
				setters[h](&r, line[i])
			}
		}
		b.Rows = append(b.Rows, r)
	}
	return b
}
