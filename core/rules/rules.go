// Package rules drops disallowed export rows and normalizes the survivors.
package rules

import "github.com/kilianp07/flexrate/core/model"

// DefaultAvailability is the availability code attached to every row.
const DefaultAvailability = "RQ"

// RateFunc returns the flex rate label for a raw price cell.
type RateFunc func(price string) string

// Rules holds the exclusion sets and the vehicle code rewrite table.
type Rules struct {
	ExcludedFromDays map[string]struct{}
	ExcludedVehicles map[string]struct{}
	VehicleCodes     map[string]string
	Availability     string
}

// New builds Rules from plain lists. An empty availability selects
// DefaultAvailability.
func New(fromDays, vehicles []string, codes map[string]string, availability string) Rules {
	if availability == "" {
		availability = DefaultAvailability
	}
	rewrites := make(map[string]string, len(codes))
	for k, v := range codes {
		rewrites[k] = v
	}
	return Rules{
		ExcludedFromDays: toSet(fromDays),
		ExcludedVehicles: toSet(vehicles),
		VehicleCodes:     rewrites,
		Availability:     availability,
	}
}

// Default returns the built-in rule set.
func Default() Rules {
	return New(DefaultFromDays(), DefaultVehicles(), DefaultVehicleCodes(), DefaultAvailability)
}

// DefaultFromDays lists the FromDay values that are never exported.
func DefaultFromDays() []string { return []string{"0", "1", "7", "14", "21", "29"} }

// DefaultVehicles lists the vehicle codes that are never exported.
func DefaultVehicles() []string {
	return []string{
		"Aventus 2-seater (AT)",
		"Mystery Machine 2",
		"Mystery Machine 2 Hightop",
		"Mystery Machine 3",
		"Budget Mini-Camper",
		"Grip 4x4",
	}
}

// DefaultVehicleCodes maps long vehicle names to their short codes.
func DefaultVehicleCodes() map[string]string {
	return map[string]string{
		"D5AWD Adventure Camper": "D5",
		"Desert Sands":           "DSANDS",
		"Johnny Feelgood":        "JFG",
	}
}

// Allowed reports whether neither the FromDay nor the vehicle code of r is
// excluded. Matching is exact.
func (r Rules) Allowed(row model.InputRow) bool {
	if _, ok := r.ExcludedFromDays[row.FromDay]; ok {
		return false
	}
	_, ok := r.ExcludedVehicles[row.VehicleCode]
	return !ok
}

// Filter returns the allowed rows in their original order.
func (r Rules) Filter(rows []model.InputRow) []model.InputRow {
	out := make([]model.InputRow, 0, len(rows))
	for _, row := range rows {
		if r.Allowed(row) {
			out = append(out, row)
		}
	}
	return out
}

// VehicleCode rewrites code through the rewrite table. Codes without an
// exact entry are returned unchanged.
func (r Rules) VehicleCode(code string) string {
	if short, ok := r.VehicleCodes[code]; ok {
		return short
	}
	return code
}

// Normalize derives the output row fields from row.
func (r Rules) Normalize(row model.InputRow, rate RateFunc) model.Row {
	in := row
	in.VehicleCode = r.VehicleCode(row.VehicleCode)
	return model.Row{
		InputRow:     in,
		VehicleDesc:  "",
		FlexRate:     rate(row.Price),
		Availability: r.Availability,
	}
}

// Apply filters rows and normalizes the survivors, preserving order.
func (r Rules) Apply(rows []model.InputRow, rate RateFunc) []model.Row {
	kept := r.Filter(rows)
	out := make([]model.Row, len(kept))
	for i, row := range kept {
		out[i] = r.Normalize(row, rate)
	}
	return out
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
