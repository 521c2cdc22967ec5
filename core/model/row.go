package model

// Header names of the primary pricing export. They are matched verbatim
// against the first line of the file.
const (
	HeaderFromDay            = "FromDay"
	HeaderVehicleCode        = "VehicleCode"
	HeaderPrice              = "Price"
	HeaderPickupLocationCode = "PickupLocationCode"
	HeaderPickupDateFrom     = "PickupDateFrom"
	HeaderPickupDateTo       = "PickupDateTo"
)

// RequiredHeaders lists the columns the pipeline reads from a primary export.
var RequiredHeaders = []string{
	HeaderFromDay,
	HeaderVehicleCode,
	HeaderPrice,
	HeaderPickupLocationCode,
	HeaderPickupDateFrom,
	HeaderPickupDateTo,
}

// InputRow is one data line of a primary export. Cells that are missing in
// the file are empty strings.
type InputRow struct {
	FromDay            string
	VehicleCode        string
	Price              string
	PickupLocationCode string
	PickupDateFrom     string
	PickupDateTo       string
}

// Row is an InputRow after filtering and normalization.
type Row struct {
	InputRow
	VehicleDesc  string
	FlexRate     string
	Availability string
}
