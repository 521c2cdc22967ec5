package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/flexrate/core/model"
)

func constRate(label string) RateFunc {
	return func(string) string { return label }
}

func TestAllowed(t *testing.T) {
	r := Default()
	for _, d := range []string{"0", "1", "7", "14", "21", "29"} {
		assert.False(t, r.Allowed(model.InputRow{FromDay: d, VehicleCode: "JFG"}), "FromDay %s", d)
	}
	for _, v := range DefaultVehicles() {
		assert.False(t, r.Allowed(model.InputRow{FromDay: "3", VehicleCode: v}), v)
	}
	assert.True(t, r.Allowed(model.InputRow{FromDay: "3", VehicleCode: "Desert Sands"}))
	assert.True(t, r.Allowed(model.InputRow{FromDay: "07", VehicleCode: "grip 4x4"}))
	assert.True(t, r.Allowed(model.InputRow{}))
}

func TestFilterKeepsOrder(t *testing.T) {
	rows := []model.InputRow{
		{FromDay: "3", VehicleCode: "a"},
		{FromDay: "7", VehicleCode: "b"},
		{FromDay: "5", VehicleCode: "Grip 4x4"},
		{FromDay: "28", VehicleCode: "c"},
	}
	got := Default().Filter(rows)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].VehicleCode)
	assert.Equal(t, "c", got[1].VehicleCode)
}

func TestVehicleCodeExactMatch(t *testing.T) {
	r := Default()
	tests := map[string]string{
		"D5AWD Adventure Camper":  "D5",
		"Desert Sands":            "DSANDS",
		"Johnny Feelgood":         "JFG",
		"desert sands":            "desert sands",
		"Desert Sands ":           "Desert Sands ",
		"D5AWD Adventure Camper2": "D5AWD Adventure Camper2",
		"Hitop":                   "Hitop",
	}
	for in, want := range tests {
		assert.Equal(t, want, r.VehicleCode(in), in)
	}
}

func TestNormalize(t *testing.T) {
	in := model.InputRow{FromDay: "3", VehicleCode: "Johnny Feelgood", Price: "100", PickupLocationCode: "SYD"}
	var seen string
	got := Default().Normalize(in, func(p string) string { seen = p; return "B2" })
	assert.Equal(t, "100", seen)
	assert.Equal(t, "JFG", got.VehicleCode)
	assert.Equal(t, "SYD", got.PickupLocationCode)
	assert.Equal(t, "", got.VehicleDesc)
	assert.Equal(t, "B2", got.FlexRate)
	assert.Equal(t, "RQ", got.Availability)
	assert.Equal(t, "Johnny Feelgood", in.VehicleCode)
}

func TestApply(t *testing.T) {
	rows := []model.InputRow{
		{FromDay: "1", VehicleCode: "x"},
		{FromDay: "2", VehicleCode: "Desert Sands"},
		{FromDay: "3", VehicleCode: "Mystery Machine 3"},
		{FromDay: "4", VehicleCode: "y"},
	}
	got := Default().Apply(rows, constRate("R"))
	require.Len(t, got, 2)
	assert.Equal(t, "DSANDS", got[0].VehicleCode)
	assert.Equal(t, "y", got[1].VehicleCode)
	for _, r := range got {
		assert.Equal(t, "R", r.FlexRate)
	}
}

func TestNewCustomRules(t *testing.T) {
	codes := map[string]string{"Van": "V"}
	r := New([]string{"9"}, []string{"Bus"}, codes, "")
	codes["Van"] = "changed"
	assert.Equal(t, DefaultAvailability, r.Availability)
	assert.Equal(t, "V", r.VehicleCode("Van"))
	assert.False(t, r.Allowed(model.InputRow{FromDay: "9"}))
	assert.False(t, r.Allowed(model.InputRow{VehicleCode: "Bus"}))
	assert.True(t, r.Allowed(model.InputRow{FromDay: "7"}))
}
