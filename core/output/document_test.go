package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/flexrate/core/model"
)

func row(loc, from, to string) model.Row {
	return model.Row{
		InputRow:     model.InputRow{PickupLocationCode: loc, VehicleCode: "V", PickupDateFrom: from, PickupDateTo: to},
		FlexRate:     "A1",
		Availability: "RQ",
	}
}

func locations(rows []model.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.PickupLocationCode
	}
	return out
}

func TestSortByPickupTo(t *testing.T) {
	rows := []model.Row{
		row("march", "2024-02-01", "2024-03-01"),
		row("january", "2024-01-01", "2024-01-15"),
	}
	assert.Equal(t, []string{"january", "march"}, locations(Sort(rows)))
}

func TestSortUsesCalendarOrder(t *testing.T) {
	rows := []model.Row{
		row("b", "01/01/2024", "02/03/2024"),
		row("a", "01/01/2024", "10/01/2024"),
		row("c", "01/01/2024", "2024-02-15"),
	}
	assert.Equal(t, []string{"a", "c", "b"}, locations(Sort(rows)))
}

func TestSortTieBreaksOnPickupFrom(t *testing.T) {
	rows := []model.Row{
		row("late", "2024-01-10", "2024-01-20"),
		row("early", "2024-01-05", "2024-01-20"),
		row("same", "2024-01-10", "2024-01-20"),
	}
	assert.Equal(t, []string{"early", "late", "same"}, locations(Sort(rows)))
}

func TestSortInvalidDatesLast(t *testing.T) {
	rows := []model.Row{
		row("bad", "2024-01-01", "garbage"),
		row("empty", "2024-01-01", ""),
		row("good", "2024-01-01", "2024-06-01"),
	}
	assert.Equal(t, []string{"good", "bad", "empty"}, locations(Sort(rows)))
}

func TestBuild(t *testing.T) {
	rows := []model.Row{
		row("MEL", "20/03/2024", "25/03/2024"),
		row("SYD", "02/01/2024", "15/01/2024"),
	}
	doc := Build(rows)
	assert.Equal(t, "01/02/2024", doc.FirstBookDate)
	require.Len(t, doc.Rows, 2)
	assert.Equal(t, model.OutputRow{
		LocationCode: "SYD",
		VehicleCode:  "V",
		PickupFrom:   "01/02/2024",
		PickupTo:     "01/15/2024",
		FlexRate:     "A1",
		Availability: "RQ",
	}, doc.Rows[0])
	assert.Equal(t, "MEL", doc.Rows[1].LocationCode)
}

func TestBuildEmpty(t *testing.T) {
	doc := Build(nil)
	assert.Equal(t, "", doc.FirstBookDate)
	assert.Empty(t, doc.Rows)
}
