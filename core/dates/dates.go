// Package dates parses the pickup dates found in pricing exports and
// renders them as MM/DD/YYYY.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// OutputLayout is the rendered date format.
const OutputLayout = "01/02/2006"

// layouts are tried in order for text without a slash, before falling
// back to dateparse. Single-digit month and day layouts also accept the
// zero-padded forms.
var layouts = []string{
	"2006-1-2",
	time.RFC3339,
	"2006-1-2T15:04:05",
	"2006-1-2T15:04",
	"2006-1-2 15:04:05",
	"2006-1-2 15:04",
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"2 January 2006",
	"2 January, 2006",
	"2 Jan 2006",
	"2 Jan, 2006",
	time.RFC1123,
	time.RFC1123Z,
}

// Parse reads s as a calendar date. Text containing a slash is read as
// DD/MM/YYYY; anything else is tried against common layouts and then
// parsed generically. Only the calendar date is kept, as written.
func Parse(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if strings.Contains(s, "/") {
		return parseDayMonthYear(s)
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return calendarDate(t), true
		}
	}
	t, err := dateparse.ParseIn(s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return calendarDate(t), true
}

func calendarDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Format renders s as MM/DD/YYYY, or returns "" when s is empty or not a
// valid date.
func Format(s string) string {
	t, ok := Parse(s)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%04d", int(t.Month()), t.Day(), t.Year())
}

func parseDayMonthYear(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	var n [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		n[i] = v
	}
	day, month, year := n[0], n[1], n[2]
	if year >= 0 && year <= 99 {
		year += 1900
	}
	if month < 1 || month > 12 || day < 1 || year < 0 || year > 9999 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Day() != day {
		return time.Time{}, false
	}
	return t, true
}
