// Package tabular splits delimited export text into rows of cells and binds
// primary export rows to typed records.
package tabular

import "strings"

// Delimiter separates cells. Quoted fields are not supported: a comma inside
// a value always splits it.
const Delimiter = ","

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Parse returns the non-blank lines of text split into trimmed cells.
func Parse(text string) [][]string {
	lines := strings.Split(lineEndings.Replace(text), "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		rows = append(rows, trimCells(strings.Split(line, Delimiter)))
	}
	return rows
}

// FromSheet normalizes rows read from a spreadsheet the same way Parse does
// for text: cells are trimmed and rows without any content are dropped.
func FromSheet(sheet [][]string) [][]string {
	rows := make([][]string, 0, len(sheet))
	for _, r := range sheet {
		cells := trimCells(r)
		if strings.Join(cells, "") == "" {
			continue
		}
		rows = append(rows, cells)
	}
	return rows
}

func trimCells(cells []string) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = strings.TrimSpace(c)
	}
	return out
}
