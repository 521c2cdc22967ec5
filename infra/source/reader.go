package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/kilianp07/flexrate/core/tabular"
)

// ErrUnsupportedFormat is returned for spreadsheet formats that cannot be read.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// ReadRows reads path into trimmed rows with blank lines removed. Delimited
// text may be compressed; .xlsx workbooks are read from their first sheet.
func ReadRows(path string) ([][]string, error) {
	comp, inner := DetectCompression(filepath.Base(path))
	switch strings.ToLower(filepath.Ext(inner)) {
	case ".xls", ".xlsm", ".ods":
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	case ".xlsx":
		return readSheet(path, comp)
	}
	data, err := readAll(path, comp)
	if err != nil {
		return nil, err
	}
	return tabular.Parse(string(data)), nil
}

func readAll(path string, comp Compression) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	r, closeFn, err := comp.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer func() { _ = closeFn() }()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

func readSheet(path string, comp Compression) ([][]string, error) {
	var (
		wb  *excelize.File
		err error
	)
	if comp == CompressionNone {
		wb, err = excelize.OpenFile(path)
	} else {
		var data []byte
		if data, err = readAll(path, comp); err != nil {
			return nil, err
		}
		wb, err = excelize.OpenReader(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() { _ = wb.Close() }()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in %s", path)
	}
	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %s of %s: %w", sheets[0], path, err)
	}
	return tabular.FromSheet(rows), nil
}
