package source

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulikunitz/xz"
	"github.com/xuri/excelize/v2"
)

const gridText = ",1,2\r\nA,60,80\r\n\r\nB,120,x\r\n"

var gridRows = [][]string{{"", "1", "2"}, {"A", "60", "80"}, {"B", "120", "x"}}

func compress(t *testing.T, c Compression, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	var w io.WriteCloser
	var err error
	switch c {
	case CompressionGZ:
		w = gzip.NewWriter(&buf)
	case CompressionXZ:
		w, err = xz.NewWriter(&buf)
	case CompressionZSTD:
		w, err = zstd.NewWriter(&buf)
	default:
		t.Fatalf("unexpected compression %d", c)
	}
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}

func TestReadRowsText(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		c    Compression
	}{
		{"Grid.csv", CompressionNone},
		{"Grid.csv.gz", CompressionGZ},
		{"Grid.csv.xz", CompressionXZ},
		{"Grid.csv.zst", CompressionZSTD},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := []byte(gridText)
			if tt.c != CompressionNone {
				data = compress(t, tt.c, data)
			}
			path := filepath.Join(dir, tt.name)
			require.NoError(t, os.WriteFile(path, data, 0o644))
			rows, err := ReadRows(path)
			require.NoError(t, err)
			assert.Equal(t, gridRows, rows)
		})
	}
}

func TestReadRowsXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Flexfiles_book.xlsx")
	wb := excelize.NewFile()
	sheet := wb.GetSheetName(0)
	require.NoError(t, wb.SetSheetRow(sheet, "A1", &[]any{"FromDay", "Price"}))
	require.NoError(t, wb.SetSheetRow(sheet, "A2", &[]any{" 3 ", 100}))
	require.NoError(t, wb.SetSheetRow(sheet, "A4", &[]any{"5", "75.5"}))
	require.NoError(t, wb.SaveAs(path))
	require.NoError(t, wb.Close())

	rows, err := ReadRows(path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"FromDay", "Price"}, {"3", "100"}, {"5", "75.5"}}, rows)
}

func TestReadRowsErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadRows(filepath.Join(dir, "missing.csv"))
	assert.Error(t, err)

	_, err = ReadRows(filepath.Join(dir, "legacy.xls"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	bad := filepath.Join(dir, "bad.csv.gz")
	require.NoError(t, os.WriteFile(bad, []byte("not gzip"), 0o644))
	_, err = ReadRows(bad)
	assert.Error(t, err)
}

func TestDetectCompression(t *testing.T) {
	c, inner := DetectCompression("Flexfiles.CSV.GZ")
	assert.Equal(t, CompressionGZ, c)
	assert.Equal(t, "Flexfiles.CSV", inner)
	assert.Equal(t, ".gz", c.Extension())

	c, inner = DetectCompression("Grid.csv")
	assert.Equal(t, CompressionNone, c)
	assert.Equal(t, "Grid.csv", inner)
	assert.Equal(t, "", c.Extension())
}
