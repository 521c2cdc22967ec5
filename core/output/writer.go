package output

import (
	"bufio"
	"io"
	"path/filepath"
	"strings"

	"github.com/kilianp07/flexrate/core/model"
)

// Naming of the processed file.
const (
	Prefix    = "processed_"
	Extension = ".txt"
)

// Render writes doc to w. Every cell is wrapped in double quotes except the
// END OF FILE marker. Rows are separated by "\n" and the marker is not
// followed by a line break.
func Render(w io.Writer, doc model.Document) error {
	bw := bufio.NewWriter(w)
	writeRow(bw, []string{model.FirstBookDate, doc.FirstBookDate})
	for _, r := range doc.Rows {
		writeRow(bw, r.Cells())
	}
	if _, err := bw.WriteString(model.EndOfFile); err != nil {
		return err
	}
	return bw.Flush()
}

// bufio.Writer errors are sticky and surface on Flush.
func writeRow(w *bufio.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			_ = w.WriteByte(',')
		}
		_ = w.WriteByte('"')
		_, _ = w.WriteString(c)
		_ = w.WriteByte('"')
	}
	_ = w.WriteByte('\n')
}

// Naming controls how processed files are named.
type Naming struct {
	Prefix    string
	Extension string
}

// DefaultNaming returns the historical processed_<base>.txt naming.
func DefaultNaming() Naming {
	return Naming{Prefix: Prefix, Extension: Extension}
}

// PathFor returns the processed file path for input, written beside it.
// ext is the input extension to strip; when empty, filepath.Ext is used.
func (n Naming) PathFor(input, ext string) string {
	base := filepath.Base(input)
	if ext == "" {
		ext = filepath.Ext(base)
	}
	if len(base) > len(ext) && strings.EqualFold(base[len(base)-len(ext):], ext) {
		base = base[:len(base)-len(ext)]
	}
	return filepath.Join(filepath.Dir(input), n.Prefix+base+n.Extension)
}

// PathFor names the processed file with DefaultNaming.
func PathFor(input, ext string) string {
	return DefaultNaming().PathFor(input, ext)
}
