// Package source finds the grid and primary exports in a directory and reads
// them into rows of cells.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrGridNotFound is returned when the grid file is absent.
	ErrGridNotFound = errors.New("grid file not found")
	// ErrNoInputFiles is returned when no primary export matches.
	ErrNoInputFiles = errors.New("no input files found")
)

// Pattern describes which files make up a batch.
type Pattern struct {
	GridFile   string
	Prefix     string
	Extensions []string
}

// Input is one discovered primary export.
type Input struct {
	Path string
	// Ext is the matched extension, e.g. ".csv" or ".csv.gz".
	Ext string
}

// Batch lists the files of one run.
type Batch struct {
	Grid   string
	Inputs []Input
}

// Discover lists dir and returns the grid file and every primary export in
// name order. The grid must match GridFile exactly.
func Discover(dir string, p Pattern) (Batch, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Batch{}, fmt.Errorf("read dir %s: %w", dir, err)
	}
	exts := append([]string(nil), p.Extensions...)
	// longest first so ".csv.gz" wins over ".gz"
	sort.SliceStable(exts, func(i, j int) bool { return len(exts[i]) > len(exts[j]) })

	var b Batch
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if name == p.GridFile {
			b.Grid = filepath.Join(dir, name)
			continue
		}
		if !strings.HasPrefix(name, p.Prefix) {
			continue
		}
		for _, ext := range exts {
			if strings.HasSuffix(name, ext) {
				b.Inputs = append(b.Inputs, Input{Path: filepath.Join(dir, name), Ext: ext})
				break
			}
		}
	}
	if b.Grid == "" {
		return Batch{}, fmt.Errorf("%s in %s: %w", p.GridFile, dir, ErrGridNotFound)
	}
	if len(b.Inputs) == 0 {
		return Batch{}, fmt.Errorf("files starting with %q in %s: %w", p.Prefix, dir, ErrNoInputFiles)
	}
	return b, nil
}
