package config

import "fmt"

// InputConfig selects the files that make up a batch.
type InputConfig struct {
	// GridFile is the exact name of the flex rate grid.
	GridFile string `json:"grid_file"`
	// Prefix starts the name of every primary export.
	Prefix string `json:"prefix"`
	// Extensions end the name of every primary export, e.g. ".csv" or
	// ".csv.gz".
	Extensions []string `json:"extensions"`
}

// SetDefaults applies the historical file names.
func (c *InputConfig) SetDefaults() {
	if c.GridFile == "" {
		c.GridFile = "Grid.csv"
	}
	if c.Prefix == "" {
		c.Prefix = "Flexfiles"
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{".csv"}
	}
}

// Validate checks mandatory fields.
func (c InputConfig) Validate() error {
	for _, e := range c.Extensions {
		if e == "" {
			return fmt.Errorf("input extensions must not be empty")
		}
	}
	return nil
}
