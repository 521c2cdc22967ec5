package config

import (
	"fmt"
	"strings"

	"github.com/kilianp07/flexrate/core/output"
)

// OutputConfig names the processed files written beside each export.
type OutputConfig struct {
	Prefix    string `json:"prefix"`
	Extension string `json:"extension"`
}

// SetDefaults applies the processed_<base>.txt naming.
func (c *OutputConfig) SetDefaults() {
	if c.Prefix == "" {
		c.Prefix = output.Prefix
	}
	if c.Extension == "" {
		c.Extension = output.Extension
	}
}

// Validate checks that outputs stay beside their input.
func (c OutputConfig) Validate() error {
	if strings.ContainsAny(c.Prefix, `/\`) {
		return fmt.Errorf("output prefix %q must not contain a path separator", c.Prefix)
	}
	if !strings.HasPrefix(c.Extension, ".") || strings.ContainsAny(c.Extension, `/\`) {
		return fmt.Errorf("output extension %q must start with a dot", c.Extension)
	}
	return nil
}

// Naming converts the section for the output writer.
func (c OutputConfig) Naming() output.Naming {
	return output.Naming{Prefix: c.Prefix, Extension: c.Extension}
}

// rediscovered reports whether a processed file would match the input
// pattern and be picked up again by the next run.
func rediscovered(in InputConfig, out OutputConfig) bool {
	// Every export name starts with the input prefix.
	if !strings.HasPrefix(out.Prefix+in.Prefix, in.Prefix) {
		return false
	}
	for _, e := range in.Extensions {
		if strings.EqualFold(e, out.Extension) {
			return true
		}
	}
	return false
}
