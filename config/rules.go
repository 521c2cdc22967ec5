package config

import (
	"fmt"

	"github.com/kilianp07/flexrate/core/flexgrid"
	"github.com/kilianp07/flexrate/core/rules"
)

// RulesConfig overrides the row filtering and matching rules.
type RulesConfig struct {
	ExcludedFromDays []string          `json:"excluded_from_days"`
	ExcludedVehicles []string          `json:"excluded_vehicles"`
	VehicleCodes     map[string]string `json:"vehicle_codes"`
	Availability     string            `json:"availability"`
	// TargetRatio scales the row price before grid matching.
	TargetRatio float64 `json:"target_ratio"`
}

// SetDefaults fills omitted lists with the built-in rules.
func (c *RulesConfig) SetDefaults() {
	if c.ExcludedFromDays == nil {
		c.ExcludedFromDays = rules.DefaultFromDays()
	}
	if c.ExcludedVehicles == nil {
		c.ExcludedVehicles = rules.DefaultVehicles()
	}
	if c.VehicleCodes == nil {
		c.VehicleCodes = rules.DefaultVehicleCodes()
	}
	if c.Availability == "" {
		c.Availability = rules.DefaultAvailability
	}
	if c.TargetRatio == 0 {
		c.TargetRatio = flexgrid.DefaultRatio
	}
}

// Validate checks the target ratio.
func (c RulesConfig) Validate() error {
	if c.TargetRatio < 0 {
		return fmt.Errorf("target_ratio must be positive")
	}
	return nil
}

// Rules converts the section into rules.Rules.
func (c RulesConfig) Rules() rules.Rules {
	return rules.New(c.ExcludedFromDays, c.ExcludedVehicles, c.VehicleCodes, c.Availability)
}
