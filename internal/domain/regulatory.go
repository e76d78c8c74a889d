package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// RegulatoryConfig contains the yearly economic constants the pension formula depends on.
// It is loaded from the embedded tables.yaml or a user supplied file and never read as global state.
type RegulatoryConfig struct {
	Metadata RegulatoryMetadata    `yaml:"metadata" json:"metadata"`
	Tables   []RegulatoryConstants `yaml:"tables" json:"tables"`
}

// RegulatoryMetadata contains information about the regulatory data
type RegulatoryMetadata struct {
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
	Description string `yaml:"description" json:"description"`
}

// RegulatoryConstants are the values for a single calendar year
type RegulatoryConstants struct {
	Year               int             `yaml:"year" json:"year"`
	ReferenceUnitDaily decimal.Decimal `yaml:"reference_unit_daily" json:"reference_unit_daily"`
	MinimumDailyWage   decimal.Decimal `yaml:"minimum_daily_wage" json:"minimum_daily_wage"`
	WageCapMultiplier  decimal.Decimal `yaml:"wage_cap_multiplier" json:"wage_cap_multiplier"`
	// ReplacementCeiling enables the 85/90/100% ceiling keyed on total weeks.
	ReplacementCeiling bool   `yaml:"replacement_ceiling,omitempty" json:"replacement_ceiling,omitempty"`
	Source             string `yaml:"source,omitempty" json:"source,omitempty"`
}

var minimumPensionDays = decimal.NewFromInt(30)

// WageCap is the highest daily wage the formula accepts
func (c RegulatoryConstants) WageCap() decimal.Decimal {
	return c.ReferenceUnitDaily.Mul(c.WageCapMultiplier)
}

// MinimumPension is the guaranteed monthly floor
func (c RegulatoryConstants) MinimumPension() decimal.Decimal {
	return c.MinimumDailyWage.Mul(minimumPensionDays)
}

// Validate checks that every constant can be used as a divisor or multiplier
func (c RegulatoryConstants) Validate() error {
	if c.Year <= 0 {
		return fmt.Errorf("year must be positive")
	}
	if !c.ReferenceUnitDaily.IsPositive() {
		return fmt.Errorf("reference unit for %d must be positive", c.Year)
	}
	if !c.MinimumDailyWage.IsPositive() {
		return fmt.Errorf("minimum daily wage for %d must be positive", c.Year)
	}
	if !c.WageCapMultiplier.IsPositive() {
		return fmt.Errorf("wage cap multiplier for %d must be positive", c.Year)
	}
	return nil
}

// ForYear returns the table for the requested year
func (rc *RegulatoryConfig) ForYear(year int) (RegulatoryConstants, error) {
	for _, t := range rc.Tables {
		if t.Year == year {
			return t, nil
		}
	}
	return RegulatoryConstants{}, fmt.Errorf("no regulatory constants for year %d (available: %v)", year, rc.Years())
}

// Latest returns the table for the most recent year
func (rc *RegulatoryConfig) Latest() (RegulatoryConstants, error) {
	years := rc.Years()
	if len(years) == 0 {
		return RegulatoryConstants{}, fmt.Errorf("regulatory config has no tables")
	}
	return rc.ForYear(years[len(years)-1])
}

// Years lists the available years in ascending order
func (rc *RegulatoryConfig) Years() []int {
	years := make([]int, 0, len(rc.Tables))
	for _, t := range rc.Tables {
		years = append(years, t.Year)
	}
	sort.Ints(years)
	return years
}
