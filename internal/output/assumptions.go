package output

import (
	"fmt"

	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/domain"
)

// Assumptions lists the modeling assumptions rendered in detailed outputs.
func Assumptions(c domain.RegulatoryConstants) []string {
	ceiling := "Replacement ceiling: not applied"
	if c.ReplacementCeiling {
		ceiling = "Replacement ceiling: 85% / 90% / 100% of the base wage below 1,500 / 2,000 / from 2,000 weeks"
	}
	return []string{
		fmt.Sprintf("Constants %d: reference unit %s, minimum daily wage %s", c.Year,
			FormatCurrency(c.ReferenceUnitDaily), FormatCurrency(c.MinimumDailyWage)),
		fmt.Sprintf("Wage cap: %s reference units (%s per day)", c.WageCapMultiplier, FormatCurrency(c.WageCap())),
		fmt.Sprintf("Guaranteed minimum pension: %s per month", FormatCurrency(c.MinimumPension())),
		fmt.Sprintf("Eligibility: at least %s contribution weeks", calculation.MinimumWeeks),
		fmt.Sprintf("Average wage: trailing window of %s weeks", calculation.AverageWindowWeeks),
		"Future contributions accrue 52 weeks per year until the retirement age",
		ceiling,
	}
}
