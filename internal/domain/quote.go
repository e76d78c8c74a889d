package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Allowances holds the dependent allowance rates applied to the annual subtotal
type Allowances struct {
	SpouseRate     decimal.Decimal `yaml:"spouse_rate" json:"spouse_rate"`
	ChildrenRate   decimal.Decimal `yaml:"children_rate" json:"children_rate"`
	ParentsRate    decimal.Decimal `yaml:"parents_rate" json:"parents_rate"`
	WelfareAidRate decimal.Decimal `yaml:"welfare_aid_rate" json:"welfare_aid_rate"`
	AnnualAmount   decimal.Decimal `yaml:"annual_amount" json:"annual_amount"`
}

// TotalRate is the combined allowance rate over the annual subtotal
func (a Allowances) TotalRate() decimal.Decimal {
	return a.SpouseRate.Add(a.ChildrenRate).Add(a.ParentsRate).Add(a.WelfareAidRate)
}

// PensionBreakdown is the output of the pension formula for one retirement age.
// The zero value is the result for a contributor who is not yet eligible.
type PensionBreakdown struct {
	Monthly            decimal.Decimal `yaml:"monthly" json:"monthly"`
	MonthlyBeforeFloor decimal.Decimal `yaml:"monthly_before_floor" json:"monthly_before_floor"`
	FloorApplied       bool            `yaml:"floor_applied" json:"floor_applied"`
	BaseWageUsed       decimal.Decimal `yaml:"base_wage_used" json:"base_wage_used"`

	// Audit detail
	Eligible             bool            `yaml:"eligible" json:"eligible"`
	WageMultiple         decimal.Decimal `yaml:"wage_multiple" json:"wage_multiple"`
	Bracket              string          `yaml:"bracket,omitempty" json:"bracket,omitempty"`
	BasePercentage       decimal.Decimal `yaml:"base_percentage" json:"base_percentage"`
	IncrementPercentage  decimal.Decimal `yaml:"increment_percentage" json:"increment_percentage"`
	BonusYears           decimal.Decimal `yaml:"bonus_years" json:"bonus_years"`
	AnnualBase           decimal.Decimal `yaml:"annual_base" json:"annual_base"`
	AnnualIncrement      decimal.Decimal `yaml:"annual_increment" json:"annual_increment"`
	AnnualSubtotal       decimal.Decimal `yaml:"annual_subtotal" json:"annual_subtotal"`
	Allowances           Allowances      `yaml:"allowances" json:"allowances"`
	AnnualWithAllowances decimal.Decimal `yaml:"annual_with_allowances" json:"annual_with_allowances"`
	AgeFactor            decimal.Decimal `yaml:"age_factor" json:"age_factor"`
	AnnualPension        decimal.Decimal `yaml:"annual_pension" json:"annual_pension"`
	MinimumPension       decimal.Decimal `yaml:"minimum_pension" json:"minimum_pension"`
	CeilingApplied       bool            `yaml:"ceiling_applied" json:"ceiling_applied"`
}

// ScenarioFigures are the projected inputs and formula result for one scenario at one age
type ScenarioFigures struct {
	TotalWeeks  decimal.Decimal  `yaml:"total_weeks" json:"total_weeks"`
	AverageWage decimal.Decimal  `yaml:"average_wage" json:"average_wage"`
	Pension     PensionBreakdown `yaml:"pension" json:"pension"`
}

// PensionQuote is one row of a projection. When the continuation scheme is active the
// main figures describe the continuation scenario and Baseline the scenario without it.
type PensionQuote struct {
	RetirementAge   int              `yaml:"retirement_age" json:"retirement_age"`
	ScenarioFigures `yaml:",inline"`
	IsDesiredAge    bool             `yaml:"is_desired_age" json:"is_desired_age"`
	Baseline        *ScenarioFigures `yaml:"baseline,omitempty" json:"baseline,omitempty"`
}

// Monthly is the final monthly amount of the main scenario
func (q PensionQuote) Monthly() decimal.Decimal {
	return q.Pension.Monthly
}

// ContinuationGain is the monthly difference the continuation scheme makes at this age.
// It is zero when the quote carries no baseline.
func (q PensionQuote) ContinuationGain() decimal.Decimal {
	if q.Baseline == nil {
		return decimal.Zero
	}
	return q.Pension.Monthly.Sub(q.Baseline.Pension.Monthly)
}

// Projection is the full result of projecting one contributor profile
type Projection struct {
	ID          string              `yaml:"id" json:"id"`
	GeneratedAt time.Time           `yaml:"generated_at" json:"generated_at"`
	Constants   RegulatoryConstants `yaml:"constants" json:"constants"`
	Profile     ContributorProfile  `yaml:"profile" json:"profile"`
	Quotes      []PensionQuote      `yaml:"quotes" json:"quotes"`
}

// HasComparison reports whether the rows carry baseline figures
func (p *Projection) HasComparison() bool {
	for _, q := range p.Quotes {
		if q.Baseline != nil {
			return true
		}
	}
	return false
}

// DesiredQuote returns the row flagged as the desired age, or the last row when none is flagged.
func (p *Projection) DesiredQuote() (PensionQuote, bool) {
	if len(p.Quotes) == 0 {
		return PensionQuote{}, false
	}
	for _, q := range p.Quotes {
		if q.IsDesiredAge {
			return q, true
		}
	}
	return p.Quotes[len(p.Quotes)-1], true
}
