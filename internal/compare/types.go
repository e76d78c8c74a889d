package compare

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/domain"
)

var monthsPerYear = decimal.NewFromInt(12)

// RowBenefit is the continuation gain at one retirement age
type RowBenefit struct {
	RetirementAge        int             `json:"retirementAge" yaml:"retirement_age"`
	Monthly              decimal.Decimal `json:"monthly" yaml:"monthly"`
	BaselineMonthly      decimal.Decimal `json:"baselineMonthly" yaml:"baseline_monthly"`
	MonthlyBenefit       decimal.Decimal `json:"monthlyBenefit" yaml:"monthly_benefit"`
	AnnualBenefit        decimal.Decimal `json:"annualBenefit" yaml:"annual_benefit"`
	FloorApplied         bool            `json:"floorApplied" yaml:"floor_applied"`
	BaselineFloorApplied bool            `json:"baselineFloorApplied" yaml:"baseline_floor_applied"`
	IsDesiredAge         bool            `json:"isDesiredAge" yaml:"is_desired_age"`
}

// ContinuationSummary condenses a projection into the figures a client decides on
type ContinuationSummary struct {
	Name          string       `json:"name,omitempty" yaml:"name,omitempty"`
	HasComparison bool         `json:"hasComparison" yaml:"has_comparison"`
	Rows          []RowBenefit `json:"rows" yaml:"rows"`

	// Averages over every quoted age
	AverageMonthlyBenefit decimal.Decimal `json:"averageMonthlyBenefit" yaml:"average_monthly_benefit"`
	AverageAnnualBenefit  decimal.Decimal `json:"averageAnnualBenefit" yaml:"average_annual_benefit"`

	// Desired age, or the last quoted age when none is flagged
	DesiredAge             int             `json:"desiredAge" yaml:"desired_age"`
	DesiredMonthly         decimal.Decimal `json:"desiredMonthly" yaml:"desired_monthly"`
	DesiredBaselineMonthly decimal.Decimal `json:"desiredBaselineMonthly" yaml:"desired_baseline_monthly"`
	DesiredBenefit         decimal.Decimal `json:"desiredBenefit" yaml:"desired_benefit"`
	DesiredEligible        bool            `json:"desiredEligible" yaml:"desired_eligible"`
	DesiredFloorApplied    bool            `json:"desiredFloorApplied" yaml:"desired_floor_applied"`

	// Age with the largest monthly gain; earliest age wins ties
	BestAge     int             `json:"bestAge,omitempty" yaml:"best_age,omitempty"`
	BestBenefit decimal.Decimal `json:"bestBenefit" yaml:"best_benefit"`

	// First age at which only the continuation scenario reaches the week minimum
	EligibleEarlierAt int `json:"eligibleEarlierAt,omitempty" yaml:"eligible_earlier_at,omitempty"`

	Recommendations []string `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

// Summarize computes the continuation summary of a projection
func Summarize(p *domain.Projection) ContinuationSummary {
	s := ContinuationSummary{
		Name:          p.Profile.Name,
		HasComparison: p.HasComparison(),
		Rows:          make([]RowBenefit, 0, len(p.Quotes)),
	}
	if len(p.Quotes) == 0 {
		return s
	}

	total := decimal.Zero
	for _, q := range p.Quotes {
		row := RowBenefit{
			RetirementAge:  q.RetirementAge,
			Monthly:        q.Monthly(),
			MonthlyBenefit: q.ContinuationGain(),
			FloorApplied:   q.Pension.FloorApplied,
			IsDesiredAge:   q.IsDesiredAge,
		}
		row.AnnualBenefit = row.MonthlyBenefit.Mul(monthsPerYear)
		if q.Baseline != nil {
			row.BaselineMonthly = q.Baseline.Pension.Monthly
			row.BaselineFloorApplied = q.Baseline.Pension.FloorApplied
			if s.EligibleEarlierAt == 0 && q.Pension.Eligible && !q.Baseline.Pension.Eligible {
				s.EligibleEarlierAt = q.RetirementAge
			}
		}
		s.Rows = append(s.Rows, row)
		total = total.Add(row.MonthlyBenefit)

		if s.HasComparison && (s.BestAge == 0 || row.MonthlyBenefit.GreaterThan(s.BestBenefit)) {
			s.BestAge = row.RetirementAge
			s.BestBenefit = row.MonthlyBenefit
		}
	}

	s.AverageMonthlyBenefit = total.Div(decimal.NewFromInt(int64(len(s.Rows))))
	s.AverageAnnualBenefit = s.AverageMonthlyBenefit.Mul(monthsPerYear)

	desired, _ := p.DesiredQuote()
	s.DesiredAge = desired.RetirementAge
	s.DesiredMonthly = desired.Monthly()
	s.DesiredBenefit = desired.ContinuationGain()
	s.DesiredEligible = desired.Pension.Eligible
	s.DesiredFloorApplied = desired.Pension.FloorApplied
	if desired.Baseline != nil {
		s.DesiredBaselineMonthly = desired.Baseline.Pension.Monthly
	}

	s.Recommendations = GenerateRecommendations(&s)
	return s
}

// GenerateRecommendations turns a summary into short client-facing notes
func GenerateRecommendations(s *ContinuationSummary) []string {
	recommendations := []string{}
	if len(s.Rows) == 0 {
		return recommendations
	}

	if !s.DesiredEligible {
		recommendations = append(recommendations,
			fmt.Sprintf("Not yet eligible at age %d: fewer than %s contribution weeks", s.DesiredAge, calculation.MinimumWeeks))
	}

	if !s.HasComparison {
		if s.DesiredEligible && s.DesiredFloorApplied {
			recommendations = append(recommendations,
				fmt.Sprintf("At age %d the pension is the guaranteed minimum of %s; the continuation scheme may raise it",
					s.DesiredAge, Money(s.DesiredMonthly)))
		}
		return recommendations
	}

	switch {
	case s.DesiredBenefit.IsPositive():
		recommendations = append(recommendations,
			fmt.Sprintf("Continuation adds %s per month (%s per year) at the desired age %d",
				Money(s.DesiredBenefit), Money(s.DesiredBenefit.Mul(monthsPerYear)), s.DesiredAge))
	case s.DesiredBenefit.IsNegative():
		recommendations = append(recommendations,
			fmt.Sprintf("Continuation lowers the pension at age %d by %s per month; review the declared wage",
				s.DesiredAge, Money(s.DesiredBenefit.Abs())))
	case s.DesiredEligible && s.DesiredFloorApplied:
		recommendations = append(recommendations,
			fmt.Sprintf("Both scenarios pay the guaranteed minimum at age %d; a higher continuation wage is needed for a gain",
				s.DesiredAge))
	}

	if s.BestAge != 0 && s.BestAge != s.DesiredAge && s.BestBenefit.GreaterThan(s.DesiredBenefit) {
		recommendations = append(recommendations,
			fmt.Sprintf("Largest gain is at age %d: %s per month", s.BestAge, Money(s.BestBenefit)))
	}

	if s.EligibleEarlierAt != 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Continuation reaches the week minimum by age %d", s.EligibleEarlierAt))
	}

	return recommendations
}

// Money renders an amount with thousands separators and two decimals
func Money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	sign := ""
	if f < 0 {
		sign = "-"
		f = -f
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", f)
}
