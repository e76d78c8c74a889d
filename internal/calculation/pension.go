package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ley73/internal/domain"
)

var (
	// MinimumWeeks is the eligibility threshold for an old-age or severance pension
	MinimumWeeks = decimal.NewFromInt(500)

	daysPerYear   = decimal.NewFromInt(365)
	monthsPerYear = decimal.NewFromInt(12)
	weeksPerYear  = decimal.NewFromInt(52)

	half    = decimal.RequireFromString("0.5")
	quarter = decimal.RequireFromString("0.25")
)

// FormulaInput carries everything the pension formula needs for a single retirement age
type FormulaInput struct {
	RetirementAge    decimal.Decimal
	TotalWeeks       decimal.Decimal
	AverageWage      decimal.Decimal
	Children         int
	DependentParents int
	HasSpouse        bool
}

// EvaluatePension applies the statutory formula. Contributors below the minimum
// weeks get the zero breakdown, which callers must present as "not yet eligible".
func EvaluatePension(c domain.RegulatoryConstants, in FormulaInput) domain.PensionBreakdown {
	if in.TotalWeeks.LessThan(MinimumWeeks) {
		return domain.PensionBreakdown{}
	}

	baseWage := decimal.Min(in.AverageWage, c.WageCap())
	multiple := baseWage.Div(c.MinimumDailyWage)
	idx, row := LookupBracket(multiple)

	annualBase := baseWage.Mul(row.BasePercentage).Mul(daysPerYear)
	bonusYears := RoundBonusYears(in.TotalWeeks)
	annualIncrement := baseWage.Mul(row.IncrementPercentage).Mul(daysPerYear).Mul(bonusYears)
	subtotal := annualBase.Add(annualIncrement)

	allowances := ApplyAllowances(subtotal, in.Children, in.DependentParents, in.HasSpouse)
	withAllowances := subtotal.Add(allowances.AnnualAmount)

	factor := AgeFactor(in.RetirementAge)
	annual := withAllowances.Mul(factor)
	monthlyPreFloor := annual.Div(monthsPerYear)

	ceilingApplied := false
	if c.ReplacementCeiling {
		ceiling := ReplacementCeiling(baseWage, in.TotalWeeks)
		if monthlyPreFloor.GreaterThan(ceiling) {
			monthlyPreFloor = ceiling
			ceilingApplied = true
		}
	}

	floor := c.MinimumPension()

	return domain.PensionBreakdown{
		Monthly:              decimal.Max(monthlyPreFloor, floor),
		MonthlyBeforeFloor:   monthlyPreFloor,
		FloorApplied:         monthlyPreFloor.LessThan(floor),
		BaseWageUsed:         baseWage,
		Eligible:             true,
		WageMultiple:         multiple,
		Bracket:              BracketLabel(idx),
		BasePercentage:       row.BasePercentage,
		IncrementPercentage:  row.IncrementPercentage,
		BonusYears:           bonusYears,
		AnnualBase:           annualBase,
		AnnualIncrement:      annualIncrement,
		AnnualSubtotal:       subtotal,
		Allowances:           allowances,
		AnnualWithAllowances: withAllowances,
		AgeFactor:            factor,
		AnnualPension:        annual,
		MinimumPension:       floor,
		CeilingApplied:       ceilingApplied,
	}
}

// RoundBonusYears converts weeks beyond the minimum into increment years.
// Fractions below a quarter are dropped, fractions up to one half count as half a
// year, and anything above one half counts as a full year.
func RoundBonusYears(totalWeeks decimal.Decimal) decimal.Decimal {
	years := totalWeeks.Sub(MinimumWeeks).Div(weeksPerYear)
	if !years.IsPositive() {
		return decimal.Zero
	}
	whole := years.Floor()
	fraction := years.Sub(whole)
	switch {
	case fraction.LessThan(quarter):
		return whole
	case fraction.LessThanOrEqual(half):
		return whole.Add(half)
	default:
		return years.Ceil()
	}
}

var ageFactors = []struct {
	upTo      decimal.Decimal
	inclusive bool
	factor    decimal.Decimal
}{
	{decimal.RequireFromString("60.5"), true, decimal.RequireFromString("0.75")},
	{decimal.RequireFromString("61.5"), true, decimal.RequireFromString("0.80")},
	{decimal.RequireFromString("62.5"), true, decimal.RequireFromString("0.85")},
	{decimal.RequireFromString("63.5"), true, decimal.RequireFromString("0.90")},
	{decimal.RequireFromString("64.5"), false, decimal.RequireFromString("0.95")},
}

// AgeFactor is the early retirement discount for the given age; 1 from 64.5 onwards
func AgeFactor(age decimal.Decimal) decimal.Decimal {
	for _, f := range ageFactors {
		if age.LessThan(f.upTo) || (f.inclusive && age.Equal(f.upTo)) {
			return f.factor
		}
	}
	return decimal.NewFromInt(1)
}

var (
	ceilingRateShort = decimal.RequireFromString("0.85")
	ceilingRateMid   = decimal.RequireFromString("0.90")
	ceilingWeeksMid  = decimal.NewFromInt(1500)
	ceilingWeeksFull = decimal.NewFromInt(2000)
)

// ReplacementCeiling is the monthly cap used when the constants table enables it:
// 85% of the monthly base wage under 1500 weeks, 90% under 2000, 100% otherwise.
func ReplacementCeiling(baseWage, totalWeeks decimal.Decimal) decimal.Decimal {
	monthlyWage := baseWage.Mul(daysPerYear).Div(monthsPerYear)
	switch {
	case totalWeeks.LessThan(ceilingWeeksMid):
		return monthlyWage.Mul(ceilingRateShort)
	case totalWeeks.LessThan(ceilingWeeksFull):
		return monthlyWage.Mul(ceilingRateMid)
	default:
		return monthlyWage
	}
}
