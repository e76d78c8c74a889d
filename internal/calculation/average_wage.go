package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ley73/internal/domain"
)

// AverageWindowWeeks is the trailing contribution window the base wage is averaged over
var AverageWindowWeeks = decimal.NewFromInt(250)

// WageBlend records how the trailing window was filled for one target age.
// Weeks are in priority order: continuation first, then ordinary contribution,
// then historical weeks for whatever the window still lacks.
type WageBlend struct {
	SchemeWeeks     decimal.Decimal `json:"scheme_weeks"`
	OrdinaryWeeks   decimal.Decimal `json:"ordinary_weeks"`
	HistoricalWeeks decimal.Decimal `json:"historical_weeks"`
	Wage            decimal.Decimal `json:"wage"`
}

// weeksBetween converts an age span to weeks, never negative
func weeksBetween(from, to decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, to.Sub(from).Mul(weeksPerYear))
}

// BlendAverageWage reconstructs the trailing window the contributor would have at targetAge.
// Ordinary weeks before the scheme start count in full even when the start lies
// beyond targetAge.
func BlendAverageWage(p domain.ContributorProfile, targetAge decimal.Decimal) WageBlend {
	if !p.StillContributing && !p.Continuation {
		return WageBlend{HistoricalWeeks: AverageWindowWeeks, Wage: p.HistoricalWage}
	}

	remaining := weeksBetween(p.CurrentAge, targetAge)

	var scheme, ordinary decimal.Decimal
	if p.Continuation {
		beforeStart := weeksBetween(p.CurrentAge, p.ContinuationStart())
		scheme = decimal.Max(decimal.Zero, remaining.Sub(beforeStart))
		if p.StillContributing {
			ordinary = beforeStart
		}
	} else {
		ordinary = remaining
	}

	schemeUsed := decimal.Min(AverageWindowWeeks, scheme)
	ordinaryUsed := decimal.Min(AverageWindowWeeks.Sub(schemeUsed), ordinary)
	historicalUsed := decimal.Max(decimal.Zero, AverageWindowWeeks.Sub(schemeUsed).Sub(ordinaryUsed))

	total := p.ContinuationWage.Mul(schemeUsed).
		Add(p.ContributionWage.Mul(ordinaryUsed)).
		Add(p.HistoricalWage.Mul(historicalUsed))

	return WageBlend{
		SchemeWeeks:     schemeUsed,
		OrdinaryWeeks:   ordinaryUsed,
		HistoricalWeeks: historicalUsed,
		Wage:            total.Div(AverageWindowWeeks),
	}
}

// AverageWage is the blended daily base wage for the given retirement age
func AverageWage(p domain.ContributorProfile, targetAge decimal.Decimal) decimal.Decimal {
	return BlendAverageWage(p, targetAge).Wage
}
