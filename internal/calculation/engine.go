package calculation

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ley73/internal/domain"
)

// StandardRetirementAges are always quoted, whatever the desired age
var StandardRetirementAges = []int{60, 61, 62, 63, 64, 65}

// RetirementAges returns the standard ages plus the desired age, ascending and without duplicates
func RetirementAges(desired int) []int {
	ages := append([]int(nil), StandardRetirementAges...)
	found := false
	for _, a := range ages {
		if a == desired {
			found = true
			break
		}
	}
	if !found {
		ages = append(ages, desired)
	}
	sort.Ints(ages)
	return ages
}

// Engine projects pensions for a contributor over the quoted retirement ages
type Engine struct {
	Constants domain.RegulatoryConstants
	Logger    Logger
}

// NewEngine creates an engine bound to one year's constants
func NewEngine(constants domain.RegulatoryConstants) *Engine {
	return &Engine{
		Constants: constants,
		Logger:    NopLogger{},
	}
}

// SetLogger sets the logger for the engine
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// ProjectedWeeks is the contribution weeks the contributor will have at the given age.
// Ordinary contribution accrues from the current age and takes precedence; the
// continuation scheme alone accrues from its start age. That span is not clamped,
// so a start after the given age subtracts weeks and a past start counts the
// weeks since then.
func ProjectedWeeks(p domain.ContributorProfile, age decimal.Decimal) decimal.Decimal {
	weeks := decimal.NewFromInt(int64(p.WeeksContributed))
	switch {
	case p.StillContributing:
		return weeks.Add(weeksBetween(p.CurrentAge, age))
	case p.Continuation:
		return weeks.Add(age.Sub(p.ContinuationStart()).Mul(weeksPerYear))
	default:
		return weeks
	}
}

// evaluateScenario runs the wage blend and the formula for one profile at one age.
// The baseline is this same call on the profile without continuation.
func (e *Engine) evaluateScenario(p domain.ContributorProfile, age decimal.Decimal) domain.ScenarioFigures {
	weeks := ProjectedWeeks(p, age)
	blend := BlendAverageWage(p, age)

	pension := EvaluatePension(e.Constants, FormulaInput{
		RetirementAge:    age,
		TotalWeeks:       weeks,
		AverageWage:      blend.Wage,
		Children:         p.Dependents.Children,
		DependentParents: p.Dependents.DependentParents,
		HasSpouse:        p.Dependents.HasSpouse,
	})

	if !pension.Eligible {
		e.Logger.Debugf("age %s: %s weeks below the %s week minimum", age, weeks.StringFixed(0), MinimumWeeks)
	} else {
		e.Logger.Debugf("age %s: weeks=%s wage=%s (scheme %s, ordinary %s, historical %s) bracket %s monthly=%s",
			age, weeks.StringFixed(0), blend.Wage.StringFixed(2),
			blend.SchemeWeeks.StringFixed(0), blend.OrdinaryWeeks.StringFixed(0), blend.HistoricalWeeks.StringFixed(0),
			pension.Bracket, pension.Monthly.StringFixed(2))
	}

	return domain.ScenarioFigures{
		TotalWeeks:  weeks,
		AverageWage: blend.Wage,
		Pension:     pension,
	}
}

// Quote computes the row for a single retirement age
func (e *Engine) Quote(p domain.ContributorProfile, age int) domain.PensionQuote {
	at := decimal.NewFromInt(int64(age))
	q := domain.PensionQuote{
		RetirementAge:   age,
		ScenarioFigures: e.evaluateScenario(p, at),
		IsDesiredAge:    age == p.DesiredRetirementAge,
	}
	if p.Continuation {
		baseline := e.evaluateScenario(p.WithoutContinuation(), at)
		q.Baseline = &baseline
	}
	return q
}

// Project quotes every retirement age for the profile in ascending order
func (e *Engine) Project(p domain.ContributorProfile) []domain.PensionQuote {
	ages := RetirementAges(p.DesiredRetirementAge)
	quotes := make([]domain.PensionQuote, 0, len(ages))
	for _, age := range ages {
		quotes = append(quotes, e.Quote(p, age))
	}
	return quotes
}

// Run validates the constants and wraps the projection with its run metadata
func (e *Engine) Run(p domain.ContributorProfile) (*domain.Projection, error) {
	if err := e.Constants.Validate(); err != nil {
		return nil, fmt.Errorf("invalid regulatory constants: %w", err)
	}

	e.Logger.Infof("projecting %s with %d constants (continuation=%t, still contributing=%t)",
		displayName(p), e.Constants.Year, p.Continuation, p.StillContributing)

	return &domain.Projection{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Constants:   e.Constants,
		Profile:     p,
		Quotes:      e.Project(p),
	}, nil
}

func displayName(p domain.ContributorProfile) string {
	if p.Name == "" {
		return "contributor"
	}
	return p.Name
}
