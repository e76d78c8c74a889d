package config

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ley73/internal/domain"
)

// RawProfile is a contributor profile as it arrives from a form, a spreadsheet row or
// a YAML file: every field is free text. Build turns it into a domain.ContributorProfile.
type RawProfile struct {
	Name                 string `yaml:"name"`
	CurrentAge           string `yaml:"current_age"`
	DesiredRetirementAge string `yaml:"desired_retirement_age"`
	WeeksContributed     string `yaml:"weeks_contributed"`
	HistoricalWage       string `yaml:"historical_wage"`
	HasSpouse            string `yaml:"has_spouse"`
	Children             string `yaml:"children"`
	DependentParents     string `yaml:"dependent_parents"`
	StillContributing    string `yaml:"still_contributing"`
	ContributionWage     string `yaml:"contribution_wage"`
	Continuation         string `yaml:"continuation"`
	ContinuationStartAge string `yaml:"continuation_start_age"`
	ContinuationWage     string `yaml:"continuation_wage"`
}

// Build coerces every field and validates the result. Empty or non-numeric values
// become zero, unrecognized flags become false, and a missing continuation start
// age means the scheme starts immediately.
func (r RawProfile) Build(v *Validator) (domain.ContributorProfile, error) {
	p := domain.ContributorProfile{
		Name:                 strings.TrimSpace(r.Name),
		CurrentAge:           NumberOrZero(r.CurrentAge),
		DesiredRetirementAge: wholeNumber(r.DesiredRetirementAge),
		WeeksContributed:     wholeNumber(r.WeeksContributed),
		HistoricalWage:       NumberOrZero(r.HistoricalWage),
		Dependents: domain.Dependents{
			HasSpouse:        ParseAffirmative(r.HasSpouse),
			Children:         wholeNumber(r.Children),
			DependentParents: clampParents(wholeNumber(r.DependentParents)),
		},
		StillContributing: ParseAffirmative(r.StillContributing),
		ContributionWage:  NumberOrZero(r.ContributionWage),
		Continuation:      ParseAffirmative(r.Continuation),
		ContinuationWage:  NumberOrZero(r.ContinuationWage),
	}

	if p.Continuation {
		if start, ok := ParseNumber(r.ContinuationStartAge); ok && start.IsPositive() {
			p.ContinuationStartAge = &start
		}
	} else {
		p.ContinuationWage = decimal.Zero
	}

	if v == nil {
		v = NewValidator()
	}
	if err := v.Profile(p); err != nil {
		return domain.ContributorProfile{}, err
	}
	return p, nil
}

// wholeNumber truncates like a form integer field would
func wholeNumber(s string) int {
	return int(NumberOrZero(s).IntPart())
}

func clampParents(n int) int {
	switch {
	case n < 0:
		return 0
	case n > domain.MaxDependentParents:
		return domain.MaxDependentParents
	default:
		return n
	}
}
