package domain

import (
	"github.com/shopspring/decimal"
)

// MaxDependentParents is the number of ascendants the law recognizes for allowances.
const MaxDependentParents = 2

// Dependents describes the family members that earn allowances on top of the pension
type Dependents struct {
	HasSpouse        bool `yaml:"has_spouse" json:"has_spouse"`
	Children         int  `yaml:"children" json:"children" validate:"gte=0"`
	DependentParents int  `yaml:"dependent_parents" json:"dependent_parents" validate:"gte=0,lte=2"`
}

// ContributorProfile is the strictly typed input for a projection run.
// It is built once at the boundary (config.RawProfile, importer) and never mutated afterwards.
type ContributorProfile struct {
	Name                 string          `yaml:"name,omitempty" json:"name,omitempty"`
	CurrentAge           decimal.Decimal `yaml:"current_age" json:"current_age" validate:"age"`
	DesiredRetirementAge int             `yaml:"desired_retirement_age" json:"desired_retirement_age" validate:"age"`
	WeeksContributed     int             `yaml:"weeks_contributed" json:"weeks_contributed" validate:"gte=0"`
	HistoricalWage       decimal.Decimal `yaml:"historical_wage" json:"historical_wage" validate:"gte=0"` // average daily contribution wage
	Dependents           Dependents      `yaml:"dependents" json:"dependents"`

	// Ordinary contribution (still employed until retirement)
	StillContributing bool            `yaml:"still_contributing" json:"still_contributing"`
	ContributionWage  decimal.Decimal `yaml:"contribution_wage" json:"contribution_wage" validate:"gte=0"`

	// Voluntary continuation scheme
	Continuation         bool             `yaml:"continuation" json:"continuation"`
	ContinuationStartAge *decimal.Decimal `yaml:"continuation_start_age,omitempty" json:"continuation_start_age,omitempty" validate:"omitempty,age"`
	ContinuationWage     decimal.Decimal  `yaml:"continuation_wage" json:"continuation_wage" validate:"gte=0"`
}

// WithoutContinuation returns a copy of the profile with the continuation scheme disabled.
func (p ContributorProfile) WithoutContinuation() ContributorProfile {
	p.Continuation = false
	p.ContinuationStartAge = nil
	p.ContinuationWage = decimal.Zero
	return p
}

// ContinuationStart returns the age at which continuation weeks start accruing.
// A missing start age means the scheme begins immediately. A start age in the past
// is returned as given.
func (p ContributorProfile) ContinuationStart() decimal.Decimal {
	if p.ContinuationStartAge == nil {
		return p.CurrentAge
	}
	return *p.ContinuationStartAge
}

// ParentsForAllowance clamps the dependent parent count to the legal range.
func (d Dependents) ParentsForAllowance() int {
	switch {
	case d.DependentParents < 0:
		return 0
	case d.DependentParents > MaxDependentParents:
		return MaxDependentParents
	default:
		return d.DependentParents
	}
}

// ChildrenForAllowance never reports a negative child count.
func (d Dependents) ChildrenForAllowance() int {
	if d.Children < 0 {
		return 0
	}
	return d.Children
}

// HasComparison reports whether projections for this profile carry a baseline.
func (p ContributorProfile) HasComparison() bool {
	return p.Continuation
}
