package breakeven

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ley73/internal/domain"
)

// Goal defines what the continuation wage has to achieve
type Goal string

const (
	GoalTargetMonthly Goal = "target_monthly" // reach a monthly pension at the desired age
	GoalBeatBaseline  Goal = "beat_baseline"  // pay more than not enrolling at all
)

// ParseGoal accepts the goal names and their short forms ("target", "beat")
func ParseGoal(s string) (Goal, error) {
	switch s {
	case string(GoalTargetMonthly), "target":
		return GoalTargetMonthly, nil
	case string(GoalBeatBaseline), "beat", "baseline":
		return GoalBeatBaseline, nil
	default:
		return "", fmt.Errorf("unknown goal %q (use %s or %s)", s, GoalTargetMonthly, GoalBeatBaseline)
	}
}

// Constraints bound the declared daily wage the solver may pick
type Constraints struct {
	// Defaults: the minimum daily wage and the wage cap of the constants year
	MinWage *decimal.Decimal `json:"min_wage,omitempty"`
	MaxWage *decimal.Decimal `json:"max_wage,omitempty"`

	// Monthly pension for GoalTargetMonthly
	TargetMonthly *decimal.Decimal `json:"target_monthly,omitempty"`

	// Continuation start age; nil keeps the profile's
	StartAge *decimal.Decimal `json:"start_age,omitempty"`
}

// Request is one break-even search for a single contributor
type Request struct {
	Profile       domain.ContributorProfile
	Goal          Goal
	Constraints   Constraints
	MaxIterations int             // Maximum bisection steps
	Tolerance     decimal.Decimal // Width of the final wage interval, pesos per day
}

// Result contains the wage found and the desired-age figures it produces
type Result struct {
	Name            string `json:"name,omitempty"`
	Goal            Goal   `json:"goal"`
	Success         bool   `json:"success"`
	Iterations      int    `json:"iterations"`
	ConvergenceInfo string `json:"convergence_info,omitempty"`

	Target       *decimal.Decimal `json:"target_monthly,omitempty"`
	MinWage      decimal.Decimal  `json:"min_wage"`
	MaxWage      decimal.Decimal  `json:"max_wage"`
	RequiredWage decimal.Decimal  `json:"required_wage"`

	// Figures at RequiredWage
	DesiredAge      int                 `json:"desired_age"`
	Quote           domain.PensionQuote `json:"quote"`
	Monthly         decimal.Decimal     `json:"monthly"`
	BaselineMonthly decimal.Decimal     `json:"baseline_monthly"`
	MonthlyGain     decimal.Decimal     `json:"monthly_gain"`
}

// SolverOptions configures the bisection
type SolverOptions struct {
	Tolerance     decimal.Decimal // Convergence tolerance
	MaxIterations int             // Maximum iterations
}

// DefaultSolverOptions returns default solver configuration
func DefaultSolverOptions() SolverOptions {
	return SolverOptions{
		Tolerance:     decimal.RequireFromString("0.01"), // one cent per day
		MaxIterations: 60,
	}
}

// Validate checks if constraints are internally consistent
func (c *Constraints) Validate(goal Goal) error {
	switch goal {
	case GoalTargetMonthly:
		if c.TargetMonthly == nil || !c.TargetMonthly.IsPositive() {
			return &BreakEvenError{
				Operation: "validate_constraints",
				Message:   "a positive target monthly pension is required",
			}
		}
	case GoalBeatBaseline:
	default:
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   fmt.Sprintf("unsupported goal: %s", goal),
		}
	}

	if c.MinWage != nil && c.MinWage.IsNegative() {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_wage cannot be negative",
		}
	}
	if c.MinWage != nil && c.MaxWage != nil && c.MinWage.GreaterThan(*c.MaxWage) {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "min_wage cannot be greater than max_wage",
		}
	}
	if c.StartAge != nil && !c.StartAge.IsPositive() {
		return &BreakEvenError{
			Operation: "validate_constraints",
			Message:   "start_age must be positive",
		}
	}
	return nil
}

// BreakEvenError represents errors from break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}
