package breakeven

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/domain"
)

var two = decimal.NewFromInt(2)

// Solver searches the declared continuation wage that meets a goal at the desired age
type Solver struct {
	Engine  *calculation.Engine
	Options SolverOptions
}

// NewSolver creates a new break-even solver
func NewSolver(engine *calculation.Engine, options SolverOptions) *Solver {
	return &Solver{
		Engine:  engine,
		Options: options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(engine *calculation.Engine) *Solver {
	return NewSolver(engine, DefaultSolverOptions())
}

// Solve bisects the wage range. The low end must miss the goal and the high end must
// meet it; the answer is the upper end of the final interval, so the goal holds there
// even where the replacement table steps down at a bracket boundary.
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	if err := req.Constraints.Validate(req.Goal); err != nil {
		return nil, err
	}
	if req.Profile.DesiredRetirementAge <= 0 {
		return nil, &BreakEvenError{Operation: "solve", Message: "desired retirement age is required"}
	}
	if err := s.Engine.Constants.Validate(); err != nil {
		return nil, &BreakEvenError{Operation: "solve", Message: "invalid regulatory constants", Cause: err}
	}

	// Apply defaults
	if req.MaxIterations == 0 {
		req.MaxIterations = s.Options.MaxIterations
	}
	if req.Tolerance.IsZero() {
		req.Tolerance = s.Options.Tolerance
	}

	lo, hi := s.bounds(req.Constraints)
	result := &Result{
		Name:    req.Profile.Name,
		Goal:    req.Goal,
		Target:  req.Constraints.TargetMonthly,
		MinWage: lo,
		MaxWage: hi,
	}

	if q := s.quoteAt(req, hi); !meets(req, q) {
		result.ConvergenceInfo = fmt.Sprintf("goal not reached even at the highest wage of %s per day", hi.StringFixed(2))
		s.fill(result, hi, q)
		return result, nil
	}
	if q := s.quoteAt(req, lo); meets(req, q) {
		result.Success = true
		result.ConvergenceInfo = "goal already met at the lowest wage"
		s.fill(result, lo, q)
		return result, nil
	}

	for hi.Sub(lo).GreaterThan(req.Tolerance) && result.Iterations < req.MaxIterations {
		select {
		case <-ctx.Done():
			return nil, &BreakEvenError{Operation: "solve", Message: "search interrupted", Cause: ctx.Err()}
		default:
		}

		result.Iterations++
		mid := lo.Add(hi).Div(two)
		q := s.quoteAt(req, mid)
		s.Engine.Logger.Debugf("break-even step %d: wage %s gives %s (gain %s)",
			result.Iterations, mid.StringFixed(4), q.Monthly().StringFixed(2), q.ContinuationGain().StringFixed(2))
		if meets(req, q) {
			hi = mid
		} else {
			lo = mid
		}
	}

	wage := hi.RoundCeil(2)
	q := s.quoteAt(req, wage)
	if !meets(req, q) {
		wage = hi
		q = s.quoteAt(req, wage)
	}

	result.Success = true
	result.ConvergenceInfo = fmt.Sprintf("converged within %s per day after %d steps", req.Tolerance.String(), result.Iterations)
	s.fill(result, wage, q)
	return result, nil
}

func (s *Solver) bounds(c Constraints) (decimal.Decimal, decimal.Decimal) {
	lo := s.Engine.Constants.MinimumDailyWage
	hi := s.Engine.Constants.WageCap()
	if c.MinWage != nil {
		lo = *c.MinWage
	}
	if c.MaxWage != nil {
		hi = *c.MaxWage
	}
	return lo, hi
}

// quoteAt projects the desired age with the scheme enrolled at wage
func (s *Solver) quoteAt(req Request, wage decimal.Decimal) domain.PensionQuote {
	return s.Engine.Quote(withContinuation(req, wage), req.Profile.DesiredRetirementAge)
}

func withContinuation(req Request, wage decimal.Decimal) domain.ContributorProfile {
	p := req.Profile
	p.Continuation = true
	p.ContinuationWage = wage
	if req.Constraints.StartAge != nil {
		start := *req.Constraints.StartAge
		p.ContinuationStartAge = &start
	}
	return p
}

func meets(req Request, q domain.PensionQuote) bool {
	if req.Goal == GoalTargetMonthly {
		return q.Monthly().GreaterThanOrEqual(*req.Constraints.TargetMonthly)
	}
	return q.ContinuationGain().IsPositive()
}

func (s *Solver) fill(r *Result, wage decimal.Decimal, q domain.PensionQuote) {
	r.RequiredWage = wage
	r.DesiredAge = q.RetirementAge
	r.Quote = q
	r.Monthly = q.Monthly()
	r.MonthlyGain = q.ContinuationGain()
	if q.Baseline != nil {
		r.BaselineMonthly = q.Baseline.Pension.Monthly
	}
}
