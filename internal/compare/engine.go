package compare

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/domain"
)

// ClientSummary is one line of a batch: the desired-age figures of a single client
type ClientSummary struct {
	Name         string `json:"name" yaml:"name"`
	ProjectionID string `json:"projectionId" yaml:"projection_id"`
	Continuation bool   `json:"continuation" yaml:"continuation"`

	DesiredAge      int             `json:"desiredAge" yaml:"desired_age"`
	TotalWeeks      decimal.Decimal `json:"totalWeeks" yaml:"total_weeks"`
	AverageWage     decimal.Decimal `json:"averageWage" yaml:"average_wage"`
	Monthly         decimal.Decimal `json:"monthly" yaml:"monthly"`
	BaselineMonthly decimal.Decimal `json:"baselineMonthly" yaml:"baseline_monthly"`
	MonthlyBenefit  decimal.Decimal `json:"monthlyBenefit" yaml:"monthly_benefit"`
	Eligible        bool            `json:"eligible" yaml:"eligible"`
	FloorApplied    bool            `json:"floorApplied" yaml:"floor_applied"`

	Summary ContinuationSummary `json:"summary" yaml:"summary"`
}

// BatchResult collects the projections and summaries of a client list
type BatchResult struct {
	Source          string               `json:"source,omitempty" yaml:"source,omitempty"`
	Year            int                  `json:"year" yaml:"year"`
	Clients         []ClientSummary      `json:"clients" yaml:"clients"`
	Projections     []*domain.Projection `json:"-" yaml:"-"`
	Recommendations []string             `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

// CompareEngine runs a batch of profiles through the calculation engine
type CompareEngine struct {
	CalcEngine *calculation.Engine
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{CalcEngine: calcEngine}
}

// CompareProfiles projects every profile in order. Cancellation is checked between clients.
func (ce *CompareEngine) CompareProfiles(ctx context.Context, profiles []domain.ContributorProfile) (*BatchResult, error) {
	result := &BatchResult{
		Year:        ce.CalcEngine.Constants.Year,
		Clients:     make([]ClientSummary, 0, len(profiles)),
		Projections: make([]*domain.Projection, 0, len(profiles)),
	}

	for i, p := range profiles {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch interrupted after %d of %d clients: %w", i, len(profiles), err)
		}

		projection, err := ce.CalcEngine.Run(p)
		if err != nil {
			return nil, fmt.Errorf("failed to project client %d (%s): %w", i+1, p.Name, err)
		}

		result.Projections = append(result.Projections, projection)
		result.Clients = append(result.Clients, SummarizeClient(projection))
	}

	result.Recommendations = GenerateBatchRecommendations(result)
	return result, nil
}

// SummarizeClient reduces a projection to its batch line
func SummarizeClient(p *domain.Projection) ClientSummary {
	c := ClientSummary{
		Name:         p.Profile.Name,
		ProjectionID: p.ID,
		Continuation: p.Profile.Continuation,
		Summary:      Summarize(p),
	}

	q, ok := p.DesiredQuote()
	if !ok {
		return c
	}
	c.DesiredAge = q.RetirementAge
	c.TotalWeeks = q.TotalWeeks
	c.AverageWage = q.AverageWage
	c.Monthly = q.Monthly()
	c.MonthlyBenefit = q.ContinuationGain()
	c.Eligible = q.Pension.Eligible
	c.FloorApplied = q.Pension.FloorApplied
	if q.Baseline != nil {
		c.BaselineMonthly = q.Baseline.Pension.Monthly
	}
	return c
}

// GenerateBatchRecommendations highlights the clients that stand out in a batch
func GenerateBatchRecommendations(b *BatchResult) []string {
	recommendations := []string{}
	if len(b.Clients) == 0 {
		return recommendations
	}

	var best *ClientSummary
	gaining, onFloor, ineligible := 0, 0, 0
	for i := range b.Clients {
		c := &b.Clients[i]
		if c.MonthlyBenefit.IsPositive() {
			gaining++
			if best == nil || c.MonthlyBenefit.GreaterThan(best.MonthlyBenefit) {
				best = c
			}
		}
		if !c.Eligible {
			ineligible++
		} else if c.FloorApplied {
			onFloor++
		}
	}

	if gaining > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("Continuation raises the desired-age pension for %d of %d clients", gaining, len(b.Clients)))
		recommendations = append(recommendations,
			fmt.Sprintf("Largest gain: %s, %s per month at age %d", best.Name, Money(best.MonthlyBenefit), best.DesiredAge))
	}
	if onFloor > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("%d clients would receive the guaranteed minimum", onFloor))
	}
	if ineligible > 0 {
		recommendations = append(recommendations,
			fmt.Sprintf("%d clients are not yet eligible at their desired age", ineligible))
	}
	return recommendations
}
