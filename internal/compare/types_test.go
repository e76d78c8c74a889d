package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ley73/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// quote builds an eligible row; a negative baseline leaves the row without one
func quote(age int, monthly, baseline int64, desired bool) domain.PensionQuote {
	q := domain.PensionQuote{
		RetirementAge: age,
		ScenarioFigures: domain.ScenarioFigures{
			TotalWeeks:  decimal.NewFromInt(1000),
			AverageWage: decimal.NewFromInt(500),
			Pension:     domain.PensionBreakdown{Eligible: true, Monthly: decimal.NewFromInt(monthly)},
		},
		IsDesiredAge: desired,
	}
	if baseline >= 0 {
		q.Baseline = &domain.ScenarioFigures{
			Pension: domain.PensionBreakdown{Eligible: true, Monthly: decimal.NewFromInt(baseline)},
		}
	}
	return q
}

func projection(name string, quotes ...domain.PensionQuote) *domain.Projection {
	return &domain.Projection{
		ID:      "run-" + name,
		Profile: domain.ContributorProfile{Name: name, Continuation: quotes[0].Baseline != nil},
		Quotes:  quotes,
	}
}

func TestSummarize_ContinuationGain(t *testing.T) {
	p := projection("Ana",
		quote(60, 10000, 9000, false),
		quote(61, 11000, 9500, true),
		quote(62, 12500, 10000, false),
	)

	s := Summarize(p)

	assert.Equal(t, "Ana", s.Name)
	assert.True(t, s.HasComparison)
	require.Len(t, s.Rows, 3)
	assert.True(t, s.Rows[0].MonthlyBenefit.Equal(dec("1000")))
	assert.True(t, s.Rows[2].AnnualBenefit.Equal(dec("30000")), "annual is twelve months")
	assert.True(t, s.Rows[1].BaselineMonthly.Equal(dec("9500")))

	// (1000 + 1500 + 2500) / 3
	assert.True(t, s.AverageMonthlyBenefit.Round(2).Equal(dec("1666.67")), "got %s", s.AverageMonthlyBenefit)
	assert.True(t, s.AverageAnnualBenefit.Round(2).Equal(dec("20000")), "got %s", s.AverageAnnualBenefit)

	assert.Equal(t, 61, s.DesiredAge)
	assert.True(t, s.DesiredMonthly.Equal(dec("11000")))
	assert.True(t, s.DesiredBaselineMonthly.Equal(dec("9500")))
	assert.True(t, s.DesiredBenefit.Equal(dec("1500")))

	assert.Equal(t, 62, s.BestAge)
	assert.True(t, s.BestBenefit.Equal(dec("2500")))

	assert.Equal(t, []string{
		"Continuation adds $1,500.00 per month ($18,000.00 per year) at the desired age 61",
		"Largest gain is at age 62: $2,500.00 per month",
	}, s.Recommendations)
}

func TestSummarize_DesiredFallsBackToLastRow(t *testing.T) {
	p := projection("Bruno",
		quote(60, 9000, 8000, false),
		quote(65, 15000, 12000, false),
	)

	s := Summarize(p)

	assert.Equal(t, 65, s.DesiredAge)
	assert.True(t, s.DesiredBenefit.Equal(dec("3000")))
	assert.Equal(t, 65, s.BestAge)
	assert.Len(t, s.Recommendations, 1, "best age equals the desired age")
}

func TestSummarize_BestAgeTiesKeepEarliest(t *testing.T) {
	p := projection("Carla",
		quote(60, 9000, 8000, true),
		quote(61, 9500, 8500, false),
	)

	s := Summarize(p)
	assert.Equal(t, 60, s.BestAge)
}

func TestSummarize_WithoutComparison(t *testing.T) {
	floor := quote(62, 8364, -1, true)
	floor.Pension.FloorApplied = true
	p := projection("Diego", quote(60, 8364, -1, false), floor)

	s := Summarize(p)

	assert.False(t, s.HasComparison)
	assert.Zero(t, s.BestAge)
	assert.True(t, s.AverageMonthlyBenefit.IsZero())
	assert.True(t, s.DesiredBenefit.IsZero())
	assert.True(t, s.Rows[1].BaselineMonthly.IsZero())
	assert.Equal(t, []string{
		"At age 62 the pension is the guaranteed minimum of $8,364.00; the continuation scheme may raise it",
	}, s.Recommendations)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(&domain.Projection{Profile: domain.ContributorProfile{Name: "Elena"}})

	assert.Equal(t, "Elena", s.Name)
	assert.Empty(t, s.Rows)
	assert.True(t, s.AverageMonthlyBenefit.IsZero())
	assert.Empty(t, s.Recommendations)
}

func TestSummarize_EligibleEarlier(t *testing.T) {
	ineligible := quote(60, 8364, 0, false)
	ineligible.Baseline.Pension = domain.PensionBreakdown{}
	p := projection("Fer", ineligible, quote(61, 9000, 8500, true))

	s := Summarize(p)

	assert.Equal(t, 60, s.EligibleEarlierAt)
	assert.Contains(t, s.Recommendations, "Continuation reaches the week minimum by age 60")
}

func TestGenerateRecommendations(t *testing.T) {
	tests := []struct {
		name     string
		summary  ContinuationSummary
		expected []string
	}{
		{
			name: "not eligible",
			summary: ContinuationSummary{
				Rows:       []RowBenefit{{RetirementAge: 60}},
				DesiredAge: 60,
			},
			expected: []string{"Not yet eligible at age 60: fewer than 500 contribution weeks"},
		},
		{
			name: "continuation lowers the pension",
			summary: ContinuationSummary{
				Rows:            []RowBenefit{{RetirementAge: 63}},
				HasComparison:   true,
				DesiredAge:      63,
				DesiredEligible: true,
				DesiredBenefit:  dec("-250.5"),
				BestAge:         63,
				BestBenefit:     dec("-250.5"),
			},
			expected: []string{"Continuation lowers the pension at age 63 by $250.50 per month; review the declared wage"},
		},
		{
			name: "both scenarios on the floor",
			summary: ContinuationSummary{
				Rows:                []RowBenefit{{RetirementAge: 60}},
				HasComparison:       true,
				DesiredAge:          60,
				DesiredEligible:     true,
				DesiredFloorApplied: true,
				BestAge:             60,
			},
			expected: []string{"Both scenarios pay the guaranteed minimum at age 60; a higher continuation wage is needed for a gain"},
		},
		{
			name: "eligible without comparison above the floor",
			summary: ContinuationSummary{
				Rows:            []RowBenefit{{RetirementAge: 65}},
				DesiredAge:      65,
				DesiredEligible: true,
			},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GenerateRecommendations(&tt.summary))
		})
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$8,364.00", Money(dec("8364")))
	assert.Equal(t, "$1,234,567.89", Money(dec("1234567.891")))
	assert.Equal(t, "-$250.50", Money(dec("-250.5")))
	assert.Equal(t, "$0.00", Money(decimal.Zero))
}
