package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/rgehrsitz/ley73/internal/domain"
)

func agePtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestBlendAverageWage(t *testing.T) {
	tests := []struct {
		name       string
		profile    domain.ContributorProfile
		target     string
		scheme     string
		ordinary   string
		historical string
		wage       string
	}{
		{
			name:       "no contribution keeps the historical wage",
			profile:    domain.ContributorProfile{CurrentAge: dec("58"), HistoricalWage: dec("450")},
			target:     "65",
			historical: "250",
			wage:       "450",
		},
		{
			name: "still contributing fills the window",
			profile: domain.ContributorProfile{
				CurrentAge: dec("58"), HistoricalWage: dec("450"),
				StillContributing: true, ContributionWage: dec("700"),
			},
			target:   "63",
			ordinary: "250",
			wage:     "700",
		},
		{
			name: "still contributing for two years",
			profile: domain.ContributorProfile{
				CurrentAge: dec("58"), HistoricalWage: dec("450"),
				StillContributing: true, ContributionWage: dec("700"),
			},
			target:     "60",
			ordinary:   "104",
			historical: "146",
			wage:       "554", // (700*104 + 450*146) / 250
		},
		{
			name: "scheme starting now",
			profile: domain.ContributorProfile{
				CurrentAge: dec("58"), HistoricalWage: dec("450"),
				Continuation: true, ContinuationWage: dec("2828.5"),
			},
			target:     "60",
			scheme:     "104",
			historical: "146",
			wage:       "1439.456", // (2828.5*104 + 450*146) / 250
		},
		{
			name: "scheme after ordinary contribution",
			profile: domain.ContributorProfile{
				CurrentAge: dec("58"), HistoricalWage: dec("450"),
				StillContributing: true, ContributionWage: dec("700"),
				Continuation: true, ContinuationStartAge: agePtr("60"), ContinuationWage: dec("2000"),
			},
			target:     "62",
			scheme:     "104",
			ordinary:   "104",
			historical: "42",
			wage:       "1198.8", // (2000*104 + 700*104 + 450*42) / 250
		},
		{
			name: "scheme start in the future without ordinary contribution",
			profile: domain.ContributorProfile{
				CurrentAge: dec("58"), HistoricalWage: dec("450"),
				Continuation: true, ContinuationStartAge: agePtr("60"), ContinuationWage: dec("2000"),
			},
			target:     "61",
			scheme:     "52",
			historical: "198",
			wage:       "772.4", // (2000*52 + 450*198) / 250
		},
		{
			name: "scheme starting after the target age",
			profile: domain.ContributorProfile{
				CurrentAge: dec("58"), HistoricalWage: dec("450"),
				StillContributing: true, ContributionWage: dec("700"),
				Continuation: true, ContinuationStartAge: agePtr("64"), ContinuationWage: dec("2000"),
			},
			target:   "60",
			ordinary: "250",
			wage:     "700",
		},
		{
			name: "scheme start beyond the target counts pre-scheme weeks in full",
			profile: domain.ContributorProfile{
				CurrentAge: dec("58"), HistoricalWage: dec("450"),
				StillContributing: true, ContributionWage: dec("700"),
				Continuation: true, ContinuationStartAge: agePtr("59"), ContinuationWage: dec("2000"),
			},
			target:     "58.5",
			ordinary:   "52",
			historical: "198",
			wage:       "502", // (700*52 + 450*198) / 250
		},
		{
			name: "long scheme saturates the window",
			profile: domain.ContributorProfile{
				CurrentAge: dec("55"), HistoricalWage: dec("450"),
				StillContributing: true, ContributionWage: dec("700"),
				Continuation: true, ContinuationWage: dec("2000"),
			},
			target: "65",
			scheme: "250",
			wage:   "2000",
		},
		{
			name: "target age already passed",
			profile: domain.ContributorProfile{
				CurrentAge: dec("62"), HistoricalWage: dec("450"),
				StillContributing: true, ContributionWage: dec("700"),
			},
			target:     "60",
			historical: "250",
			wage:       "450",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BlendAverageWage(tt.profile, dec(tt.target))
			assert.True(t, got.SchemeWeeks.Equal(decOrZero(tt.scheme)), "scheme weeks %s", got.SchemeWeeks)
			assert.True(t, got.OrdinaryWeeks.Equal(decOrZero(tt.ordinary)), "ordinary weeks %s", got.OrdinaryWeeks)
			assert.True(t, got.HistoricalWeeks.Equal(decOrZero(tt.historical)), "historical weeks %s", got.HistoricalWeeks)
			assert.True(t, got.Wage.Equal(dec(tt.wage)), "wage %s, want %s", got.Wage, tt.wage)
			assert.True(t, AverageWage(tt.profile, dec(tt.target)).Equal(got.Wage))
		})
	}
}

func TestBlendAverageWage_WindowAlwaysFull(t *testing.T) {
	p := domain.ContributorProfile{
		CurrentAge: dec("57.5"), HistoricalWage: dec("300"),
		StillContributing: true, ContributionWage: dec("500"),
		Continuation: true, ContinuationStartAge: agePtr("59.25"), ContinuationWage: dec("1500"),
	}
	for age := 58; age <= 70; age++ {
		b := BlendAverageWage(p, decimal.NewFromInt(int64(age)))
		total := b.SchemeWeeks.Add(b.OrdinaryWeeks).Add(b.HistoricalWeeks)
		assert.True(t, total.Equal(AverageWindowWeeks), "age %d: window %s", age, total)
	}
}

func decOrZero(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}
	return dec(s)
}
