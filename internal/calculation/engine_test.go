package calculation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/ley73/internal/domain"
)

func TestNewEngine(t *testing.T) {
	engine := NewEngine(testConstants())

	assert.NotNil(t, engine, "Should create engine")
	assert.Equal(t, 2025, engine.Constants.Year)
	assert.IsType(t, NopLogger{}, engine.Logger, "Should default to no-op logger")
}

func TestEngine_SetLogger(t *testing.T) {
	engine := NewEngine(testConstants())

	customLogger := &TestLogger{}
	engine.SetLogger(customLogger)
	assert.Equal(t, customLogger, engine.Logger, "Should set custom logger")

	engine.SetLogger(nil)
	assert.NotNil(t, engine.Logger, "Should not be nil")
	assert.IsType(t, NopLogger{}, engine.Logger, "Should be no-op logger")
}

func TestRetirementAges(t *testing.T) {
	assert.Equal(t, []int{60, 61, 62, 63, 64, 65}, RetirementAges(62))
	assert.Equal(t, []int{58, 60, 61, 62, 63, 64, 65}, RetirementAges(58))
	assert.Equal(t, []int{60, 61, 62, 63, 64, 65, 67}, RetirementAges(67))
	assert.Equal(t, []int{60, 61, 62, 63, 64, 65}, StandardRetirementAges, "Should not mutate the standard ages")
}

func TestProjectedWeeks(t *testing.T) {
	tests := []struct {
		name     string
		profile  domain.ContributorProfile
		age      string
		expected string
	}{
		{
			name:     "no further contribution",
			profile:  domain.ContributorProfile{CurrentAge: dec("58"), WeeksContributed: 900},
			age:      "65",
			expected: "900",
		},
		{
			name:     "still contributing",
			profile:  domain.ContributorProfile{CurrentAge: dec("58"), WeeksContributed: 900, StillContributing: true},
			age:      "60",
			expected: "1004",
		},
		{
			name: "still contributing takes precedence over the scheme start",
			profile: domain.ContributorProfile{
				CurrentAge: dec("58"), WeeksContributed: 900, StillContributing: true,
				Continuation: true, ContinuationStartAge: agePtr("60"),
			},
			age:      "62",
			expected: "1108",
		},
		{
			name: "scheme only accrues from its start",
			profile: domain.ContributorProfile{
				CurrentAge: dec("58"), WeeksContributed: 900,
				Continuation: true, ContinuationStartAge: agePtr("60"),
			},
			age:      "62",
			expected: "1004",
		},
		{
			name: "scheme start after the retirement age subtracts weeks",
			profile: domain.ContributorProfile{
				CurrentAge: dec("58"), WeeksContributed: 600,
				Continuation: true, ContinuationStartAge: agePtr("63"),
			},
			age:      "60",
			expected: "444",
		},
		{
			name: "scheme start in the past accrues from the start",
			profile: domain.ContributorProfile{
				CurrentAge: dec("58"), WeeksContributed: 600,
				Continuation: true, ContinuationStartAge: agePtr("55"),
			},
			age:      "60",
			expected: "860",
		},
		{
			name: "missing scheme start accrues from today",
			profile: domain.ContributorProfile{
				CurrentAge: dec("58"), WeeksContributed: 900,
				Continuation: true,
			},
			age:      "60",
			expected: "1004",
		},
		{
			name:     "age already passed",
			profile:  domain.ContributorProfile{CurrentAge: dec("63"), WeeksContributed: 900, StillContributing: true},
			age:      "60",
			expected: "900",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectedWeeks(tt.profile, dec(tt.age))
			assert.True(t, got.Equal(dec(tt.expected)), "got %s, want %s", got, tt.expected)
		})
	}
}

func TestEngine_Project_WithoutContinuationMatchesFormula(t *testing.T) {
	engine := NewEngine(testConstants())
	p := domain.ContributorProfile{
		CurrentAge:           dec("57"),
		DesiredRetirementAge: 63,
		WeeksContributed:     1100,
		HistoricalWage:       dec("650"),
		Dependents:           domain.Dependents{HasSpouse: true, Children: 1},
		StillContributing:    true,
		ContributionWage:     dec("820"),
	}

	quotes := engine.Project(p)
	require.Len(t, quotes, 6)

	for i, q := range quotes {
		assert.Equal(t, 60+i, q.RetirementAge)
		assert.Nil(t, q.Baseline, "Should not carry a baseline without the scheme")
		assert.Equal(t, q.RetirementAge == 63, q.IsDesiredAge)

		age := decimal.NewFromInt(int64(q.RetirementAge))
		weeks := ProjectedWeeks(p, age)
		wage := AverageWage(p, age)
		direct := EvaluatePension(engine.Constants, FormulaInput{
			RetirementAge: age,
			TotalWeeks:    weeks,
			AverageWage:   wage,
			Children:      1,
			HasSpouse:     true,
		})

		assert.True(t, q.TotalWeeks.Equal(weeks))
		assert.True(t, q.AverageWage.Equal(wage))
		assert.Equal(t, direct, q.Pension)
	}
}

func TestEngine_Project_DesiredAgeOutsideStandardSet(t *testing.T) {
	engine := NewEngine(testConstants())
	p := domain.ContributorProfile{
		CurrentAge:           dec("50"),
		DesiredRetirementAge: 67,
		WeeksContributed:     1300,
		HistoricalWage:       dec("500"),
	}

	quotes := engine.Project(p)
	require.Len(t, quotes, 7)
	assert.Equal(t, 67, quotes[6].RetirementAge)
	assert.True(t, quotes[6].IsDesiredAge)

	flagged := 0
	for i, q := range quotes {
		if q.IsDesiredAge {
			flagged++
		}
		if i > 0 {
			assert.Greater(t, q.RetirementAge, quotes[i-1].RetirementAge, "rows must be ascending")
		}
	}
	assert.Equal(t, 1, flagged)
}

func TestEngine_Project_ContinuationWithoutOrdinaryContribution(t *testing.T) {
	engine := NewEngine(testConstants())
	p := domain.ContributorProfile{
		CurrentAge:           dec("58"),
		DesiredRetirementAge: 65,
		WeeksContributed:     900,
		HistoricalWage:       dec("450"),
		Continuation:         true,
		ContinuationWage:     dec("2828.5"),
	}

	quotes := engine.Project(p)
	require.Len(t, quotes, 6)

	for _, q := range quotes {
		require.NotNil(t, q.Baseline, "age %d should carry a baseline", q.RetirementAge)
		assert.True(t, q.Baseline.TotalWeeks.Equal(dec("900")), "baseline keeps the weeks to date")
		assert.True(t, q.Baseline.AverageWage.Equal(dec("450")), "baseline keeps the historical wage")
		assert.True(t, q.TotalWeeks.GreaterThan(q.Baseline.TotalWeeks))
		assert.True(t, q.AverageWage.GreaterThan(q.Baseline.AverageWage))
		assert.True(t, q.ContinuationGain().IsPositive(), "age %d gain %s", q.RetirementAge, q.ContinuationGain())
	}

	at60 := quotes[0]
	assert.True(t, at60.TotalWeeks.Equal(dec("1004")))
	assert.True(t, at60.AverageWage.Equal(dec("1439.456")))
}

func TestEngine_Project_ContinuationAfterOrdinaryContribution(t *testing.T) {
	engine := NewEngine(testConstants())
	p := domain.ContributorProfile{
		CurrentAge:           dec("58"),
		DesiredRetirementAge: 62,
		WeeksContributed:     900,
		HistoricalWage:       dec("450"),
		StillContributing:    true,
		ContributionWage:     dec("700"),
		Continuation:         true,
		ContinuationStartAge: agePtr("60"),
		ContinuationWage:     dec("2000"),
	}

	q := engine.Quote(p, 62)
	require.NotNil(t, q.Baseline)
	assert.True(t, q.IsDesiredAge)

	assert.True(t, q.TotalWeeks.Equal(dec("1108")))
	assert.True(t, q.AverageWage.Equal(dec("1198.8")))

	// baseline keeps contributing at the ordinary wage over the whole span: (700*208 + 450*42) / 250
	assert.True(t, q.Baseline.TotalWeeks.Equal(dec("1108")))
	assert.True(t, q.Baseline.AverageWage.Equal(dec("658")), "baseline wage %s", q.Baseline.AverageWage)
}

func TestEngine_Project_IneligibleRows(t *testing.T) {
	engine := NewEngine(testConstants())
	p := domain.ContributorProfile{
		CurrentAge:           dec("60"),
		DesiredRetirementAge: 65,
		WeeksContributed:     300,
		HistoricalWage:       dec("400"),
	}

	for _, q := range engine.Project(p) {
		assert.True(t, q.Monthly().IsZero(), "age %d should not be eligible", q.RetirementAge)
		assert.False(t, q.Pension.FloorApplied)
	}
}

func TestEngine_Run(t *testing.T) {
	engine := NewEngine(testConstants())
	logger := &TestLogger{}
	engine.SetLogger(logger)

	p := domain.ContributorProfile{
		Name:                 "Ana",
		CurrentAge:           dec("59"),
		DesiredRetirementAge: 64,
		WeeksContributed:     1200,
		HistoricalWage:       dec("600"),
	}

	projection, err := engine.Run(p)
	require.NoError(t, err)

	_, err = uuid.Parse(projection.ID)
	assert.NoError(t, err, "Should assign a uuid")
	assert.False(t, projection.GeneratedAt.IsZero())
	assert.Equal(t, p, projection.Profile)
	assert.Len(t, projection.Quotes, 6)
	assert.False(t, projection.HasComparison())

	desired, ok := projection.DesiredQuote()
	require.True(t, ok)
	assert.Equal(t, 64, desired.RetirementAge)
	assert.NotEmpty(t, logger.messages, "Should log through the injected logger")
}

func TestEngine_Run_InvalidConstants(t *testing.T) {
	c := testConstants()
	c.MinimumDailyWage = decimal.Zero
	engine := NewEngine(c)

	projection, err := engine.Run(domain.ContributorProfile{CurrentAge: dec("60"), DesiredRetirementAge: 65})
	assert.Error(t, err)
	assert.Nil(t, projection)
	assert.Contains(t, err.Error(), "minimum daily wage")
}

// TestLogger is a simple logger for testing
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}
