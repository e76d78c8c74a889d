package config

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validRaw() RawProfile {
	return RawProfile{
		Name:                 "Ana PMG",
		CurrentAge:           "58",
		DesiredRetirementAge: "62",
		WeeksContributed:     "900",
		HistoricalWage:       "$450.00",
		HasSpouse:            "sí",
		Children:             "2",
		DependentParents:     "0",
		StillContributing:    "no",
		ContributionWage:     "",
		Continuation:         "si",
		ContinuationStartAge: "59",
		ContinuationWage:     "2,828.50",
	}
}

func TestRawProfile_Build(t *testing.T) {
	p, err := validRaw().Build(NewValidator())
	require.NoError(t, err)

	assert.Equal(t, "Ana PMG", p.Name)
	assert.True(t, p.CurrentAge.Equal(dec("58")))
	assert.Equal(t, 62, p.DesiredRetirementAge)
	assert.Equal(t, 900, p.WeeksContributed)
	assert.True(t, p.HistoricalWage.Equal(dec("450")))
	assert.True(t, p.Dependents.HasSpouse)
	assert.Equal(t, 2, p.Dependents.Children)
	assert.False(t, p.StillContributing)
	assert.True(t, p.ContributionWage.IsZero())
	assert.True(t, p.Continuation)
	require.NotNil(t, p.ContinuationStartAge)
	assert.True(t, p.ContinuationStartAge.Equal(dec("59")))
	assert.True(t, p.ContinuationWage.Equal(dec("2828.5")))
}

func TestRawProfile_Build_Coercion(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(r *RawProfile)
		check func(t *testing.T, r RawProfile)
	}{
		{
			name: "empty children default to zero",
			edit: func(r *RawProfile) { r.Children = "" },
			check: func(t *testing.T, r RawProfile) {
				p, err := r.Build(nil)
				require.NoError(t, err)
				assert.Equal(t, 0, p.Dependents.Children)
			},
		},
		{
			name: "parents are clamped to two",
			edit: func(r *RawProfile) { r.DependentParents = "5" },
			check: func(t *testing.T, r RawProfile) {
				p, err := r.Build(nil)
				require.NoError(t, err)
				assert.Equal(t, 2, p.Dependents.DependentParents)
			},
		},
		{
			name: "negative parents are clamped to zero",
			edit: func(r *RawProfile) { r.DependentParents = "-1" },
			check: func(t *testing.T, r RawProfile) {
				p, err := r.Build(nil)
				require.NoError(t, err)
				assert.Equal(t, 0, p.Dependents.DependentParents)
			},
		},
		{
			name: "missing start age starts the scheme immediately",
			edit: func(r *RawProfile) { r.ContinuationStartAge = "" },
			check: func(t *testing.T, r RawProfile) {
				p, err := r.Build(nil)
				require.NoError(t, err)
				assert.Nil(t, p.ContinuationStartAge)
				assert.True(t, p.ContinuationStart().Equal(p.CurrentAge))
			},
		},
		{
			name: "non-numeric start age starts the scheme immediately",
			edit: func(r *RawProfile) { r.ContinuationStartAge = "pronto" },
			check: func(t *testing.T, r RawProfile) {
				p, err := r.Build(nil)
				require.NoError(t, err)
				assert.Nil(t, p.ContinuationStartAge)
			},
		},
		{
			name: "scheme disabled drops its fields",
			edit: func(r *RawProfile) { r.Continuation = "no" },
			check: func(t *testing.T, r RawProfile) {
				p, err := r.Build(nil)
				require.NoError(t, err)
				assert.False(t, p.Continuation)
				assert.Nil(t, p.ContinuationStartAge)
				assert.True(t, p.ContinuationWage.IsZero())
			},
		},
		{
			name: "fractional weeks and ages truncate",
			edit: func(r *RawProfile) {
				r.WeeksContributed = "1,250.9"
				r.DesiredRetirementAge = "64.8"
			},
			check: func(t *testing.T, r RawProfile) {
				p, err := r.Build(nil)
				require.NoError(t, err)
				assert.Equal(t, 1250, p.WeeksContributed)
				assert.Equal(t, 64, p.DesiredRetirementAge)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRaw()
			tt.edit(&r)
			tt.check(t, r)
		})
	}
}

func TestRawProfile_Build_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(r *RawProfile)
		field string
	}{
		{"missing current age", func(r *RawProfile) { r.CurrentAge = "" }, "current_age"},
		{"negative current age", func(r *RawProfile) { r.CurrentAge = "-3" }, "current_age"},
		{"implausible retirement age", func(r *RawProfile) { r.DesiredRetirementAge = "300" }, "desired_retirement_age"},
		{"negative weeks", func(r *RawProfile) { r.WeeksContributed = "-10" }, "weeks_contributed"},
		{"negative wage", func(r *RawProfile) { r.HistoricalWage = "-450" }, "historical_wage"},
		{"negative children", func(r *RawProfile) { r.Children = "-1" }, "dependents.children"},
		{"negative scheme wage", func(r *RawProfile) { r.ContinuationWage = "-1" }, "continuation_wage"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := validRaw()
			tt.edit(&r)

			_, err := r.Build(NewValidator())
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "Should be a ValidationError: %v", err)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, "Ana PMG", verr.Profile)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestValidationError(t *testing.T) {
	inner := errors.New("inner")
	err := NewValidationError("Bruno", "weeks_contributed", "must be 0 or more", inner)

	assert.Equal(t, "Bruno: weeks_contributed must be 0 or more", err.Error())
	assert.ErrorIs(t, err, inner)

	anonymous := NewValidationError("", "current_age", "is required", nil)
	assert.Equal(t, "current_age is required", anonymous.Error())
}
