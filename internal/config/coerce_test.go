package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{"58", "58", true},
		{"  62.5 ", "62.5", true},
		{"$12,345.67", "12345.67", true},
		{"1,000.5", "1000.5", true},
		{"1234,56", "1234.56", true},
		{"58 años", "58", true},
		{"MXN 2 828.50", "2828.5", true},
		{"-5", "-5", true},
		{"12.", "12", true},
		{"1.234,56", "1.234", true}, // mixed separators keep the leading number
		{"1.234,5", "1.234", true},
		{"1234,5", "1234.5", true},
		{"", "0", false},
		{"abc", "0", false},
		{"-", "0", false},
		{"N/A", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.True(t, got.Equal(dec(tt.expected)), "ParseNumber(%q) = %s, want %s", tt.input, got, tt.expected)
		})
	}
}

func TestNumberOrZero(t *testing.T) {
	assert.True(t, NumberOrZero("").IsZero())
	assert.True(t, NumberOrZero("sin dato").IsZero())
	assert.True(t, NumberOrZero("1,5").Equal(dec("1.5")), "a lone comma is a decimal comma")
}

func TestParseAffirmative(t *testing.T) {
	for _, yes := range []string{"si", "Sí", "S", "y", " YES ", "true", "Verdadero", "1", "x"} {
		assert.True(t, ParseAffirmative(yes), "%q should read as yes", yes)
	}
	for _, no := range []string{"", "no", "n", "false", "0", "falso", "maybe"} {
		assert.False(t, ParseAffirmative(no), "%q should read as no", no)
	}
}
