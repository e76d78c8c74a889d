package config

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	nonNumeric    = regexp.MustCompile(`[^0-9,.\-]`)
	leadingNumber = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
)

// affirmativeWords are the spreadsheet and form values read as "yes"
var affirmativeWords = map[string]bool{
	"si":        true,
	"sí":        true,
	"s":         true,
	"y":         true,
	"yes":       true,
	"true":      true,
	"verdadero": true,
	"1":         true,
	"x":         true,
}

// ParseAffirmative reads a loose yes/no value. Anything not recognized is false.
func ParseAffirmative(s string) bool {
	return affirmativeWords[strings.ToLower(strings.TrimSpace(s))]
}

// ParseNumber reads a loosely formatted number such as "$12,345.67", "1234,5" or "58 años".
// Dot-grouped thousands with a decimal comma are not understood: "1.234,5" reads as 1.234.
// The second result is false when nothing numeric remains.
func ParseNumber(s string) (decimal.Decimal, bool) {
	s = nonNumeric.ReplaceAllString(strings.TrimSpace(s), "")
	if s == "" {
		return decimal.Zero, false
	}

	if strings.Contains(s, ",") && !strings.Contains(s, ".") {
		// a lone comma is a decimal comma: "1234,56"
		s = strings.Replace(s, ",", ".", 1)
	} else {
		s = stripThousandsCommas(s)
	}

	m := leadingNumber.FindString(s)
	if m == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(m, "."))
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// NumberOrZero is ParseNumber with the zero default for empty or malformed input
func NumberOrZero(s string) decimal.Decimal {
	d, _ := ParseNumber(s)
	return d
}

// stripThousandsCommas drops every comma followed by exactly three digits
func stripThousandsCommas(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == ',' && groupOfThree(s[i+1:]) {
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func groupOfThree(rest string) bool {
	if len(rest) < 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		if rest[i] < '0' || rest[i] > '9' {
			return false
		}
	}
	return len(rest) == 3 || rest[3] < '0' || rest[3] > '9'
}
