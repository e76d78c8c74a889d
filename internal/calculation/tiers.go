package calculation

import (
	"sort"

	"github.com/shopspring/decimal"
)

// ReplacementBracket is one row of the statutory replacement table. Brackets are keyed
// by the base wage expressed in multiples of the minimum daily wage.
type ReplacementBracket struct {
	UpperBound          decimal.Decimal // exclusive; unused when Unbounded
	Unbounded           bool
	BasePercentage      decimal.Decimal
	IncrementPercentage decimal.Decimal
}

// Label renders the bracket range the way the statutory table prints it
func (b ReplacementBracket) Label(previous *ReplacementBracket) string {
	if b.Unbounded {
		if previous == nil {
			return "any"
		}
		return ">= " + previous.UpperBound.String()
	}
	return "< " + b.UpperBound.String()
}

func bracket(upper, base, increment string) ReplacementBracket {
	return ReplacementBracket{
		UpperBound:          decimal.RequireFromString(upper),
		BasePercentage:      decimal.RequireFromString(base),
		IncrementPercentage: decimal.RequireFromString(increment),
	}
}

// replacementTable is ordered by upper bound; the last row catches everything above 6.01.
var replacementTable = []ReplacementBracket{
	bracket("1.01", "0.8", "0.00563"),
	bracket("1.26", "0.7711", "0.00814"),
	bracket("1.51", "0.5818", "0.01178"),
	bracket("1.76", "0.4923", "0.0143"),
	bracket("2.01", "0.4267", "0.01615"),
	bracket("2.26", "0.3765", "0.01756"),
	bracket("2.51", "0.3368", "0.01868"),
	bracket("2.76", "0.3048", "0.01958"),
	bracket("3.01", "0.2783", "0.02033"),
	bracket("3.26", "0.256", "0.02096"),
	bracket("3.51", "0.237", "0.02149"),
	bracket("3.76", "0.2207", "0.02195"),
	bracket("4.01", "0.2065", "0.02235"),
	bracket("4.26", "0.1939", "0.02271"),
	bracket("4.51", "0.1829", "0.02302"),
	bracket("4.76", "0.173", "0.0233"),
	bracket("5.01", "0.1641", "0.02355"),
	bracket("5.26", "0.1561", "0.02377"),
	bracket("5.51", "0.1488", "0.02398"),
	bracket("5.76", "0.1422", "0.02416"),
	bracket("6.01", "0.1362", "0.02433"),
	{
		Unbounded:           true,
		BasePercentage:      decimal.RequireFromString("0.13"),
		IncrementPercentage: decimal.RequireFromString("0.0245"),
	},
}

// ReplacementTable returns a copy of the statutory table
func ReplacementTable() []ReplacementBracket {
	return append([]ReplacementBracket(nil), replacementTable...)
}

// LookupBracket returns the index and row of the first bracket whose upper bound
// exceeds the given wage multiple.
func LookupBracket(multiple decimal.Decimal) (int, ReplacementBracket) {
	bounded := len(replacementTable) - 1
	i := sort.Search(bounded, func(i int) bool {
		return replacementTable[i].UpperBound.GreaterThan(multiple)
	})
	return i, replacementTable[i]
}

// BracketLabel renders the range of the bracket at index i
func BracketLabel(i int) string {
	if i < 0 || i >= len(replacementTable) {
		return ""
	}
	if i == 0 {
		return replacementTable[i].Label(nil)
	}
	return replacementTable[i].Label(&replacementTable[i-1])
}
