package output

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ley73/internal/compare"
	"github.com/rgehrsitz/ley73/internal/domain"
)

// FormatCurrency formats a decimal as pesos with thousands separators and 2 decimals.
func FormatCurrency(amount decimal.Decimal) string { return compare.Money(amount) }

// FormatPercentage formats a rate (0.13) as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// FormatWeeks formats a week count with thousands separators.
func FormatWeeks(weeks decimal.Decimal) string {
	return humanize.Comma(weeks.IntPart())
}

// FormatSigned prefixes positive amounts with a plus sign.
func FormatSigned(amount decimal.Decimal) string {
	if amount.IsPositive() {
		return "+" + FormatCurrency(amount)
	}
	return FormatCurrency(amount)
}

// YesNo renders a flag for tables.
func YesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// DescribeDependents lists the family members that earn allowances.
func DescribeDependents(d domain.Dependents) string {
	var parts []string
	if d.HasSpouse {
		parts = append(parts, "spouse")
	}
	switch n := d.ChildrenForAllowance(); n {
	case 0:
	case 1:
		parts = append(parts, "1 child")
	default:
		parts = append(parts, humanize.Comma(int64(n))+" children")
	}
	switch n := d.ParentsForAllowance(); n {
	case 0:
	case 1:
		parts = append(parts, "1 dependent parent")
	default:
		parts = append(parts, humanize.Comma(int64(n))+" dependent parents")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}
