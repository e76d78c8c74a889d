package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats batch results as a console table
type TableFormatter struct{}

// Format generates a table with one line per client
func (tf *TableFormatter) Format(b *BatchResult) string {
	var sb strings.Builder

	sb.WriteString("PENSION PROJECTION BATCH\n")
	sb.WriteString(strings.Repeat("=", 96) + "\n")
	if b.Source != "" {
		sb.WriteString(fmt.Sprintf("Source: %s\n", b.Source))
	}
	sb.WriteString(fmt.Sprintf("Constants: %d\n", b.Year))
	sb.WriteString(fmt.Sprintf("Clients: %d\n", len(b.Clients)))
	sb.WriteString("\n")

	nameWidth := 24
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %5s %7s %*s %*s %*s %*s\n",
		nameWidth, "Client",
		"Age", "Weeks",
		numWidth, "Monthly",
		numWidth, "Without M40",
		numWidth, "Benefit",
		numWidth, "Avg Benefit"))
	sb.WriteString(strings.Repeat("-", 96) + "\n")

	floor := false
	for i := range b.Clients {
		sb.WriteString(tf.formatRow(&b.Clients[i], nameWidth, numWidth))
		floor = floor || (b.Clients[i].Eligible && b.Clients[i].FloorApplied)
	}

	sb.WriteString(strings.Repeat("=", 96) + "\n")
	if floor {
		sb.WriteString("* guaranteed minimum pension\n")
	}

	if len(b.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 96) + "\n")
		for _, rec := range b.Recommendations {
			sb.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single client row
func (tf *TableFormatter) formatRow(c *ClientSummary, nameWidth, numWidth int) string {
	monthly := Money(c.Monthly)
	if !c.Eligible {
		monthly = "not eligible"
	} else if c.FloorApplied {
		monthly += "*"
	}

	without, benefit, average := "-", "-", "-"
	if c.Continuation {
		without = Money(c.BaselineMonthly)
		benefit = tf.signed(c.MonthlyBenefit)
		average = tf.signed(c.Summary.AverageMonthlyBenefit)
	}

	return fmt.Sprintf("%-*s %5d %7s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(c.Name, nameWidth),
		c.DesiredAge, c.TotalWeeks.StringFixed(0),
		numWidth, monthly,
		numWidth, without,
		numWidth, benefit,
		numWidth, average)
}

// signed prefixes positive amounts with a plus sign
func (tf *TableFormatter) signed(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + Money(d)
	}
	return Money(d)
}

// truncate truncates a string to maxLen runes
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// FormatCompact creates a single-line summary per client
func (tf *TableFormatter) FormatCompact(b *BatchResult) string {
	var sb strings.Builder

	for i, c := range b.Clients {
		if i > 0 {
			sb.WriteString(" | ")
		}
		change := "="
		if c.MonthlyBenefit.IsPositive() {
			change = "+" + Money(c.MonthlyBenefit)
		} else if c.MonthlyBenefit.IsNegative() {
			change = Money(c.MonthlyBenefit)
		}
		sb.WriteString(fmt.Sprintf("%s: %s (%s)", c.Name, Money(c.Monthly), change))
	}

	return sb.String()
}
