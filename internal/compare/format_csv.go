package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats batch results as CSV, one line per client
type CSVFormatter struct{}

// Format generates CSV output for batch results
func (cf *CSVFormatter) Format(b *BatchResult) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Client",
		"Continuation",
		"Desired Age",
		"Total Weeks",
		"Average Wage",
		"Monthly Pension",
		"Monthly Without Continuation",
		"Monthly Benefit",
		"Annual Benefit",
		"Average Monthly Benefit",
		"Eligible",
		"Minimum Applied",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for i := range b.Clients {
		if err := writer.Write(cf.formatRow(&b.Clients[i])); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a client summary as a CSV row
func (cf *CSVFormatter) formatRow(c *ClientSummary) []string {
	return []string{
		c.Name,
		strconv.FormatBool(c.Continuation),
		strconv.Itoa(c.DesiredAge),
		c.TotalWeeks.StringFixed(0),
		c.AverageWage.StringFixed(2),
		c.Monthly.StringFixed(2),
		c.BaselineMonthly.StringFixed(2),
		c.MonthlyBenefit.StringFixed(2),
		c.MonthlyBenefit.Mul(monthsPerYear).StringFixed(2),
		c.Summary.AverageMonthlyBenefit.StringFixed(2),
		strconv.FormatBool(c.Eligible),
		strconv.FormatBool(c.FloorApplied),
	}
}
