package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/ley73/internal/compare"
	"github.com/rgehrsitz/ley73/internal/domain"
)

// ConsoleVerboseFormatter renders every step of the formula for each quoted age.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "detail" }

func (c ConsoleVerboseFormatter) Format(p *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer
	writeHeader(&buf, p)

	fmt.Fprintln(&buf, sectionStyle.Render("KEY ASSUMPTIONS"))
	for _, a := range Assumptions(p.Constants) {
		fmt.Fprintf(&buf, "- %s\n", a)
	}
	fmt.Fprintln(&buf)

	for _, q := range p.Quotes {
		title := fmt.Sprintf("RETIREMENT AT %d", q.RetirementAge)
		if q.IsDesiredAge {
			title += " (desired)"
		}
		fmt.Fprintln(&buf, sectionStyle.Render(title))
		fmt.Fprintln(&buf, strings.Repeat("-", 50))

		if q.Baseline != nil {
			fmt.Fprintln(&buf, "With continuation:")
			writeBreakdown(&buf, q.ScenarioFigures, "  ")
			fmt.Fprintln(&buf, "Without continuation:")
			writeBreakdown(&buf, *q.Baseline, "  ")
			fmt.Fprintf(&buf, "Monthly benefit: %s\n", FormatSigned(q.ContinuationGain()))
		} else {
			writeBreakdown(&buf, q.ScenarioFigures, "")
		}
		fmt.Fprintln(&buf)
	}

	writeSummary(&buf, compare.Summarize(p))
	return buf.Bytes(), nil
}

func writeBreakdown(buf *bytes.Buffer, f domain.ScenarioFigures, indent string) {
	b := f.Pension
	line := func(label, value string) {
		fmt.Fprintf(buf, "%s  %-26s %s\n", indent, label+":", value)
	}

	line("Total weeks", FormatWeeks(f.TotalWeeks))
	line("Average wage", FormatCurrency(f.AverageWage))
	if !b.Eligible {
		line("Monthly pension", "not yet eligible")
		return
	}

	line("Base wage used", FormatCurrency(b.BaseWageUsed))
	line("Minimum wages", b.WageMultiple.StringFixed(4)+" (bracket "+b.Bracket+")")
	line("Base / increment", FormatPercentage(b.BasePercentage)+" / "+FormatPercentage(b.IncrementPercentage))
	line("Years over the minimum", b.BonusYears.String())
	line("Annual base", FormatCurrency(b.AnnualBase))
	line("Annual increment", FormatCurrency(b.AnnualIncrement))
	line("Subtotal", FormatCurrency(b.AnnualSubtotal))
	line("Allowances", allowanceDetail(b.Allowances))
	line("With allowances", FormatCurrency(b.AnnualWithAllowances))
	line("Age factor", FormatPercentage(b.AgeFactor))
	line("Annual pension", FormatCurrency(b.AnnualPension))
	if b.CeilingApplied {
		line("Replacement ceiling", "applied")
	}
	line("Monthly before minimum", FormatCurrency(b.MonthlyBeforeFloor))
	line("Guaranteed minimum", FormatCurrency(b.MinimumPension)+" (applied: "+YesNo(b.FloorApplied)+")")
	line("Monthly pension", FormatCurrency(b.Monthly))
}

func allowanceDetail(a domain.Allowances) string {
	var parts []string
	if a.SpouseRate.IsPositive() {
		parts = append(parts, "spouse "+FormatPercentage(a.SpouseRate))
	}
	if a.ChildrenRate.IsPositive() {
		parts = append(parts, "children "+FormatPercentage(a.ChildrenRate))
	}
	if a.ParentsRate.IsPositive() {
		parts = append(parts, "parents "+FormatPercentage(a.ParentsRate))
	}
	if a.WelfareAidRate.IsPositive() {
		parts = append(parts, "welfare aid "+FormatPercentage(a.WelfareAidRate))
	}
	if len(parts) == 0 {
		return FormatCurrency(a.AnnualAmount)
	}
	return FormatCurrency(a.AnnualAmount) + " (" + strings.Join(parts, ", ") + ")"
}
