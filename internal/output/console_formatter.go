package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/rgehrsitz/ley73/internal/compare"
	"github.com/rgehrsitz/ley73/internal/domain"
)

// ConsoleFormatter renders the projection table with the desired age highlighted.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(p *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer
	writeHeader(&buf, p)

	comparison := p.HasComparison()
	cols := []column{
		{title: "", width: 1, left: true},
		{title: "Age", width: 4},
		{title: "Weeks", width: 7},
		{title: "Avg Wage", width: 12},
		{title: "Monthly", width: 18},
	}
	if comparison {
		cols = append(cols,
			column{title: "Without M40", width: 18},
			column{title: "Benefit", width: 14},
		)
	}

	titles := make([]string, len(cols))
	width := 0
	for i, col := range cols {
		titles[i] = col.cell(col.title)
		width += col.width + 1
	}
	fmt.Fprintln(&buf, headerStyle.Render(strings.Join(titles, " ")))
	fmt.Fprintln(&buf, strings.Repeat("-", width))

	floor := false
	for _, q := range p.Quotes {
		marker := ""
		if q.IsDesiredAge {
			marker = ">"
		}
		cells := []string{
			cols[0].cell(marker),
			cols[1].cell(fmt.Sprintf("%d", q.RetirementAge)),
			cols[2].cell(FormatWeeks(q.TotalWeeks)),
			cols[3].cell(FormatCurrency(q.AverageWage)),
			cols[4].cell(monthlyCell(q.Pension)),
		}
		floor = floor || (q.Pension.Eligible && q.Pension.FloorApplied)
		if comparison && q.Baseline != nil {
			cells = append(cells,
				cols[5].cell(monthlyCell(q.Baseline.Pension)),
				cols[6].cell(FormatSigned(q.ContinuationGain())),
			)
			floor = floor || (q.Baseline.Pension.Eligible && q.Baseline.Pension.FloorApplied)
		}

		row := strings.Join(cells, " ")
		if q.IsDesiredAge {
			row = desiredStyle.Render(row)
		}
		fmt.Fprintln(&buf, row)
	}
	fmt.Fprintln(&buf, strings.Repeat("-", width))
	if floor {
		fmt.Fprintln(&buf, mutedStyle.Render("* guaranteed minimum pension applies"))
	}

	writeSummary(&buf, compare.Summarize(p))
	return buf.Bytes(), nil
}

// monthlyCell shows the monthly amount, a floor marker or the ineligibility note
func monthlyCell(b domain.PensionBreakdown) string {
	switch {
	case !b.Eligible:
		return "not yet eligible"
	case b.FloorApplied:
		return FormatCurrency(b.Monthly) + "*"
	default:
		return FormatCurrency(b.Monthly)
	}
}

func writeHeader(buf *bytes.Buffer, p *domain.Projection) {
	name := p.Profile.Name
	if name == "" {
		name = "contributor"
	}
	fmt.Fprintln(buf, titleStyle.Render("PENSION PROJECTION: "+name))
	fmt.Fprintln(buf, strings.Repeat("=", 60))

	c := p.Constants
	fmt.Fprintf(buf, "Constants %d: reference unit %s, minimum wage %s, minimum pension %s\n",
		c.Year, FormatCurrency(c.ReferenceUnitDaily), FormatCurrency(c.MinimumDailyWage), FormatCurrency(c.MinimumPension()))

	pr := p.Profile
	fmt.Fprintf(buf, "Age %s, %s weeks, average wage %s, desired retirement at %d\n",
		pr.CurrentAge.String(), humanize.Comma(int64(pr.WeeksContributed)), FormatCurrency(pr.HistoricalWage), pr.DesiredRetirementAge)
	if pr.StillContributing {
		fmt.Fprintf(buf, "Still contributing at %s per day\n", FormatCurrency(pr.ContributionWage))
	}
	if pr.Continuation {
		fmt.Fprintf(buf, "Continuation scheme from age %s at %s per day\n",
			pr.ContinuationStart().String(), FormatCurrency(pr.ContinuationWage))
	}
	fmt.Fprintf(buf, "Dependents: %s\n", DescribeDependents(pr.Dependents))
	fmt.Fprintln(buf)
}

func writeSummary(buf *bytes.Buffer, s compare.ContinuationSummary) {
	if s.HasComparison {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, sectionStyle.Render("CONTINUATION BENEFIT"))
		fmt.Fprintf(buf, "  Average monthly benefit: %s\n", FormatSigned(s.AverageMonthlyBenefit))
		fmt.Fprintf(buf, "  Average annual benefit:  %s\n", FormatSigned(s.AverageAnnualBenefit))
		fmt.Fprintf(buf, "  At desired age %d:      %s per month (%s without, %s with)\n",
			s.DesiredAge, FormatSigned(s.DesiredBenefit), FormatCurrency(s.DesiredBaselineMonthly), FormatCurrency(s.DesiredMonthly))
		if s.BestAge != 0 {
			fmt.Fprintf(buf, "  Largest gain:            age %d, %s per month\n", s.BestAge, FormatSigned(s.BestBenefit))
		}
	}

	if len(s.Recommendations) > 0 {
		fmt.Fprintln(buf)
		fmt.Fprintln(buf, sectionStyle.Render("RECOMMENDATIONS"))
		for _, rec := range s.Recommendations {
			fmt.Fprintf(buf, "- %s\n", rec)
		}
	}
}
