package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/rgehrsitz/ley73/internal/domain"
)

// CSVFormatter writes one row per quoted age; baseline columns are added in comparison mode.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(p *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	comparison := p.HasComparison()
	header := []string{
		"RetirementAge", "DesiredAge", "TotalWeeks", "AverageWage", "BaseWageUsed",
		"Eligible", "MonthlyBeforeMinimum", "MinimumApplied", "Monthly",
	}
	if comparison {
		header = append(header,
			"BaselineWeeks", "BaselineAverageWage", "BaselineMonthly", "BaselineMinimumApplied",
			"MonthlyBenefit", "AnnualBenefit")
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, q := range p.Quotes {
		row := []string{
			strconv.Itoa(q.RetirementAge),
			strconv.FormatBool(q.IsDesiredAge),
			q.TotalWeeks.StringFixed(0),
			q.AverageWage.StringFixed(2),
			q.Pension.BaseWageUsed.StringFixed(2),
			strconv.FormatBool(q.Pension.Eligible),
			q.Pension.MonthlyBeforeFloor.StringFixed(2),
			strconv.FormatBool(q.Pension.FloorApplied),
			q.Pension.Monthly.StringFixed(2),
		}
		if comparison {
			base := domain.ScenarioFigures{}
			if q.Baseline != nil {
				base = *q.Baseline
			}
			gain := q.ContinuationGain()
			row = append(row,
				base.TotalWeeks.StringFixed(0),
				base.AverageWage.StringFixed(2),
				base.Pension.Monthly.StringFixed(2),
				strconv.FormatBool(base.Pension.FloorApplied),
				gain.StringFixed(2),
				gain.Mul(monthsPerYear).StringFixed(2),
			)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
