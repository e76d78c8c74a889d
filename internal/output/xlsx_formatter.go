package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/rgehrsitz/ley73/internal/compare"
	"github.com/rgehrsitz/ley73/internal/domain"
)

const (
	projectionSheet = "Projection"
	summarySheet    = "Summary"
	maxSheetName    = 31
)

// XLSXFormatter writes the projection as a workbook with a projection and a summary sheet.
type XLSXFormatter struct{}

func (x XLSXFormatter) Name() string { return "xlsx" }

func (x XLSXFormatter) Format(p *domain.Projection) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", projectionSheet); err != nil {
		return nil, err
	}
	st, err := newWorkbookStyles(f)
	if err != nil {
		return nil, err
	}
	if err := writeProjectionSheet(f, st, projectionSheet, p); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, st, summarySheet, p); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteBatchWorkbook writes a summary sheet with one line per client followed by one
// projection sheet per client.
func WriteBatchWorkbook(w io.Writer, b *compare.BatchResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	st, err := newWorkbookStyles(f)
	if err != nil {
		return err
	}

	header := []interface{}{
		"Client", "Continuation", "Desired Age", "Total Weeks", "Average Wage",
		"Monthly", "Without Continuation", "Monthly Benefit", "Annual Benefit",
		"Average Monthly Benefit", "Eligible", "Minimum Applied",
	}
	if err := writeHeaderRow(f, st, summarySheet, header); err != nil {
		return err
	}
	for i, c := range b.Clients {
		row := []interface{}{
			c.Name, YesNo(c.Continuation), c.DesiredAge, c.TotalWeeks.IntPart(),
			money(c.AverageWage), money(c.Monthly), money(c.BaselineMonthly),
			money(c.MonthlyBenefit), money(c.MonthlyBenefit.Mul(monthsPerYear)),
			money(c.Summary.AverageMonthlyBenefit), YesNo(c.Eligible), YesNo(c.FloorApplied),
		}
		if err := writeRow(f, st, summarySheet, i+2, row, 5, 10); err != nil {
			return err
		}
	}

	used := map[string]bool{summarySheet: true}
	for i, p := range b.Projections {
		name := uniqueSheetName(p.Profile.Name, i+1, used)
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to add sheet for client %d: %w", i+1, err)
		}
		if err := writeProjectionSheet(f, st, name, p); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

type workbookStyles struct {
	header int
	money  int
}

func newWorkbookStyles(f *excelize.File) (workbookStyles, error) {
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"1F4E79"}},
	})
	if err != nil {
		return workbookStyles{}, err
	}
	moneyFmt := "#,##0.00"
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})
	if err != nil {
		return workbookStyles{}, err
	}
	return workbookStyles{header: header, money: moneyStyle}, nil
}

func writeHeaderRow(f *excelize.File, st workbookStyles, sheet string, header []interface{}) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last+"1", st.header); err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", last, 16)
}

// writeRow writes values at the row and applies the money format to columns [from, to] (1-based)
func writeRow(f *excelize.File, st workbookStyles, sheet string, row int, values []interface{}, from, to int) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return err
	}
	if from <= 0 {
		return nil
	}
	start, err := excelize.CoordinatesToCellName(from, row)
	if err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(to, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, start, end, st.money)
}

func writeProjectionSheet(f *excelize.File, st workbookStyles, sheet string, p *domain.Projection) error {
	comparison := p.HasComparison()
	header := []interface{}{
		"Age", "Desired", "Total Weeks", "Average Wage", "Base Wage Used",
		"Monthly Before Minimum", "Monthly", "Eligible", "Minimum Applied",
	}
	if comparison {
		header = append(header, "Baseline Weeks", "Baseline Average Wage", "Baseline Monthly", "Monthly Benefit", "Annual Benefit")
	}
	if err := writeHeaderRow(f, st, sheet, header); err != nil {
		return err
	}

	for i, q := range p.Quotes {
		row := []interface{}{
			q.RetirementAge, YesNo(q.IsDesiredAge), q.TotalWeeks.IntPart(),
			money(q.AverageWage), money(q.Pension.BaseWageUsed),
			money(q.Pension.MonthlyBeforeFloor), money(q.Pension.Monthly),
			YesNo(q.Pension.Eligible), YesNo(q.Pension.FloorApplied),
		}
		if err := writeRow(f, st, sheet, i+2, row, 4, 7); err != nil {
			return err
		}
		if comparison && q.Baseline != nil {
			gain := q.ContinuationGain()
			extra := []interface{}{
				q.Baseline.TotalWeeks.IntPart(), money(q.Baseline.AverageWage), money(q.Baseline.Pension.Monthly),
				money(gain), money(gain.Mul(monthsPerYear)),
			}
			cell, err := excelize.CoordinatesToCellName(10, i+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &extra); err != nil {
				return err
			}
			start, _ := excelize.CoordinatesToCellName(11, i+2)
			end, _ := excelize.CoordinatesToCellName(14, i+2)
			if err := f.SetCellStyle(sheet, start, end, st.money); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSummarySheet(f *excelize.File, st workbookStyles, sheet string, p *domain.Projection) error {
	s := compare.Summarize(p)
	if err := writeHeaderRow(f, st, sheet, []interface{}{"Item", "Value"}); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Client", p.Profile.Name},
		{"Run", p.ID},
		{"Constants", p.Constants.Year},
		{"Desired Age", s.DesiredAge},
		{"Monthly at Desired Age", money(s.DesiredMonthly)},
	}
	if s.HasComparison {
		rows = append(rows,
			[]interface{}{"Without Continuation", money(s.DesiredBaselineMonthly)},
			[]interface{}{"Monthly Benefit", money(s.DesiredBenefit)},
			[]interface{}{"Average Monthly Benefit", money(s.AverageMonthlyBenefit)},
			[]interface{}{"Average Annual Benefit", money(s.AverageAnnualBenefit)},
		)
	}
	for _, rec := range s.Recommendations {
		rows = append(rows, []interface{}{"Recommendation", rec})
	}
	for _, a := range Assumptions(p.Constants) {
		rows = append(rows, []interface{}{"Assumption", a})
	}

	for i, row := range rows {
		from := 0
		if _, ok := row[1].(float64); ok {
			from = 2
		}
		if err := writeRow(f, st, sheet, i+2, row, from, 2); err != nil {
			return err
		}
	}
	return f.SetColWidth(sheet, "B", "B", 60)
}

// money converts an amount to a spreadsheet number rounded to cents
func money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

var sheetNameCleaner = strings.NewReplacer(":", " ", "\\", " ", "/", " ", "?", " ", "*", " ", "[", "(", "]", ")")

// uniqueSheetName derives a valid, unused sheet name from a client name
func uniqueSheetName(name string, index int, used map[string]bool) string {
	base := strings.TrimSpace(sheetNameCleaner.Replace(name))
	if base == "" {
		base = fmt.Sprintf("Client %d", index)
	}
	candidate := truncateRunes(base, maxSheetName)
	for n := 2; used[strings.ToLower(candidate)] || used[candidate]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		candidate = truncateRunes(base, maxSheetName-len(suffix)) + suffix
	}
	used[candidate] = true
	used[strings.ToLower(candidate)] = true
	return candidate
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
