package importer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/rgehrsitz/ley73/internal/config"
	"github.com/rgehrsitz/ley73/internal/domain"
)

// RowIssue explains why a spreadsheet row was not turned into a profile
type RowIssue struct {
	Row    int    `json:"row"` // 1-based, as shown by spreadsheet applications
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}

func (i RowIssue) String() string {
	if i.Name == "" {
		return fmt.Sprintf("row %d: %s", i.Row, i.Reason)
	}
	return fmt.Sprintf("row %d (%s): %s", i.Row, i.Name, i.Reason)
}

// ImportResult holds the profiles read from the first sheet of a workbook
type ImportResult struct {
	Sheet    string                      `json:"sheet"`
	Profiles []domain.ContributorProfile `json:"profiles"`
	Issues   []RowIssue                  `json:"issues,omitempty"`
}

// Importer reads contributor profiles from client workbooks
type Importer struct {
	validator *config.Validator
}

// NewImporter creates an importer; a nil validator gets the default one
func NewImporter(v *config.Validator) *Importer {
	if v == nil {
		v = config.NewValidator()
	}
	return &Importer{validator: v}
}

// ReadFile opens and reads a workbook from disk
func (im *Importer) ReadFile(path string) (*ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return im.Read(bytes.NewReader(data))
}

// Read parses the first sheet of a workbook. Row 1 is the header row. Blank rows are
// skipped silently; rows missing a required value or failing validation become issues.
func (im *Importer) Read(r io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("error opening Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("could not read sheet %s: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %s is empty", sheet)
	}

	cols := columnMap(rows[0])
	if _, ok := cols[fieldName]; !ok {
		return nil, fmt.Errorf("sheet %s has no recognizable header row (expected a name column such as %q)", sheet, "Nombre")
	}

	log := zap.S().Named("importer")
	result := &ImportResult{Sheet: sheet}

	for i, row := range rows[1:] {
		rowNum := i + 2
		if blank(row) {
			continue
		}

		raw := rawProfile(row, cols)
		if missing := missingRequired(row, cols); len(missing) > 0 {
			result.Issues = append(result.Issues, RowIssue{
				Row:    rowNum,
				Name:   raw.Name,
				Reason: "missing " + strings.Join(missing, ", "),
			})
			continue
		}

		p, err := raw.Build(im.validator)
		if err != nil {
			result.Issues = append(result.Issues, RowIssue{Row: rowNum, Name: raw.Name, Reason: err.Error()})
			continue
		}
		result.Profiles = append(result.Profiles, p)
	}

	// callers report the individual issues
	log.Infof("Read %d profiles from sheet %s (%d rows skipped)", len(result.Profiles), sheet, len(result.Issues))
	return result, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
