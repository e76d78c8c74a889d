package importer

import (
	"path/filepath"
	"strings"

	"github.com/rgehrsitz/ley73/internal/config"
	"github.com/rgehrsitz/ley73/internal/domain"
)

// IsWorkbook reports whether the path names a spreadsheet the importer can read
func IsWorkbook(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx":
		return true
	default:
		return false
	}
}

// LoadProfiles reads profiles from a client workbook or a YAML profile file.
// Only workbooks report skipped rows; a YAML file fails as a whole.
func LoadProfiles(path string, parser *config.InputParser) ([]domain.ContributorProfile, []RowIssue, error) {
	if parser == nil {
		parser = config.NewInputParser()
	}

	if IsWorkbook(path) {
		result, err := NewImporter(parser.Validator()).ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		return result.Profiles, result.Issues, nil
	}

	profiles, err := parser.LoadFromFile(path)
	if err != nil {
		return nil, nil, err
	}
	return profiles, nil, nil
}
