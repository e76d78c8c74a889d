package importer

import (
	"strings"
	"unicode"

	"github.com/rgehrsitz/ley73/internal/config"
)

// field identifies the profile field a column feeds
type field int

const (
	fieldName field = iota
	fieldCurrentAge
	fieldDesiredAge
	fieldWeeks
	fieldHistoricalWage
	fieldChildren
	fieldParents
	fieldSpouse
	fieldStillContributing
	fieldContributionWage
	fieldContinuation
	fieldContinuationStart
	fieldContinuationWage
)

var fieldLabels = map[field]string{
	fieldName:           "name",
	fieldCurrentAge:     "age",
	fieldDesiredAge:     "retirement age",
	fieldWeeks:          "weeks",
	fieldHistoricalWage: "average wage",
}

// requiredFields must be present and non-zero for a row to be projected
var requiredFields = []field{fieldName, fieldCurrentAge, fieldDesiredAge, fieldWeeks, fieldHistoricalWage}

// headerAliases maps normalized headers to fields. Spanish names come from the
// client workbooks in circulation; the English ones mirror the YAML keys.
var headerAliases = map[string]field{
	"nombre": fieldName,
	"name":   fieldName,

	"edad":       fieldCurrentAge,
	"edadactual": fieldCurrentAge,
	"age":        fieldCurrentAge,
	"currentage": fieldCurrentAge,

	"edadretiro":           fieldDesiredAge,
	"edadderetiro":         fieldDesiredAge,
	"retirementage":        fieldDesiredAge,
	"desiredretirementage": fieldDesiredAge,

	"semanas":          fieldWeeks,
	"semanascotizadas": fieldWeeks,
	"weeks":            fieldWeeks,
	"weekscontributed": fieldWeeks,

	"salariopromedio": fieldHistoricalWage,
	"salario":         fieldHistoricalWage,
	"averagewage":     fieldHistoricalWage,
	"historicalwage":  fieldHistoricalWage,

	"hijos":         fieldChildren,
	"numerodehijos": fieldChildren,
	"children":      fieldChildren,

	"padresdependientes": fieldParents,
	"padres":             fieldParents,
	"dependentparents":   fieldParents,

	"pareja":      fieldSpouse,
	"tienepareja": fieldSpouse,
	"spouse":      fieldSpouse,
	"hasspouse":   fieldSpouse,

	"siguescotizando":              fieldStillContributing,
	"cotizando":                    fieldStillContributing,
	"siguescotizandohastaelretiro": fieldStillContributing,
	"stillcontributing":            fieldStillContributing,

	"salariocotizacion": fieldContributionWage,
	"salarioactual":     fieldContributionWage,
	"contributionwage":  fieldContributionWage,

	"modalidad40":        fieldContinuation,
	"modalidad":          fieldContinuation,
	"usamodalidad40":     fieldContinuation,
	"utilizamodalidad40": fieldContinuation,
	"aplicamodalidad40":  fieldContinuation,
	"continuation":       fieldContinuation,

	"edadmodalidad40":            fieldContinuationStart,
	"edadmodalidad":              fieldContinuationStart,
	"edadparainiciarmodalidad40": fieldContinuationStart,
	"iniciomodalidad40":          fieldContinuationStart,
	"edadenm40":                  fieldContinuationStart,
	"continuationstartage":       fieldContinuationStart,

	"salariomodalidad40":   fieldContinuationWage,
	"salariomodalidad":     fieldContinuationWage,
	"salarioenmodalidad40": fieldContinuationWage,
	"salarioenm40":         fieldContinuationWage,
	"sbcmodalidad40":       fieldContinuationWage,
	"continuationwage":     fieldContinuationWage,
}

var accentFold = strings.NewReplacer(
	"á", "a", "à", "a", "ä", "a", "â", "a",
	"é", "e", "è", "e", "ë", "e", "ê", "e",
	"í", "i", "ì", "i", "ï", "i", "î", "i",
	"ó", "o", "ò", "o", "ö", "o", "ô", "o",
	"ú", "u", "ù", "u", "ü", "u", "û", "u",
)

// NormalizeHeader lowercases a header, folds accented vowels and drops whitespace and underscores
func NormalizeHeader(h string) string {
	h = accentFold.Replace(strings.ToLower(h))
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '_' {
			return -1
		}
		return r
	}, h)
}

// columnMap resolves each known field to its column index. The first matching column wins.
func columnMap(headers []string) map[field]int {
	cols := make(map[field]int)
	for i, h := range headers {
		f, ok := headerAliases[NormalizeHeader(h)]
		if !ok {
			continue
		}
		if _, seen := cols[f]; !seen {
			cols[f] = i
		}
	}
	return cols
}

func cell(row []string, cols map[field]int, f field) string {
	if idx, ok := cols[f]; ok && idx < len(row) {
		return strings.TrimSpace(row[idx])
	}
	return ""
}

// rawProfile copies the mapped cells into a config.RawProfile
func rawProfile(row []string, cols map[field]int) config.RawProfile {
	return config.RawProfile{
		Name:                 cell(row, cols, fieldName),
		CurrentAge:           cell(row, cols, fieldCurrentAge),
		DesiredRetirementAge: cell(row, cols, fieldDesiredAge),
		WeeksContributed:     cell(row, cols, fieldWeeks),
		HistoricalWage:       cell(row, cols, fieldHistoricalWage),
		HasSpouse:            cell(row, cols, fieldSpouse),
		Children:             cell(row, cols, fieldChildren),
		DependentParents:     cell(row, cols, fieldParents),
		StillContributing:    cell(row, cols, fieldStillContributing),
		ContributionWage:     cell(row, cols, fieldContributionWage),
		Continuation:         cell(row, cols, fieldContinuation),
		ContinuationStartAge: cell(row, cols, fieldContinuationStart),
		ContinuationWage:     cell(row, cols, fieldContinuationWage),
	}
}

// missingRequired lists the required fields that are blank or zero in the row
func missingRequired(row []string, cols map[field]int) []string {
	var missing []string
	for _, f := range requiredFields {
		v := cell(row, cols, f)
		if f == fieldName {
			if v == "" {
				missing = append(missing, fieldLabels[f])
			}
			continue
		}
		if n, ok := config.ParseNumber(v); !ok || n.IsZero() {
			missing = append(missing, fieldLabels[f])
		}
	}
	return missing
}
