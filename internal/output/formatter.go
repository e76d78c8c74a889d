package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/ley73/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(p *domain.Projection) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.Projection) ([]byte, error)
}

func (ff FormatterFunc) Format(p *domain.Projection) ([]byte, error) { return ff.F(p) }
func (ff FormatterFunc) Name() string                               { return ff.ID }

// WriteFormatted runs a formatter and writes output to a timestamped file in dir.
// The first characters of the projection ID keep files of one run apart.
func WriteFormatted(f Formatter, p *domain.Projection, dir, ext string) (string, error) {
	data, err := f.Format(p)
	if err != nil {
		return "", err
	}
	stamp := time.Now().Format("20060102_150405")
	if len(p.ID) >= 8 {
		stamp += "_" + p.ID[:8]
	}
	filename := fmt.Sprintf("pension_report_%s.%s", stamp, ext)
	filename = filepath.Join(dir, filename)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	ConsoleVerboseFormatter{},
	CSVFormatter{},
	JSONFormatter{},
	YAMLFormatter{},
	HTMLFormatter{},
	XLSXFormatter{},
}

// GetFormatterByName fetches a registered formatter.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == name {
			return f
		}
	}
	// try normalized name
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"table":       "console",
	"verbose":     "detail",
	"detailed":    "detail",
	"yml":         "yaml",
	"excel":       "xlsx",
	"html-report": "html",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// FileExtension is the extension used when a format is written to disk.
func FileExtension(name string) string {
	switch n := NormalizeFormatName(name); n {
	case "console", "detail":
		return "txt"
	default:
		return n
	}
}

// IsBinary reports whether the format should not be printed to a terminal.
func IsBinary(name string) bool {
	return NormalizeFormatName(name) == "xlsx"
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
