package output

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/ley73/internal/compare"
	"github.com/rgehrsitz/ley73/internal/domain"
)

var monthsPerYear = decimal.NewFromInt(12)

// Report is the document written by the structured formats
type Report struct {
	Projection  *domain.Projection          `json:"projection" yaml:"projection"`
	Summary     compare.ContinuationSummary `json:"summary" yaml:"summary"`
	Assumptions []string                    `json:"assumptions" yaml:"assumptions"`
}

// NewReport pairs a projection with its summary and assumptions
func NewReport(p *domain.Projection) Report {
	return Report{
		Projection:  p,
		Summary:     compare.Summarize(p),
		Assumptions: Assumptions(p.Constants),
	}
}

// JSONFormatter serializes the report as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(p *domain.Projection) ([]byte, error) {
	return json.MarshalIndent(NewReport(p), "", "  ")
}

// YAMLFormatter serializes the report as YAML.
type YAMLFormatter struct{}

func (y YAMLFormatter) Name() string { return "yaml" }

func (y YAMLFormatter) Format(p *domain.Projection) ([]byte, error) {
	return yaml.Marshal(NewReport(p))
}
