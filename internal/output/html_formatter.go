package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/rgehrsitz/ley73/internal/domain"
)

// HTMLFormatter produces a printable HTML report for the client.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":    FormatCurrency,
	"signed":  FormatSigned,
	"pct":     FormatPercentage,
	"weeks":   FormatWeeks,
	"monthly": monthlyCell,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(p *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer
	name := p.Profile.Name
	if name == "" {
		name = "contributor"
	}
	data := struct {
		Report
		Name       string
		Dependents string
	}{NewReport(p), name, DescribeDependents(p.Profile.Dependents)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
