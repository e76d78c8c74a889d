package importer

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// TemplateSheet is the sheet name used by generated workbooks
const TemplateSheet = "Clientes"

// TemplateHeaders is the canonical header row understood by Read
var TemplateHeaders = []string{
	"Nombre",
	"Edad",
	"Edad Retiro",
	"Semanas",
	"Salario Promedio",
	"Hijos",
	"Padres Dependientes",
	"Pareja",
	"Sigues Cotizando",
	"Salario Cotizacion",
	"Modalidad 40",
	"Edad Modalidad 40",
	"Salario Modalidad 40",
}

// ExampleRows cover the floor, a clear continuation gain, no continuation,
// the wage cap and a late continuation start.
var ExampleRows = [][]interface{}{
	{"Ana PMG", 58, 60, 1200, 120, 0, 0, "No", "No", "", "Sí", 59, 1000},
	{"Bruno Beneficio", 59, 65, 1400, 500, 2, 0, "Sí", "Sí", 600, "Sí", 60, 1800},
	{"Carla Base", 60, 65, 1800, 900, 1, 0, "Sí", "Sí", 900, "No", "", ""},
	{"Diego Tope", 58, 65, 2200, 4000, 0, 0, "Sí", "Sí", 3500, "Sí", 60, 3000},
	{"Elena Tardío", 55, 62, 900, 700, 0, 0, "Sí", "Sí", 700, "Sí", 61, 2000},
}

// WriteTemplate writes a workbook with the header row and, optionally, the example clients
func WriteTemplate(w io.Writer, withExamples bool) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", TemplateSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	headers := make([]interface{}, len(TemplateHeaders))
	for i, h := range TemplateHeaders {
		headers[i] = h
	}
	if err := f.SetSheetRow(TemplateSheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	last, err := excelize.ColumnNumberToName(len(TemplateHeaders))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(TemplateSheet, "A1", last+"1", bold); err != nil {
		return fmt.Errorf("failed to style headers: %w", err)
	}
	if err := f.SetColWidth(TemplateSheet, "A", last, 18); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if withExamples {
		for i, row := range ExampleRows {
			cell, err := excelize.CoordinatesToCellName(1, i+2)
			if err != nil {
				return err
			}
			values := row
			if err := f.SetSheetRow(TemplateSheet, cell, &values); err != nil {
				return fmt.Errorf("failed to write example row %d: %w", i+1, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
