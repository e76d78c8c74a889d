package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rgehrsitz/ley73/internal/compare"
	"github.com/rgehrsitz/ley73/internal/importer"
	"github.com/rgehrsitz/ley73/internal/output"
)

const batchFormats = "console, compact, csv, json, yaml, xlsx"

func (a *app) batchCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "batch [client-file]",
		Short: "Project every client of a workbook and summarize the continuation benefit",
		Long: `Projects every client and prints one line per client with the pension at the
desired age, with and without the continuation scheme.

Formats: ` + batchFormats + `

Examples:
  ley73 batch clientes.xlsx
  ley73 batch clientes.xlsx --format csv > resumen.csv
  ley73 batch clientes.xlsx --format xlsx --output resumen.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, issues, err := importer.LoadProfiles(args[0], a.parser)
			if err != nil {
				return err
			}
			a.reportIssues(args[0], issues)
			if len(profiles) == 0 {
				return fmt.Errorf("no valid profiles in %s", args[0])
			}

			engine, err := a.engine()
			if err != nil {
				return err
			}

			result, err := compare.NewCompareEngine(engine).CompareProfiles(cmd.Context(), profiles)
			if err != nil {
				return err
			}
			result.Source = filepath.Base(args[0])
			a.logger.Info("batch projected",
				zap.String("file", args[0]),
				zap.Int("clients", len(result.Clients)),
				zap.Int("skipped", len(issues)))

			return a.writeBatch(cmd.OutOrStdout(), result, outFile)
		},
	}

	cmd.Flags().StringVarP(&outFile, "output", "o", "", "Workbook path for xlsx output (default: pension_batch_<timestamp>.xlsx)")
	return cmd
}

func (a *app) writeBatch(w io.Writer, result *compare.BatchResult, outFile string) error {
	switch name := output.NormalizeFormatName(a.format); name {
	case "console", "detail":
		_, err := io.WriteString(w, (&compare.TableFormatter{}).Format(result))
		return err
	case "compact":
		_, err := io.WriteString(w, (&compare.TableFormatter{}).FormatCompact(result))
		return err
	case "csv":
		s, err := (&compare.CSVFormatter{}).Format(result)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, s)
		return err
	case "json":
		s, err := (&compare.JSONFormatter{Pretty: true}).Format(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	case "yaml":
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to encode batch: %w", err)
		}
		_, err = w.Write(data)
		return err
	case "xlsx":
		if outFile == "" {
			outFile = fmt.Sprintf("pension_batch_%s.xlsx", time.Now().Format("20060102_150405"))
		}
		if err := writeBatchFile(outFile, result); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w, "Wrote %s (%d clients)\n", outFile, len(result.Clients))
		return err
	default:
		return fmt.Errorf("format %q is not supported for batches (available: %s)", a.format, batchFormats)
	}
}

func writeBatchFile(path string, result *compare.BatchResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := output.WriteBatchWorkbook(f, result); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
