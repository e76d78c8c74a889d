package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/internal/importer"
	"github.com/rgehrsitz/ley73/internal/output"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Check a YAML profile file or client workbook without projecting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, issues, err := importer.LoadProfiles(args[0], a.parser)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d valid profiles, %d rows skipped\n", args[0], len(profiles), len(issues))
			for _, issue := range issues {
				fmt.Fprintf(out, "  %s\n", issue)
			}
			if len(profiles) == 0 {
				return fmt.Errorf("no valid profiles in %s", args[0])
			}
			return nil
		},
	}
}

func (a *app) constantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "constants",
		Short: "Show the constants table used for projections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rc, err := a.parser.LoadRegulatoryConfig(a.constantsFile)
			if err != nil {
				return err
			}
			var c domain.RegulatoryConstants
			if a.year == 0 {
				c, err = rc.Latest()
			} else {
				c, err = rc.ForYear(a.year)
			}
			if err != nil {
				return err
			}

			years := make([]string, 0, len(rc.Tables))
			for _, y := range rc.Years() {
				years = append(years, strconv.Itoa(y))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Constants %d\n", c.Year)
			if c.Source != "" {
				fmt.Fprintf(out, "Source: %s\n", c.Source)
			}
			fmt.Fprintf(out, "Available years: %s\n\n", strings.Join(years, ", "))
			for _, line := range output.Assumptions(c) {
				fmt.Fprintf(out, "- %s\n", line)
			}
			return nil
		},
	}
}

func (a *app) templateCmd() *cobra.Command {
	var blank bool

	cmd := &cobra.Command{
		Use:   "template [output-file]",
		Short: "Write a client workbook with the expected headers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "clientes.xlsx"
			if len(args) == 1 {
				path = args[0]
			}

			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", path, err)
			}
			if err := importer.WriteTemplate(f, !blank); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote template to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&blank, "blank", false, "Write only the header row, without example clients")
	return cmd
}
