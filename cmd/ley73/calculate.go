package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/config"
	"github.com/rgehrsitz/ley73/internal/domain"
	"github.com/rgehrsitz/ley73/internal/importer"
	"github.com/rgehrsitz/ley73/internal/output"
)

func (a *app) calculateCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Project pensions for the profiles in a YAML file or client workbook",
		Long: `Projects every profile of the input and prints one report per profile.

Examples:
  ley73 calculate profile.yaml
  ley73 calculate clientes.xlsx --format detail
  ley73 calculate profile.yaml --format xlsx --output reports/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.formatter()
			if err != nil {
				return err
			}

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
			return a.writeProjections(cmd, engine, profiles, f, outDir)
		},
	}

	cmd.Flags().StringVarP(&outDir, "output", "o", "", "Write one report file per profile into this directory")
	return cmd
}

// profileFlags describe one contributor on the command line. Values go through the
// same coercion as workbook cells.
type profileFlags struct {
	raw               config.RawProfile
	spouse            bool
	stillContributing bool
	continuation      bool
}

func (pf *profileFlags) bind(fl *pflag.FlagSet, withContinuation bool) {
	fl.StringVar(&pf.raw.Name, "name", "", "Contributor name shown in the report")
	fl.StringVar(&pf.raw.CurrentAge, "age", "", "Current age in years (decimals allowed)")
	fl.StringVar(&pf.raw.DesiredRetirementAge, "retire-at", "", "Desired retirement age")
	fl.StringVar(&pf.raw.WeeksContributed, "weeks", "", "Contribution weeks recognized so far")
	fl.StringVar(&pf.raw.HistoricalWage, "wage", "", "Average daily contribution wage so far")
	fl.BoolVar(&pf.spouse, "spouse", false, "Has a spouse or partner")
	fl.StringVar(&pf.raw.Children, "children", "0", "Children who qualify for the allowance")
	fl.StringVar(&pf.raw.DependentParents, "parents", "0", "Dependent parents (0 to 2)")
	fl.BoolVar(&pf.stillContributing, "still-contributing", false, "Keeps contributing through employment until retirement")
	fl.StringVar(&pf.raw.ContributionWage, "contribution-wage", "", "Daily wage of the ongoing employment")
	fl.StringVar(&pf.raw.ContinuationStartAge, "m40-start", "", "Age at which the continuation scheme starts (default: now)")
	if withContinuation {
		fl.BoolVar(&pf.continuation, "m40", false, "Enroll in the voluntary continuation scheme")
		fl.StringVar(&pf.raw.ContinuationWage, "m40-wage", "", "Declared daily wage under the continuation scheme")
	}
}

func (pf *profileFlags) markRequired(cmd *cobra.Command) {
	for _, name := range []string{"age", "retire-at", "weeks", "wage"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

func (pf *profileFlags) build(v *config.Validator) (domain.ContributorProfile, error) {
	raw := pf.raw
	raw.HasSpouse = strconv.FormatBool(pf.spouse)
	raw.StillContributing = strconv.FormatBool(pf.stillContributing)
	raw.Continuation = strconv.FormatBool(pf.continuation)
	return raw.Build(v)
}

func (a *app) quoteCmd() *cobra.Command {
	var (
		pf     profileFlags
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Project a single contributor described by flags",
		Long: `Projects one contributor without an input file. Numbers are read the same
way as workbook cells, so "$2,828.50" and "58 años" are accepted.

Example:
  ley73 quote --age 58 --retire-at 65 --weeks 1200 --wage 450 --spouse --m40 --m40-wage 2828.50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.formatter()
			if err != nil {
				return err
			}

			profile, err := pf.build(a.parser.Validator())
			if err != nil {
				return err
			}

			engine, err := a.engine()
			if err != nil {
				return err
			}
			return a.writeProjections(cmd, engine, []domain.ContributorProfile{profile}, f, outDir)
		},
	}

	pf.bind(cmd.Flags(), true)
	pf.markRequired(cmd)
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "Write the report into this directory instead of stdout")
	return cmd
}

// writeProjections runs every profile and prints the reports, or writes them to
// outDir. Binary formats always go to files.
func (a *app) writeProjections(cmd *cobra.Command, engine *calculation.Engine, profiles []domain.ContributorProfile, f output.Formatter, outDir string) error {
	out := cmd.OutOrStdout()
	toFiles := outDir != "" || output.IsBinary(f.Name())
	if toFiles && outDir == "" {
		outDir = "."
	}

	for i, p := range profiles {
		if err := cmd.Context().Err(); err != nil {
			return fmt.Errorf("interrupted after %d of %d profiles: %w", i, len(profiles), err)
		}

		projection, err := engine.Run(p)
		if err != nil {
			return fmt.Errorf("failed to project profile %d (%s): %w", i, p.Name, err)
		}

		if toFiles {
			filename, err := output.WriteFormatted(f, projection, outDir, output.FileExtension(f.Name()))
			if err != nil {
				return fmt.Errorf("failed to write report for %s: %w", p.Name, err)
			}
			fmt.Fprintf(out, "Wrote %s\n", filename)
			continue
		}

		data, err := f.Format(projection)
		if err != nil {
			return fmt.Errorf("failed to format report for %s: %w", p.Name, err)
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		if _, err := out.Write(data); err != nil {
			return err
		}
	}
	return nil
}
