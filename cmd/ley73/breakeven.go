package main

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/ley73/internal/breakeven"
	"github.com/rgehrsitz/ley73/internal/config"
	"github.com/rgehrsitz/ley73/internal/output"
)

func (a *app) breakEvenCmd() *cobra.Command {
	var (
		pf                       profileFlags
		goal                     string
		target, minWage, maxWage string
	)

	cmd := &cobra.Command{
		Use:   "break-even",
		Short: "Find the continuation wage needed to reach a pension goal",
		Long: `Searches the declared daily wage under the continuation scheme that reaches a
goal at the desired retirement age.

Goals:
  target    reach the monthly pension given by --target
  beat      pay more than not enrolling at all

Examples:
  ley73 break-even --age 58 --retire-at 65 --weeks 1200 --wage 450 --target 20000
  ley73 break-even --age 58 --retire-at 65 --weeks 1200 --wage 1500 --goal beat --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := breakeven.ParseGoal(goal)
			if err != nil {
				return err
			}

			profile, err := pf.build(a.parser.Validator())
			if err != nil {
				return err
			}

			constraints := breakeven.Constraints{
				TargetMonthly: optionalNumber(target),
				MinWage:       optionalNumber(minWage),
				MaxWage:       optionalNumber(maxWage),
				StartAge:      optionalNumber(pf.raw.ContinuationStartAge),
			}

			engine, err := a.engine()
			if err != nil {
				return err
			}

			result, err := breakeven.NewDefaultSolver(engine).Solve(cmd.Context(), breakeven.Request{
				Profile:     profile,
				Goal:        g,
				Constraints: constraints,
			})
			if err != nil {
				return err
			}
			a.logger.Info("break-even search finished",
				zap.String("goal", string(g)),
				zap.Bool("success", result.Success),
				zap.Int("iterations", result.Iterations),
				zap.String("wage", result.RequiredWage.StringFixed(2)))

			return a.writeBreakEven(cmd.OutOrStdout(), result)
		},
	}

	fl := cmd.Flags()
	pf.bind(fl, false)
	pf.markRequired(cmd)
	fl.StringVar(&goal, "goal", string(breakeven.GoalTargetMonthly), "Goal: target or beat")
	fl.StringVar(&target, "target", "", "Monthly pension to reach (goal target)")
	fl.StringVar(&minWage, "min-wage", "", "Lowest daily wage to consider (default: minimum daily wage)")
	fl.StringVar(&maxWage, "max-wage", "", "Highest daily wage to consider (default: wage cap)")
	return cmd
}

func (a *app) writeBreakEven(w io.Writer, result *breakeven.Result) error {
	if output.NormalizeFormatName(a.format) == "json" {
		s, err := (&breakeven.JSONFormatter{Pretty: true}).Format(result)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, s)
		return err
	}
	_, err := io.WriteString(w, (&breakeven.TableFormatter{}).Format(result))
	return err
}

// optionalNumber is nil for flags left empty or without a number
func optionalNumber(s string) *decimal.Decimal {
	d, ok := config.ParseNumber(s)
	if !ok {
		return nil
	}
	return &d
}
