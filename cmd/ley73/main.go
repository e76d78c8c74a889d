package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/ley73/internal/calculation"
	"github.com/rgehrsitz/ley73/internal/config"
	"github.com/rgehrsitz/ley73/internal/importer"
	"github.com/rgehrsitz/ley73/internal/logging"
	"github.com/rgehrsitz/ley73/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries the state shared by every subcommand of one invocation
type app struct {
	settings *config.Settings
	envErr   error
	parser   *config.InputParser
	logger   *zap.Logger

	// persistent flags
	year          int
	constantsFile string
	debug         bool
	format        string
}

func newApp() *app {
	a := &app{parser: config.NewInputParser(), logger: zap.NewNop()}
	settings, err := config.LoadSettings()
	if err != nil {
		a.envErr = err
		settings = &config.Settings{LogLevel: "info", Format: "console"}
	}
	a.settings = settings
	return a
}

func (a *app) initLogger() error {
	level := a.settings.LogLevel
	if a.debug {
		level = "debug"
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return err
	}
	logger, err := logging.InitLog(lvl)
	if err != nil {
		return err
	}
	a.logger = logger
	zap.ReplaceGlobals(logger)
	return nil
}

// engine resolves the constants table and wires the logger into a calculation engine
func (a *app) engine() (*calculation.Engine, error) {
	constants, err := a.parser.ResolveConstants(a.constantsFile, a.year)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve constants: %w", err)
	}
	a.logger.Debug("constants resolved",
		zap.Int("year", constants.Year),
		zap.String("file", a.constantsFile),
		zap.Bool("replacementCeiling", constants.ReplacementCeiling))

	e := calculation.NewEngine(constants)
	e.SetLogger(logging.NewEngineLogger(a.logger))
	return e, nil
}

// formatter looks up a single-projection formatter and names the valid choices on failure
func (a *app) formatter() (output.Formatter, error) {
	f := output.GetFormatterByName(a.format)
	if f == nil {
		return nil, fmt.Errorf("unknown format %q (available: %s)", a.format, strings.Join(output.AvailableFormatterNames(), ", "))
	}
	return f, nil
}

// reportIssues logs the spreadsheet rows that were skipped
func (a *app) reportIssues(source string, issues []importer.RowIssue) {
	for _, issue := range issues {
		a.logger.Warn("row skipped",
			zap.String("file", source),
			zap.Int("row", issue.Row),
			zap.String("name", issue.Name),
			zap.String("reason", issue.Reason))
	}
}

func newRootCmd() *cobra.Command {
	a := newApp()

	root := &cobra.Command{
		Use:   "ley73",
		Short: "Ley 73 pension projection CLI",
		Long: `Projects monthly IMSS pensions under the 1973 law for retirement ages 60 to 65
and compares them with and without the voluntary continuation scheme (Modalidad 40).

Defaults can be set with LEY73_YEAR, LEY73_CONSTANTS_FILE, LEY73_LOG_LEVEL and LEY73_FORMAT.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.envErr != nil {
				return a.envErr
			}
			return a.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.IntVar(&a.year, "year", a.settings.Year, "Constants year (0 selects the most recent table)")
	pf.StringVar(&a.constantsFile, "constants", a.settings.ConstantsFile, "YAML file with constants tables (default: built-in tables)")
	pf.BoolVar(&a.debug, "debug", false, "Enable debug logging")
	pf.StringVarP(&a.format, "format", "f", a.settings.Format, "Output format: "+strings.Join(output.AvailableFormatterNames(), ", "))

	root.AddCommand(
		a.calculateCmd(),
		a.quoteCmd(),
		a.batchCmd(),
		a.breakEvenCmd(),
		a.validateCmd(),
		a.constantsCmd(),
		a.templateCmd(),
		versionCmd(),
	)
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ley73 %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
