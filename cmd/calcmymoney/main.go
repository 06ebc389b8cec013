package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mkhegde/calcmymoney/internal/calculation"
	"github.com/mkhegde/calcmymoney/internal/calculators"
	"github.com/mkhegde/calcmymoney/internal/config"
	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/logging"
	"github.com/mkhegde/calcmymoney/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// app carries the persistent flags and everything built from them before a
// subcommand runs.
type app struct {
	rulesPath  string
	format     string
	outputPath string
	logLevel   string
	logFormat  string
	logOutput  string
	debug      bool

	logger *zap.Logger
	engine *calculation.CalculationEngine
	rules  *domain.RuleSet
	calc   *calculators.Calculator
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "calcmymoney",
		Short: "UK personal finance calculators",
		Long: `Take-home pay, dividend tax, stamp duty, mortgages, debt payoff, buy-to-let,
pensions and savings, computed from a versioned UK rule set.

Examples:
  calcmymoney income-tax --salary 50000
  calcmymoney mortgage --price 300000 --deposit 30000 --rate 4.5 --term 25 --format json
  calcmymoney compare deals.yaml --output comparison.pdf
  calcmymoney solve gross_for_net --goal 40000`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { logging.Sync(a.logger) },
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.rulesPath, "rules", "r", "", "Rule set file (.yaml or .hcl); defaults to the built-in UK rules")
	pf.StringVarP(&a.format, "format", "f", "console", "Output format ("+strings.Join(output.AvailableFormats(), ", ")+")")
	pf.StringVarP(&a.outputPath, "output", "o", "", "Write the report to this file instead of stdout")
	pf.StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	pf.StringVar(&a.logFormat, "log-format", "console", "Log format (console, json)")
	pf.StringVar(&a.logOutput, "log-output", "stderr", "Log destination (stderr, stdout or a file path)")
	pf.BoolVar(&a.debug, "debug", false, "Log every calculation step")

	root.AddCommand(
		versionCmd(),
		incomeTaxCmd(a),
		dividendCmd(a),
		stampDutyCmd(a),
		mortgageCmd(a),
		remortgageCmd(a),
		debtCmd(a),
		buyToLetCmd(a),
		pensionCmd(a),
		savingsCmd(a),
		compareCmd(a),
		solveCmd(a),
		rulesCmd(a),
	)
	return root
}

// setup builds the logger, engine and calculator shared by every subcommand.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := logging.Config{
		Level:  a.logLevel,
		Format: a.logFormat,
		Output: a.logOutput,
	}
	if a.debug {
		cfg.Level = "debug"
		cfg.Development = true
	}
	logger, err := logging.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.logger = logger

	a.engine = calculation.NewCalculationEngine()
	a.engine.Debug = a.debug
	a.engine.SetLogger(logging.EngineLogger(logger, "engine"))

	// version and help need no rules
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}

	rules, err := config.NewRuleSetParser().Load(a.rulesPath)
	if err != nil {
		return err
	}
	a.rules = rules
	a.calc = calculators.New(a.engine, rules)
	logger.Debug("rules loaded", zap.String("rules", a.rulesName()))
	return nil
}

func (a *app) rulesName() string {
	if a.rulesPath == "" {
		return config.DefaultRulesName
	}
	return a.rulesPath
}

// emit writes report to --output, or to the command's stdout.
func (a *app) emit(cmd *cobra.Command, report *output.Report) error {
	if a.outputPath != "" {
		format := a.format
		if !cmd.Flags().Changed("format") {
			format = output.FormatFromPath(a.outputPath, format)
		}
		if err := output.SaveReport(a.outputPath, format, report); err != nil {
			return err
		}
		a.logger.Info("report written", zap.String("path", a.outputPath), zap.String("format", format))
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", a.outputPath)
		return nil
	}
	return output.Write(cmd.OutOrStdout(), a.format, report)
}

// explain turns a calculation error into a message with a next step.
func explain(err error) string {
	var payoff *calculators.DebtPayoffError
	if errors.As(err, &payoff) {
		return fmt.Sprintf("%v\nTry a monthly payment of at least %s.", err, output.FormatCurrency(payoff.MinimumPaymentHint))
	}

	switch domain.KindOf(err) {
	case domain.KindInvalidInput:
		return fmt.Sprintf("%v\nCheck the flag values; see --help for accepted ranges.", err)
	case domain.KindNonAmortizingPayment:
		return fmt.Sprintf("%v\nThe payment does not cover the interest; raise it or lower the rate.", err)
	case domain.KindPayoffHorizonExceeded:
		return fmt.Sprintf("%v\nThe balance is not cleared within the payoff horizon; raise the payment.", err)
	case domain.KindInvalidBandConfiguration:
		return fmt.Sprintf("%v\nThe rule set is inconsistent; run 'calcmymoney rules validate'.", err)
	}
	return err.Error()
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "calcmymoney %s (commit %s, built %s)\n", version, commit, date)
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

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(stderr, "Error:", explain(err))
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
