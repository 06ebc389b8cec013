package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mkhegde/calcmymoney/internal/calculators"
	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
	"github.com/mkhegde/calcmymoney/internal/output"
	"github.com/mkhegde/calcmymoney/internal/solver"
)

type solveFlags struct {
	goal          float64
	region        string
	sacrifice     float64
	otherIncome   float64
	principal     float64
	rate          float64
	termYears     int
	targetMonths  int
	initial       float64
	years         int
	maxIterations int
	tolerance     float64
}

func solveCmd(a *app) *cobra.Command {
	var f solveFlags
	cmd := &cobra.Command{
		Use:   "solve <target>",
		Short: "Find the input that reaches a goal",
		Long: `Goal seek by bisection. Targets:

  gross_for_net            gross salary for a take-home pay of --goal
  overpayment_for_term     monthly overpayment that clears a loan in --months
  contribution_for_target  monthly saving that grows to --goal in --years

Examples:
  calcmymoney solve gross_for_net --goal 40000 --region scotland
  calcmymoney solve overpayment_for_term --principal 200000 --rate 5 --term 25 --months 180
  calcmymoney solve contribution_for_target --goal 100000 --initial 5000 --rate 4 --years 15
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := solver.ParseTarget(args[0])
			if err != nil {
				return err
			}
			req, err := f.request(target)
			if err != nil {
				return err
			}

			result, err := solver.NewDefaultSolver(a.calc).Solve(cmd.Context(), req)
			if err != nil {
				return err
			}
			a.logger.Info("goal seek finished",
				zap.String("target", string(result.Target)),
				zap.Float64("value", result.Value),
				zap.Int("iterations", result.Iterations),
				zap.Bool("converged", result.Converged))

			if a.outputPath == "" {
				switch strings.ToLower(a.format) {
				case "console", "table", "":
					formatter := &solver.TableFormatter{}
					fmt.Fprint(cmd.OutOrStdout(), formatter.Format(result))
					return nil
				case "json":
					formatter := &solver.JSONFormatter{Pretty: true}
					text, err := formatter.Format(result)
					if err != nil {
						return err
					}
					fmt.Fprintln(cmd.OutOrStdout(), text)
					return nil
				}
			}
			return a.emit(cmd, output.SolverReport(result))
		},
	}

	fl := cmd.Flags()
	fl.Float64Var(&f.goal, "goal", 0, "Take-home pay or balance to reach (£)")
	fl.StringVar(&f.region, "region", "england", "Tax region for gross_for_net")
	fl.Float64Var(&f.sacrifice, "sacrifice", 0, "Pension salary sacrifice for gross_for_net (%)")
	fl.Float64Var(&f.otherIncome, "other-income", 0, "Other income for gross_for_net (£)")
	fl.Float64Var(&f.principal, "principal", 0, "Loan principal for overpayment_for_term (£)")
	fl.Float64Var(&f.rate, "rate", 0, "Loan rate, or savings AER for contribution_for_target (%)")
	fl.IntVar(&f.termYears, "term", 25, "Loan term for overpayment_for_term (years)")
	fl.IntVar(&f.targetMonths, "months", 0, "Months to clear the loan in for overpayment_for_term")
	fl.Float64Var(&f.initial, "initial", 0, "Starting balance for contribution_for_target (£)")
	fl.IntVar(&f.years, "years", 10, "Saving horizon for contribution_for_target (years)")
	fl.IntVar(&f.maxIterations, "max-iterations", 0, "Bisection step limit (0 uses the default)")
	fl.Float64Var(&f.tolerance, "tolerance", 0, "Stop once the bracket is narrower than this (0 uses the default)")
	return cmd
}

// request builds the solver request for target from the flags.
func (f solveFlags) request(target solver.Target) (solver.Request, error) {
	req := solver.Request{
		Target:        target,
		Goal:          f.goal,
		MaxIterations: f.maxIterations,
		Tolerance:     f.tolerance,
	}
	switch target {
	case solver.TargetGrossForNet:
		req.Income = &calculators.IncomeTaxInput{
			Region:                  f.region,
			PensionSacrificePercent: f.sacrifice,
			OtherIncome:             f.otherIncome,
		}
	case solver.TargetOverpaymentForTerm:
		if f.targetMonths <= 0 {
			return req, fmt.Errorf("--months is required for %s", target)
		}
		req.TargetMonths = f.targetMonths
		req.Loan = &domain.LoanTerms{
			Principal:         f.principal,
			AnnualRatePercent: f.rate,
			TermPeriods:       f.termYears * numeric.MonthsPerYear,
		}
	case solver.TargetContributionForTarget:
		req.Growth = &domain.GrowthPlan{
			OpeningBalance:     f.initial,
			PeriodicReturnRate: numeric.EffectivePeriodRate(f.rate, numeric.MonthsPerYear),
			Periods:            f.years * numeric.MonthsPerYear,
			PeriodsPerYear:     numeric.MonthsPerYear,
		}
	}
	return req, nil
}
