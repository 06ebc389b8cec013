package solver

import (
	"context"
	"fmt"
	"math"

	"github.com/mkhegde/calcmymoney/internal/calculators"
	"github.com/mkhegde/calcmymoney/internal/domain"
)

// maxDoublings bounds the search for an upper bracket (2^60 is far beyond any
// salary, overpayment or contribution a user could mean).
const maxDoublings = 60

// Solver inverts the calculators by bisection: it finds the input that
// produces a wanted output.
type Solver struct {
	Calc    *calculators.Calculator
	Options Options
}

// NewSolver creates a new goal-seek solver
func NewSolver(calc *calculators.Calculator, options Options) *Solver {
	return &Solver{Calc: calc, Options: options}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calc *calculators.Calculator) *Solver {
	return NewSolver(calc, DefaultOptions())
}

// Solve routes a request to the matching solver.
func (s *Solver) Solve(ctx context.Context, req Request) (*Result, error) {
	opts := s.Options
	if req.MaxIterations > 0 {
		opts.MaxIterations = req.MaxIterations
	}
	if req.Tolerance > 0 {
		opts.Tolerance = req.Tolerance
	}
	scoped := &Solver{Calc: s.Calc, Options: opts}

	switch req.Target {
	case TargetGrossForNet:
		if req.Income == nil {
			return nil, &SolverError{Operation: "solve", Message: "gross_for_net needs an income input"}
		}
		return scoped.GrossForNet(ctx, *req.Income, req.Goal)
	case TargetOverpaymentForTerm:
		if req.Loan == nil {
			return nil, &SolverError{Operation: "solve", Message: "overpayment_for_term needs loan terms"}
		}
		return scoped.OverpaymentForTerm(ctx, *req.Loan, req.TargetMonths)
	case TargetContributionForTarget:
		if req.Growth == nil {
			return nil, &SolverError{Operation: "solve", Message: "contribution_for_target needs a growth plan"}
		}
		return scoped.ContributionForTarget(ctx, *req.Growth, req.Goal)
	default:
		return nil, &SolverError{
			Operation: "solve",
			Message:   fmt.Sprintf("unsupported target: %s", req.Target),
		}
	}
}

// GrossForNet finds the gross salary whose take-home pay reaches targetNet.
// Everything else in base (region, sacrifice, other income) is held fixed.
func (s *Solver) GrossForNet(ctx context.Context, base calculators.IncomeTaxInput, targetNet float64) (*Result, error) {
	const op = "gross_for_net"
	if s.Calc == nil {
		return nil, &SolverError{Operation: op, Message: "no calculator configured"}
	}
	if targetNet <= 0 {
		return nil, &SolverError{Operation: op, Message: "target take-home must be positive"}
	}

	takeHome := func(gross float64) (float64, error) {
		in := base
		in.GrossSalary = gross
		res, err := s.Calc.IncomeTax(in)
		if err != nil {
			return 0, err
		}
		return res.TakeHomeAnnual, nil
	}

	return s.minimalInput(ctx, op, TargetGrossForNet, targetNet, targetNet, takeHome, func(v float64) bool { return v >= targetNet })
}

// OverpaymentForTerm finds the monthly overpayment that clears the loan in
// targetMonths or fewer. The loan's own ExtraPaymentPerPeriod is ignored.
func (s *Solver) OverpaymentForTerm(ctx context.Context, terms domain.LoanTerms, targetMonths int) (*Result, error) {
	const op = "overpayment_for_term"
	if s.Calc == nil {
		return nil, &SolverError{Operation: op, Message: "no calculator configured"}
	}
	if targetMonths <= 0 {
		return nil, &SolverError{Operation: op, Message: "target months must be positive"}
	}

	periods := func(extra float64) (float64, error) {
		t := terms
		t.ExtraPaymentPerPeriod = extra
		schedule, err := s.Calc.Engine.GenerateSchedule(t)
		if err != nil {
			return 0, err
		}
		return float64(schedule.Totals.Periods), nil
	}

	base, err := periods(0)
	if err != nil {
		return nil, &SolverError{Operation: op, Message: "failed to build base schedule", Cause: err}
	}
	if int(base) <= targetMonths {
		return &Result{
			Target:          TargetOverpaymentForTerm,
			Goal:            float64(targetMonths),
			Achieved:        base,
			Converged:       true,
			ConvergenceInfo: "No overpayment needed",
		}, nil
	}

	// Paying principal/targetMonths on top of the level payment always clears in time.
	start := math.Max(terms.Principal/float64(targetMonths), 0.01)
	goal := float64(targetMonths)
	return s.minimalInput(ctx, op, TargetOverpaymentForTerm, goal, start, periods, func(v float64) bool { return v <= goal })
}

// ContributionForTarget finds the periodic contribution that grows plan to
// targetBalance. The plan's own PeriodicContribution is ignored.
func (s *Solver) ContributionForTarget(ctx context.Context, plan domain.GrowthPlan, targetBalance float64) (*Result, error) {
	const op = "contribution_for_target"
	if s.Calc == nil {
		return nil, &SolverError{Operation: op, Message: "no calculator configured"}
	}
	if plan.Periods <= 0 {
		return nil, &SolverError{Operation: op, Message: "plan needs at least one period"}
	}

	final := func(contribution float64) (float64, error) {
		p := plan
		p.PeriodicContribution = contribution
		res, err := s.Calc.Engine.Project(p)
		if err != nil {
			return 0, err
		}
		return res.FinalBalance, nil
	}

	base, err := final(0)
	if err != nil {
		return nil, &SolverError{Operation: op, Message: "failed to project base plan", Cause: err}
	}
	if base >= targetBalance {
		return &Result{
			Target:          TargetContributionForTarget,
			Goal:            targetBalance,
			Achieved:        base,
			Converged:       true,
			ConvergenceInfo: "Opening balance already reaches the target",
		}, nil
	}

	start := math.Max((targetBalance-base)/float64(plan.Periods), 0.01)
	return s.minimalInput(ctx, op, TargetContributionForTarget, targetBalance, start, final, func(v float64) bool { return v >= targetBalance })
}

// minimalInput finds the smallest x ≥ 0 for which met(eval(x)) holds, given
// that met is monotone in x. It first doubles from start until met holds,
// then bisects, and finally settles on the smallest whole-penny x that works.
func (s *Solver) minimalInput(
	ctx context.Context,
	op string,
	target Target,
	goal float64,
	start float64,
	eval func(float64) (float64, error),
	met func(float64) bool,
) (*Result, error) {
	check := func(x float64) (float64, bool, error) {
		v, err := eval(x)
		if err != nil {
			return 0, false, &SolverError{Operation: op, Message: fmt.Sprintf("evaluation at %.2f failed", x), Cause: err}
		}
		return v, met(v), nil
	}

	lo, hi := 0.0, start
	found := false
	for i := 0; i < maxDoublings; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		_, ok, err := check(hi)
		if err != nil {
			return nil, err
		}
		if ok {
			found = true
			break
		}
		lo = hi
		hi *= 2
	}
	if !found {
		return nil, &SolverError{Operation: op, Message: fmt.Sprintf("no solution below %.2f", hi)}
	}

	iterations := 0
	converged := false
	for iterations < s.Options.MaxIterations {
		if hi-lo <= s.Options.Tolerance {
			converged = true
			break
		}
		iterations++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		mid := lo + (hi-lo)/2
		_, ok, err := check(mid)
		if err != nil {
			return nil, err
		}
		if ok {
			hi = mid
		} else {
			lo = mid
		}
	}
	if !converged && hi-lo <= s.Options.Tolerance {
		converged = true
	}

	value := math.Ceil(hi*100) / 100
	if below := value - 0.01; below > lo {
		if _, ok, err := check(below); err == nil && ok {
			value = below
		}
	}
	achieved, _, err := check(value)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Target:     target,
		Goal:       goal,
		Value:      value,
		Achieved:   achieved,
		Iterations: iterations,
		Converged:  converged,
	}
	if converged {
		result.ConvergenceInfo = fmt.Sprintf("Bisection converged within %g", s.Options.Tolerance)
	} else {
		result.ConvergenceInfo = fmt.Sprintf("Max iterations (%d) reached", s.Options.MaxIterations)
	}
	return result, nil
}
