package solver

import (
	"context"
	"testing"

	"github.com/mkhegde/calcmymoney/internal/calculators"
	"github.com/mkhegde/calcmymoney/internal/config"
	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSolver(t *testing.T) *Solver {
	t.Helper()
	rules, err := config.NewRuleSetParser().LoadDefault()
	require.NoError(t, err)
	return NewDefaultSolver(calculators.New(nil, rules))
}

func TestNewSolver(t *testing.T) {
	calc := calculators.New(nil, nil)
	options := Options{MaxIterations: 5, Tolerance: 1}

	solver := NewSolver(calc, options)

	require.NotNil(t, solver)
	assert.Equal(t, calc, solver.Calc)
	assert.Equal(t, options, solver.Options)
	assert.Equal(t, DefaultOptions(), NewDefaultSolver(calc).Options)
}

func TestSolver_GrossForNet(t *testing.T) {
	solver := newTestSolver(t)

	result, err := solver.GrossForNet(context.Background(), calculators.IncomeTaxInput{}, 39519.60)
	require.NoError(t, err)

	assert.True(t, result.Converged)
	assert.InDelta(t, 50000.0, result.Value, 0.02, "£50k gross takes home £39,519.60")
	assert.GreaterOrEqual(t, result.Achieved, 39519.60)
}

func TestSolver_GrossForNet_BelowAllowance(t *testing.T) {
	solver := newTestSolver(t)

	result, err := solver.GrossForNet(context.Background(), calculators.IncomeTaxInput{}, 10000)
	require.NoError(t, err)
	assert.InDelta(t, 10000.0, result.Value, 0.01, "No tax or NI below the allowance")
}

func TestSolver_GrossForNet_InvalidTarget(t *testing.T) {
	solver := newTestSolver(t)

	_, err := solver.GrossForNet(context.Background(), calculators.IncomeTaxInput{}, 0)
	var solverErr *SolverError
	require.ErrorAs(t, err, &solverErr)
	assert.Equal(t, "gross_for_net", solverErr.Operation)
}

func TestSolver_OverpaymentForTerm(t *testing.T) {
	solver := newTestSolver(t)
	terms := domain.LoanTerms{Principal: 200000, AnnualRatePercent: 5, TermPeriods: 300}

	result, err := solver.OverpaymentForTerm(context.Background(), terms, 180)
	require.NoError(t, err)

	assert.True(t, result.Converged)
	assert.LessOrEqual(t, result.Achieved, 180.0)

	// A penny less should not be enough.
	terms.ExtraPaymentPerPeriod = result.Value - 0.01
	schedule, err := solver.Calc.Engine.GenerateSchedule(terms)
	require.NoError(t, err)
	assert.Greater(t, schedule.Totals.Periods, 180)
}

func TestSolver_OverpaymentForTerm_AlreadyShortEnough(t *testing.T) {
	solver := newTestSolver(t)

	result, err := solver.OverpaymentForTerm(context.Background(), domain.LoanTerms{Principal: 10000, AnnualRatePercent: 5, TermPeriods: 24}, 36)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Value)
	assert.Equal(t, 24.0, result.Achieved)
}

func TestSolver_ContributionForTarget(t *testing.T) {
	solver := newTestSolver(t)

	result, err := solver.ContributionForTarget(context.Background(), domain.GrowthPlan{Periods: 120}, 12000)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, result.Value, 0.01, "No growth means target/periods")
	assert.GreaterOrEqual(t, result.Achieved, 12000.0)

	withGrowth, err := solver.ContributionForTarget(context.Background(), domain.GrowthPlan{Periods: 120, PeriodicReturnRate: 0.005}, 12000)
	require.NoError(t, err)
	assert.Less(t, withGrowth.Value, 100.0, "Growth means a smaller contribution")
}

func TestSolver_ContributionForTarget_OpeningBalanceEnough(t *testing.T) {
	solver := newTestSolver(t)

	result, err := solver.ContributionForTarget(context.Background(), domain.GrowthPlan{OpeningBalance: 50000, Periods: 12}, 40000)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Value)
	assert.True(t, result.Converged)
}

func TestSolver_Solve_Routing(t *testing.T) {
	solver := newTestSolver(t)
	ctx := context.Background()

	_, err := solver.Solve(ctx, Request{Target: TargetGrossForNet, Goal: 30000})
	assert.Error(t, err, "Missing income input")

	_, err = solver.Solve(ctx, Request{Target: "retirement_date"})
	assert.Error(t, err)

	result, err := solver.Solve(ctx, Request{
		Target: TargetContributionForTarget,
		Goal:   6000,
		Growth: &domain.GrowthPlan{Periods: 60},
	})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, result.Value, 0.01)
}

func TestSolver_Solve_MaxIterations(t *testing.T) {
	solver := newTestSolver(t)

	result, err := solver.Solve(context.Background(), Request{
		Target:        TargetContributionForTarget,
		Goal:          1000000,
		Growth:        &domain.GrowthPlan{Periods: 360, PeriodicReturnRate: 0.004},
		MaxIterations: 2,
	})
	require.NoError(t, err)
	assert.False(t, result.Converged)
	assert.Equal(t, 2, result.Iterations)
	assert.Contains(t, result.ConvergenceInfo, "Max iterations (2)")
	assert.GreaterOrEqual(t, result.Achieved, 1000000.0, "Even an unconverged answer meets the goal")
}

func TestSolver_ContextCancelled(t *testing.T) {
	solver := newTestSolver(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := solver.GrossForNet(ctx, calculators.IncomeTaxInput{}, 40000)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSolver_PropagatesCalculatorErrors(t *testing.T) {
	solver := NewDefaultSolver(calculators.New(nil, nil))

	_, err := solver.GrossForNet(context.Background(), calculators.IncomeTaxInput{}, 40000)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "Missing rules surface through the solver error")
}
