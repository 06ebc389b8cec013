// Package calculators implements the user-facing UK money calculators. Each
// one takes an immutable input struct, resolves it into bands, loan terms or a
// growth plan, and hands the numeric work to the calculation engine.
package calculators

import (
	"github.com/mkhegde/calcmymoney/internal/calculation"
	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
)

// MaxTermYears is the longest loan term any calculator accepts.
const MaxTermYears = calculation.MaxSchedulePeriods / numeric.MonthsPerYear

// Calculator binds an engine to a rule set. It is safe for concurrent use as
// long as neither is modified after construction.
type Calculator struct {
	Engine *calculation.CalculationEngine
	Rules  *domain.RuleSet
}

// New creates a calculator. A nil engine gets a silent default one.
func New(engine *calculation.CalculationEngine, rules *domain.RuleSet) *Calculator {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return &Calculator{Engine: engine, Rules: rules}
}

func (c *Calculator) requireRules(op string) error {
	if c.Rules == nil {
		return domain.NewCalcError(domain.KindInvalidInput, op, "no rule set loaded")
	}
	return nil
}

// checkTermYears rejects a loan term outside 1..MaxTermYears.
func checkTermYears(op, what string, years int) error {
	if years <= 0 {
		return domain.NewCalcError(domain.KindInvalidInput, op, "%s must be at least one year, got %d", what, years)
	}
	if years > MaxTermYears {
		return domain.NewCalcError(domain.KindInvalidInput, op, "%s of %d years exceeds the limit of %d", what, years, MaxTermYears)
	}
	return nil
}

func percentOf(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
