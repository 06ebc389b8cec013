package compare

import (
	"context"
	"fmt"

	"github.com/mkhegde/calcmymoney/internal/calculation"
)

// CompareEngine orchestrates deal comparison
type CompareEngine struct {
	CalcEngine        *calculation.CalculationEngine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewCalculationEngine()
	}
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareDeals schedules the base deal and every alternative and diffs each
// alternative against the base.
func (ce *CompareEngine) CompareDeals(ctx context.Context, base LoanDeal, alternatives []LoanDeal) (*ComparisonSet, error) {
	baseResult, err := ce.evaluate(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate base deal: %w", err)
	}

	results := make([]ComparisonResult, 0, len(alternatives))
	for _, deal := range alternatives {
		altResult, err := ce.evaluate(ctx, deal)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate deal %s: %w", deal.Name, err)
		}
		results = append(results, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	compSet := &ComparisonSet{
		BaseDealName:       base.Name,
		BaseResult:         &baseResult,
		AlternativeResults: results,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

// CompareFile compares the deals in a loaded deals file.
func (ce *CompareEngine) CompareFile(ctx context.Context, file *DealsFile) (*ComparisonSet, error) {
	base, alternatives, err := file.Split()
	if err != nil {
		return nil, err
	}
	compSet, err := ce.CompareDeals(ctx, base, alternatives)
	if err != nil {
		return nil, err
	}
	compSet.SourcePath = file.Path
	return compSet, nil
}

func (ce *CompareEngine) evaluate(ctx context.Context, deal LoanDeal) (ComparisonResult, error) {
	if err := ctx.Err(); err != nil {
		return ComparisonResult{}, err
	}
	schedule, err := ce.CalcEngine.GenerateSchedule(deal.Terms())
	if err != nil {
		return ComparisonResult{}, err
	}
	return ce.MetricsCalculator.CalculateMetrics(deal, schedule), nil
}
