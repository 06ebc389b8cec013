package solver

import (
	"github.com/mkhegde/calcmymoney/internal/calculators"
	"github.com/mkhegde/calcmymoney/internal/domain"
)

// Target names the input a solve searches for
type Target string

const (
	TargetGrossForNet           Target = "gross_for_net"
	TargetOverpaymentForTerm    Target = "overpayment_for_term"
	TargetContributionForTarget Target = "contribution_for_target"
)

// ParseTarget accepts the CLI spellings of a target.
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetGrossForNet, "gross", "salary":
		return TargetGrossForNet, nil
	case TargetOverpaymentForTerm, "overpayment":
		return TargetOverpaymentForTerm, nil
	case TargetContributionForTarget, "contribution":
		return TargetContributionForTarget, nil
	default:
		return "", &SolverError{
			Operation: "parse_target",
			Message:   "unknown target " + s + " (want gross_for_net, overpayment_for_term or contribution_for_target)",
		}
	}
}

// Options configures the bisection
type Options struct {
	MaxIterations int     // Maximum bisection steps
	Tolerance     float64 // Stop once the bracket is narrower than this
}

// DefaultOptions returns default solver configuration
func DefaultOptions() Options {
	return Options{
		MaxIterations: 100,
		Tolerance:     0.001,
	}
}

// Request describes one solve. Only the input matching Target is read.
type Request struct {
	Target Target

	// Goal is the take-home pay or balance to reach
	Goal float64

	// TargetMonths is the payoff term for TargetOverpaymentForTerm
	TargetMonths int

	Income *calculators.IncomeTaxInput
	Loan   *domain.LoanTerms
	Growth *domain.GrowthPlan

	MaxIterations int
	Tolerance     float64
}

// Result is the smallest input value that meets the goal, rounded up to the penny.
type Result struct {
	Target          Target  `json:"target"`
	Goal            float64 `json:"goal"`
	Value           float64 `json:"value"`
	Achieved        float64 `json:"achieved"`
	Iterations      int     `json:"iterations"`
	Converged       bool    `json:"converged"`
	ConvergenceInfo string  `json:"convergenceInfo,omitempty"`
}

// SolverError represents errors from the goal-seek solver
type SolverError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *SolverError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *SolverError) Unwrap() error {
	return e.Cause
}
