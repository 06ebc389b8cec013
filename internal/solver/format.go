package solver

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats solver results as a console table
type TableFormatter struct{}

// Format generates a formatted table for a solver result
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder

	sb.WriteString("GOAL SEEK RESULTS\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")

	sb.WriteString(fmt.Sprintf("Target:      %s\n", result.Target))
	sb.WriteString(fmt.Sprintf("Status:      %s\n", tf.formatStatus(result.Converged)))
	sb.WriteString(fmt.Sprintf("Iterations:  %d\n", result.Iterations))
	if result.ConvergenceInfo != "" {
		sb.WriteString(fmt.Sprintf("Convergence: %s\n", result.ConvergenceInfo))
	}
	sb.WriteString("\n")

	sb.WriteString("SOLUTION\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	switch result.Target {
	case TargetGrossForNet:
		sb.WriteString(fmt.Sprintf("Target take-home:      £%s\n", tf.formatCurrency(result.Goal)))
		sb.WriteString(fmt.Sprintf("Gross salary needed:   £%s\n", tf.formatCurrency(result.Value)))
		sb.WriteString(fmt.Sprintf("Take-home at solution: £%s\n", tf.formatCurrency(result.Achieved)))
	case TargetOverpaymentForTerm:
		sb.WriteString(fmt.Sprintf("Target term:           %d months\n", int(result.Goal)))
		sb.WriteString(fmt.Sprintf("Monthly overpayment:   £%s\n", tf.formatCurrency(result.Value)))
		sb.WriteString(fmt.Sprintf("Term at solution:      %d months\n", int(result.Achieved)))
	case TargetContributionForTarget:
		sb.WriteString(fmt.Sprintf("Target balance:        £%s\n", tf.formatCurrency(result.Goal)))
		sb.WriteString(fmt.Sprintf("Contribution needed:   £%s per period\n", tf.formatCurrency(result.Value)))
		sb.WriteString(fmt.Sprintf("Balance at solution:   £%s\n", tf.formatCurrency(result.Achieved)))
	default:
		sb.WriteString(fmt.Sprintf("Value:    %s\n", tf.formatCurrency(result.Value)))
		sb.WriteString(fmt.Sprintf("Achieved: %s\n", tf.formatCurrency(result.Achieved)))
	}

	return sb.String()
}

// JSONFormatter formats results as JSON
type JSONFormatter struct {
	Pretty bool
}

// Format generates JSON output
func (jf *JSONFormatter) Format(result *Result) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(result, "", "  ")
	} else {
		data, err = json.Marshal(result)
	}

	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (tf *TableFormatter) formatStatus(converged bool) string {
	if converged {
		return "✓ Converged"
	}
	return "⚠ Did not converge"
}

func (tf *TableFormatter) formatCurrency(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
