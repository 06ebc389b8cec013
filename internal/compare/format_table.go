package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing deals
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	// Header
	sb.WriteString("LOAN DEAL COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("Base Deal: %s\n", compSet.BaseDealName))
	if compSet.SourcePath != "" {
		sb.WriteString(fmt.Sprintf("Deals File: %s\n", compSet.SourcePath))
	}
	sb.WriteString("\n")

	// Column widths
	nameWidth := 20
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, "Deal",
		numWidth, "Monthly",
		numWidth, "Total Cost",
		numWidth, "Fixed Period",
		numWidth, "Term"))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	if base := compSet.BaseResult; base != nil {
		sb.WriteString(tf.formatRow(base, nameWidth, numWidth, true))
	}

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for i := range compSet.AlternativeResults {
			sb.WriteString(tf.formatRow(&compSet.AlternativeResults[i], nameWidth, numWidth, false))
		}
	}

	sb.WriteString(strings.Repeat("=", 80) + "\n")

	// Deltas from base
	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%s:\n", alt.DealName))

			sb.WriteString(fmt.Sprintf("  Monthly Payment:  %s£%s\n",
				tf.deltaSymbol(alt.PaymentDiffFromBase),
				alt.PaymentDiffFromBase.Abs().StringFixed(2)))

			sb.WriteString(fmt.Sprintf("  Total Cost:       %s£%s (%s%%)\n",
				tf.deltaSymbol(alt.CostDiffFromBase),
				tf.formatDecimal(alt.CostDiffFromBase.Abs()),
				alt.CostPctFromBase.StringFixed(1)))

			if !alt.FixedCostDiffFromBase.IsZero() {
				sb.WriteString(fmt.Sprintf("  Fixed Period:     %s£%s\n",
					tf.deltaSymbol(alt.FixedCostDiffFromBase),
					tf.formatDecimal(alt.FixedCostDiffFromBase.Abs())))
			}

			if alt.MonthsDiff != 0 {
				sb.WriteString(fmt.Sprintf("  Term:             %+d months\n", alt.MonthsDiff))
			}
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single deal row
func (tf *TableFormatter) formatRow(result *ComparisonResult, nameWidth, numWidth int, isBase bool) string {
	name := result.DealName
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, tf.truncate(name, nameWidth),
		numWidth, "£"+result.MonthlyPayment.StringFixed(2),
		numWidth, "£"+tf.formatDecimal(result.TotalCost),
		numWidth, "£"+tf.formatDecimal(result.CostOverFixed),
		numWidth, fmt.Sprintf("%d months", result.Months))
}

// formatDecimal formats a decimal for display (in thousands)
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000000)) {
		millions := d.Div(decimal.NewFromInt(1000000))
		return millions.StringFixed(2) + "M"
	} else if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1000)) {
		thousands := d.Div(decimal.NewFromInt(1000))
		return thousands.StringFixed(1) + "K"
	}
	return d.StringFixed(0)
}

// deltaSymbol returns + for an increase and - for a decrease. For loans an
// increase is the worse outcome.
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	} else if delta.IsNegative() {
		return "-"
	}
	return " "
}

// truncate truncates a string to maxLen
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// FormatCompact creates a compact single-line summary for each deal
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %s | ", compSet.BaseDealName))

	for i, alt := range compSet.AlternativeResults {
		if i > 0 {
			sb.WriteString(" | ")
		}
		costChange := "="
		if alt.CostDiffFromBase.IsPositive() {
			costChange = fmt.Sprintf("+£%s", tf.formatDecimal(alt.CostDiffFromBase))
		} else if alt.CostDiffFromBase.IsNegative() {
			costChange = fmt.Sprintf("-£%s", tf.formatDecimal(alt.CostDiffFromBase.Abs()))
		}

		sb.WriteString(fmt.Sprintf("%s: %s", alt.DealName, costChange))
	}

	return sb.String()
}
