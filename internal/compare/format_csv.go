package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	// Write header
	header := []string{
		"Deal",
		"Type",
		"Monthly Payment",
		"Total Interest",
		"Fees",
		"Total Cost",
		"Cost Over Fixed Period",
		"Balance After Fixed Period",
		"Months",
		"Payment Diff from Base",
		"Cost Diff from Base",
		"Cost % Change",
		"Months Diff",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	// Write base deal
	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	// Write alternative deals
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a comparison result as a CSV row
func (cf *CSVFormatter) formatRow(result *ComparisonResult, dealType string) []string {
	return []string{
		result.DealName,
		dealType,
		result.MonthlyPayment.StringFixed(2),
		result.TotalInterest.StringFixed(2),
		result.Fees.StringFixed(2),
		result.TotalCost.StringFixed(2),
		result.CostOverFixed.StringFixed(2),
		result.BalanceAfterFixed.StringFixed(2),
		strconv.Itoa(result.Months),
		result.PaymentDiffFromBase.StringFixed(2),
		result.CostDiffFromBase.StringFixed(2),
		result.CostPctFromBase.StringFixed(2),
		strconv.Itoa(result.MonthsDiff),
	}
}
