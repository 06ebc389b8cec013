package numeric

import "math"

// MonthlyRate converts an annual percentage (5 for 5%) to a nominal monthly rate.
func MonthlyRate(annualPercent float64) float64 {
	return PeriodRate(annualPercent, MonthsPerYear)
}

// PeriodRate converts an annual percentage to a nominal per-period rate.
func PeriodRate(annualPercent float64, periodsPerYear int) float64 {
	if periodsPerYear <= 0 {
		periodsPerYear = MonthsPerYear
	}
	return Sanitize(annualPercent) / 100 / float64(periodsPerYear)
}

// EffectivePeriodRate converts an annual percentage to the per-period rate
// that compounds to exactly the annual rate over one year.
func EffectivePeriodRate(annualPercent float64, periodsPerYear int) float64 {
	if periodsPerYear <= 0 {
		periodsPerYear = MonthsPerYear
	}
	annual := Sanitize(annualPercent) / 100
	if annual <= -1 {
		return -1
	}
	return math.Pow(1+annual, 1/float64(periodsPerYear)) - 1
}

// Percent converts a percentage to a fraction.
func Percent(p float64) float64 {
	return Sanitize(p) / 100
}
