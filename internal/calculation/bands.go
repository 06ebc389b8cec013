package calculation

import (
	"math"

	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
)

// ValidateBands checks that bands start at zero, are contiguous and ascending,
// carry finite non-negative rates, and end with exactly one unbounded band.
// Zero-width bands are allowed so that a fully tapered allowance can stay in
// the table.
func ValidateBands(bands []domain.Band) error {
	const op = "validate_bands"

	if len(bands) == 0 {
		return domain.NewCalcError(domain.KindInvalidBandConfiguration, op, "no bands supplied")
	}

	for i, b := range bands {
		if math.IsNaN(b.Lower) || math.IsInf(b.Lower, 0) {
			return domain.NewCalcError(domain.KindInvalidBandConfiguration, op, "band %d has a non-finite lower bound", i)
		}
		if math.IsNaN(b.Rate) || math.IsInf(b.Rate, 0) || b.Rate < 0 {
			return domain.NewCalcError(domain.KindInvalidBandConfiguration, op, "band %d has invalid rate %v", i, b.Rate)
		}
		if i == 0 && b.Lower != 0 {
			return domain.NewCalcError(domain.KindInvalidBandConfiguration, op, "first band must start at 0, starts at %.2f", b.Lower)
		}
		if i > 0 {
			prev := bands[i-1]
			if prev.Upper == nil {
				return domain.NewCalcError(domain.KindInvalidBandConfiguration, op, "band %d is unbounded but is not the final band", i-1)
			}
			if b.Lower != *prev.Upper {
				return domain.NewCalcError(domain.KindInvalidBandConfiguration, op,
					"band %d starts at %.2f but band %d ends at %.2f", i, b.Lower, i-1, *prev.Upper)
			}
		}
		if b.Upper != nil {
			if math.IsNaN(*b.Upper) || math.IsInf(*b.Upper, 0) {
				return domain.NewCalcError(domain.KindInvalidBandConfiguration, op, "band %d has a non-finite upper bound", i)
			}
			if *b.Upper < b.Lower {
				return domain.NewCalcError(domain.KindInvalidBandConfiguration, op,
					"band %d is descending: [%.2f, %.2f)", i, b.Lower, *b.Upper)
			}
		}
	}

	if !bands[len(bands)-1].IsUnbounded() {
		return domain.NewCalcError(domain.KindInvalidBandConfiguration, op, "final band must be unbounded")
	}
	return nil
}

// AllocateBands spreads amount across bands low to high and charges each
// slice at its band's rate. Bands are half-open, so an amount sitting exactly
// on a boundary belongs to the band that starts there.
func AllocateBands(amount float64, bands []domain.Band) (domain.BandAllocationResult, error) {
	if err := ValidateBands(bands); err != nil {
		return domain.BandAllocationResult{}, err
	}

	amount = numeric.NonNegative(amount)
	result := domain.BandAllocationResult{Amount: amount, Lines: []domain.BandLine{}}
	if amount <= 0 {
		return result, nil
	}

	for _, band := range bands {
		if amount <= band.Lower {
			break
		}
		if band.Width() == 0 {
			continue
		}

		taxable := math.Min(amount, band.UpperOr(amount)) - band.Lower
		if taxable < 0 {
			taxable = 0
		}
		due := taxable * band.Rate

		result.Lines = append(result.Lines, domain.BandLine{
			Band:          band.Clone(),
			TaxableAmount: taxable,
			AmountDue:     due,
		})
		result.TotalDue += due
	}

	for _, band := range bands {
		if band.Contains(amount) {
			result.MarginalRate = band.Rate
			break
		}
	}
	result.EffectiveRate = result.TotalDue / amount

	return result, nil
}
