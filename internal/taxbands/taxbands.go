// Package taxbands turns rule-set tables into concrete band lists for the
// band allocator. Every allowance, taper and surcharge is resolved here so the
// allocator only ever sees plain contiguous bands.
package taxbands

import (
	"fmt"
	"strings"

	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
)

// BuyerType selects the stamp duty table.
type BuyerType string

const (
	BuyerStandard   BuyerType = "standard"
	BuyerFirstTime  BuyerType = "first_time"
	BuyerAdditional BuyerType = "additional"
)

// ParseBuyerType accepts the CLI and form spellings of a buyer type.
func ParseBuyerType(s string) (BuyerType, error) {
	switch strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "-", "_"))) {
	case "", "standard", "home_mover", "mover":
		return BuyerStandard, nil
	case "first_time", "ftb", "first_time_buyer":
		return BuyerFirstTime, nil
	case "additional", "second_home", "btl", "buy_to_let":
		return BuyerAdditional, nil
	default:
		return "", domain.NewCalcError(domain.KindInvalidInput, "parse_buyer_type", "unknown buyer type %q", s)
	}
}

// Shift moves every band up by offset.
func Shift(bands []domain.Band, offset float64) []domain.Band {
	shifted := domain.CloneBands(bands)
	for i := range shifted {
		shifted[i].Lower += offset
		if shifted[i].Upper != nil {
			*shifted[i].Upper += offset
		}
	}
	return shifted
}

// ClipFrom drops everything below start. The band containing start is cut so
// that it begins exactly at start.
func ClipFrom(bands []domain.Band, start float64) []domain.Band {
	clipped := make([]domain.Band, 0, len(bands))
	for _, b := range bands {
		if b.Upper != nil && *b.Upper <= start {
			continue
		}
		b = b.Clone()
		if b.Lower < start {
			b.Lower = start
		}
		clipped = append(clipped, b)
	}
	return clipped
}

// ReducedAllowance applies the taper to the personal allowance. The reduction
// is rounded with the taper's own rounding rule and never takes the allowance
// below zero.
func ReducedAllowance(rules domain.IncomeTaxRules, adjustedNetIncome float64) float64 {
	allowance := numeric.NonNegative(rules.PersonalAllowance)
	income := numeric.NonNegative(adjustedNetIncome)

	taper := rules.Taper
	if taper.Rate <= 0 || income <= taper.Threshold {
		return allowance
	}

	reduction := taper.Rounding.Apply((income - taper.Threshold) * taper.Rate)
	return numeric.NonNegative(allowance - reduction)
}

// IncomeTaxBands returns a 0% allowance band followed by the region's bands
// shifted above the (possibly tapered) allowance. The result is on the gross
// income scale.
func IncomeTaxBands(rules domain.IncomeTaxRules, adjustedNetIncome float64) []domain.Band {
	allowance := ReducedAllowance(rules, adjustedNetIncome)

	bands := make([]domain.Band, 0, len(rules.Bands)+1)
	bands = append(bands, domain.NewBand("personal_allowance", 0, allowance, 0))
	return append(bands, Shift(rules.Bands, allowance)...)
}

// DividendBands returns bands for allocating taxableOtherIncome+taxableDividends.
// Other income and the dividend allowance both use up band space at 0%, and
// the dividend rates apply from the point where they end.
func DividendBands(rules domain.DividendRules, taxableOtherIncome, taxableDividends float64) []domain.Band {
	other := numeric.NonNegative(taxableOtherIncome)
	start := other + DividendAllowanceUsed(rules, taxableDividends)

	clipped := ClipFrom(rules.Bands, start)
	bands := make([]domain.Band, 0, len(clipped)+1)
	bands = append(bands, domain.NewBand("other_income_and_allowance", 0, start, 0))
	return append(bands, clipped...)
}

// DividendAllowanceUsed returns how much of the allowance taxableDividends uses.
func DividendAllowanceUsed(rules domain.DividendRules, taxableDividends float64) float64 {
	return numeric.Clamp(numeric.NonNegative(rules.Allowance), 0, numeric.NonNegative(taxableDividends))
}

// NationalInsuranceBands returns a copy of the annual NI table.
func NationalInsuranceBands(rules domain.NIRules) []domain.Band {
	return domain.CloneBands(rules.Bands)
}

// StampDutyBands picks the SDLT table for buyer and price and adds any
// surcharges to every band rate. First-time buyer relief is lost entirely
// above FirstTimeBuyerMaxPrice.
func StampDutyBands(rules domain.StampDutyRules, buyer BuyerType, price float64, nonResident bool) ([]domain.Band, error) {
	table := rules.Standard
	surcharge := 0.0

	switch buyer {
	case BuyerStandard, "":
	case BuyerFirstTime:
		if len(rules.FirstTimeBuyer) > 0 && numeric.Sanitize(price) <= rules.FirstTimeBuyerMaxPrice {
			table = rules.FirstTimeBuyer
		}
	case BuyerAdditional:
		surcharge += rules.AdditionalPropertySurcharge
	default:
		return nil, domain.NewCalcError(domain.KindInvalidInput, "stamp_duty_bands", "unknown buyer type %q", string(buyer))
	}
	if nonResident {
		surcharge += rules.NonResidentSurcharge
	}

	bands := domain.CloneBands(table)
	for i := range bands {
		bands[i].Rate += surcharge
	}
	return bands, nil
}

// Describe renders a band table one band per line, for --debug output.
func Describe(bands []domain.Band) string {
	var b strings.Builder
	for _, band := range bands {
		fmt.Fprintln(&b, band.String())
	}
	return b.String()
}
