package domain

import (
	"fmt"
	"math"
)

// Band is one rate-bearing slice [Lower, Upper) of an amount. A nil Upper
// marks the unbounded top band.
type Band struct {
	Name  string   `yaml:"name,omitempty" json:"name,omitempty"`
	Lower float64  `yaml:"lower" json:"lower"`
	Upper *float64 `yaml:"upper" json:"upper"`
	Rate  float64  `yaml:"rate" json:"rate"`
}

// NewBand creates a bounded band.
func NewBand(name string, lower, upper, rate float64) Band {
	u := upper
	return Band{Name: name, Lower: lower, Upper: &u, Rate: rate}
}

// OpenBand creates the unbounded top band.
func OpenBand(name string, lower, rate float64) Band {
	return Band{Name: name, Lower: lower, Rate: rate}
}

// IsUnbounded reports whether the band has no upper limit.
func (b Band) IsUnbounded() bool {
	return b.Upper == nil
}

// UpperOr returns the upper bound, or fallback for the unbounded band.
func (b Band) UpperOr(fallback float64) float64 {
	if b.Upper == nil {
		return fallback
	}
	return *b.Upper
}

// Width returns Upper-Lower, or +Inf for the unbounded band.
func (b Band) Width() float64 {
	if b.Upper == nil {
		return math.Inf(1)
	}
	return *b.Upper - b.Lower
}

// Contains reports whether amount lies in [Lower, Upper).
func (b Band) Contains(amount float64) bool {
	if amount < b.Lower {
		return false
	}
	return b.Upper == nil || amount < *b.Upper
}

// Clone returns a copy that shares no memory with b.
func (b Band) Clone() Band {
	if b.Upper != nil {
		u := *b.Upper
		b.Upper = &u
	}
	return b
}

func (b Band) String() string {
	label := b.Name
	if label == "" {
		label = "band"
	}
	if b.Upper == nil {
		return fmt.Sprintf("%s [%.2f, ∞) @ %.4f", label, b.Lower, b.Rate)
	}
	return fmt.Sprintf("%s [%.2f, %.2f) @ %.4f", label, b.Lower, *b.Upper, b.Rate)
}

// CloneBands deep-copies a band table.
func CloneBands(bands []Band) []Band {
	if bands == nil {
		return nil
	}
	out := make([]Band, len(bands))
	for i, b := range bands {
		out[i] = b.Clone()
	}
	return out
}

// BandLine is the share of an allocated amount that fell into one band.
type BandLine struct {
	Band          Band    `json:"band"`
	TaxableAmount float64 `json:"taxableAmount"`
	AmountDue     float64 `json:"amountDue"`
}

// BandAllocationResult is the outcome of spreading an amount across bands.
// TotalDue always equals the sum of AmountDue over Lines.
type BandAllocationResult struct {
	Amount        float64    `json:"amount"`
	TotalDue      float64    `json:"totalDue"`
	MarginalRate  float64    `json:"marginalRate"`
	EffectiveRate float64    `json:"effectiveRate"`
	Lines         []BandLine `json:"lines"`
}

// TaxableTotal sums TaxableAmount across lines.
func (r BandAllocationResult) TaxableTotal() float64 {
	var total float64
	for _, l := range r.Lines {
		total += l.TaxableAmount
	}
	return total
}
