package calculators

import (
	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
	"github.com/mkhegde/calcmymoney/internal/taxbands"
)

// StampDutyInput describes a residential purchase in England or Northern Ireland.
type StampDutyInput struct {
	Price       float64            `json:"price"`
	Buyer       taxbands.BuyerType `json:"buyer"`
	NonResident bool               `json:"nonResident"`
}

// StampDutyResult is the SDLT liability.
type StampDutyResult struct {
	Input                  StampDutyInput              `json:"input"`
	Allocation             domain.BandAllocationResult `json:"allocation"`
	TaxDue                 float64                     `json:"taxDue"`
	EffectiveRate          float64                     `json:"effectiveRate"`
	FirstTimeReliefApplied bool                        `json:"firstTimeReliefApplied"`
}

// StampDuty works out SDLT for one purchase.
func (c *Calculator) StampDuty(in StampDutyInput) (*StampDutyResult, error) {
	const op = "stamp_duty"
	if err := c.requireRules(op); err != nil {
		return nil, err
	}

	price := numeric.NonNegative(in.Price)
	rules := c.Rules.StampDuty
	bands, err := taxbands.StampDutyBands(rules, in.Buyer, price, in.NonResident)
	if err != nil {
		return nil, err
	}

	allocation, err := c.Engine.AllocateBands(price, bands)
	if err != nil {
		return nil, err
	}
	due := rules.Rounding.Apply(allocation.TotalDue)

	return &StampDutyResult{
		Input:                  in,
		Allocation:             allocation,
		TaxDue:                 due,
		EffectiveRate:          percentOf(due, price),
		FirstTimeReliefApplied: in.Buyer == taxbands.BuyerFirstTime && len(rules.FirstTimeBuyer) > 0 && price <= rules.FirstTimeBuyerMaxPrice,
	}, nil
}
