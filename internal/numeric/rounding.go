package numeric

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how a value is reduced to a fixed number of places.
type RoundingMode string

const (
	RoundNone    RoundingMode = "none"
	RoundHalfUp  RoundingMode = "round"
	RoundFloor   RoundingMode = "floor"
	RoundCeil    RoundingMode = "ceil"
	RoundBankers RoundingMode = "bankers"
)

// Rounding is a per-domain rounding rule. HMRC tables do not share one
// convention (allowance tapers floor to the pound, SDLT floors the final
// liability, NI rounds to the penny), so callers carry the rule with the
// table it belongs to.
type Rounding struct {
	Mode   RoundingMode `yaml:"mode" json:"mode"`
	Places int32        `yaml:"places" json:"places"`
}

// ParseRoundingMode accepts the names used in rule-set files.
func ParseRoundingMode(s string) (RoundingMode, error) {
	switch RoundingMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", RoundNone:
		return RoundNone, nil
	case RoundHalfUp, "half_up", "nearest":
		return RoundHalfUp, nil
	case RoundFloor, "down":
		return RoundFloor, nil
	case RoundCeil, "up":
		return RoundCeil, nil
	case RoundBankers, "half_even":
		return RoundBankers, nil
	default:
		return RoundNone, fmt.Errorf("unknown rounding mode %q", s)
	}
}

// Apply rounds x according to the rule. Non-finite input becomes 0.
func (r Rounding) Apply(x float64) float64 {
	x = Sanitize(x)
	if r.Mode == "" || r.Mode == RoundNone {
		return x
	}
	d := decimal.NewFromFloat(x)
	switch r.Mode {
	case RoundHalfUp:
		d = d.Round(r.Places)
	case RoundFloor:
		d = d.RoundFloor(r.Places)
	case RoundCeil:
		d = d.RoundCeil(r.Places)
	case RoundBankers:
		d = d.RoundBank(r.Places)
	}
	f, _ := d.Float64()
	return f
}

func (r Rounding) String() string {
	if r.Mode == "" || r.Mode == RoundNone {
		return "none"
	}
	return fmt.Sprintf("%s(%d)", r.Mode, r.Places)
}
