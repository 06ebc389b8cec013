package domain

// LoanTerms describes an amortizing loan. Principal and TermPeriods must be
// positive for a schedule to be produced.
type LoanTerms struct {
	Principal             float64 `yaml:"principal" json:"principal"`
	AnnualRatePercent     float64 `yaml:"annual_rate_percent" json:"annualRatePercent"`
	TermPeriods           int     `yaml:"term_periods" json:"termPeriods"`
	ExtraPaymentPerPeriod float64 `yaml:"extra_payment_per_period" json:"extraPaymentPerPeriod"`

	// PeriodsPerYear defaults to 12 when zero.
	PeriodsPerYear int `yaml:"periods_per_year,omitempty" json:"periodsPerYear,omitempty"`

	// ScheduledPayment replaces the level annuity payment when positive.
	// Debt payoff calculators use it to model a fixed card or loan payment.
	ScheduledPayment float64 `yaml:"scheduled_payment,omitempty" json:"scheduledPayment,omitempty"`

	// MaxPeriods overrides the default runaway cap when positive.
	MaxPeriods int `yaml:"max_periods,omitempty" json:"maxPeriods,omitempty"`
}

// ScheduleEntry is one period of an amortization schedule.
type ScheduleEntry struct {
	PeriodIndex        int     `json:"periodIndex"`
	PaymentAmount      float64 `json:"paymentAmount"`
	InterestPortion    float64 `json:"interestPortion"`
	PrincipalPortion   float64 `json:"principalPortion"`
	RemainingBalance   float64 `json:"remainingBalance"`
	CumulativeInterest float64 `json:"cumulativeInterest"`
}

// ScheduleTotals summarises a completed schedule.
type ScheduleTotals struct {
	Periods          int     `json:"periods"`
	ScheduledPayment float64 `json:"scheduledPayment"`
	TotalPaid        float64 `json:"totalPaid"`
	TotalInterest    float64 `json:"totalInterest"`
	TotalPrincipal   float64 `json:"totalPrincipal"`
	PeriodsSaved     int     `json:"periodsSaved"`
}

// Schedule is a complete amortization schedule. It is only ever returned
// when the balance reached exactly zero on the final entry.
type Schedule struct {
	Terms   LoanTerms       `json:"terms"`
	Entries []ScheduleEntry `json:"entries"`
	Totals  ScheduleTotals  `json:"totals"`
}

// FinalEntry returns the last entry, or the zero entry for an empty schedule.
func (s *Schedule) FinalEntry() ScheduleEntry {
	if s == nil || len(s.Entries) == 0 {
		return ScheduleEntry{}
	}
	return s.Entries[len(s.Entries)-1]
}

// YearSummary rolls a schedule up into one row per year.
type YearSummary struct {
	Year               int     `json:"year"`
	PaymentTotal       float64 `json:"paymentTotal"`
	InterestTotal      float64 `json:"interestTotal"`
	PrincipalTotal     float64 `json:"principalTotal"`
	ClosingBalance     float64 `json:"closingBalance"`
	CumulativeInterest float64 `json:"cumulativeInterest"`
}

// Yearly groups the entries by year using periodsPerYear periods per year.
func (s *Schedule) Yearly(periodsPerYear int) []YearSummary {
	if s == nil || len(s.Entries) == 0 {
		return nil
	}
	if periodsPerYear <= 0 {
		periodsPerYear = 12
	}
	years := make([]YearSummary, 0, len(s.Entries)/periodsPerYear+1)
	for _, e := range s.Entries {
		year := (e.PeriodIndex-1)/periodsPerYear + 1
		if len(years) == 0 || years[len(years)-1].Year != year {
			years = append(years, YearSummary{Year: year})
		}
		y := &years[len(years)-1]
		y.PaymentTotal += e.PaymentAmount
		y.InterestTotal += e.InterestPortion
		y.PrincipalTotal += e.PrincipalPortion
		y.ClosingBalance = e.RemainingBalance
		y.CumulativeInterest = e.CumulativeInterest
	}
	return years
}
