package domain

// GrowthPlan describes a balance grown by periodic contributions and returns.
// Rates are per period except ContributionEscalationRate, which is applied
// once per year.
type GrowthPlan struct {
	OpeningBalance             float64 `yaml:"opening_balance" json:"openingBalance"`
	PeriodicContribution       float64 `yaml:"periodic_contribution" json:"periodicContribution"`
	ContributionEscalationRate float64 `yaml:"contribution_escalation_rate" json:"contributionEscalationRate"`
	PeriodicReturnRate         float64 `yaml:"periodic_return_rate" json:"periodicReturnRate"`
	Periods                    int     `yaml:"periods" json:"periods"`
	InflationRatePerPeriod     float64 `yaml:"inflation_rate_per_period" json:"inflationRatePerPeriod"`

	// PeriodsPerYear defaults to 12 when zero.
	PeriodsPerYear int `yaml:"periods_per_year,omitempty" json:"periodsPerYear,omitempty"`
}

// GrowthSnapshot is the state of a projection at the end of a full year.
type GrowthSnapshot struct {
	Period              int     `json:"period"`
	Year                int     `json:"year"`
	Balance             float64 `json:"balance"`
	RealBalance         float64 `json:"realBalance"`
	ContributionsToDate float64 `json:"contributionsToDate"`
}

// GrowthProjectionResult is the outcome of a growth projection.
type GrowthProjectionResult struct {
	FinalBalance       float64          `json:"finalBalance"`
	TotalContributions float64          `json:"totalContributions"`
	TotalGrowth        float64          `json:"totalGrowth"`
	RealFinalBalance   float64          `json:"realFinalBalance"`
	Snapshots          []GrowthSnapshot `json:"snapshots"`
}
