package output

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mkhegde/calcmymoney/internal/calculators"
	"github.com/mkhegde/calcmymoney/internal/compare"
	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/solver"
	"github.com/mkhegde/calcmymoney/internal/taxbands"
)

func money(v float64) string { return FormatCurrency(v) }
func pct(v float64) string   { return FormatPercentage(v) }

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func bandLabel(b domain.Band) string {
	upper := "and above"
	if !b.IsUnbounded() {
		upper = "to " + money(*b.Upper)
	}
	name := b.Name
	if name == "" {
		name = "band"
	}
	return fmt.Sprintf("%s (%s %s)", name, money(b.Lower), upper)
}

// BandTable lists an allocation line by line.
func BandTable(title string, alloc domain.BandAllocationResult) Table {
	t := Table{Title: title, Columns: []string{"Band", "Rate", "Taxable", "Due"}}
	for _, line := range alloc.Lines {
		t.Rows = append(t.Rows, []string{
			bandLabel(line.Band),
			pct(line.Band.Rate * 100),
			money(line.TaxableAmount),
			money(line.AmountDue),
		})
	}
	t.Rows = append(t.Rows, []string{"Total", "", money(alloc.Amount), money(alloc.TotalDue)})
	return t
}

// BandsTable lists a band table without an allocation.
func BandsTable(title string, bands []domain.Band) Table {
	t := Table{Title: title, Columns: []string{"Band", "From", "To", "Rate"}}
	for _, b := range bands {
		upper := "-"
		if !b.IsUnbounded() {
			upper = money(*b.Upper)
		}
		t.Rows = append(t.Rows, []string{b.Name, money(b.Lower), upper, pct(b.Rate * 100)})
	}
	return t
}

// ScheduleTable rolls a schedule up by year.
func ScheduleTable(title string, yearly []domain.YearSummary) Table {
	t := Table{Title: title, Columns: []string{"Year", "Paid", "Interest", "Principal", "Balance"}}
	for _, y := range yearly {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(y.Year),
			money(y.PaymentTotal),
			money(y.InterestTotal),
			money(y.PrincipalTotal),
			money(y.ClosingBalance),
		})
	}
	return t
}

// GrowthTable lists the year-end snapshots of a projection.
func GrowthTable(title string, projection *domain.GrowthProjectionResult) Table {
	t := Table{Title: title, Columns: []string{"Year", "Balance", "Real Balance", "Contributed"}}
	if projection == nil {
		return t
	}
	for _, s := range projection.Snapshots {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(s.Year),
			money(s.Balance),
			money(s.RealBalance),
			money(s.ContributionsToDate),
		})
	}
	return t
}

// IncomeTaxReport summarises a take-home pay calculation.
func IncomeTaxReport(r *calculators.IncomeTaxResult) *Report {
	rep := &Report{
		Title:    "Income Tax & Take-Home Pay",
		Subtitle: "Region: " + r.Region,
		Data:     r,
	}
	rep.Add("Gross salary", money(r.Input.GrossSalary))
	if r.Input.OtherIncome > 0 {
		rep.Add("Other income", money(r.Input.OtherIncome))
	}
	if r.PensionContribution > 0 {
		rep.Add("Pension contribution", money(r.PensionContribution))
	}
	rep.Add("Adjusted net income", money(r.AdjustedNetIncome)).
		Add("Personal allowance", money(r.PersonalAllowance)).
		Add("Taxable income", money(r.TaxableIncome)).
		Add("Income tax", money(r.IncomeTaxDue)).
		Add("National Insurance", money(r.NationalInsuranceDue)).
		Add("Total deductions", money(r.TotalDeductions)).
		Add("Take-home (annual)", money(r.TakeHomeAnnual)).
		Add("Take-home (monthly)", money(r.TakeHomeMonthly)).
		Add("Effective rate", pct(r.EffectiveRate)).
		Add("Marginal rate", pct(r.MarginalRate))
	rep.Tables = []Table{
		BandTable("Income tax by band", r.IncomeTax),
		BandTable("National Insurance by band", r.NationalInsurance),
	}
	return rep
}

// DividendReport summarises a dividend tax calculation.
func DividendReport(r *calculators.DividendResult) *Report {
	rep := &Report{Title: "Dividend Tax", Data: r}
	rep.Add("Other income", money(r.Input.OtherIncome)).
		Add("Dividends", money(r.Input.Dividends)).
		Add("Personal allowance", money(r.PersonalAllowance)).
		Add("Allowance used by dividends", money(r.AllowanceUsedByDividends)).
		Add("Dividend allowance used", money(r.DividendAllowanceUsed)).
		Add("Taxable dividends", money(r.TaxableDividends)).
		Add("Tax due", money(r.TaxDue)).
		Add("Net dividends", money(r.NetDividends)).
		Add("Effective rate", pct(r.EffectiveRate)).
		Add("Marginal rate", pct(r.MarginalRate))
	rep.Tables = []Table{BandTable("Dividend tax by band", r.Allocation)}
	return rep
}

// StampDutyReport summarises a stamp duty calculation.
func StampDutyReport(r *calculators.StampDutyResult) *Report {
	buyer := string(r.Input.Buyer)
	if buyer == "" {
		buyer = string(taxbands.BuyerStandard)
	}
	rep := &Report{Title: "Stamp Duty Land Tax", Subtitle: "Buyer: " + strings.ReplaceAll(buyer, "_", " "), Data: r}
	rep.Add("Price", money(r.Input.Price)).
		Add("Non-resident", yesNo(r.Input.NonResident)).
		Add("First-time buyer relief", yesNo(r.FirstTimeReliefApplied)).
		Add("Tax due", money(r.TaxDue)).
		Add("Effective rate", pct(r.EffectiveRate))
	rep.Tables = []Table{BandTable("Stamp duty by band", r.Allocation)}
	return rep
}

// MortgageReport summarises a repayment mortgage.
func MortgageReport(r *calculators.MortgageResult) *Report {
	rep := &Report{
		Title:    "Mortgage Repayments",
		Subtitle: fmt.Sprintf("%.2f%% over %d years", r.Input.AnnualRatePercent, r.Input.TermYears),
		Data:     r,
	}
	rep.Add("Property price", money(r.Input.PropertyPrice)).
		Add("Deposit", money(r.Input.Deposit)).
		Add("Loan amount", money(r.LoanAmount)).
		Add("Loan to value", pct(r.LoanToValue)).
		Add("Monthly payment", money(r.MonthlyPayment))
	if r.Input.MonthlyOverpayment > 0 {
		rep.Add("Monthly overpayment", money(r.Input.MonthlyOverpayment)).
			Add("Interest saved", money(r.InterestSaved)).
			Add("Months saved", strconv.Itoa(r.MonthsSaved))
	}
	rep.Add("Months to repay", strconv.Itoa(r.Months)).
		Add("Total paid", money(r.TotalPaid)).
		Add("Total interest", money(r.TotalInterest))
	rep.Tables = []Table{ScheduleTable("Yearly schedule", r.Yearly)}
	return rep
}

// RemortgageReport summarises a remortgage break-even check.
func RemortgageReport(r *calculators.RemortgageResult) *Report {
	rep := &Report{Title: "Remortgage Comparison", Data: r}
	rep.Add("Balance", money(r.Input.Balance)).
		Add("Current payment", money(r.CurrentPayment)).
		Add("New payment", money(r.NewPayment)).
		Add("Monthly saving", money(r.MonthlySaving)).
		Add("Fees", money(r.Input.Fees))
	if r.BreaksEven {
		rep.Add("Break-even", fmt.Sprintf("%d months", r.BreakEvenMonths))
	} else {
		rep.Add("Break-even", "never")
	}
	rep.Add("Fixed period", fmt.Sprintf("%d months", r.FixedPeriodMonths)).
		Add("Current cost over fixed period", money(r.CurrentCostOverFixed)).
		Add("New cost over fixed period", money(r.NewCostOverFixed)).
		Add("Saving over fixed period", money(r.SavingOverFixed)).
		Add("Current total interest", money(r.CurrentTotalInterest)).
		Add("New total interest", money(r.NewTotalInterest))
	return rep
}

// DebtReport summarises a debt payoff plan.
func DebtReport(r *calculators.DebtPayoffResult) *Report {
	rep := &Report{Title: "Debt Payoff", Data: r}
	rep.Add("Balance", money(r.Input.Balance)).
		Add("APR", pct(r.Input.APR)).
		Add("Monthly payment", money(r.Input.MonthlyPayment)).
		Add("Time to clear", fmt.Sprintf("%d years %d months", r.Years, r.ExtraMonths)).
		Add("Total interest", money(r.TotalInterest)).
		Add("Total paid", money(r.TotalPaid))
	if r.Schedule != nil {
		rep.Tables = []Table{ScheduleTable("Yearly schedule", r.Schedule.Yearly(12))}
	}
	return rep
}

// BuyToLetReport summarises a rental investment.
func BuyToLetReport(r *calculators.BuyToLetResult) *Report {
	kind := "repayment"
	if r.Input.InterestOnly {
		kind = "interest-only"
	}
	rep := &Report{Title: "Buy-to-Let Analysis", Subtitle: "Mortgage: " + kind, Data: r}
	rep.Add("Property price", money(r.Input.PropertyPrice)).
		Add("Deposit", money(r.Deposit)).
		Add("Stamp duty", money(r.StampDuty)).
		Add("Cash invested", money(r.CashInvested)).
		Add("Loan amount", money(r.LoanAmount)).
		Add("Monthly mortgage", money(r.MortgagePayment)).
		Add("Annual rent", money(r.AnnualRent)).
		Add("Rent after voids", money(r.EffectiveRent)).
		Add("Gross yield", pct(r.GrossYield)).
		Add("Net yield", pct(r.NetYield)).
		Add("Annual cash flow", money(r.AnnualCashFlow)).
		Add("Monthly cash flow", money(r.MonthlyCashFlow)).
		Add("Cash-on-cash return", pct(r.CashOnCashReturn)).
		Add("Rental coverage", pct(r.RentalCoverage))
	return rep
}

// PensionReport summarises a pension projection.
func PensionReport(r *calculators.PensionResult) *Report {
	rep := &Report{
		Title:    "Pension Projection",
		Subtitle: fmt.Sprintf("Age %d to %d", r.Input.CurrentAge, r.Input.RetirementAge),
		Data:     r,
	}
	rep.Add("Years to retirement", strconv.Itoa(r.Years)).
		Add("Monthly contribution (gross)", money(r.GrossMonthlyPersonal)).
		Add("Monthly total incl. employer", money(r.MonthlyTotal)).
		Add("Tax relief received", money(r.TaxReliefReceived)).
		Add("Pot at retirement", money(r.PotAtRetirement)).
		Add("Pot in today's money", money(r.RealPotAtRetirement)).
		Add("Tax-free lump sum", money(r.TaxFreeLumpSum)).
		Add("Remaining pot", money(r.RemainingPot)).
		Add("Annual income", money(r.AnnualIncome)).
		Add("Monthly income", money(r.MonthlyIncome)).
		Add("Annual income in today's money", money(r.RealAnnualIncome))
	rep.Tables = []Table{GrowthTable("Pot by year", r.Projection)}
	return rep
}

// SavingsReport summarises a savings projection.
func SavingsReport(r *calculators.SavingsResult) *Report {
	rep := &Report{
		Title:    "Savings Growth",
		Subtitle: fmt.Sprintf("%.2f%% AER over %d years", r.Input.AnnualRatePercent, r.Input.Years),
		Data:     r,
	}
	rep.Add("Initial deposit", money(r.Input.Initial)).
		Add("Monthly deposit", money(r.Input.MonthlyDeposit)).
		Add("Total deposits", money(r.TotalDeposits)).
		Add("Interest earned", money(r.InterestEarned)).
		Add("Final balance", money(r.FinalBalance)).
		Add("Final balance in today's money", money(r.RealFinalBalance))
	rep.Tables = []Table{GrowthTable("Balance by year", r.Projection)}
	return rep
}

// ComparisonReport lists every deal in a comparison set.
func ComparisonReport(cs *compare.ComparisonSet) *Report {
	rep := &Report{Title: "Loan Deal Comparison", Subtitle: "Base deal: " + cs.BaseDealName, Data: cs}
	t := Table{
		Title:   "Deals",
		Columns: []string{"Deal", "Monthly", "Total Cost", "Fixed Period Cost", "Months", "Cost vs Base"},
	}
	for _, r := range cs.All() {
		t.Rows = append(t.Rows, []string{
			r.DealName,
			"£" + r.MonthlyPayment.StringFixed(2),
			money(r.TotalCost.InexactFloat64()),
			money(r.CostOverFixed.InexactFloat64()),
			strconv.Itoa(r.Months),
			money(r.CostDiffFromBase.InexactFloat64()),
		})
	}
	rep.Tables = []Table{t}
	rep.Notes = append(rep.Notes, cs.Recommendations...)
	return rep
}

// SolverReport summarises a goal-seek result.
func SolverReport(r *solver.Result) *Report {
	rep := &Report{Title: "Goal Seek", Subtitle: "Target: " + string(r.Target), Data: r}
	switch r.Target {
	case solver.TargetOverpaymentForTerm:
		rep.Add("Target months", strconv.Itoa(int(r.Goal))).
			Add("Monthly overpayment", money(r.Value)).
			Add("Months achieved", strconv.Itoa(int(r.Achieved)))
	case solver.TargetGrossForNet:
		rep.Add("Target take-home", money(r.Goal)).
			Add("Gross salary needed", money(r.Value)).
			Add("Take-home achieved", money(r.Achieved))
	default:
		rep.Add("Target balance", money(r.Goal)).
			Add("Monthly contribution needed", money(r.Value)).
			Add("Balance achieved", money(r.Achieved))
	}
	rep.Add("Iterations", strconv.Itoa(r.Iterations)).
		Add("Converged", yesNo(r.Converged))
	if r.ConvergenceInfo != "" {
		rep.Notes = []string{r.ConvergenceInfo}
	}
	return rep
}

// RulesReport lists every band table in a rule set.
func RulesReport(name string, rs *domain.RuleSet) *Report {
	rep := &Report{Title: "Tax Rules", Subtitle: name, Data: rs}
	rep.Add("Tax year", rs.Metadata.TaxYear).
		Add("Last updated", rs.Metadata.LastUpdated).
		Add("Dividend allowance", money(rs.DividendTax.Allowance)).
		Add("First-time buyer price cap", money(rs.StampDuty.FirstTimeBuyerMaxPrice)).
		Add("Additional property surcharge", pct(rs.StampDuty.AdditionalPropertySurcharge*100)).
		Add("Non-resident surcharge", pct(rs.StampDuty.NonResidentSurcharge*100))

	regions := make([]string, 0, len(rs.IncomeTax))
	for region := range rs.IncomeTax {
		regions = append(regions, region)
	}
	sort.Strings(regions)
	for _, region := range regions {
		rules := rs.IncomeTax[region]
		rep.Add("Personal allowance ("+region+")", money(rules.PersonalAllowance))
		rep.Tables = append(rep.Tables, BandsTable("Income tax: "+region, rules.Bands))
	}
	rep.Tables = append(rep.Tables,
		BandsTable("National Insurance", rs.NationalInsurance.Bands),
		BandsTable("Dividend tax", rs.DividendTax.Bands),
		BandsTable("Stamp duty: standard", rs.StampDuty.Standard),
		BandsTable("Stamp duty: first-time buyer", rs.StampDuty.FirstTimeBuyer),
	)
	if rs.Metadata.Description != "" {
		rep.Notes = []string{rs.Metadata.Description}
	}
	return rep
}
