package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mkhegde/calcmymoney/internal/calculators"
	"github.com/mkhegde/calcmymoney/internal/output"
	"github.com/mkhegde/calcmymoney/internal/taxbands"
)

func incomeTaxCmd(a *app) *cobra.Command {
	var in calculators.IncomeTaxInput
	cmd := &cobra.Command{
		Use:   "income-tax",
		Short: "Income tax, National Insurance and take-home pay",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.logger.Debug("income tax", zap.Float64("salary", in.GrossSalary), zap.String("region", in.Region))
			res, err := a.calc.IncomeTax(in)
			if err != nil {
				return err
			}
			return a.emit(cmd, output.IncomeTaxReport(res))
		},
	}
	cmd.Flags().Float64VarP(&in.GrossSalary, "salary", "s", 0, "Gross annual salary (£)")
	cmd.Flags().StringVar(&in.Region, "region", "england", "Tax region (england, scotland)")
	cmd.Flags().Float64Var(&in.PensionSacrificePercent, "sacrifice", 0, "Salary sacrificed into a pension (%)")
	cmd.Flags().Float64Var(&in.OtherIncome, "other-income", 0, "Other taxable income (£)")
	_ = cmd.MarkFlagRequired("salary")
	return cmd
}

func dividendCmd(a *app) *cobra.Command {
	var in calculators.DividendInput
	cmd := &cobra.Command{
		Use:   "dividend",
		Short: "Dividend tax on top of other income",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.calc.DividendTax(in)
			if err != nil {
				return err
			}
			return a.emit(cmd, output.DividendReport(res))
		},
	}
	cmd.Flags().Float64VarP(&in.Dividends, "dividends", "d", 0, "Dividends received (£)")
	cmd.Flags().Float64Var(&in.OtherIncome, "other-income", 0, "Salary and other non-dividend income (£)")
	cmd.Flags().StringVar(&in.Region, "region", "england", "Tax region (england, scotland)")
	_ = cmd.MarkFlagRequired("dividends")
	return cmd
}

func stampDutyCmd(a *app) *cobra.Command {
	var (
		in    calculators.StampDutyInput
		buyer string
	)
	cmd := &cobra.Command{
		Use:   "stamp-duty",
		Short: "Stamp Duty Land Tax on a residential purchase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bt, err := taxbands.ParseBuyerType(buyer)
			if err != nil {
				return err
			}
			in.Buyer = bt
			res, err := a.calc.StampDuty(in)
			if err != nil {
				return err
			}
			return a.emit(cmd, output.StampDutyReport(res))
		},
	}
	cmd.Flags().Float64VarP(&in.Price, "price", "p", 0, "Purchase price (£)")
	cmd.Flags().StringVar(&buyer, "buyer", "standard", "Buyer type (standard, first_time, additional)")
	cmd.Flags().BoolVar(&in.NonResident, "non-resident", false, "Apply the non-resident surcharge")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func mortgageCmd(a *app) *cobra.Command {
	var in calculators.MortgageInput
	cmd := &cobra.Command{
		Use:   "mortgage",
		Short: "Repayment mortgage schedule with optional overpayments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.calc.Mortgage(in)
			if err != nil {
				return err
			}
			return a.emit(cmd, output.MortgageReport(res))
		},
	}
	cmd.Flags().Float64VarP(&in.PropertyPrice, "price", "p", 0, "Property price (£)")
	cmd.Flags().Float64Var(&in.Deposit, "deposit", 0, "Deposit (£)")
	cmd.Flags().Float64Var(&in.AnnualRatePercent, "rate", 0, "Annual interest rate (%)")
	cmd.Flags().IntVar(&in.TermYears, "term", 25, "Term (years)")
	cmd.Flags().Float64Var(&in.MonthlyOverpayment, "overpayment", 0, "Monthly overpayment (£)")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func remortgageCmd(a *app) *cobra.Command {
	var in calculators.RemortgageInput
	cmd := &cobra.Command{
		Use:   "remortgage",
		Short: "Compare staying on the current rate with switching",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.calc.Remortgage(in)
			if err != nil {
				return err
			}
			return a.emit(cmd, output.RemortgageReport(res))
		},
	}
	cmd.Flags().Float64VarP(&in.Balance, "balance", "b", 0, "Outstanding balance (£)")
	cmd.Flags().Float64Var(&in.CurrentRatePercent, "current-rate", 0, "Current annual rate (%)")
	cmd.Flags().Float64Var(&in.NewRatePercent, "new-rate", 0, "New annual rate (%)")
	cmd.Flags().IntVar(&in.RemainingYears, "remaining", 20, "Years left on the current mortgage")
	cmd.Flags().IntVar(&in.NewTermYears, "new-term", 0, "Term of the new mortgage in years (0 keeps the remaining term)")
	cmd.Flags().Float64Var(&in.Fees, "fees", 0, "Arrangement and legal fees (£)")
	cmd.Flags().IntVar(&in.FixedPeriodYears, "fixed", calculators.DefaultFixedPeriodYears, "Fixed period to compare over (years)")
	_ = cmd.MarkFlagRequired("balance")
	return cmd
}

func debtCmd(a *app) *cobra.Command {
	var in calculators.DebtPayoffInput
	cmd := &cobra.Command{
		Use:   "debt",
		Short: "How long a fixed monthly payment takes to clear a debt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.calc.DebtPayoff(in)
			if err != nil {
				return err
			}
			return a.emit(cmd, output.DebtReport(res))
		},
	}
	cmd.Flags().Float64VarP(&in.Balance, "balance", "b", 0, "Balance owed (£)")
	cmd.Flags().Float64Var(&in.APR, "apr", 0, "Annual percentage rate (%)")
	cmd.Flags().Float64Var(&in.MonthlyPayment, "payment", 0, "Monthly payment (£)")
	_ = cmd.MarkFlagRequired("balance")
	_ = cmd.MarkFlagRequired("payment")
	return cmd
}

func buyToLetCmd(a *app) *cobra.Command {
	var in calculators.BuyToLetInput
	cmd := &cobra.Command{
		Use:     "btl",
		Aliases: []string{"buy-to-let"},
		Short:   "Buy-to-let yield and cash flow",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.calc.BuyToLet(in)
			if err != nil {
				return err
			}
			return a.emit(cmd, output.BuyToLetReport(res))
		},
	}
	cmd.Flags().Float64VarP(&in.PropertyPrice, "price", "p", 0, "Property price (£)")
	cmd.Flags().Float64Var(&in.DepositPercent, "deposit", 25, "Deposit (% of price)")
	cmd.Flags().Float64Var(&in.AnnualRatePercent, "rate", 0, "Mortgage rate (%)")
	cmd.Flags().IntVar(&in.TermYears, "term", 25, "Mortgage term (years)")
	cmd.Flags().BoolVar(&in.InterestOnly, "interest-only", true, "Interest-only mortgage")
	cmd.Flags().Float64Var(&in.MonthlyRent, "rent", 0, "Monthly rent (£)")
	cmd.Flags().Float64Var(&in.AnnualCosts, "costs", 0, "Annual running costs (£)")
	cmd.Flags().Float64Var(&in.VoidWeeks, "void-weeks", 0, "Weeks a year without a tenant")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("rent")
	return cmd
}

func pensionCmd(a *app) *cobra.Command {
	var in calculators.PensionInput
	cmd := &cobra.Command{
		Use:   "pension",
		Short: "Project a defined contribution pension to retirement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.calc.Pension(in)
			if err != nil {
				return err
			}
			return a.emit(cmd, output.PensionReport(res))
		},
	}
	cmd.Flags().IntVar(&in.CurrentAge, "age", 30, "Current age")
	cmd.Flags().IntVar(&in.RetirementAge, "retire-at", 67, "Retirement age")
	cmd.Flags().Float64Var(&in.CurrentPot, "pot", 0, "Current pension pot (£)")
	cmd.Flags().Float64Var(&in.MonthlyContribution, "contribution", 0, "Your monthly contribution before relief (£)")
	cmd.Flags().Float64Var(&in.EmployerContribution, "employer", 0, "Employer monthly contribution (£)")
	cmd.Flags().Float64Var(&in.TaxReliefRate, "relief", 20, "Tax relief on your contribution (%)")
	cmd.Flags().Float64Var(&in.AnnualReturnPercent, "return", 5, "Annual investment return (%)")
	cmd.Flags().Float64Var(&in.AnnualInflationPercent, "inflation", 2, "Annual inflation (%)")
	cmd.Flags().Float64Var(&in.ContributionIncreasePercent, "increase", 0, "Yearly contribution increase (%)")
	cmd.Flags().Float64Var(&in.WithdrawalRatePercent, "withdrawal", 4, "Withdrawal rate in retirement (%)")
	return cmd
}

func savingsCmd(a *app) *cobra.Command {
	var in calculators.SavingsInput
	cmd := &cobra.Command{
		Use:   "savings",
		Short: "Grow savings with monthly deposits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.calc.Savings(in)
			if err != nil {
				return err
			}
			return a.emit(cmd, output.SavingsReport(res))
		},
	}
	cmd.Flags().Float64Var(&in.Initial, "initial", 0, "Starting balance (£)")
	cmd.Flags().Float64Var(&in.MonthlyDeposit, "deposit", 0, "Monthly deposit (£)")
	cmd.Flags().Float64Var(&in.AnnualRatePercent, "rate", 0, "Interest rate AER (%)")
	cmd.Flags().IntVar(&in.Years, "years", 10, "Years to save")
	cmd.Flags().Float64Var(&in.AnnualInflationPercent, "inflation", 0, "Annual inflation (%)")
	cmd.Flags().Float64Var(&in.DepositIncreasePercent, "increase", 0, "Yearly deposit increase (%)")
	return cmd
}
