package output

// DefaultAssumptions lists the modelling assumptions printed under detailed reports.
var DefaultAssumptions = []string{
	"Tax bands and allowances come from the loaded rule set and are not indexed",
	"Loan interest accrues monthly at the nominal annual rate divided by 12",
	"Savings and pension growth compound monthly at the equivalent of the annual rate",
	"Real figures are deflated by the stated inflation rate",
}
