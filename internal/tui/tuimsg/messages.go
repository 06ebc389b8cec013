// Package tuimsg holds the messages exchanged between the TUI root model and
// its scenes.
package tuimsg

import (
	"github.com/mkhegde/calcmymoney/internal/calculators"
	"github.com/mkhegde/calcmymoney/internal/domain"
)

// RulesLoadedMsg signals the tax rules are ready
type RulesLoadedMsg struct {
	Name  string
	Rules *domain.RuleSet
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// IncomeTaxResultMsg carries a finished take-home calculation
type IncomeTaxResultMsg struct {
	Result *calculators.IncomeTaxResult
	Err    error
}

// MortgageResultMsg carries a finished mortgage schedule
type MortgageResultMsg struct {
	Result *calculators.MortgageResult
	Err    error
}

// SavingsResultMsg carries a finished savings projection
type SavingsResultMsg struct {
	Result *calculators.SavingsResult
	Err    error
}

// Tool identifies a calculator scene
type Tool int

const (
	ToolIncomeTax Tool = iota
	ToolMortgage
	ToolSavings
)

// OpenToolMsg asks the root model to switch to a calculator scene
type OpenToolMsg struct {
	Tool Tool
}
