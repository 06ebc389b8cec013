package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkhegde/calcmymoney/internal/calculation"
	"github.com/mkhegde/calcmymoney/internal/calculators"
	"github.com/mkhegde/calcmymoney/internal/config"
	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/tui/scenes"
	"github.com/mkhegde/calcmymoney/internal/tui/tuimsg"
)

// Model represents the entire application state
type Model struct {
	// Navigation
	currentScene  Scene
	previousScene Scene

	// Terminal dimensions
	width  int
	height int

	// Rules and calculation
	rulesPath string
	rulesName string
	rules     *domain.RuleSet
	engine    *calculation.CalculationEngine
	calc      *calculators.Calculator

	// Scenes
	homeModel      *scenes.HomeModel
	incomeTaxModel *scenes.IncomeTaxModel
	mortgageModel  *scenes.MortgageModel
	savingsModel   *scenes.SavingsModel

	// Error state
	err error

	// Loading state
	loading bool
}

// NewModel creates a new application model. An empty rulesPath loads the
// built-in rules.
func NewModel(rulesPath string, engine *calculation.CalculationEngine) Model {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return Model{
		currentScene:   SceneHome,
		rulesPath:      rulesPath,
		engine:         engine,
		homeModel:      scenes.NewHomeModel(),
		incomeTaxModel: scenes.NewIncomeTaxModel(),
		mortgageModel:  scenes.NewMortgageModel(),
		savingsModel:   scenes.NewSavingsModel(),
		width:          80,
		height:         24,
		loading:        true,
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadRulesCmd(m.rulesPath)
}

// CurrentScene returns the scene on screen
func (m Model) CurrentScene() Scene {
	return m.currentScene
}

// Calculator returns the calculator, or nil before rules are loaded
func (m Model) Calculator() *calculators.Calculator {
	return m.calc
}

// loadRulesCmd returns a command that loads the tax rules
func loadRulesCmd(path string) tea.Cmd {
	return func() tea.Msg {
		rules, err := config.NewRuleSetParser().Load(path)
		if err != nil {
			return tuimsg.ErrorMsg{Err: err}
		}
		name := path
		if name == "" {
			name = config.DefaultRulesName
		}
		return tuimsg.RulesLoadedMsg{Name: name, Rules: rules}
	}
}

func toolScene(t tuimsg.Tool) Scene {
	switch t {
	case tuimsg.ToolMortgage:
		return SceneMortgage
	case tuimsg.ToolSavings:
		return SceneSavings
	default:
		return SceneIncomeTax
	}
}
