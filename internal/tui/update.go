package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkhegde/calcmymoney/internal/calculators"
	"github.com/mkhegde/calcmymoney/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.incomeTaxModel.SetSize(msg.Width, msg.Height)
		m.mortgageModel.SetSize(msg.Width, msg.Height)
		m.savingsModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case NavigateMsg:
		m.previousScene = m.currentScene
		m.currentScene = msg.Scene
		return m, nil

	case QuitMsg:
		return m, tea.Quit

	case tuimsg.ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case tuimsg.RulesLoadedMsg:
		m.loading = false
		m.rules = msg.Rules
		m.rulesName = msg.Name
		m.calc = calculators.New(m.engine, msg.Rules)
		m.homeModel.SetRulesName(msg.Name)
		m.incomeTaxModel.SetCalculator(m.calc)
		m.mortgageModel.SetCalculator(m.calc)
		m.savingsModel.SetCalculator(m.calc)
		return m, nil

	case tuimsg.OpenToolMsg:
		m.previousScene = m.currentScene
		m.currentScene = toolScene(msg.Tool)
		return m, nil

	// Results go to their scene even if the user has moved on
	case tuimsg.IncomeTaxResultMsg:
		var cmd tea.Cmd
		m.incomeTaxModel, cmd = m.incomeTaxModel.Update(msg)
		return m, cmd

	case tuimsg.MortgageResultMsg:
		var cmd tea.Cmd
		m.mortgageModel, cmd = m.mortgageModel.Update(msg)
		return m, cmd

	case tuimsg.SavingsResultMsg:
		var cmd tea.Cmd
		m.savingsModel, cmd = m.savingsModel.Update(msg)
		return m, cmd
	}

	return m.updateCurrentScene(msg)
}

// handleKeyPress processes keyboard input. Letter shortcuts only apply
// outside the calculator forms, where letters are typed into fields.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.err != nil {
			m.err = nil
			return m, nil
		}
		if m.currentScene != SceneHome {
			m.previousScene = m.currentScene
			m.currentScene = SceneHome
		}
		return m, nil
	}

	if m.err != nil {
		m.err = nil
		return m, nil
	}

	if m.currentScene == SceneHome || m.currentScene == SceneHelp {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "?":
			m.previousScene = m.currentScene
			m.currentScene = SceneHelp
			return m, nil
		}
	}

	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case SceneIncomeTax:
		m.incomeTaxModel, cmd = m.incomeTaxModel.Update(msg)
	case SceneMortgage:
		m.mortgageModel, cmd = m.mortgageModel.Update(msg)
	case SceneSavings:
		m.savingsModel, cmd = m.savingsModel.Update(msg)
	}
	return m, cmd
}
