package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhegde/calcmymoney/internal/tui/tuimsg"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// step feeds msg to m and runs any returned command once, feeding its
// message back in.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if cmd != nil {
		if out := cmd(); out != nil {
			next, _ = m.Update(out)
			m = next.(Model)
		}
	}
	return m
}

func loadedModel(t *testing.T) Model {
	t.Helper()
	m := NewModel("", nil)
	msg := m.Init()()
	_, ok := msg.(tuimsg.RulesLoadedMsg)
	require.True(t, ok, "expected rules to load, got %T", msg)
	return step(t, m, msg)
}

func TestModel_LoadsBuiltinRules(t *testing.T) {
	m := NewModel("", nil)
	assert.Contains(t, m.View(), "Loading tax rules")

	m = loadedModel(t)
	assert.NotNil(t, m.Calculator())
	assert.Equal(t, SceneHome, m.CurrentScene())
	assert.Contains(t, m.View(), "builtin:uk-2025-26")
}

func TestModel_BadRulesPathShowsError(t *testing.T) {
	m := NewModel("/does/not/exist.yaml", nil)
	m = step(t, m, m.Init()())

	assert.Nil(t, m.Calculator())
	assert.Contains(t, m.View(), "Error:")

	m = step(t, m, keyMsg("x"))
	assert.NotContains(t, m.View(), "Error:")
}

func TestModel_OpenIncomeTaxAndCalculate(t *testing.T) {
	m := loadedModel(t)

	m = step(t, m, keyMsg("1"))
	require.Equal(t, SceneIncomeTax, m.CurrentScene())

	m = step(t, m, keyMsg("enter"))
	res := m.incomeTaxModel.Result()
	require.NotNil(t, res)
	assert.InDelta(t, 39519.60, res.TakeHomeAnnual, 0.01)
	assert.Contains(t, m.View(), "£39,520")

	m = step(t, m, keyMsg("esc"))
	assert.Equal(t, SceneHome, m.CurrentScene())
}

func TestModel_MenuNavigation(t *testing.T) {
	m := loadedModel(t)

	m = step(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = step(t, m, keyMsg("enter"))
	assert.Equal(t, SceneMortgage, m.CurrentScene())

	m = step(t, m, keyMsg("esc"))
	m = step(t, m, keyMsg("3"))
	assert.Equal(t, SceneSavings, m.CurrentScene())

	m = step(t, m, keyMsg("enter"))
	require.NotNil(t, m.savingsModel.Result())
	assert.Contains(t, m.View(), "Balance by year")
}

func TestModel_LettersAreTypedInForms(t *testing.T) {
	m := loadedModel(t)
	m = step(t, m, keyMsg("1"))

	// q lands in the focused field instead of quitting
	next, _ := m.Update(keyMsg("q"))
	m = next.(Model)
	assert.Equal(t, SceneIncomeTax, m.CurrentScene())
	assert.Contains(t, m.View(), "50000q")
}

func TestModel_QuitFromHome(t *testing.T) {
	m := loadedModel(t)
	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = m.Update(keyMsg("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_Help(t *testing.T) {
	m := loadedModel(t)
	m = step(t, m, keyMsg("?"))
	assert.Equal(t, SceneHelp, m.CurrentScene())
	assert.Contains(t, m.View(), "KEYBOARD SHORTCUTS")
}

func TestModel_WindowSize(t *testing.T) {
	m := loadedModel(t)
	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestScene_String(t *testing.T) {
	assert.Equal(t, "Mortgage", SceneMortgage.String())
	assert.Equal(t, "Unknown", Scene(99).String())
}
