package tui

// Scene represents different screens in the TUI
type Scene int

const (
	SceneHome Scene = iota
	SceneIncomeTax
	SceneMortgage
	SceneSavings
	SceneHelp
)

// NavigateMsg switches to a different scene
type NavigateMsg struct {
	Scene Scene
}

// QuitMsg signals the application should exit
type QuitMsg struct{}

// String returns a human-readable name for a scene
func (s Scene) String() string {
	switch s {
	case SceneHome:
		return "Home"
	case SceneIncomeTax:
		return "Take-Home Pay"
	case SceneMortgage:
		return "Mortgage"
	case SceneSavings:
		return "Savings"
	case SceneHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
