package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkhegde/calcmymoney/internal/tui/tuistyles"
)

var (
	keyNext   = key.NewBinding(key.WithKeys("down", "tab"))
	keyPrev   = key.NewBinding(key.WithKeys("up", "shift+tab"))
	keySubmit = key.NewBinding(key.WithKeys("enter"))
)

// FieldSpec describes one input of a Form
type FieldSpec struct {
	Label   string
	Default string
	Hint    string
}

// Form is a vertical list of text inputs with a single focused field.
type Form struct {
	specs  []FieldSpec
	inputs []textinput.Model
	focus  int
}

// NewForm creates a form with the first field focused
func NewForm(specs ...FieldSpec) *Form {
	inputs := make([]textinput.Model, len(specs))
	for i, spec := range specs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 16
		ti.Width = 16
		ti.Placeholder = spec.Hint
		ti.SetValue(spec.Default)
		inputs[i] = ti
	}
	f := &Form{specs: specs, inputs: inputs}
	if len(inputs) > 0 {
		f.inputs[0].Focus()
	}
	return f
}

// Focused returns the index of the focused field
func (f *Form) Focused() int {
	return f.focus
}

// Value returns the raw text of field i
func (f *Form) Value(i int) string {
	if i < 0 || i >= len(f.inputs) {
		return ""
	}
	return f.inputs[i].Value()
}

// SetValue replaces the text of field i
func (f *Form) SetValue(i int, v string) {
	if i >= 0 && i < len(f.inputs) {
		f.inputs[i].SetValue(v)
	}
}

func (f *Form) move(delta int) {
	if len(f.inputs) == 0 {
		return
	}
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// Update moves focus or edits the focused field. It reports whether the
// user asked to submit.
func (f *Form) Update(msg tea.Msg) (submitted bool, cmd tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keySubmit):
			return true, nil
		case key.Matches(k, keyNext):
			f.move(1)
			return false, nil
		case key.Matches(k, keyPrev):
			f.move(-1)
			return false, nil
		}
	}
	if len(f.inputs) == 0 {
		return false, nil
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return false, cmd
}

// View renders label and input pairs
func (f *Form) View() string {
	var sb strings.Builder
	for i, spec := range f.specs {
		label := tuistyles.FieldLabelStyle
		marker := "  "
		if i == f.focus {
			label = tuistyles.FocusedFieldLabelStyle
			marker = tuistyles.SelectedItemStyle.Render("▸ ")
		}
		sb.WriteString(marker)
		sb.WriteString(label.Render(spec.Label))
		sb.WriteString(f.inputs[i].View())
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(tuistyles.HelpDescStyle.Render("↑/↓ move • enter calculate • esc back"))
	return sb.String()
}
