package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"uikit/internal/ui/input/types"
)

// FormMode is active while a text field has focus. Everything that is not
// navigation or submission goes to the field.
type FormMode struct{}

func NewFormMode() *FormMode {
	return &FormMode{}
}

func (m *FormMode) Name() string {
	return "form"
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case tea.KeyTab, tea.KeyDown:
		return []types.Action{types.MoveFocusAction{Delta: 1}}, true
	case tea.KeyShiftTab, tea.KeyUp:
		return []types.Action{types.MoveFocusAction{Delta: -1}}, true
	case tea.KeyEnter:
		return []types.Action{types.SubmitFormAction{}}, true
	case tea.KeyEsc:
		return []types.Action{types.ClearFormErrorsAction{}}, true
	default:
		// Let the focused field handle it
		return nil, false
	}
}
