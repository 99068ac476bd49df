package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"uikit/internal/ui/input/types"
)

// NormalMode handles keys while a button or the table has focus. Keys it
// does not consume are forwarded to the focused component.
type NormalMode struct{}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyTab:
		return []types.Action{types.MoveFocusAction{Delta: 1}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.MoveFocusAction{Delta: -1}}, true
	}

	focus := ctx.CurrentFocus()

	switch msg.String() {
	case "q":
		return []types.Action{types.QuitAction{}}, true

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "H":
		return []types.Action{types.OpenHelpPagerAction{}}, true

	case "enter", " ":
		if focus.IsButton() {
			return []types.Action{types.PressAction{}}, true
		}

	case "left", "h":
		if focus == types.FocusShowcase {
			return []types.Action{types.NavigateAction{Direction: "left"}}, true
		}

	case "right", "l":
		if focus == types.FocusShowcase {
			return []types.Action{types.NavigateAction{Direction: "right"}}, true
		}

	case "y":
		if focus == types.FocusTable && ctx.HasRowUnderCursor() {
			return []types.Action{types.CopyRowAction{}}, true
		}
	}

	return nil, false
}
