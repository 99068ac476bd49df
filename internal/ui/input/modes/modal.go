package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"uikit/internal/ui/input/types"
)

// ModalMode keeps global bindings away from the screen below the modal.
// Keys it does not consume go to the modal itself.
type ModalMode struct{}

func NewModalMode() *ModalMode {
	return &ModalMode{}
}

func (m *ModalMode) Name() string {
	return "modal"
}

func (m *ModalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ModalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ModalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	return nil, false
}
