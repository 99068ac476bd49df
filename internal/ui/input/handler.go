package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"uikit/internal/ui/input/modes"
	"uikit/internal/ui/input/types"
)

// Handler routes keys to the handler of the current mode
type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
}

func New() *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeForm] = modes.NewFormMode()
	h.modes[types.ModeModal] = modes.NewModalMode()

	return h
}

// HandleKey returns the actions for msg and whether the key was consumed.
// Unconsumed keys belong to the focused component.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, false
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var allActions []types.Action
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			allActions = append(allActions, h.SetMode(changeMode.Mode, ctx)...)
			continue
		}
		allActions = append(allActions, action)
	}

	return allActions, consumed
}

// SetMode switches modes, running the Exit and Enter hooks
func (h *Handler) SetMode(mode types.Mode, ctx types.Context) []types.Action {
	if mode == h.currentMode {
		return nil
	}

	var actions []types.Action
	if cur := h.modes[h.currentMode]; cur != nil {
		actions = append(actions, cur.Exit(ctx)...)
	}
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		actions = append(actions, next.Enter(ctx)...)
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// ModeName returns the display name of the current mode
func (h *Handler) ModeName() string {
	if handler := h.modes[h.currentMode]; handler != nil {
		return handler.Name()
	}
	return h.currentMode.String()
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
}
