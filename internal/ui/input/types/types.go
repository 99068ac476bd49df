package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeForm
	ModeModal
)

func (m Mode) String() string {
	switch m {
	case ModeForm:
		return "form"
	case ModeModal:
		return "modal"
	default:
		return "normal"
	}
}

// Focus names the screen element holding keyboard focus
type Focus int

const (
	FocusShowcase Focus = iota // the button showcase row
	FocusEmail
	FocusPassword
	FocusOpenModal
	FocusSignIn
	FocusLaunchModal
	FocusTable
	focusCount
)

// FocusCount is the number of focusable elements
const FocusCount = int(focusCount)

// IsButton reports whether f is a single button or the button row
func (f Focus) IsButton() bool {
	switch f {
	case FocusShowcase, FocusOpenModal, FocusSignIn, FocusLaunchModal:
		return true
	}
	return false
}

// IsTextField reports whether f is a form field
func (f Focus) IsTextField() bool {
	return f == FocusEmail || f == FocusPassword
}

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentFocus() Focus
	HasRowUnderCursor() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}
