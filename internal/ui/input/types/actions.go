package types

// Navigation actions
type NavigateAction struct {
	Direction string // "left" or "right"
}

func (a NavigateAction) Type() string { return "navigate" }

// MoveFocusAction moves keyboard focus by Delta elements, wrapping around
type MoveFocusAction struct {
	Delta int
}

func (a MoveFocusAction) Type() string { return "move_focus" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Button actions
type PressAction struct{}

func (a PressAction) Type() string { return "press" }

// Form actions
type SubmitFormAction struct{}

func (a SubmitFormAction) Type() string { return "submit_form" }

type ClearFormErrorsAction struct{}

func (a ClearFormErrorsAction) Type() string { return "clear_form_errors" }

// Table actions
type CopyRowAction struct{}

func (a CopyRowAction) Type() string { return "copy_row" }

// Help actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type OpenHelpPagerAction struct{}

func (a OpenHelpPagerAction) Type() string { return "open_help_pager" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
