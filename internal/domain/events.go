package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSortChanged   EventType = "SortChanged"
	EventRowClicked    EventType = "RowClicked"
	EventRowCopied     EventType = "RowCopied"
	EventFormSubmitted EventType = "FormSubmitted"
	EventFormRejected  EventType = "FormRejected"
	EventButtonPressed EventType = "ButtonPressed"
	EventModalOpened   EventType = "ModalOpened"
	EventModalClosed   EventType = "ModalClosed"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SortChangedEvent is emitted when a header click replaced the table sort
type SortChangedEvent struct {
	Key       string
	Direction string // "ascending", "descending" or "none"
}

func (e SortChangedEvent) Type() EventType { return EventSortChanged }

// RowClickedEvent is emitted when a table row was activated
type RowClickedEvent struct {
	User User
}

func (e RowClickedEvent) Type() EventType { return EventRowClicked }

// RowCopiedEvent is emitted when a row was copied to the clipboard
type RowCopiedEvent struct {
	UserID int
}

func (e RowCopiedEvent) Type() EventType { return EventRowCopied }

// FormSubmittedEvent is emitted when the sign-in form passed validation
type FormSubmittedEvent struct {
	Email string
}

func (e FormSubmittedEvent) Type() EventType { return EventFormSubmitted }

// FormRejectedEvent is emitted when validation failed
type FormRejectedEvent struct {
	Fields []string // names of the failing fields
}

func (e FormRejectedEvent) Type() EventType { return EventFormRejected }

// ButtonPressedEvent is emitted when an enabled button was pressed
type ButtonPressedEvent struct {
	Label string
}

func (e ButtonPressedEvent) Type() EventType { return EventButtonPressed }

// ModalOpenedEvent is emitted when the modal is shown
type ModalOpenedEvent struct {
	Title string
}

func (e ModalOpenedEvent) Type() EventType { return EventModalOpened }

// ModalClosedEvent is emitted when the modal is dismissed
type ModalClosedEvent struct {
	Title string
}

func (e ModalClosedEvent) Type() EventType { return EventModalClosed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
