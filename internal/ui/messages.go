package ui

import (
	"time"

	"uikit/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// clearStatusMsg clears the status line if it was set at the given time
type clearStatusMsg struct {
	setAt time.Time
}

// statusTimeout is how long a status message stays visible
const statusTimeout = 4 * time.Second
