// Package button implements a pressable button with four visual variants.
package button

import (
	"github.com/charmbracelet/lipgloss"
)

// Variant selects the button colours
type Variant int

const (
	Primary Variant = iota
	Secondary
	Outline
	Danger
)

func (v Variant) String() string {
	switch v {
	case Secondary:
		return "secondary"
	case Outline:
		return "outline"
	case Danger:
		return "danger"
	default:
		return "primary"
	}
}

// Option configures a Button
type Option func(*Button)

// WithVariant sets the variant, Primary by default
func WithVariant(v Variant) Option {
	return func(b *Button) { b.variant = v }
}

// WithOnPress sets the press handler
func WithOnPress(fn func()) Option {
	return func(b *Button) { b.onPress = fn }
}

// Disabled creates the button in the disabled state
func Disabled() Option {
	return func(b *Button) { b.disabled = true }
}

// Button is a labelled action
type Button struct {
	label    string
	variant  Variant
	disabled bool
	onPress  func()
}

// New creates a button
func New(label string, opts ...Option) *Button {
	b := &Button{label: label}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Button) Label() string      { return b.label }
func (b *Button) Variant() Variant   { return b.variant }
func (b *Button) IsDisabled() bool   { return b.disabled }
func (b *Button) SetDisabled(d bool) { b.disabled = d }

// Press runs the handler and reports whether it ran. Disabled buttons and
// buttons without a handler do nothing.
func (b *Button) Press() bool {
	if b.disabled || b.onPress == nil {
		return false
	}
	b.onPress()
	return true
}

var variantStyles = map[Variant]lipgloss.Style{
	Primary:   lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62")),
	Secondary: lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("235")).Background(lipgloss.Color("250")),
	Outline:   lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("62")),
	Danger:    lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")),
}

var disabledStyle = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("243")).Background(lipgloss.Color("237")).Faint(true)

// View renders the button. A focused button is wrapped in brackets.
func (b *Button) View(focused bool) string {
	st := variantStyles[b.variant]
	if b.disabled {
		st = disabledStyle
	}
	label := st.Render(b.label)
	if focused && !b.disabled {
		return "[" + label + "]"
	}
	return " " + label + " "
}
