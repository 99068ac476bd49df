package ui

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"uikit/internal/components/button"
	"uikit/internal/components/forminput"
	"uikit/internal/components/modal"
	"uikit/internal/config"
	"uikit/internal/domain"
	"uikit/internal/eventbus"
	"uikit/internal/table"
	"uikit/internal/ui/input"
	"uikit/internal/ui/input/types"
	"uikit/internal/ui/views"
)

const (
	TitleUserDetails = "User Details"
	TitleDemoModal   = "Demo Modal"

	demoModalBody = "This is a reusable modal component. You can put any content you want inside here. " +
		"It closes with esc, q, x or enter, or with a click outside."
)

// Screen geometry used to place the table for mouse hit testing. The
// table section starts with its border, title and a blank line, and the
// table follows a one line hint.
const (
	mainPadTop    = 1
	mainPadLeft   = 2
	sectionInsetX = 2
	sectionInsetY = 3
	tableHintRows = 1
)

// Model represents the showcase screen
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	styles *views.Styles

	width    int
	height   int
	help     help.Model
	keys     appKeyMap
	showHelp bool

	inputHandler *input.Handler
	helpRenderer *HelpRenderer
	focus        types.Focus

	showcase    []*button.Button
	showcaseIdx int
	email       *forminput.Model
	password    *forminput.Model
	openModal   *button.Button
	signIn      *button.Button
	launchModal *button.Button

	table    *table.Table[domain.User]
	selected *domain.User
	modal    *modal.Model

	status      string
	statusStyle lipgloss.Style
	statusAt    time.Time

	copyToClipboard func(string) error
	now             func() time.Time
}

// NewModel creates the showcase model over users
func NewModel(bus eventbus.EventBus, cfg *config.Config, users []domain.User) (*Model, error) {
	cycle, err := cfg.SortCycle()
	if err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	styles := views.NewStyles(cfg.Theme)
	m := &Model{
		bus:             bus,
		config:          cfg,
		styles:          styles,
		help:            help.New(),
		showHelp:        cfg.UISettings.ShowHelp,
		inputHandler:    input.New(),
		helpRenderer:    NewHelpRenderer(),
		modal:           modal.New(48),
		email:           forminput.New("email", "Email Address", forminput.KindEmail, "you@example.com", 30),
		password:        forminput.New("password", "Password", forminput.KindPassword, "••••••••", 30),
		statusStyle:     styles.Status,
		copyToClipboard: clipboard.WriteAll,
		now:             time.Now,
	}

	m.showcase = []*button.Button{
		button.New("Primary", button.WithVariant(button.Primary), button.WithOnPress(func() {
			m.setStatus("Primary clicked", false)
		})),
		button.New("Secondary", button.WithVariant(button.Secondary)),
		button.New("Outline", button.WithVariant(button.Outline)),
		button.New("Danger", button.WithVariant(button.Danger)),
		button.New("Disabled", button.WithVariant(button.Primary), button.Disabled()),
	}
	m.openModal = button.New("Open Modal", button.WithVariant(button.Secondary), button.WithOnPress(func() {
		m.openDemoModal()
	}))
	m.signIn = button.New("Sign In", button.WithVariant(button.Primary), button.WithOnPress(func() {
		m.submitForm()
	}))
	m.launchModal = button.New("Launch Demo Modal", button.WithVariant(button.Outline), button.WithOnPress(func() {
		m.openDemoModal()
	}))

	m.table = table.New(userColumns(styles), users,
		table.WithSortCycle(cycle),
		table.WithStyles(views.TableStyles(cfg.Theme)),
	)
	m.table.SetOnRowClick(m.handleRowClick)
	m.keys = newAppKeyMap(m.table.KeyMap())

	return m, nil
}

// userColumns defines the columns of the user table
func userColumns(styles *views.Styles) []table.ColumnDef[domain.User] {
	return []table.ColumnDef[domain.User]{
		{Key: "id", Header: "ID", Sortable: true},
		{Key: "name", Header: "Name", Sortable: true},
		{Key: "email", Header: "Email", Sortable: true},
		{Key: "role", Header: "Role", Sortable: true},
		{Key: "status", Header: "Status", Sortable: true, Cell: styles.StatusBadge},
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		if !m.config.UISettings.Mouse {
			return m, nil
		}
		if m.modal.IsOpen() {
			// A left click on the dimmed background dismisses the modal
			if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
				!m.modal.Contains(msg.X, msg.Y, m.width, m.height) {
				m.closeModal()
			}
			return m, nil
		}
		if cmd := m.table.Update(msg); cmd != nil {
			focusCmd := m.setFocus(types.FocusTable)
			return m, tea.Batch(cmd, focusCmd)
		}

	case table.SortChangedMsg:
		log.Printf("Sort changed: key=%q direction=%s", msg.Sort.Key, msg.Sort.Direction)
		m.publish(eventbus.SortChangedEvent{Key: msg.Sort.Key, Direction: msg.Sort.Direction.String()})

	case table.RowClickedMsg[domain.User]:
		log.Printf("Row clicked: id=%d", msg.Row.ID)
		m.publish(eventbus.RowClickedEvent{User: msg.Row})

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			return m, m.setStatus(fmt.Sprintf("Pager failed: %v", msg.err), true)
		}

	case clearStatusMsg:
		if msg.setAt.Equal(m.statusAt) {
			m.status = ""
		}

	case EventMsg:
		if e, ok := msg.Event.(eventbus.ErrorEvent); ok {
			return m, m.setStatus(e.Message, true)
		}
	}
	return m, nil
}

// handleKey runs the input handler and forwards unconsumed keys to the
// focused component
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	actions, consumed := m.inputHandler.HandleKey(msg, m)

	var cmds []tea.Cmd
	for _, action := range actions {
		cmds = append(cmds, m.apply(action))
	}
	if !consumed {
		cmds = append(cmds, m.forward(msg))
	}
	return tea.Batch(cmds...)
}

func (m *Model) apply(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.QuitAction:
		log.Printf("Quit requested (force=%t)", a.Force)
		return tea.Quit

	case types.MoveFocusAction:
		next := (int(m.focus) + a.Delta + types.FocusCount) % types.FocusCount
		return m.setFocus(types.Focus(next))

	case types.NavigateAction:
		n := len(m.showcase)
		switch a.Direction {
		case "left":
			m.showcaseIdx = (m.showcaseIdx - 1 + n) % n
		case "right":
			m.showcaseIdx = (m.showcaseIdx + 1) % n
		}

	case types.PressAction:
		return m.pressFocused()

	case types.SubmitFormAction:
		return m.submitForm()

	case types.ClearFormErrorsAction:
		m.email.SetError("")
		m.password.SetError("")

	case types.CopyRowAction:
		return m.copyRow()

	case types.ToggleHelpAction:
		m.showHelp = !m.showHelp

	case types.OpenHelpPagerAction:
		return showHelpInPager(m.helpRenderer.RenderHelpContentPlain())
	}
	return nil
}

func (m *Model) forward(msg tea.KeyMsg) tea.Cmd {
	if m.modal.IsOpen() {
		if m.modal.Update(msg) {
			m.modalClosed()
		}
		return nil
	}
	switch m.focus {
	case types.FocusEmail:
		return m.email.Update(msg)
	case types.FocusPassword:
		return m.password.Update(msg)
	case types.FocusTable:
		return m.table.Update(msg)
	}
	return nil
}

func (m *Model) setFocus(f types.Focus) tea.Cmd {
	m.email.Blur()
	m.password.Blur()
	m.table.Blur()

	m.focus = f
	var cmd tea.Cmd
	switch f {
	case types.FocusEmail:
		cmd = m.email.Focus()
	case types.FocusPassword:
		cmd = m.password.Focus()
	case types.FocusTable:
		m.table.Focus()
	}
	m.inputHandler.SetMode(m.modeForFocus(), m)
	return cmd
}

func (m *Model) modeForFocus() types.Mode {
	switch {
	case m.modal.IsOpen():
		return types.ModeModal
	case m.focus.IsTextField():
		return types.ModeForm
	default:
		return types.ModeNormal
	}
}

func (m *Model) focusedButton() *button.Button {
	switch m.focus {
	case types.FocusShowcase:
		return m.showcase[m.showcaseIdx]
	case types.FocusOpenModal:
		return m.openModal
	case types.FocusSignIn:
		return m.signIn
	case types.FocusLaunchModal:
		return m.launchModal
	}
	return nil
}

func (m *Model) pressFocused() tea.Cmd {
	b := m.focusedButton()
	if b == nil {
		return nil
	}
	before := m.statusAt
	if b.Press() {
		m.publish(eventbus.ButtonPressedEvent{Label: b.Label()})
	}
	if !m.statusAt.Equal(before) {
		return m.clearStatusLater()
	}
	return nil
}

func (m *Model) handleRowClick(u domain.User) {
	m.selected = &u
	m.openModalWith(TitleUserDetails, m.styles.UserDetails(u))
}

func (m *Model) openDemoModal() {
	m.selected = nil
	m.openModalWith(TitleDemoModal, demoModalBody)
}

func (m *Model) openModalWith(title, body string) {
	m.modal.Open(title, body)
	m.inputHandler.SetMode(types.ModeModal, m)
	m.publish(eventbus.ModalOpenedEvent{Title: title})
}

func (m *Model) closeModal() {
	m.modal.Close()
	m.modalClosed()
}

func (m *Model) modalClosed() {
	m.inputHandler.SetMode(m.modeForFocus(), m)
	m.publish(eventbus.ModalClosedEvent{Title: m.modal.Title()})
}

// submitForm validates the sign-in form and resets it on success
func (m *Model) submitForm() tea.Cmd {
	errs := ValidateSignIn(m.email.Value(), m.password.Value())
	m.email.SetError(errs.Email)
	m.password.SetError(errs.Password)
	if !errs.Valid() {
		log.Printf("Sign-in rejected: %v", errs.Fields())
		m.publish(eventbus.FormRejectedEvent{Fields: errs.Fields()})
		return nil
	}

	email := m.email.Value()
	m.email.Reset()
	m.password.Reset()
	m.publish(eventbus.FormSubmittedEvent{Email: email})
	return m.setStatus("Form submitted: "+email, false)
}

func (m *Model) copyRow() tea.Cmd {
	u, ok := m.table.CursorRow()
	if !ok {
		return nil
	}
	if err := m.copyToClipboard(u.String()); err != nil {
		log.Printf("Failed to copy row %d: %v", u.ID, err)
		return m.setStatus(fmt.Sprintf("Copy failed: %v", err), true)
	}
	m.publish(eventbus.RowCopiedEvent{UserID: u.ID})
	return m.setStatus(fmt.Sprintf("Copied user %d to clipboard", u.ID), false)
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.status = text
	m.statusStyle = m.styles.StatusSuccess
	if isErr {
		m.statusStyle = m.styles.StatusError
	}
	m.statusAt = m.now()
	return m.clearStatusLater()
}

func (m *Model) clearStatusLater() tea.Cmd {
	at := m.statusAt
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{setAt: at}
	})
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

// CurrentFocus implements types.Context
func (m *Model) CurrentFocus() types.Focus {
	return m.focus
}

// HasRowUnderCursor implements types.Context
func (m *Model) HasRowUnderCursor() bool {
	_, ok := m.table.CursorRow()
	return ok
}

// Status returns the status line text
func (m *Model) Status() string { return m.status }

// Modal exposes the modal for inspection
func (m *Model) Modal() *modal.Model { return m.modal }

// Table exposes the user table
func (m *Model) Table() *table.Table[domain.User] { return m.table }

// SelectedUser returns the user shown in the details modal, if any
func (m *Model) SelectedUser() (domain.User, bool) {
	if m.selected == nil {
		return domain.User{}, false
	}
	return *m.selected, true
}

// View renders the screen
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.styles.Title.Render("Reusable Component Library") + "\n" +
		m.styles.Subtitle.Render("A showcase of clean, reusable terminal components.")
	formRow := lipgloss.JoinHorizontal(lipgloss.Top, m.renderForm(), "  ", m.renderModalShowcase())
	above := lipgloss.JoinVertical(lipgloss.Left, header, "", m.renderShowcase(), "", formRow, "")

	tableY := mainPadTop + lipgloss.Height(above) + sectionInsetY + tableHintRows
	hint := m.styles.Dim.Render("Click a header or press s to sort. Enter or click a row for details.")
	tableSection := m.styles.RenderSection("Sortable Table / Data Grid", hint+"\n"+m.table.View())

	body := lipgloss.JoinVertical(lipgloss.Left, above, tableSection, "", m.statusStyle.Render(m.status), m.renderHelp())
	screen := m.styles.Main.Render(body)

	// The renderer only shows the last height lines of a taller view, so
	// drop the rest here and keep the table origin on screen coordinates
	if over := lipgloss.Height(screen) - m.height; m.height > 0 && over > 0 {
		lines := strings.Split(screen, "\n")
		screen = strings.Join(lines[over:], "\n")
		tableY -= over
	}
	m.table.SetOrigin(mainPadLeft+sectionInsetX, tableY)
	return m.modal.Overlay(screen, m.width, m.height)
}

func (m *Model) renderShowcase() string {
	rendered := make([]string, len(m.showcase))
	for i, b := range m.showcase {
		rendered[i] = b.View(m.focus == types.FocusShowcase && i == m.showcaseIdx)
	}
	return m.styles.RenderSection("Button Component", lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

func (m *Model) renderForm() string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		m.openModal.View(m.focus == types.FocusOpenModal),
		m.signIn.View(m.focus == types.FocusSignIn),
	)
	body := lipgloss.JoinVertical(lipgloss.Left, m.email.View(), "", m.password.View(), "", buttons)
	return m.styles.RenderSection("Form & Validation", body)
}

func (m *Model) renderModalShowcase() string {
	body := "Press \"Open Modal\" in the form or open\na table row to see it in action.\n\n" +
		m.launchModal.View(m.focus == types.FocusLaunchModal)
	return m.styles.RenderSection("Modal Showcase", body)
}

func (m *Model) renderHelp() string {
	m.help.ShowAll = m.showHelp
	return m.styles.Help.Render(m.help.View(m.keys))
}
