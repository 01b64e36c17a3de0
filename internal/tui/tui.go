// Package tui provides the interactive edit surface for the ledger.
//
// It presents the collection as a navigable table; rows can be added,
// edited and deleted in memory, and "recalculate & save" runs the full
// derive/sort/persist pipeline and redisplays the derived collection.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/entry"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/service"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/timeline"
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/timeutil"
)

type mode int

const (
	modeBrowse mode = iota
	modeEdit
)

// editable lists the fields the user can change, in edit order. The
// derived columns (rates and totals) are filled by the engine only.
var editable = []string{
	"Start",
	"End",
	"Event_Type",
	"Work_Mode",
	"Remote_Type",
	"Distance_km",
	"Description",
}

// KeyMap defines the browse-mode key bindings.
type KeyMap struct {
	Edit    key.Binding
	New     key.Binding
	Delete  key.Binding
	Recalc  key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		New:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Recalc:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recalc & save")),
		Refresh: key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reload")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Styles holds the lipgloss styles for the edit surface.
type Styles struct {
	Title     lipgloss.Style
	StatusBar lipgloss.Style
	StatusKey lipgloss.Style
	Help      lipgloss.Style
	Prompt    lipgloss.Style
	Warning   lipgloss.Style
}

// DefaultStyles returns the default styles
func DefaultStyles() Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		StatusBar: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusKey: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Prompt:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Warning:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// Model is the root TUI model
type Model struct {
	services *service.Services

	rows   []entry.Entry
	table  table.Model
	mode   mode
	status string

	// edit state
	editRow   int
	editField int
	draft     []string
	input     textinput.Model

	width  int
	height int
	keys   KeyMap
	styles Styles
}

// New creates a new TUI model over the given services.
func New(services *service.Services) Model {
	input := textinput.New()
	input.CharLimit = 120

	m := Model{
		services: services,
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		input:    input,
		table:    newTable(nil),
	}
	m.reload()
	return m
}

func newTable(rows []table.Row) table.Model {
	columns := []table.Column{
		{Title: "Start", Width: 16},
		{Title: "End", Width: 16},
		{Title: "Type", Width: 7},
		{Title: "Mode", Width: 7},
		{Title: "Remote", Width: 9},
		{Title: "Km", Width: 7},
		{Title: "PerDiem", Width: 8},
		{Title: "Travel", Width: 7},
		{Title: "Description", Width: 40},
	}
	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(15),
	)
}

// reload loads (or seeds) the collection from storage.
func (m *Model) reload() {
	result, err := m.services.Ledger.Load()
	if err != nil {
		m.status = "Error: " + err.Error()
		return
	}
	m.rows = result.Rows
	if result.Seeded {
		m.status = fmt.Sprintf("Seeded %d placeholder rows", len(m.rows))
	} else {
		m.status = fmt.Sprintf("Loaded %d rows from %s", len(m.rows), m.services.Ledger.File())
	}
	if len(result.Warnings) > 0 {
		m.status += fmt.Sprintf(" (%d malformed rows coerced)", len(result.Warnings))
	}
	m.syncTable()
}

// syncTable refreshes the table widget from the in-memory rows.
func (m *Model) syncTable() {
	tableRows := make([]table.Row, 0, len(m.rows))
	for _, e := range m.rows {
		tableRows = append(tableRows, table.Row{
			e.Start,
			e.End,
			string(e.EventType),
			string(e.WorkMode),
			string(e.RemoteType),
			e.DistanceKm.String(),
			e.PerDiemTotal.String(),
			e.TravelCost.String(),
			e.Description,
		})
	}
	m.table.SetRows(tableRows)
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(maxInt(5, m.height-6))
		return m, nil

	case tea.KeyMsg:
		if m.mode == modeEdit {
			return m.updateEdit(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Edit):
		if len(m.rows) == 0 {
			m.status = "No rows to edit"
			return m, nil
		}
		m.beginEdit(m.table.Cursor())
		return m, textinput.Blink

	case key.Matches(msg, m.keys.New):
		m.rows = append(m.rows, newPlaceholderRow())
		m.syncTable()
		m.table.SetCursor(len(m.rows) - 1)
		m.beginEdit(len(m.rows) - 1)
		m.status = "New row"
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		if len(m.rows) == 0 {
			m.status = "No rows to delete"
			return m, nil
		}
		idx := m.table.Cursor()
		m.rows = append(m.rows[:idx], m.rows[idx+1:]...)
		m.syncTable()
		m.status = fmt.Sprintf("Deleted row %d (not saved yet)", idx+1)
		return m, nil

	case key.Matches(msg, m.keys.Recalc):
		report, err := m.services.Ledger.RecalcAndSave(m.rows)
		if err != nil {
			m.status = "Error: " + err.Error()
			return m, nil
		}
		m.rows = report.Rows
		m.syncTable()
		m.status = fmt.Sprintf("Recalculated and saved %d rows to %s", len(m.rows), m.services.Ledger.File())
		if len(report.Skipped) > 0 {
			m.status += fmt.Sprintf(", skipped %d with bad dates", len(report.Skipped))
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.reload()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// beginEdit enters edit mode for the given row index.
func (m *Model) beginEdit(idx int) {
	e := m.rows[idx]
	m.mode = modeEdit
	m.editRow = idx
	m.editField = 0
	m.draft = []string{
		e.Start,
		e.End,
		string(e.EventType),
		string(e.WorkMode),
		string(e.RemoteType),
		e.DistanceKm.String(),
		e.Description,
	}
	m.input.SetValue(m.draft[0])
	m.input.CursorEnd()
	m.input.Focus()
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.input.Blur()
		m.status = "Edit cancelled"
		return m, nil

	case "enter", "tab":
		m.draft[m.editField] = m.input.Value()
		if msg.String() == "enter" && m.editField == len(editable)-1 {
			m.commitEdit()
			return m, nil
		}
		m.editField = (m.editField + 1) % len(editable)
		m.input.SetValue(m.draft[m.editField])
		m.input.CursorEnd()
		return m, nil

	case "shift+tab":
		m.draft[m.editField] = m.input.Value()
		m.editField = (m.editField - 1 + len(editable)) % len(editable)
		m.input.SetValue(m.draft[m.editField])
		m.input.CursorEnd()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// commitEdit writes the draft back into the in-memory row. Derived
// fields are left alone; the next recalc recomputes them anyway.
func (m *Model) commitEdit() {
	e := &m.rows[m.editRow]
	e.Start = strings.TrimSpace(m.draft[0])
	e.End = strings.TrimSpace(m.draft[1])
	e.EventType = entry.NormalizeEventType(m.draft[2])
	e.WorkMode = entry.NormalizeWorkMode(m.draft[3])
	e.RemoteType = entry.NormalizeRemoteType(m.draft[4])
	e.DistanceKm = entry.ParseAmount(m.draft[5])
	e.Description = m.draft[6]

	m.mode = modeBrowse
	m.input.Blur()
	m.syncTable()
	m.status = fmt.Sprintf("Updated row %d (press r to recalculate & save)", m.editRow+1)
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Allowance Ledger"))
	b.WriteString("\n\n")
	b.WriteString(m.table.View())
	b.WriteString("\n")

	if m.mode == modeEdit {
		b.WriteString(m.styles.Prompt.Render(fmt.Sprintf("%s: ", editable[m.editField])))
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("enter/tab next field · shift+tab previous · esc cancel"))
	} else {
		b.WriteString(m.renderStatusBar())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.StatusBar.Render(m.status))
	return b.String()
}

// renderStatusBar renders the browse-mode key hints.
func (m Model) renderStatusBar() string {
	hints := []struct{ key, desc string }{
		{"j/k", "move"},
		{"e", "edit"},
		{"n", "new"},
		{"d", "delete"},
		{"r", "recalc & save"},
		{"R", "reload"},
		{"q", "quit"},
	}

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, fmt.Sprintf("%s %s",
			m.styles.StatusKey.Render(h.key),
			m.styles.Help.Render(h.desc)))
	}
	return strings.Join(parts, "  ")
}

// newPlaceholderRow builds a fresh free row for today.
func newPlaceholderRow() entry.Entry {
	rows, err := timeline.Seed(today(), today())
	if err != nil || len(rows) == 0 {
		return entry.Entry{EventType: entry.EventFree, WorkMode: entry.ModeFree, RemoteType: entry.RemoteNA}
	}
	return rows[0]
}

func today() string {
	return time.Now().Format(timeutil.DateLayout)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Run starts the TUI application
func Run(services *service.Services) error {
	model := New(services)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
