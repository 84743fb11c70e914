package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/faizmokh/timelog/internal/files"
	"github.com/faizmokh/timelog/internal/logbook"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Model owns Bubble Tea state for browsing monthly logbook totals.
type Model struct {
	manager *files.Manager

	month    time.Time
	path     string
	result   *logbook.Result
	selected int

	loading    bool
	statusLine string
	errorLine  string

	keys keyMap
	help help.Model
}

type monthLoadedMsg struct {
	month  time.Time
	path   string
	result *logbook.Result
	err    error
}

type monthWrittenMsg struct {
	month   time.Time
	changed bool
	err     error
}

// NewModel seeds a Bubble Tea model showing the month that contains date.
func NewModel(manager *files.Manager, date time.Time) Model {
	month := startOfMonth(date)
	return Model{
		manager:    manager,
		month:      month,
		loading:    true,
		statusLine: fmt.Sprintf("Loading %s...", month.Format("2006-01")),
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
}

// Init loads the initial month.
func (m Model) Init() tea.Cmd {
	return m.loadMonthCmd(m.month)
}

// Update wires TUI state transitions from user input and async commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	case monthLoadedMsg:
		return m.handleMonthLoaded(msg)
	case monthWrittenMsg:
		return m.handleMonthWritten(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		if n := m.tableCount(); n > 0 && m.selected < n-1 {
			m.selected++
			m.statusLine = fmt.Sprintf("Selected table %d of %d", m.selected+1, n)
		}
	case key.Matches(msg, m.keys.Up):
		if m.tableCount() > 0 && m.selected > 0 {
			m.selected--
			m.statusLine = fmt.Sprintf("Selected table %d of %d", m.selected+1, m.tableCount())
		}
	case key.Matches(msg, m.keys.Prev):
		return m.gotoMonth(m.month.AddDate(0, -1, 0))
	case key.Matches(msg, m.keys.Next):
		return m.gotoMonth(m.month.AddDate(0, 1, 0))
	case key.Matches(msg, m.keys.Today):
		return m.gotoMonth(startOfMonth(time.Now()))
	case key.Matches(msg, m.keys.Reload):
		return m.reload()
	case key.Matches(msg, m.keys.Write):
		if m.loading || m.result == nil {
			return m, nil
		}
		m.statusLine = fmt.Sprintf("Writing %s...", m.month.Format("2006-01"))
		m.errorLine = ""
		return m, m.writeMonthCmd(m.month)
	}
	return m, nil
}

func (m Model) handleMonthLoaded(msg monthLoadedMsg) (tea.Model, tea.Cmd) {
	// Ignore stale results for months we no longer display.
	if !msg.month.Equal(m.month) {
		return m, nil
	}
	m.loading = false
	m.path = msg.path
	m.result = msg.result

	if msg.err != nil {
		m.result = nil
		m.selected = 0
		m.statusLine = ""
		if errors.Is(msg.err, files.ErrMonthNotFound) {
			m.errorLine = fmt.Sprintf("No logbook for %s.", msg.month.Format("2006-01"))
		} else {
			m.errorLine = fmt.Sprintf("Failed to load %s: %v", msg.month.Format("2006-01"), msg.err)
		}
		return m, nil
	}

	m.errorLine = ""
	if m.selected >= m.tableCount() {
		m.selected = max(m.tableCount()-1, 0)
	}
	m.statusLine = fmt.Sprintf("Loaded %d time table%s.", m.tableCount(), plural(m.tableCount()))
	return m, nil
}

func (m Model) handleMonthWritten(msg monthWrittenMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.errorLine = fmt.Sprintf("Write failed: %v", msg.err)
		m.statusLine = ""
		return m, nil
	}
	m.errorLine = ""
	if !msg.changed {
		m.statusLine = fmt.Sprintf("%s is already up to date.", msg.month.Format("2006-01"))
		return m, nil
	}
	m.statusLine = fmt.Sprintf("Wrote totals to %s.", m.path)
	return m, nil
}

func (m Model) gotoMonth(month time.Time) (tea.Model, tea.Cmd) {
	month = startOfMonth(month)
	if month.Equal(m.month) {
		return m.reload()
	}

	m.month = month
	m.path = ""
	m.result = nil
	m.selected = 0
	m.loading = true
	m.statusLine = fmt.Sprintf("Loading %s...", month.Format("2006-01"))
	m.errorLine = ""
	return m, m.loadMonthCmd(month)
}

func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	m.statusLine = fmt.Sprintf("Refreshing %s...", m.month.Format("2006-01"))
	m.errorLine = ""
	return m, m.loadMonthCmd(m.month)
}

func (m Model) loadMonthCmd(month time.Time) tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		path, text, err := manager.ReadMonth(month)
		if err != nil {
			return monthLoadedMsg{month: month, path: path, err: err}
		}
		result, err := logbook.Process(text)
		return monthLoadedMsg{month: month, path: path, result: result, err: err}
	}
}

// writeMonthCmd re-reads the file so edits made since the last load are kept.
func (m Model) writeMonthCmd(month time.Time) tea.Cmd {
	manager := m.manager
	return func() tea.Msg {
		path, text, err := manager.ReadMonth(month)
		if err != nil {
			return monthWrittenMsg{month: month, err: err}
		}
		result, err := logbook.Process(text)
		if err != nil {
			return monthWrittenMsg{month: month, err: err}
		}
		if result.Text == text {
			return monthWrittenMsg{month: month}
		}
		if err := files.WriteFile(path, result.Text); err != nil {
			return monthWrittenMsg{month: month, err: err}
		}
		return monthWrittenMsg{month: month, changed: true}
	}
}

func (m Model) tableCount() int {
	if m.result == nil {
		return 0
	}
	return len(m.result.Tables)
}

// View renders the frame.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(m.month.Format("January 2006")))
	b.WriteByte('\n')
	if m.path != "" {
		b.WriteString(mutedStyle.Render(m.path))
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case m.result == nil:
		b.WriteString("(no logbook)\n")
	case len(m.result.Tables) == 0:
		b.WriteString("(no time tables)\n")
	default:
		for i, table := range m.result.Tables {
			line := formatTable(table)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteByte('\n')
		}

		if m.selected < len(m.result.Tables) {
			b.WriteByte('\n')
			for _, line := range m.result.Tables[m.selected].Lines {
				b.WriteString("  " + line + "\n")
			}
		}

		b.WriteString("\nTasks\n")
		for _, task := range m.result.Tasks {
			fmt.Fprintf(&b, "  %-24s %6s\n", task.Task, logbook.FormatMinutes(task.Minutes))
		}
		fmt.Fprintf(&b, "  %-24s %6s\n", "Total", logbook.FormatMinutes(m.result.TotalMinutes()))
	}

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("! " + m.errorLine))
		b.WriteByte('\n')
	} else if m.statusLine != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteByte('\n')

	return b.String()
}

func formatTable(table logbook.TableTotal) string {
	date := table.Date
	if date == "" {
		date = fmt.Sprintf("line %d", table.Line)
	}
	return fmt.Sprintf("%-12s %-10s %6s  (%d row%s)",
		date, table.Weekday, logbook.FormatMinutes(table.Minutes), table.Rows, plural(table.Rows))
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
