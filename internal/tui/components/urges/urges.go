package urges

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jstrick/dojo/internal/models"
)

type StartMsg struct{}

type NoteMsg struct {
	ID string
}

type EndMsg struct {
	ID string
}

// TickMsg drives the elapsed-time readout for an active session. It only
// refreshes the display clock; no state is mutated on tick.
type TickMsg time.Time

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(1, 2)

	sessionStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Width(48)

	elapsedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Bold(true)

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

type KeyMap struct {
	Start key.Binding
	Note  key.Binding
	End   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start session"),
		),
		Note: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "note sensation"),
		),
		End: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "end session"),
		),
	}
}

type Model struct {
	active  *models.UrgeLogEntry
	history []models.UrgeLogEntry // ended sessions, newest first
	now     time.Time
	keys    KeyMap
	width   int
	height  int
}

func New(logs []models.UrgeLogEntry) Model {
	m := Model{
		now:  time.Now(),
		keys: DefaultKeyMap(),
	}
	m.SetLogs(logs)
	return m
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetLogs splits the collection into the active session and ended history.
// The UI assumes the active session is unique; if the data holds more than
// one, the most recently started wins.
func (m *Model) SetLogs(logs []models.UrgeLogEntry) {
	m.active = nil
	m.history = m.history[:0]
	for i := len(logs) - 1; i >= 0; i-- {
		entry := logs[i]
		if entry.Active() {
			if m.active == nil {
				m.active = &entry
			}
			continue
		}
		m.history = append(m.history, entry)
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.now = time.Time(msg)
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Start):
			if m.active == nil {
				return m, func() tea.Msg { return StartMsg{} }
			}
		case key.Matches(msg, m.keys.Note):
			if m.active != nil {
				id := m.active.EntryID
				return m, func() tea.Msg { return NoteMsg{ID: id} }
			}
		case key.Matches(msg, m.keys.End):
			if m.active != nil {
				id := m.active.EntryID
				return m, func() tea.Msg { return EndMsg{ID: id} }
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var session string
	if m.active == nil {
		session = sessionStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			"No active session.",
			"",
			faintStyle.Render("Press s to start surfing an urge."),
		))
	} else {
		elapsed := m.active.Elapsed(m.now).Truncate(time.Second)
		session = sessionStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			fmt.Sprintf("Riding out: %s", m.active.UrgeType),
			fmt.Sprintf("Initial intensity: %d/10", m.active.InitialIntensity),
			elapsedStyle.Render(fmt.Sprintf("Elapsed: %s", elapsed)),
			fmt.Sprintf("Sensations noted: %d", len(m.active.SensationsLog)),
			"",
			faintStyle.Render("n: note sensation  e: end session"),
		))
	}

	lines := []string{titleStyle.Render("Urge Surfing"), session}

	if len(m.history) > 0 {
		lines = append(lines, "", faintStyle.Render("Past sessions:"))
		shown := m.history
		if len(shown) > 8 {
			shown = shown[:8]
		}
		for _, entry := range shown {
			duration := "?"
			if secs, ok := entry.DurationSeconds(); ok {
				duration = (time.Duration(secs) * time.Second).String()
			}
			day := entry.StartTime
			if t, err := time.Parse(time.RFC3339, entry.StartTime); err == nil {
				day = t.Format("2006-01-02 15:04")
			}
			lines = append(lines, fmt.Sprintf("  %s  %-16s %-8s %d note(s)",
				day, entry.UrgeType, duration, len(entry.SensationsLog)))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
