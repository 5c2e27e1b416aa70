package journal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jstrick/dojo/internal/journal"
	"github.com/jstrick/dojo/internal/models"
)

type AddMsg struct{}

var suggestionStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("245")).
	Italic(true).
	Padding(0, 1)

type Item struct {
	Entry models.JournalEntry
}

func (i Item) Title() string {
	return fmt.Sprintf("%s  %s", i.Entry.DateISO, snippet(i.Entry.UserText, 48))
}

func (i Item) Description() string {
	if i.Entry.PromptID != nil {
		return snippet(i.Entry.PromptTextSnapshot, 56)
	}
	return "free write"
}

func (i Item) FilterValue() string { return i.Entry.UserText }

type KeyMap struct {
	Add     key.Binding
	Suggest key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "write entry"),
		),
		Suggest: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "random prompt"),
		),
	}
}

type Model struct {
	list       list.Model
	keys       KeyMap
	suggestion *models.Prompt
}

func New(entries []models.JournalEntry, width, height int) Model {
	l := list.New(buildItems(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "Journal"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	return Model{
		list: l,
		keys: DefaultKeyMap(),
	}
}

func (m *Model) SetEntries(entries []models.JournalEntry) {
	m.list.SetItems(buildItems(entries))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMsg{} }
		case key.Matches(msg, m.keys.Suggest):
			// Display-only inspiration; entry creation snapshots its own prompt
			if p, ok := journal.RandomPrompt(); ok {
				m.suggestion = &p
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if m.suggestion == nil {
		return m.list.View()
	}
	banner := suggestionStyle.Render(fmt.Sprintf("[%s] %s", m.suggestion.Type, m.suggestion.Text))
	return lipgloss.JoinVertical(lipgloss.Left, banner, m.list.View())
}

func buildItems(entries []models.JournalEntry) []list.Item {
	// Newest first
	items := make([]list.Item, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		items = append(items, Item{Entry: entries[i]})
	}
	return items
}

func snippet(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
