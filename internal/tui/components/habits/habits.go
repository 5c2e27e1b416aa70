package habits

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jstrick/dojo/internal/constants"
	"github.com/jstrick/dojo/internal/models"
	"github.com/jstrick/dojo/internal/utils"
)

type AddMsg struct{}

type RecordMsg struct {
	Name   string
	Status constants.Status
}

type Item struct {
	Habit  models.Habit
	Streak int
	Today  constants.Status // empty when nothing recorded today
}

func (i Item) Title() string {
	marker := "○"
	switch i.Today {
	case constants.StatusPass:
		marker = "✓"
	case constants.StatusFail:
		marker = "✗"
	}
	return fmt.Sprintf("%s %s", marker, i.Habit.Name)
}

func (i Item) Description() string {
	if i.Streak == 1 {
		return "1 day streak"
	}
	return fmt.Sprintf("%d day streak", i.Streak)
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add  key.Binding
	Pass key.Binding
	Fail key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Pass: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "record pass"),
		),
		Fail: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "record fail"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(habits []models.Habit, width, height int) Model {
	l := list.New(buildItems(habits), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	return Model{
		list: l,
		keys: DefaultKeyMap(),
	}
}

func (m *Model) SetHabits(habits []models.Habit) {
	m.list.SetItems(buildItems(habits))
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Selected returns the currently highlighted habit, if any.
func (m Model) Selected() (models.Habit, bool) {
	if item, ok := m.list.SelectedItem().(Item); ok {
		return item.Habit, true
	}
	return models.Habit{}, false
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddMsg{} }
		case key.Matches(msg, m.keys.Pass):
			if item, ok := m.list.SelectedItem().(Item); ok {
				name := item.Habit.Name
				return m, func() tea.Msg { return RecordMsg{Name: name, Status: constants.StatusPass} }
			}
		case key.Matches(msg, m.keys.Fail):
			if item, ok := m.list.SelectedItem().(Item); ok {
				name := item.Habit.Name
				return m, func() tea.Msg { return RecordMsg{Name: name, Status: constants.StatusFail} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}

func buildItems(habits []models.Habit) []list.Item {
	now := time.Now()
	today := utils.Today()

	items := make([]list.Item, 0, len(habits))
	for _, h := range habits {
		items = append(items, Item{
			Habit:  h,
			Streak: h.CurrentStreak(now),
			Today:  h.Streaks[today],
		})
	}
	return items
}
