package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jstrick/dojo/internal/constants"
)

var tabNames = []string{"Habits", "Journal", "Urge Surf"}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.state {
	case constants.StateAddHabit, constants.StateAddEntry,
		constants.StateStartUrge, constants.StateAddSensation:
		b.WriteString(m.form.View())
	case constants.StateJournal:
		b.WriteString(m.journalModel.View())
	case constants.StateUrges:
		b.WriteString(m.urgesModel.View())
	default:
		b.WriteString(m.habitsModel.View())
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.status))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	active := 0
	switch m.state {
	case constants.StateJournal, constants.StateAddEntry:
		active = 1
	case constants.StateUrges, constants.StateStartUrge, constants.StateAddSensation:
		active = 2
	}

	tabs := make([]string, len(tabNames))
	for i, name := range tabNames {
		if i == active {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = inactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
