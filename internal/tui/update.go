package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jstrick/dojo/internal/constants"
	apperrors "github.com/jstrick/dojo/internal/errors"
	"github.com/jstrick/dojo/internal/utils"

	habitsview "github.com/jstrick/dojo/internal/tui/components/habits"
	journalview "github.com/jstrick/dojo/internal/tui/components/journal"
	urgesview "github.com/jstrick/dojo/internal/tui/components/urges"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.state {
	case constants.StateAddHabit:
		return m.updateHabitForm(msg)
	case constants.StateAddEntry:
		return m.updateEntryForm(msg)
	case constants.StateStartUrge:
		return m.updateUrgeForm(msg)
	case constants.StateAddSensation:
		return m.updateSensationForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentHeight := m.height - 6
		if contentHeight < 0 {
			contentHeight = 0
		}
		m.habitsModel.SetSize(m.width-4, contentHeight)
		m.journalModel.SetSize(m.width-4, contentHeight)
		m.urgesModel.SetSize(m.width-4, contentHeight)
		return m, nil

	// The tick keeps the elapsed readout fresh regardless of which tab is
	// in front, so it bypasses tab routing
	case urgesview.TickMsg:
		var cmd tea.Cmd
		m.urgesModel, cmd = m.urgesModel.Update(msg)
		return m, cmd

	case habitsview.AddMsg:
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.state = constants.StateAddHabit
		return m, m.form.Init()

	case habitsview.RecordMsg:
		if _, err := m.habits.RecordStatus(msg.Name, msg.Status, utils.Today()); err != nil {
			m.status = apperrors.Format(err)
		} else {
			m.status = ""
		}
		m.refreshHabits()
		return m, nil

	case journalview.AddMsg:
		m.entryForm = &EntryFormModel{}
		m.form = newEntryForm(m.entryForm)
		m.state = constants.StateAddEntry
		return m, m.form.Init()

	case urgesview.StartMsg:
		m.urgeForm = &UrgeFormModel{}
		m.form = newUrgeForm(m.urgeForm)
		m.state = constants.StateStartUrge
		return m, m.form.Init()

	case urgesview.NoteMsg:
		m.sensationForm = &SensationFormModel{ID: msg.ID}
		m.form = newSensationForm(m.sensationForm)
		m.state = constants.StateAddSensation
		return m, m.form.Init()

	case urgesview.EndMsg:
		if _, err := m.urges.End(msg.ID); err != nil {
			m.status = apperrors.Format(err)
		} else {
			m.status = ""
		}
		m.refreshUrges()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = nextTab(m.state)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = prevTab(m.state)
			return m, nil
		}
	}

	// Route everything else to the tab in front
	var cmd tea.Cmd
	switch m.state {
	case constants.StateHabits:
		m.habitsModel, cmd = m.habitsModel.Update(msg)
	case constants.StateJournal:
		m.journalModel, cmd = m.journalModel.Update(msg)
	case constants.StateUrges:
		m.urgesModel, cmd = m.urgesModel.Update(msg)
	}
	return m, cmd
}

func (m Model) updateHabitForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateHabits
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if _, err := m.habits.Add(strings.TrimSpace(m.habitForm.Name)); err != nil {
			m.status = apperrors.Format(err)
		} else {
			m.status = ""
		}
		m.refreshHabits()
		m.state = constants.StateHabits
	case huh.StateAborted:
		m.state = constants.StateHabits
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateEntryForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateJournal
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		var promptID *string
		if m.entryForm.PromptID != "" {
			id := m.entryForm.PromptID
			promptID = &id
		}
		if _, err := m.journal.AddEntry(m.entryForm.Text, promptID); err != nil {
			m.status = apperrors.Format(err)
		} else {
			m.status = ""
		}
		m.refreshJournal()
		m.state = constants.StateJournal
	case huh.StateAborted:
		m.state = constants.StateJournal
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateUrgeForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateUrges
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		// The form already validated the numeric range
		intensity, err := strconv.Atoi(strings.TrimSpace(m.urgeForm.Intensity))
		if err == nil {
			_, err = m.urges.Start(strings.TrimSpace(m.urgeForm.Type), intensity)
		}
		if err != nil {
			m.status = apperrors.Format(err)
		} else {
			m.status = ""
		}
		m.refreshUrges()
		m.state = constants.StateUrges
	case huh.StateAborted:
		m.state = constants.StateUrges
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateSensationForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = constants.StateUrges
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if _, err := m.urges.AddSensation(m.sensationForm.ID, m.sensationForm.Note); err != nil {
			m.status = apperrors.Format(err)
		} else {
			m.status = ""
		}
		m.refreshUrges()
		m.state = constants.StateUrges
	case huh.StateAborted:
		m.state = constants.StateUrges
	}
	return m, tea.Batch(cmds...)
}

func nextTab(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateHabits:
		return constants.StateJournal
	case constants.StateJournal:
		return constants.StateUrges
	default:
		return constants.StateHabits
	}
}

func prevTab(s constants.SessionState) constants.SessionState {
	switch s {
	case constants.StateHabits:
		return constants.StateUrges
	case constants.StateJournal:
		return constants.StateHabits
	default:
		return constants.StateJournal
	}
}
