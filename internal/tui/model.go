package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/jstrick/dojo/internal/constants"
	habitspkg "github.com/jstrick/dojo/internal/habits"
	journalpkg "github.com/jstrick/dojo/internal/journal"
	urgespkg "github.com/jstrick/dojo/internal/urges"

	habitsview "github.com/jstrick/dojo/internal/tui/components/habits"
	journalview "github.com/jstrick/dojo/internal/tui/components/journal"
	urgesview "github.com/jstrick/dojo/internal/tui/components/urges"
)

type HabitFormModel struct {
	Name string
}

type EntryFormModel struct {
	PromptID string
	Text     string
}

type UrgeFormModel struct {
	Type      string
	Intensity string
}

type SensationFormModel struct {
	ID   string
	Note string
}

type Model struct {
	habits  *habitspkg.Tracker
	journal *journalpkg.Journal
	urges   *urgespkg.Log

	state constants.SessionState
	keys  KeyMap
	help  help.Model

	habitsModel  habitsview.Model
	journalModel journalview.Model
	urgesModel   urgesview.Model

	form          *huh.Form
	habitForm     *HabitFormModel
	entryForm     *EntryFormModel
	urgeForm      *UrgeFormModel
	sensationForm *SensationFormModel

	status   string // one-line error/info readout under the content
	quitting bool
	width    int
	height   int
}

func NewModel(habits *habitspkg.Tracker, journal *journalpkg.Journal, urges *urgespkg.Log) Model {
	return Model{
		habits:       habits,
		journal:      journal,
		urges:        urges,
		state:        constants.StateHabits,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		habitsModel:  habitsview.New(habits.GetAll(), 0, 0),
		journalModel: journalview.New(journal.GetAll(), 0, 0),
		urgesModel:   urgesview.New(urges.GetAll()),
	}
}

func (m Model) Init() tea.Cmd {
	return m.urgesModel.Init()
}

func (m *Model) refreshHabits() {
	m.habitsModel.SetHabits(m.habits.GetAll())
}

func (m *Model) refreshJournal() {
	m.journalModel.SetEntries(m.journal.GetAll())
}

func (m *Model) refreshUrges() {
	m.urgesModel.SetLogs(m.urges.GetAll())
}

func newHabitForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&f.Name).
				Validate(nonEmpty),
		),
	)
}

func newEntryForm(f *EntryFormModel) *huh.Form {
	opts := []huh.Option[string]{huh.NewOption("Free write (no prompt)", "")}
	for _, p := range journalpkg.Prompts {
		label := fmt.Sprintf("[%s] %s", p.Type, truncate(p.Text, 42))
		opts = append(opts, huh.NewOption(label, p.ID))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Prompt").
				Options(opts...).
				Value(&f.PromptID),
			huh.NewText().
				Title("Entry").
				Value(&f.Text).
				Validate(nonEmpty),
		),
	)
}

func newUrgeForm(f *UrgeFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Urge type").
				Placeholder("smoking, snacking, ...").
				Value(&f.Type).
				Validate(nonEmpty),
			huh.NewInput().
				Title("Initial intensity (1-10)").
				Value(&f.Intensity).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < constants.MinIntensity || n > constants.MaxIntensity {
						return fmt.Errorf("enter a number between 1 and 10")
					}
					return nil
				}),
		),
	)
}

func newSensationForm(f *SensationFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What do you feel right now?").
				Value(&f.Note).
				Validate(nonEmpty),
		),
	)
}

func nonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
