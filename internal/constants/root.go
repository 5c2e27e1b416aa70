package constants

// SessionState represents the current state of the TUI application
type SessionState int

// Status is a recorded habit outcome for a single day
type Status string

const (
	AppName        = "dojo"
	DefaultDataDir = "~/.config/dojo"
	Version        = "v0.1.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimestampFormat is the standard timestamp format for session times (RFC3339)
	TimestampFormat = "2006-01-02T15:04:05Z07:00"

	// Habit status constants
	StatusPass Status = "pass"
	StatusFail Status = "fail"

	// Urge intensity bounds (inclusive)
	MinIntensity = 1
	MaxIntensity = 10

	// Data file names used by the JSON store
	HabitsFile         = "habits.json"
	JournalEntriesFile = "journal_entries.json"
	UrgeLogsFile       = "urge_logs.json"
)

// Session States
const (
	StateHabits SessionState = iota
	StateJournal
	StateUrges
	StateAddHabit
	StateAddEntry
	StateStartUrge
	StateAddSensation
)
