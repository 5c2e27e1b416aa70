package storage

import "github.com/jstrick/dojo/internal/models"

// Provider persists the three entity collections. Load methods never fail:
// a missing, empty, or corrupted backing store degrades to an empty
// collection, and individually malformed records are skipped with a logged
// warning. Save methods are best-effort: failures are logged and not
// propagated, so the caller's in-memory state may diverge from disk after a
// failed save.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Habits
	LoadHabits() []models.Habit
	SaveHabits([]models.Habit)

	// Journal entries
	LoadJournalEntries() []models.JournalEntry
	SaveJournalEntries([]models.JournalEntry)

	// Urge logs
	LoadUrgeLogs() []models.UrgeLogEntry
	SaveUrgeLogs([]models.UrgeLogEntry)

	// Utils
	DataDir() string
}
