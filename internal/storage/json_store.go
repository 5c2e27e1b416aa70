package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jstrick/dojo/internal/constants"
	"github.com/jstrick/dojo/internal/logger"
	"github.com/jstrick/dojo/internal/models"
)

// JSONStore keeps each collection in its own JSON array file under the data
// directory. Every write re-serializes the whole collection.
type JSONStore struct {
	dir string
}

func NewJSONStore(dataDir string) *JSONStore {
	return &JSONStore{
		dir: dataDir,
	}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) LoadHabits() []models.Habit {
	habits := loadCollection[models.Habit](filepath.Join(s.dir, constants.HabitsFile))
	// Ensure maps are initialized
	for i := range habits {
		if habits[i].Streaks == nil {
			habits[i].Streaks = make(map[string]constants.Status)
		}
	}
	return habits
}

func (s *JSONStore) SaveHabits(habits []models.Habit) {
	saveCollection(filepath.Join(s.dir, constants.HabitsFile), habits)
}

func (s *JSONStore) LoadJournalEntries() []models.JournalEntry {
	return loadCollection[models.JournalEntry](filepath.Join(s.dir, constants.JournalEntriesFile))
}

func (s *JSONStore) SaveJournalEntries(entries []models.JournalEntry) {
	saveCollection(filepath.Join(s.dir, constants.JournalEntriesFile), entries)
}

func (s *JSONStore) LoadUrgeLogs() []models.UrgeLogEntry {
	logs := loadCollection[models.UrgeLogEntry](filepath.Join(s.dir, constants.UrgeLogsFile))
	for i := range logs {
		if logs[i].SensationsLog == nil {
			logs[i].SensationsLog = []models.Sensation{}
		}
	}
	return logs
}

func (s *JSONStore) SaveUrgeLogs(logs []models.UrgeLogEntry) {
	saveCollection(filepath.Join(s.dir, constants.UrgeLogsFile), logs)
}

// DataDir returns the directory holding the store's data files.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple dojo processes that share the same data directory at
//     the same time is not supported; concurrent writers race last-save-wins.
func (s *JSONStore) DataDir() string {
	return s.dir
}

type validatable interface {
	Validate() error
}

// loadCollection reads a JSON array file into a slice. A missing file, empty
// file, or a document that is not a JSON array all degrade to an empty
// collection. Records that fail to decode or validate are skipped so one bad
// record never poisons the rest of the file.
func loadCollection[T validatable](path string) []T {
	out := []T{}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read data file, treating as empty", "path", path, "error", err)
		}
		return out
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return out
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("data file is not a JSON array, treating as empty", "path", path, "error", err)
		return out
	}

	for i, record := range raw {
		var v T
		if err := json.Unmarshal(record, &v); err != nil {
			logger.Warn("skipping malformed record", "path", path, "index", i, "error", err)
			continue
		}
		if err := v.Validate(); err != nil {
			logger.Warn("skipping invalid record", "path", path, "index", i, "error", err)
			continue
		}
		out = append(out, v)
	}
	return out
}

// saveCollection writes a collection as a pretty-printed JSON array.
// Failures are logged once and swallowed; persistence is best-effort.
func saveCollection[T any](path string, items []T) {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		logger.Error("failed to serialize collection", "path", path, "error", err)
		return
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		logger.Error("failed to write data file", "path", path, "error", err)
	}
}
