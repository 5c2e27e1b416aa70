package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/jstrick/dojo/internal/constants"
	"github.com/jstrick/dojo/internal/logger"
	"github.com/jstrick/dojo/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS habits (
	name TEXT PRIMARY KEY,
	start_date TEXT NOT NULL,
	streaks TEXT NOT NULL DEFAULT '{}'
);
CREATE TABLE IF NOT EXISTS journal_entries (
	entry_id TEXT PRIMARY KEY,
	date_iso TEXT NOT NULL,
	prompt_id TEXT,
	prompt_text_snapshot TEXT NOT NULL DEFAULT '',
	user_text TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS urge_logs (
	entry_id TEXT PRIMARY KEY,
	urge_type TEXT NOT NULL DEFAULT '',
	start_time TEXT NOT NULL,
	end_time TEXT,
	initial_intensity INTEGER NOT NULL,
	sensations_log TEXT NOT NULL DEFAULT '[]'
);
`

// SQLiteStore is the alternate Provider, selected when the data path ends in
// .db. Nested fields (streaks, sensations_log) are stored as JSON text
// columns; the degradation rules match the JSON store.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return s.ensureOpen()
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) LoadHabits() []models.Habit {
	habits := []models.Habit{}
	if err := s.ensureOpen(); err != nil {
		logger.Warn("failed to open database, treating as empty", "path", s.path, "error", err)
		return habits
	}

	rows, err := s.db.Query(`SELECT name, start_date, streaks FROM habits`)
	if err != nil {
		logger.Warn("failed to query habits, treating as empty", "error", err)
		return habits
	}
	defer rows.Close()

	for rows.Next() {
		var h models.Habit
		var streaks string
		if err := rows.Scan(&h.Name, &h.StartDate, &streaks); err != nil {
			logger.Warn("skipping unreadable habit row", "error", err)
			continue
		}
		if err := json.Unmarshal([]byte(streaks), &h.Streaks); err != nil {
			logger.Warn("skipping habit with malformed streaks", "name", h.Name, "error", err)
			continue
		}
		if h.Streaks == nil {
			h.Streaks = make(map[string]constants.Status)
		}
		if err := h.Validate(); err != nil {
			logger.Warn("skipping invalid habit row", "name", h.Name, "error", err)
			continue
		}
		habits = append(habits, h)
	}
	return habits
}

func (s *SQLiteStore) SaveHabits(habits []models.Habit) {
	s.replaceAll("habits", func(tx *sql.Tx) error {
		for _, h := range habits {
			streaks, err := json.Marshal(h.Streaks)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(
				`INSERT INTO habits (name, start_date, streaks) VALUES (?, ?, ?)`,
				h.Name, h.StartDate, string(streaks)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) LoadJournalEntries() []models.JournalEntry {
	entries := []models.JournalEntry{}
	if err := s.ensureOpen(); err != nil {
		logger.Warn("failed to open database, treating as empty", "path", s.path, "error", err)
		return entries
	}

	rows, err := s.db.Query(
		`SELECT entry_id, date_iso, prompt_id, prompt_text_snapshot, user_text FROM journal_entries`)
	if err != nil {
		logger.Warn("failed to query journal entries, treating as empty", "error", err)
		return entries
	}
	defer rows.Close()

	for rows.Next() {
		var e models.JournalEntry
		var promptID sql.NullString
		if err := rows.Scan(&e.EntryID, &e.DateISO, &promptID, &e.PromptTextSnapshot, &e.UserText); err != nil {
			logger.Warn("skipping unreadable journal row", "error", err)
			continue
		}
		if promptID.Valid {
			e.PromptID = &promptID.String
		}
		if err := e.Validate(); err != nil {
			logger.Warn("skipping invalid journal row", "entry_id", e.EntryID, "error", err)
			continue
		}
		entries = append(entries, e)
	}
	return entries
}

func (s *SQLiteStore) SaveJournalEntries(entries []models.JournalEntry) {
	s.replaceAll("journal_entries", func(tx *sql.Tx) error {
		for _, e := range entries {
			var promptID interface{}
			if e.PromptID != nil {
				promptID = *e.PromptID
			}
			if _, err := tx.Exec(
				`INSERT INTO journal_entries (entry_id, date_iso, prompt_id, prompt_text_snapshot, user_text)
				 VALUES (?, ?, ?, ?, ?)`,
				e.EntryID, e.DateISO, promptID, e.PromptTextSnapshot, e.UserText); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) LoadUrgeLogs() []models.UrgeLogEntry {
	logs := []models.UrgeLogEntry{}
	if err := s.ensureOpen(); err != nil {
		logger.Warn("failed to open database, treating as empty", "path", s.path, "error", err)
		return logs
	}

	rows, err := s.db.Query(
		`SELECT entry_id, urge_type, start_time, end_time, initial_intensity, sensations_log FROM urge_logs`)
	if err != nil {
		logger.Warn("failed to query urge logs, treating as empty", "error", err)
		return logs
	}
	defer rows.Close()

	for rows.Next() {
		var u models.UrgeLogEntry
		var endTime sql.NullString
		var sensations string
		if err := rows.Scan(&u.EntryID, &u.UrgeType, &u.StartTime, &endTime, &u.InitialIntensity, &sensations); err != nil {
			logger.Warn("skipping unreadable urge log row", "error", err)
			continue
		}
		if endTime.Valid {
			u.EndTime = &endTime.String
		}
		if err := json.Unmarshal([]byte(sensations), &u.SensationsLog); err != nil {
			logger.Warn("skipping urge log with malformed sensations", "entry_id", u.EntryID, "error", err)
			continue
		}
		if u.SensationsLog == nil {
			u.SensationsLog = []models.Sensation{}
		}
		if err := u.Validate(); err != nil {
			logger.Warn("skipping invalid urge log row", "entry_id", u.EntryID, "error", err)
			continue
		}
		logs = append(logs, u)
	}
	return logs
}

func (s *SQLiteStore) SaveUrgeLogs(logs []models.UrgeLogEntry) {
	s.replaceAll("urge_logs", func(tx *sql.Tx) error {
		for _, u := range logs {
			sensations, err := json.Marshal(u.SensationsLog)
			if err != nil {
				return err
			}
			var endTime interface{}
			if u.EndTime != nil {
				endTime = *u.EndTime
			}
			if _, err := tx.Exec(
				`INSERT INTO urge_logs (entry_id, urge_type, start_time, end_time, initial_intensity, sensations_log)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				u.EntryID, u.UrgeType, u.StartTime, endTime, u.InitialIntensity, string(sensations)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) DataDir() string {
	return filepath.Dir(s.path)
}

// replaceAll rewrites one table inside a transaction, matching the JSON
// store's whole-collection write pattern. Failures are logged and swallowed.
func (s *SQLiteStore) replaceAll(table string, insert func(*sql.Tx) error) {
	if err := s.ensureOpen(); err != nil {
		logger.Error("failed to open database for save", "path", s.path, "error", err)
		return
	}

	tx, err := s.db.Begin()
	if err != nil {
		logger.Error("failed to begin save transaction", "table", table, "error", err)
		return
	}
	if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
		tx.Rollback()
		logger.Error("failed to clear table for save", "table", table, "error", err)
		return
	}
	if err := insert(tx); err != nil {
		tx.Rollback()
		logger.Error("failed to save collection", "table", table, "error", err)
		return
	}
	if err := tx.Commit(); err != nil {
		logger.Error("failed to commit save", "table", table, "error", err)
	}
}
