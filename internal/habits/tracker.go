// Package habits owns Habit entities: creation, per-day pass/fail records,
// and the current-streak calculation.
package habits

import (
	"fmt"

	"github.com/jstrick/dojo/internal/constants"
	apperrors "github.com/jstrick/dojo/internal/errors"
	"github.com/jstrick/dojo/internal/models"
	"github.com/jstrick/dojo/internal/storage"
	"github.com/jstrick/dojo/internal/utils"
)

// Tracker loads the habit collection for every action and writes the whole
// collection back on mutation. The collection is expected to stay small.
type Tracker struct {
	store storage.Provider
}

func NewTracker(store storage.Provider) *Tracker {
	return &Tracker{store: store}
}

// Add creates a new habit starting today with an empty streak map. Names are
// unique across the collection, matched case-sensitively.
func (t *Tracker) Add(name string) (models.Habit, error) {
	habits := t.store.LoadHabits()
	for _, h := range habits {
		if h.Name == name {
			return models.Habit{}, fmt.Errorf("habit %q: %w", name, apperrors.ErrDuplicate)
		}
	}

	habit := models.Habit{
		Name:      name,
		StartDate: utils.Today(),
		Streaks:   make(map[string]constants.Status),
	}
	habits = append(habits, habit)
	t.store.SaveHabits(habits)
	return habit, nil
}

// RecordStatus sets the habit's status for the given day, overwriting any
// existing record for that day (last write wins).
func (t *Tracker) RecordStatus(name string, status constants.Status, dateStr string) (models.Habit, error) {
	if status != constants.StatusPass && status != constants.StatusFail {
		return models.Habit{}, fmt.Errorf("status %q: %w", status, apperrors.ErrInvalidStatus)
	}
	if !utils.ValidDate(dateStr) {
		return models.Habit{}, fmt.Errorf("date %q: %w", dateStr, apperrors.ErrInvalidDate)
	}

	habits := t.store.LoadHabits()
	for i := range habits {
		if habits[i].Name != name {
			continue
		}
		if habits[i].Streaks == nil {
			habits[i].Streaks = make(map[string]constants.Status)
		}
		habits[i].Streaks[dateStr] = status
		t.store.SaveHabits(habits)
		return habits[i], nil
	}
	return models.Habit{}, fmt.Errorf("habit %q: %w", name, apperrors.ErrNotFound)
}

// GetByName returns the habit with the given name, if present.
func (t *Tracker) GetByName(name string) (models.Habit, bool) {
	for _, h := range t.store.LoadHabits() {
		if h.Name == name {
			return h, true
		}
	}
	return models.Habit{}, false
}

// GetAll returns the full habit collection in load order.
func (t *Tracker) GetAll() []models.Habit {
	return t.store.LoadHabits()
}
