// Package urges owns UrgeLogEntry sessions and their start / note / end
// lifecycle. A session is Active until End sets its end time; ending is
// terminal and sensation notes may only be appended while Active.
package urges

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jstrick/dojo/internal/constants"
	apperrors "github.com/jstrick/dojo/internal/errors"
	"github.com/jstrick/dojo/internal/models"
	"github.com/jstrick/dojo/internal/storage"
	"github.com/jstrick/dojo/internal/utils"
)

type Log struct {
	store storage.Provider
}

func NewLog(store storage.Provider) *Log {
	return &Log{store: store}
}

// Start creates a new active session with the current time as its start.
func (l *Log) Start(urgeType string, intensity int) (models.UrgeLogEntry, error) {
	if intensity < constants.MinIntensity || intensity > constants.MaxIntensity {
		return models.UrgeLogEntry{}, fmt.Errorf("intensity %d: %w", intensity, apperrors.ErrInvalidIntensity)
	}

	entry := models.UrgeLogEntry{
		EntryID:          uuid.New().String(),
		UrgeType:         urgeType,
		StartTime:        utils.Now(),
		InitialIntensity: intensity,
		SensationsLog:    []models.Sensation{},
	}

	logs := l.store.LoadUrgeLogs()
	logs = append(logs, entry)
	l.store.SaveUrgeLogs(logs)
	return entry, nil
}

// AddSensation appends a timestamped note to an active session.
func (l *Log) AddSensation(entryID, note string) (models.UrgeLogEntry, error) {
	logs := l.store.LoadUrgeLogs()
	for i := range logs {
		if logs[i].EntryID != entryID {
			continue
		}
		if !logs[i].Active() {
			return models.UrgeLogEntry{}, fmt.Errorf("urge log %s: %w", entryID, apperrors.ErrAlreadyEnded)
		}
		logs[i].SensationsLog = append(logs[i].SensationsLog, models.Sensation{
			Timestamp: utils.Now(),
			Note:      note,
		})
		l.store.SaveUrgeLogs(logs)
		return logs[i], nil
	}
	return models.UrgeLogEntry{}, fmt.Errorf("urge log %s: %w", entryID, apperrors.ErrNotFound)
}

// End closes an active session. There is no transition out of the ended
// state; ending twice fails.
func (l *Log) End(entryID string) (models.UrgeLogEntry, error) {
	logs := l.store.LoadUrgeLogs()
	for i := range logs {
		if logs[i].EntryID != entryID {
			continue
		}
		if !logs[i].Active() {
			return models.UrgeLogEntry{}, fmt.Errorf("urge log %s: %w", entryID, apperrors.ErrAlreadyEnded)
		}
		end := utils.Now()
		logs[i].EndTime = &end
		l.store.SaveUrgeLogs(logs)
		return logs[i], nil
	}
	return models.UrgeLogEntry{}, fmt.Errorf("urge log %s: %w", entryID, apperrors.ErrNotFound)
}

// GetByID returns the session with the given id, if present.
func (l *Log) GetByID(entryID string) (models.UrgeLogEntry, bool) {
	for _, u := range l.store.LoadUrgeLogs() {
		if u.EntryID == entryID {
			return u, true
		}
	}
	return models.UrgeLogEntry{}, false
}

// GetAll returns the full session collection in load order.
func (l *Log) GetAll() []models.UrgeLogEntry {
	return l.store.LoadUrgeLogs()
}

// GetActive returns all sessions that have not been ended yet. The UI treats
// the active session as unique but the data model does not enforce that.
func (l *Log) GetActive() []models.UrgeLogEntry {
	var active []models.UrgeLogEntry
	for _, u := range l.store.LoadUrgeLogs() {
		if u.Active() {
			active = append(active, u)
		}
	}
	return active
}
