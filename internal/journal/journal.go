// Package journal owns JournalEntry entities and the static prompt catalog.
package journal

import (
	"fmt"

	"github.com/google/uuid"

	apperrors "github.com/jstrick/dojo/internal/errors"
	"github.com/jstrick/dojo/internal/models"
	"github.com/jstrick/dojo/internal/storage"
	"github.com/jstrick/dojo/internal/utils"
)

type Journal struct {
	store storage.Provider
}

func New(store storage.Provider) *Journal {
	return &Journal{store: store}
}

// AddEntry creates a new entry dated today. When promptID is given it is
// resolved against the catalog and the prompt's text is snapshotted into the
// entry, so the entry is unaffected by any future catalog change. UserText
// emptiness is the presentation layer's responsibility, not enforced here.
func (j *Journal) AddEntry(userText string, promptID *string) (models.JournalEntry, error) {
	snapshot := ""
	if promptID != nil {
		prompt, ok := PromptByID(*promptID)
		if !ok {
			return models.JournalEntry{}, fmt.Errorf("prompt %q: %w", *promptID, apperrors.ErrPromptNotFound)
		}
		snapshot = prompt.Text
	}

	entry := models.JournalEntry{
		EntryID:            uuid.New().String(),
		DateISO:            utils.Today(),
		PromptID:           promptID,
		PromptTextSnapshot: snapshot,
		UserText:           userText,
	}

	entries := j.store.LoadJournalEntries()
	entries = append(entries, entry)
	j.store.SaveJournalEntries(entries)
	return entry, nil
}

// GetByID returns the entry with the given id, if present.
func (j *Journal) GetByID(id string) (models.JournalEntry, bool) {
	for _, e := range j.store.LoadJournalEntries() {
		if e.EntryID == id {
			return e, true
		}
	}
	return models.JournalEntry{}, false
}

// GetByDate returns all entries for the given day, in load order.
func (j *Journal) GetByDate(dateStr string) ([]models.JournalEntry, error) {
	if !utils.ValidDate(dateStr) {
		return nil, fmt.Errorf("date %q: %w", dateStr, apperrors.ErrInvalidDate)
	}

	var matches []models.JournalEntry
	for _, e := range j.store.LoadJournalEntries() {
		if e.DateISO == dateStr {
			matches = append(matches, e)
		}
	}
	return matches, nil
}

// GetAll returns the full entry collection in load order.
func (j *Journal) GetAll() []models.JournalEntry {
	return j.store.LoadJournalEntries()
}
