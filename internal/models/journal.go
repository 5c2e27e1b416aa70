package models

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jstrick/dojo/internal/constants"
)

// JournalEntry is a dated reflection, optionally written against a catalog
// prompt. The prompt text is snapshotted at creation time so later catalog
// edits never alter saved history.
type JournalEntry struct {
	EntryID            string  `json:"entry_id"`
	DateISO            string  `json:"date_iso"` // YYYY-MM-DD format
	PromptID           *string `json:"prompt_id"`
	PromptTextSnapshot string  `json:"prompt_text_snapshot"`
	UserText           string  `json:"user_text"`
}

// Validate checks structural invariants. UserText emptiness is deliberately
// not checked here; that is the presentation layer's concern.
func (e JournalEntry) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.EntryID, validation.Required),
		validation.Field(&e.DateISO, validation.Required, validation.Date(constants.DateFormat)),
	)
}

// Prompt is a read-only catalog entry for journaling inspiration
type Prompt struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Text   string `json:"text"`
	Source string `json:"source"`
}
