package models

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jstrick/dojo/internal/constants"
)

// Sensation is a timestamped note recorded while riding out an urge
type Sensation struct {
	Timestamp string `json:"timestamp"` // RFC3339
	Note      string `json:"note"`
}

// UrgeLogEntry is one urge-surfing session. A nil EndTime means the session
// is still active; once EndTime is set the session is terminal.
type UrgeLogEntry struct {
	EntryID          string      `json:"entry_id"`
	UrgeType         string      `json:"urge_type"`
	StartTime        string      `json:"start_time"` // RFC3339
	EndTime          *string     `json:"end_time"`
	InitialIntensity int         `json:"initial_intensity"`
	SensationsLog    []Sensation `json:"sensations_log"`
}

// Validate checks structural invariants
func (u UrgeLogEntry) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.EntryID, validation.Required),
		validation.Field(&u.StartTime, validation.Required, validation.Date(constants.TimestampFormat)),
		validation.Field(&u.InitialIntensity, validation.Required,
			validation.Min(constants.MinIntensity), validation.Max(constants.MaxIntensity)),
	)
}

// Active reports whether the session is still running
func (u UrgeLogEntry) Active() bool {
	return u.EndTime == nil
}

// DurationSeconds returns the session length in whole seconds, truncated.
// The second return is false while the session is active or when either
// timestamp cannot be parsed.
func (u UrgeLogEntry) DurationSeconds() (int, bool) {
	if u.EndTime == nil {
		return 0, false
	}
	start, err := time.Parse(constants.TimestampFormat, u.StartTime)
	if err != nil {
		return 0, false
	}
	end, err := time.Parse(constants.TimestampFormat, *u.EndTime)
	if err != nil {
		return 0, false
	}
	return int(end.Sub(start).Seconds()), true
}

// Elapsed returns the time since the session started, for display while the
// session is active. Returns 0 if the start time cannot be parsed.
func (u UrgeLogEntry) Elapsed(now time.Time) time.Duration {
	start, err := time.Parse(constants.TimestampFormat, u.StartTime)
	if err != nil {
		return 0
	}
	return now.Sub(start)
}
