package models

import (
	"fmt"
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/jstrick/dojo/internal/constants"
)

// Habit represents a tracked practice with one pass/fail record per day
type Habit struct {
	Name      string                      `json:"name"`
	StartDate string                      `json:"start_date"` // YYYY-MM-DD format
	Streaks   map[string]constants.Status `json:"streaks"`    // day -> pass/fail
}

// Validate checks structural invariants: a name, a valid start date, and
// every streak key a real date mapped to pass or fail.
func (h Habit) Validate() error {
	if err := validation.ValidateStruct(&h,
		validation.Field(&h.Name, validation.Required),
		validation.Field(&h.StartDate, validation.Required, validation.Date(constants.DateFormat)),
	); err != nil {
		return err
	}

	for day, status := range h.Streaks {
		if err := validation.Validate(day, validation.Required, validation.Date(constants.DateFormat)); err != nil {
			return fmt.Errorf("streak day %q: %w", day, err)
		}
		if err := validation.Validate(string(status),
			validation.In(string(constants.StatusPass), string(constants.StatusFail))); err != nil {
			return fmt.Errorf("streak status for %s: %w", day, err)
		}
	}
	return nil
}

// CurrentStreak returns the length of the chain of consecutive pass days
// ending at the most recent recorded day. A fail on the most recent day, or
// a gap in recording, ends the chain. The chain only counts as current when
// the most recent recorded day is today or yesterday; otherwise the streak
// has gone stale and reports as 0.
func (h Habit) CurrentStreak(today time.Time) int {
	if len(h.Streaks) == 0 {
		return 0
	}

	// Lexicographic descending order is chronological for YYYY-MM-DD keys
	days := make([]string, 0, len(h.Streaks))
	for day := range h.Streaks {
		days = append(days, day)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(days)))

	latest := days[0]
	if h.Streaks[latest] != constants.StatusPass {
		return 0
	}

	latestDate, err := time.Parse(constants.DateFormat, latest)
	if err != nil {
		return 0
	}

	streak := 0
	prev := latestDate
	for i, day := range days {
		if h.Streaks[day] != constants.StatusPass {
			break
		}
		cur, err := time.Parse(constants.DateFormat, day)
		if err != nil {
			break
		}
		// A missing day between records breaks the chain
		if i > 0 && !cur.Equal(prev.AddDate(0, 0, -1)) {
			break
		}
		streak++
		prev = cur
	}

	todayStr := today.Format(constants.DateFormat)
	yesterdayStr := today.AddDate(0, 0, -1).Format(constants.DateFormat)
	if latest != todayStr && latest != yesterdayStr {
		return 0
	}
	return streak
}
