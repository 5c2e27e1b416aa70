package habits

import (
	"errors"
	"testing"

	"github.com/jstrick/dojo/internal/constants"
	apperrors "github.com/jstrick/dojo/internal/errors"
	"github.com/jstrick/dojo/internal/storage"
	"github.com/jstrick/dojo/internal/utils"
)

func newTestTracker(t *testing.T) (*Tracker, storage.Provider) {
	t.Helper()
	store := storage.NewJSONStore(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("store init: %v", err)
	}
	return NewTracker(store), store
}

func TestAddHabit(t *testing.T) {
	tracker, _ := newTestTracker(t)

	habit, err := tracker.Add("meditation")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if habit.Name != "meditation" {
		t.Errorf("name = %q, want %q", habit.Name, "meditation")
	}
	if habit.StartDate != utils.Today() {
		t.Errorf("start date = %q, want today %q", habit.StartDate, utils.Today())
	}
	if len(habit.Streaks) != 0 {
		t.Errorf("new habit should have no streak records, got %d", len(habit.Streaks))
	}
}

func TestAddDuplicateHabit(t *testing.T) {
	tracker, _ := newTestTracker(t)

	if _, err := tracker.Add("meditation"); err != nil {
		t.Fatalf("first Add failed: %v", err)
	}
	_, err := tracker.Add("meditation")
	if !errors.Is(err, apperrors.ErrDuplicate) {
		t.Errorf("second Add error = %v, want ErrDuplicate", err)
	}

	// Names differing only by case are distinct habits
	if _, err := tracker.Add("Meditation"); err != nil {
		t.Errorf("case-variant Add failed: %v", err)
	}
}

func TestRecordStatus(t *testing.T) {
	tracker, _ := newTestTracker(t)
	if _, err := tracker.Add("reading"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	habit, err := tracker.RecordStatus("reading", constants.StatusPass, "2025-06-12")
	if err != nil {
		t.Fatalf("RecordStatus failed: %v", err)
	}
	if habit.Streaks["2025-06-12"] != constants.StatusPass {
		t.Errorf("streak for 2025-06-12 = %q, want pass", habit.Streaks["2025-06-12"])
	}

	// Recording again for the same day overwrites
	habit, err = tracker.RecordStatus("reading", constants.StatusFail, "2025-06-12")
	if err != nil {
		t.Fatalf("overwrite RecordStatus failed: %v", err)
	}
	if habit.Streaks["2025-06-12"] != constants.StatusFail {
		t.Errorf("streak after overwrite = %q, want fail", habit.Streaks["2025-06-12"])
	}
	if len(habit.Streaks) != 1 {
		t.Errorf("expected single record after overwrite, got %d", len(habit.Streaks))
	}
}

func TestRecordStatusErrors(t *testing.T) {
	tracker, _ := newTestTracker(t)
	if _, err := tracker.Add("reading"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	tests := []struct {
		name    string
		habit   string
		status  constants.Status
		date    string
		wantErr error
	}{
		{"unknown habit", "jogging", constants.StatusPass, "2025-06-12", apperrors.ErrNotFound},
		{"bad status", "reading", "done", "2025-06-12", apperrors.ErrInvalidStatus},
		{"bad date", "reading", constants.StatusPass, "12/06/2025", apperrors.ErrInvalidDate},
		{"empty date", "reading", constants.StatusPass, "", apperrors.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tracker.RecordStatus(tt.habit, tt.status, tt.date)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTrackerPersistence(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewJSONStore(dir)
	if err := store.Init(); err != nil {
		t.Fatalf("store init: %v", err)
	}

	tracker := NewTracker(store)
	if _, err := tracker.Add("meditation"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := tracker.RecordStatus("meditation", constants.StatusPass, "2025-06-12"); err != nil {
		t.Fatalf("RecordStatus failed: %v", err)
	}

	// A fresh tracker over the same directory sees the saved state
	reloaded := NewTracker(storage.NewJSONStore(dir))
	habit, ok := reloaded.GetByName("meditation")
	if !ok {
		t.Fatal("expected habit to survive reload")
	}
	if habit.Streaks["2025-06-12"] != constants.StatusPass {
		t.Errorf("reloaded streak = %q, want pass", habit.Streaks["2025-06-12"])
	}
}
