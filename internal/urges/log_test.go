package urges

import (
	"errors"
	"testing"

	apperrors "github.com/jstrick/dojo/internal/errors"
	"github.com/jstrick/dojo/internal/storage"
)

func newTestLog(t *testing.T) *Log {
	t.Helper()
	store := storage.NewJSONStore(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("store init: %v", err)
	}
	return NewLog(store)
}

func TestStartSession(t *testing.T) {
	l := newTestLog(t)

	entry, err := l.Start("snacking", 7)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if entry.EntryID == "" {
		t.Error("expected a generated entry id")
	}
	if !entry.Active() {
		t.Error("new session should be active")
	}
	if entry.StartTime == "" {
		t.Error("expected a start time")
	}
	if len(entry.SensationsLog) != 0 {
		t.Errorf("new session should have no sensations, got %d", len(entry.SensationsLog))
	}
}

func TestStartIntensityBounds(t *testing.T) {
	l := newTestLog(t)

	for _, intensity := range []int{0, -1, 11, 100} {
		if _, err := l.Start("smoking", intensity); !errors.Is(err, apperrors.ErrInvalidIntensity) {
			t.Errorf("Start with intensity %d: error = %v, want ErrInvalidIntensity", intensity, err)
		}
	}
	for _, intensity := range []int{1, 10} {
		if _, err := l.Start("smoking", intensity); err != nil {
			t.Errorf("Start with intensity %d failed: %v", intensity, err)
		}
	}
}

func TestSensationLifecycle(t *testing.T) {
	l := newTestLog(t)

	session, err := l.Start("doomscrolling", 5)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	for _, note := range []string{"tight chest", "restless hands"} {
		if _, err := l.AddSensation(session.EntryID, note); err != nil {
			t.Fatalf("AddSensation failed: %v", err)
		}
	}

	got, ok := l.GetByID(session.EntryID)
	if !ok {
		t.Fatal("session not found after adding sensations")
	}
	if len(got.SensationsLog) != 2 {
		t.Fatalf("sensations = %d, want 2", len(got.SensationsLog))
	}
	if got.SensationsLog[0].Note != "tight chest" || got.SensationsLog[1].Note != "restless hands" {
		t.Errorf("sensations out of order: %+v", got.SensationsLog)
	}
	for _, s := range got.SensationsLog {
		if s.Timestamp == "" {
			t.Error("sensation missing timestamp")
		}
	}
}

func TestEndSession(t *testing.T) {
	l := newTestLog(t)

	session, err := l.Start("snacking", 6)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	ended, err := l.End(session.EntryID)
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if ended.Active() {
		t.Error("ended session should not be active")
	}

	secs, ok := ended.DurationSeconds()
	if !ok {
		t.Fatal("ended session should report a duration")
	}
	if secs < 0 {
		t.Errorf("duration = %d, want non-negative", secs)
	}
}

func TestEndIsTerminal(t *testing.T) {
	l := newTestLog(t)

	session, err := l.Start("smoking", 8)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if _, err := l.End(session.EntryID); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	if _, err := l.End(session.EntryID); !errors.Is(err, apperrors.ErrAlreadyEnded) {
		t.Errorf("second End error = %v, want ErrAlreadyEnded", err)
	}

	if _, err := l.AddSensation(session.EntryID, "lingering"); !errors.Is(err, apperrors.ErrAlreadyEnded) {
		t.Errorf("AddSensation after End error = %v, want ErrAlreadyEnded", err)
	}

	// The rejected note must not have been appended
	got, _ := l.GetByID(session.EntryID)
	if len(got.SensationsLog) != 0 {
		t.Errorf("sensations after rejected append = %d, want 0", len(got.SensationsLog))
	}
}

func TestUnknownSession(t *testing.T) {
	l := newTestLog(t)

	if _, err := l.AddSensation("nope", "note"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("AddSensation error = %v, want ErrNotFound", err)
	}
	if _, err := l.End("nope"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("End error = %v, want ErrNotFound", err)
	}
}

func TestGetActive(t *testing.T) {
	l := newTestLog(t)

	first, err := l.Start("snacking", 3)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	second, err := l.Start("smoking", 4)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	if got := len(l.GetActive()); got != 2 {
		t.Fatalf("active sessions = %d, want 2", got)
	}

	if _, err := l.End(first.EntryID); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	active := l.GetActive()
	if len(active) != 1 {
		t.Fatalf("active sessions after end = %d, want 1", len(active))
	}
	if active[0].EntryID != second.EntryID {
		t.Errorf("remaining active session = %s, want %s", active[0].EntryID, second.EntryID)
	}
}
