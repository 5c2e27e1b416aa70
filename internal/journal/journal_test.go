package journal

import (
	"errors"
	"testing"

	apperrors "github.com/jstrick/dojo/internal/errors"
	"github.com/jstrick/dojo/internal/storage"
	"github.com/jstrick/dojo/internal/utils"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()
	store := storage.NewJSONStore(t.TempDir())
	if err := store.Init(); err != nil {
		t.Fatalf("store init: %v", err)
	}
	return New(store)
}

func TestAddFreeWriteEntry(t *testing.T) {
	j := newTestJournal(t)

	entry, err := j.AddEntry("a quiet morning", nil)
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if entry.EntryID == "" {
		t.Error("expected a generated entry id")
	}
	if entry.DateISO != utils.Today() {
		t.Errorf("date = %q, want today %q", entry.DateISO, utils.Today())
	}
	if entry.PromptID != nil {
		t.Errorf("prompt id = %v, want nil for free write", *entry.PromptID)
	}
	if entry.PromptTextSnapshot != "" {
		t.Errorf("snapshot = %q, want empty for free write", entry.PromptTextSnapshot)
	}
}

func TestAddPromptedEntrySnapshotsText(t *testing.T) {
	j := newTestJournal(t)

	prompt, ok := PromptByID("stoic_001")
	if !ok {
		t.Fatal("stoic_001 missing from catalog")
	}

	id := "stoic_001"
	entry, err := j.AddEntry("reflections on control", &id)
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if entry.PromptID == nil || *entry.PromptID != "stoic_001" {
		t.Errorf("prompt id = %v, want stoic_001", entry.PromptID)
	}
	if entry.PromptTextSnapshot != prompt.Text {
		t.Errorf("snapshot = %q, want catalog text %q", entry.PromptTextSnapshot, prompt.Text)
	}
}

func TestAddEntryUnknownPrompt(t *testing.T) {
	j := newTestJournal(t)

	id := "nonexistent_999"
	_, err := j.AddEntry("text", &id)
	if !errors.Is(err, apperrors.ErrPromptNotFound) {
		t.Errorf("error = %v, want ErrPromptNotFound", err)
	}
	if got := len(j.GetAll()); got != 0 {
		t.Errorf("failed add should not persist an entry, got %d", got)
	}
}

func TestGetByDate(t *testing.T) {
	j := newTestJournal(t)

	if _, err := j.AddEntry("first", nil); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	if _, err := j.AddEntry("second", nil); err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	today, err := j.GetByDate(utils.Today())
	if err != nil {
		t.Fatalf("GetByDate failed: %v", err)
	}
	if len(today) != 2 {
		t.Errorf("entries for today = %d, want 2", len(today))
	}

	other, err := j.GetByDate("1999-01-01")
	if err != nil {
		t.Fatalf("GetByDate failed: %v", err)
	}
	if len(other) != 0 {
		t.Errorf("entries for 1999-01-01 = %d, want 0", len(other))
	}

	if _, err := j.GetByDate("not-a-date"); !errors.Is(err, apperrors.ErrInvalidDate) {
		t.Errorf("error = %v, want ErrInvalidDate", err)
	}
}

func TestGetByID(t *testing.T) {
	j := newTestJournal(t)

	entry, err := j.AddEntry("findable", nil)
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	got, ok := j.GetByID(entry.EntryID)
	if !ok {
		t.Fatal("expected entry to be found by id")
	}
	if got.UserText != "findable" {
		t.Errorf("user text = %q, want %q", got.UserText, "findable")
	}

	if _, ok := j.GetByID("missing"); ok {
		t.Error("expected lookup of unknown id to report not found")
	}
}

func TestPromptCatalog(t *testing.T) {
	if len(Prompts) == 0 {
		t.Fatal("prompt catalog is empty")
	}

	seen := make(map[string]bool)
	for _, p := range Prompts {
		if p.ID == "" || p.Text == "" {
			t.Errorf("prompt %+v has empty id or text", p)
		}
		if seen[p.ID] {
			t.Errorf("duplicate prompt id %q", p.ID)
		}
		seen[p.ID] = true
	}

	// RandomPrompt always returns a catalog member
	for i := 0; i < 20; i++ {
		p, ok := RandomPrompt()
		if !ok {
			t.Fatal("RandomPrompt reported empty catalog")
		}
		if !seen[p.ID] {
			t.Fatalf("RandomPrompt returned %q, not in catalog", p.ID)
		}
	}
}
