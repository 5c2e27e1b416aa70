package models

import (
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestUrgeLogEntryActive(t *testing.T) {
	entry := UrgeLogEntry{
		EntryID:          "u1",
		UrgeType:         "snacking",
		StartTime:        "2025-06-12T10:00:00Z",
		InitialIntensity: 7,
	}
	if !entry.Active() {
		t.Error("entry with nil EndTime should be active")
	}

	entry.EndTime = strPtr("2025-06-12T10:05:00Z")
	if entry.Active() {
		t.Error("entry with EndTime set should not be active")
	}
}

func TestDurationSeconds(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		end    *string
		want   int
		wantOK bool
	}{
		{
			name:   "whole minutes",
			start:  "2025-06-12T10:00:00Z",
			end:    strPtr("2025-06-12T10:05:00Z"),
			want:   300,
			wantOK: true,
		},
		{
			name:   "fractional seconds truncate toward zero",
			start:  "2025-06-12T10:00:00.200Z",
			end:    strPtr("2025-06-12T10:00:05.900Z"),
			want:   5,
			wantOK: true,
		},
		{
			name:   "still active",
			start:  "2025-06-12T10:00:00Z",
			end:    nil,
			wantOK: false,
		},
		{
			name:   "unparseable start",
			start:  "not a time",
			end:    strPtr("2025-06-12T10:05:00Z"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := UrgeLogEntry{StartTime: tt.start, EndTime: tt.end}
			got, ok := entry.DurationSeconds()
			if ok != tt.wantOK {
				t.Fatalf("DurationSeconds() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("DurationSeconds() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestElapsed(t *testing.T) {
	entry := UrgeLogEntry{StartTime: "2025-06-12T10:00:00Z"}
	now := time.Date(2025, 6, 12, 10, 1, 30, 0, time.UTC)
	if got := entry.Elapsed(now); got != 90*time.Second {
		t.Errorf("Elapsed() = %v, want 90s", got)
	}

	broken := UrgeLogEntry{StartTime: "???"}
	if got := broken.Elapsed(now); got != 0 {
		t.Errorf("Elapsed() with bad start = %v, want 0", got)
	}
}

func TestUrgeLogEntryValidate(t *testing.T) {
	valid := UrgeLogEntry{
		EntryID:          "u1",
		UrgeType:         "smoking",
		StartTime:        "2025-06-12T10:00:00Z",
		InitialIntensity: 5,
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid entry failed validation: %v", err)
	}

	tooHigh := valid
	tooHigh.InitialIntensity = 11
	if err := tooHigh.Validate(); err == nil {
		t.Error("expected validation error for intensity above 10")
	}

	zero := valid
	zero.InitialIntensity = 0
	if err := zero.Validate(); err == nil {
		t.Error("expected validation error for zero intensity")
	}

	badStart := valid
	badStart.StartTime = "2025-06-12"
	if err := badStart.Validate(); err == nil {
		t.Error("expected validation error for non-RFC3339 start time")
	}
}
