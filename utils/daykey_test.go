package utils

import (
	"testing"
	"time"
)

func TestWeekWindow(t *testing.T) {
	tests := []struct {
		name      string
		dayKey    string
		wantStart string
		wantEnd   string
		wantErr   bool
	}{
		{
			name:      "Monday maps to itself",
			dayKey:    "2025-01-27",
			wantStart: "2025-01-27",
			wantEnd:   "2025-02-02",
		},
		{
			name:      "Sunday belongs to the preceding Monday's week",
			dayKey:    "2025-02-02",
			wantStart: "2025-01-27",
			wantEnd:   "2025-02-02",
		},
		{
			name:      "Midweek day",
			dayKey:    "2025-01-30",
			wantStart: "2025-01-27",
			wantEnd:   "2025-02-02",
		},
		{
			name:    "Invalid day key",
			dayKey:  "not-a-date",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := WeekWindow(tt.dayKey)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("got window %s..%s, want %s..%s", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestGetLastWeekSameWeekday(t *testing.T) {
	tests := []struct {
		dayKey string
		want   string
	}{
		{"2025-01-27", "2025-01-20"},
		{"2025-02-03", "2025-01-27"},
		{"2025-03-01", "2025-02-22"},
	}

	for _, tt := range tests {
		t.Run(tt.dayKey, func(t *testing.T) {
			got, err := GetLastWeekSameWeekday(tt.dayKey)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}

			// Same weekday on both sides
			a, _ := ParseDayKey(tt.dayKey)
			b, _ := ParseDayKey(got)
			if a.Weekday() != b.Weekday() {
				t.Errorf("weekday changed: %s vs %s", a.Weekday(), b.Weekday())
			}
		})
	}
}

func TestLastNDayKeys(t *testing.T) {
	now := time.Date(2025, 1, 27, 15, 30, 0, 0, time.UTC)

	keys := LastNDayKeys(now, 7)
	if len(keys) != 7 {
		t.Fatalf("expected 7 keys, got %d", len(keys))
	}
	if keys[0] != "2025-01-21" {
		t.Errorf("oldest key = %s, want 2025-01-21", keys[0])
	}
	if keys[6] != "2025-01-27" {
		t.Errorf("newest key = %s, want 2025-01-27", keys[6])
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Errorf("keys not strictly ascending at %d: %s >= %s", i, keys[i-1], keys[i])
		}
	}
}

func TestMonthDayKeys(t *testing.T) {
	keys, err := MonthDayKeys("2025-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 28 {
		t.Errorf("February 2025 should have 28 days, got %d", len(keys))
	}
	if keys[0] != "2025-02-01" || keys[27] != "2025-02-28" {
		t.Errorf("unexpected bounds: %s..%s", keys[0], keys[27])
	}

	leap, err := MonthDayKeys("2024-02")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leap) != 29 {
		t.Errorf("February 2024 should have 29 days, got %d", len(leap))
	}

	if _, err := MonthDayKeys("2025-2"); err == nil {
		t.Error("expected error for malformed month")
	}
}

func TestClampDayKeyToMonth(t *testing.T) {
	tests := []struct {
		name   string
		dayKey string
		month  string
		want   string
	}{
		{"inside the month", "2025-01-15", "2025-01", "2025-01-15"},
		{"after the month snaps to last day", "2025-03-02", "2025-01", "2025-01-31"},
		{"before the month snaps to first day", "2024-12-20", "2025-01", "2025-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClampDayKeyToMonth(tt.dayKey, tt.month)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestIsValidDayKey(t *testing.T) {
	valid := []string{"2025-01-01", "1999-12-31", "2024-02-29"}
	for _, key := range valid {
		if !IsValidDayKey(key) {
			t.Errorf("%s should be valid", key)
		}
	}

	invalid := []string{"", "2025-13-01", "2025-02-30", "2025/01/01", "25-01-01", "2025-1-1"}
	for _, key := range invalid {
		if IsValidDayKey(key) {
			t.Errorf("%s should be invalid", key)
		}
	}
}
