package usecase

import (
	"main/model"
	"testing"
	"time"
)

func rawEntry(habitID, dayKey string, value float64) *model.HabitEntry {
	return &model.HabitEntry{
		EntryID:   habitID + "-" + dayKey,
		UserID:    "u1",
		HabitID:   habitID,
		DayKey:    dayKey,
		Timestamp: time.Now(),
		Value:     value,
		Source:    model.SourceManual,
	}
}

func TestBuildMainDashboardReadModel(t *testing.T) {
	now := time.Date(2025, 1, 29, 10, 0, 0, 0, time.UTC)
	query := model.DashboardQuery{Month: "2025-01", IncludeWeekly: true}

	t.Run("daily counts cover every day of the month", func(t *testing.T) {
		habits := []*model.Habit{dailyBooleanHabit("h1", "Meditate")}
		rm, err := BuildMainDashboardReadModel(habits, nil, nil, query, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rm.DailyCounts) != 31 {
			t.Errorf("expected 31 day buckets, got %d", len(rm.DailyCounts))
		}
		if count, ok := rm.DailyCounts["2025-01-15"]; !ok || count != 0 {
			t.Errorf("empty day should be present with count 0, got %d (present=%v)", count, ok)
		}
	})

	t.Run("soft-deleted entries never count", func(t *testing.T) {
		habits := []*model.Habit{dailyBooleanHabit("h1", "Meditate")}
		deletedAt := now
		deleted := rawEntry("h1", "2025-01-10", 1)
		deleted.DeletedAt = &deletedAt

		rm, err := BuildMainDashboardReadModel(habits, nil, []*model.HabitEntry{deleted}, query, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rm.DailyCounts["2025-01-10"] != 0 {
			t.Errorf("deleted entry leaked into daily counts: %d", rm.DailyCounts["2025-01-10"])
		}
		if rm.MonthlySummary.TotalEntries != 0 {
			t.Errorf("deleted entry leaked into monthly summary: %d", rm.MonthlySummary.TotalEntries)
		}
	})

	t.Run("same habit twice a day counts once", func(t *testing.T) {
		habits := []*model.Habit{dailyBooleanHabit("h1", "Meditate")}
		entries := []*model.HabitEntry{
			rawEntry("h1", "2025-01-10", 1),
			rawEntry("h1", "2025-01-10", 1),
		}

		rm, err := BuildMainDashboardReadModel(habits, nil, entries, query, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rm.DailyCounts["2025-01-10"] != 1 {
			t.Errorf("distinct habit-day count = %d, want 1", rm.DailyCounts["2025-01-10"])
		}
	})

	t.Run("entries outside the month are ignored", func(t *testing.T) {
		habits := []*model.Habit{dailyBooleanHabit("h1", "Meditate")}
		entries := []*model.HabitEntry{rawEntry("h1", "2025-02-01", 1)}

		rm, err := BuildMainDashboardReadModel(habits, nil, entries, query, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rm.MonthlySummary.TotalEntries != 0 {
			t.Errorf("out-of-month entry counted: %d", rm.MonthlySummary.TotalEntries)
		}
	})

	t.Run("heatmap intensity caps at four", func(t *testing.T) {
		var habits []*model.Habit
		var entries []*model.HabitEntry
		names := []string{"h1", "h2", "h3", "h4", "h5", "h6"}
		for _, id := range names {
			habits = append(habits, dailyBooleanHabit(id, id))
			entries = append(entries, rawEntry(id, "2025-01-10", 1))
		}

		rm, err := BuildMainDashboardReadModel(habits, nil, entries, query, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, cell := range rm.Heatmap {
			if cell.DayKey != "2025-01-10" {
				continue
			}
			if cell.Count != 6 {
				t.Errorf("count = %d, want 6", cell.Count)
			}
			if cell.Intensity != 4 {
				t.Errorf("intensity = %d, want capped at 4", cell.Intensity)
			}
		}
	})

	t.Run("category rollup aggregates per category", func(t *testing.T) {
		habit := dailyBooleanHabit("h1", "Meditate")
		habit.CategoryID = "cat1"
		categories := []*model.Category{{CategoryID: "cat1", Name: "Mind"}}
		entries := []*model.HabitEntry{
			rawEntry("h1", "2025-01-10", 1),
			rawEntry("h1", "2025-01-11", 1),
		}

		rm, err := BuildMainDashboardReadModel([]*model.Habit{habit}, categories, entries, query, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(rm.CategoryRollup) != 1 {
			t.Fatalf("expected 1 rollup row, got %d", len(rm.CategoryRollup))
		}
		row := rm.CategoryRollup[0]
		if row.HabitCount != 1 || row.EntryCount != 2 || row.ActiveDays != 2 {
			t.Errorf("rollup = %+v, want 1 habit / 2 entries / 2 days", row)
		}
	})
}

func TestBuildMainDashboardWeeklySummary(t *testing.T) {
	// now is Wednesday 2025-01-29; the current week is 01-27 .. 02-02.
	now := time.Date(2025, 1, 29, 10, 0, 0, 0, time.UTC)
	query := model.DashboardQuery{Month: "2025-01", IncludeWeekly: true}

	weeklyHabit := &model.Habit{
		HabitID: "w1",
		Name:    "Gym",
		Type:    model.HabitBoolean,
		Goal: model.HabitGoal{
			Type:      model.GoalValueBoolean,
			Frequency: model.FrequencyWeekly,
			Target:    2,
		},
	}

	t.Run("two distinct days satisfy a target of two", func(t *testing.T) {
		entries := []*model.HabitEntry{
			rawEntry("w1", "2025-01-27", 1),
			rawEntry("w1", "2025-01-28", 1),
		}

		rm, err := BuildMainDashboardReadModel([]*model.Habit{weeklyHabit}, nil, entries, query, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rm.WeeklySummary.Goal != 1 || rm.WeeklySummary.Completed != 1 {
			t.Errorf("weekly summary = %d/%d, want 1/1", rm.WeeklySummary.Completed, rm.WeeklySummary.Goal)
		}
	})

	t.Run("one day leaves the requirement unmet", func(t *testing.T) {
		entries := []*model.HabitEntry{rawEntry("w1", "2025-01-27", 1)}

		rm, err := BuildMainDashboardReadModel([]*model.Habit{weeklyHabit}, nil, entries, query, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rm.WeeklySummary.Goal != 1 || rm.WeeklySummary.Completed != 0 {
			t.Errorf("weekly summary = %d/%d, want 0/1", rm.WeeklySummary.Completed, rm.WeeklySummary.Goal)
		}
	})

	t.Run("daily cadence filter empties the weekly summary", func(t *testing.T) {
		dailyQuery := model.DashboardQuery{Month: "2025-01", Cadence: "daily"}
		entries := []*model.HabitEntry{
			rawEntry("w1", "2025-01-27", 1),
			rawEntry("w1", "2025-01-28", 1),
		}

		rm, err := BuildMainDashboardReadModel([]*model.Habit{weeklyHabit}, nil, entries, dailyQuery, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rm.WeeklySummary.Goal != 0 || rm.WeeklySummary.Completed != 0 {
			t.Errorf("weekly summary = %d/%d, want 0/0 under daily cadence", rm.WeeklySummary.Completed, rm.WeeklySummary.Goal)
		}
	})

	t.Run("reference day clamps into a historical month", func(t *testing.T) {
		// Viewing December 2024 from late January: the "current week" must
		// be computed around 2024-12-31, not a day outside the month.
		pastQuery := model.DashboardQuery{Month: "2024-12", IncludeWeekly: true}

		rm, err := BuildMainDashboardReadModel([]*model.Habit{weeklyHabit}, nil, nil, pastQuery, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 2024-12-31 is a Tuesday; its week starts Monday 2024-12-30.
		if rm.WeeklySummary.WeekStart != "2024-12-30" {
			t.Errorf("week start = %s, want 2024-12-30", rm.WeeklySummary.WeekStart)
		}
	})
}

func TestBuildMainDashboardMonthlySummary(t *testing.T) {
	now := time.Date(2025, 1, 29, 10, 0, 0, 0, time.UTC)
	query := model.DashboardQuery{Month: "2025-01", IncludeWeekly: true}

	habits := []*model.Habit{dailyBooleanHabit("h1", "Meditate")}
	entries := []*model.HabitEntry{
		rawEntry("h1", "2025-01-10", 1),
		rawEntry("h1", "2025-01-11", 1),
		rawEntry("h1", "2025-01-11", 1),
	}

	rm, err := BuildMainDashboardReadModel(habits, nil, entries, query, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	summary := rm.MonthlySummary
	if summary.ActiveDays != 2 {
		t.Errorf("active days = %d, want 2", summary.ActiveDays)
	}
	if summary.TotalEntries != 3 {
		t.Errorf("total entries = %d, want 3", summary.TotalEntries)
	}
	if summary.CompletedHabitDays != 2 {
		t.Errorf("completed habit days = %d, want 2", summary.CompletedHabitDays)
	}
	wantRate := 2.0 / 31.0
	if diff := summary.CompletionRate - wantRate; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("completion rate = %v, want %v", summary.CompletionRate, wantRate)
	}
}
