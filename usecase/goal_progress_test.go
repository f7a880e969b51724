package usecase

import (
	"main/model"
	"testing"
	"time"
)

func entryView(habitID, dayKey string, value float64) model.EntryView {
	return model.EntryView{
		EntryID: habitID + "-" + dayKey,
		HabitID: habitID,
		DayKey:  dayKey,
		Value:   value,
		Source:  model.SourceManual,
	}
}

func TestComputeGoalProgress(t *testing.T) {
	now := time.Date(2025, 1, 27, 12, 0, 0, 0, time.UTC)

	t.Run("cumulative sum mode adds entry values", func(t *testing.T) {
		goal := &model.Goal{
			GoalID:          "g1",
			Type:            model.GoalCumulative,
			TargetValue:     100,
			AggregationMode: model.AggregateSum,
		}
		entries := []model.EntryView{
			entryView("h1", "2025-01-25", 10),
			entryView("h1", "2025-01-26", 15),
			entryView("h2", "2025-01-26", 5),
		}

		progress := ComputeGoalProgress(goal, entries, nil, now)
		if progress.CurrentValue != 30 {
			t.Errorf("current value = %v, want 30", progress.CurrentValue)
		}
		if progress.Percent != 30 {
			t.Errorf("percent = %d, want 30", progress.Percent)
		}
	})

	t.Run("cumulative count mode counts completions", func(t *testing.T) {
		goal := &model.Goal{
			GoalID:          "g1",
			Type:            model.GoalCumulative,
			TargetValue:     10,
			AggregationMode: model.AggregateCount,
		}
		entries := []model.EntryView{
			entryView("h1", "2025-01-25", 42),
			entryView("h1", "2025-01-26", 99),
		}

		progress := ComputeGoalProgress(goal, entries, nil, now)
		if progress.CurrentValue != 2 {
			t.Errorf("current value = %v, want 2 (values must not leak into count mode)", progress.CurrentValue)
		}
	})

	t.Run("cumulative includes manual logs", func(t *testing.T) {
		goal := &model.Goal{
			GoalID:          "g1",
			Type:            model.GoalCumulative,
			TargetValue:     50,
			AggregationMode: model.AggregateSum,
		}
		logs := []*model.GoalManualLog{
			{LogID: "l1", GoalID: "g1", Value: 20, LoggedAt: time.Date(2025, 1, 24, 9, 0, 0, 0, time.UTC)},
		}

		progress := ComputeGoalProgress(goal, []model.EntryView{entryView("h1", "2025-01-25", 5)}, logs, now)
		if progress.CurrentValue != 25 {
			t.Errorf("current value = %v, want 25", progress.CurrentValue)
		}
	})

	t.Run("frequency counts distinct days", func(t *testing.T) {
		goal := &model.Goal{
			GoalID:      "g1",
			Type:        model.GoalFrequency,
			TargetValue: 10,
		}
		entries := []model.EntryView{
			entryView("h1", "2025-01-25", 1),
			entryView("h1", "2025-01-25", 1),
			entryView("h2", "2025-01-25", 1),
			entryView("h1", "2025-01-26", 1),
		}

		progress := ComputeGoalProgress(goal, entries, nil, now)
		if progress.CurrentValue != 2 {
			t.Errorf("current value = %v, want 2 distinct days", progress.CurrentValue)
		}
		if progress.Percent != 20 {
			t.Errorf("percent = %d, want 20", progress.Percent)
		}
	})

	t.Run("onetime is binary on completion", func(t *testing.T) {
		goal := &model.Goal{GoalID: "g1", Type: model.GoalOnetime, TargetValue: 999}

		progress := ComputeGoalProgress(goal, nil, nil, now)
		if progress.Percent != 0 || progress.CurrentValue != 0 {
			t.Errorf("incomplete onetime goal should read 0, got %v / %d%%", progress.CurrentValue, progress.Percent)
		}

		completedAt := now.Add(-time.Hour)
		goal.CompletedAt = &completedAt
		progress = ComputeGoalProgress(goal, nil, nil, now)
		if progress.Percent != 100 || progress.CurrentValue != 1 {
			t.Errorf("completed onetime goal should read 100%%, got %v / %d%%", progress.CurrentValue, progress.Percent)
		}
	})

	t.Run("percent caps at 100", func(t *testing.T) {
		goal := &model.Goal{
			GoalID:          "g1",
			Type:            model.GoalCumulative,
			TargetValue:     10,
			AggregationMode: model.AggregateSum,
		}
		entries := []model.EntryView{entryView("h1", "2025-01-25", 250)}

		progress := ComputeGoalProgress(goal, entries, nil, now)
		if progress.Percent != 100 {
			t.Errorf("percent = %d, want capped at 100", progress.Percent)
		}
	})

	t.Run("recent day buckets are populated", func(t *testing.T) {
		goal := &model.Goal{
			GoalID:          "g1",
			Type:            model.GoalCumulative,
			TargetValue:     100,
			AggregationMode: model.AggregateSum,
		}
		entries := []model.EntryView{entryView("h1", "2025-01-27", 7)}

		progress := ComputeGoalProgress(goal, entries, nil, now)
		if len(progress.LastSevenDays) != 7 {
			t.Fatalf("expected 7 day buckets, got %d", len(progress.LastSevenDays))
		}
		if len(progress.LastThirtyDays) != 30 {
			t.Fatalf("expected 30 day buckets, got %d", len(progress.LastThirtyDays))
		}
		last := progress.LastSevenDays[6]
		if last.DayKey != "2025-01-27" || last.Value != 7 {
			t.Errorf("newest bucket = %+v, want 2025-01-27 / 7", last)
		}
	})
}

func TestComputeGoalProgressInactivityWarning(t *testing.T) {
	now := time.Date(2025, 1, 27, 12, 0, 0, 0, time.UTC)
	goal := &model.Goal{
		GoalID:          "g1",
		Type:            model.GoalCumulative,
		TargetValue:     100,
		AggregationMode: model.AggregateSum,
	}

	t.Run("warns at four zero days in the last seven", func(t *testing.T) {
		// Three active days leave four zero days.
		entries := []model.EntryView{
			entryView("h1", "2025-01-25", 1),
			entryView("h1", "2025-01-26", 1),
			entryView("h1", "2025-01-27", 1),
		}
		progress := ComputeGoalProgress(goal, entries, nil, now)
		if !progress.InactivityWarning {
			t.Error("expected inactivity warning with 4 zero days")
		}
	})

	t.Run("no warning at three zero days", func(t *testing.T) {
		entries := []model.EntryView{
			entryView("h1", "2025-01-24", 1),
			entryView("h1", "2025-01-25", 1),
			entryView("h1", "2025-01-26", 1),
			entryView("h1", "2025-01-27", 1),
		}
		progress := ComputeGoalProgress(goal, entries, nil, now)
		if progress.InactivityWarning {
			t.Error("expected no warning with only 3 zero days")
		}
	})

	t.Run("completion suppresses the warning", func(t *testing.T) {
		completedAt := now.Add(-48 * time.Hour)
		completed := *goal
		completed.CompletedAt = &completedAt

		progress := ComputeGoalProgress(&completed, nil, nil, now)
		if progress.InactivityWarning {
			t.Error("completed goal must not raise an inactivity warning")
		}
	})
}

func TestResolveLinkedHabits(t *testing.T) {
	habitsByID := map[string]*model.Habit{
		"bundle": {
			HabitID:     "bundle",
			Type:        model.HabitBundle,
			BundleType:  model.BundleChecklist,
			SubHabitIDs: []string{"child1", "child2"},
		},
		"child1": {HabitID: "child1"},
		"child2": {HabitID: "child2"},
		"plain":  {HabitID: "plain"},
	}

	t.Run("bundles expand to children", func(t *testing.T) {
		resolved := ResolveLinkedHabits([]string{"bundle", "plain"}, habitsByID)
		want := []string{"child1", "child2", "plain"}
		if len(resolved) != len(want) {
			t.Fatalf("resolved = %v, want %v", resolved, want)
		}
		for i := range want {
			if resolved[i] != want[i] {
				t.Errorf("resolved[%d] = %s, want %s", i, resolved[i], want[i])
			}
		}
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		resolved := ResolveLinkedHabits([]string{"bundle", "child1", "plain", "plain"}, habitsByID)
		seen := make(map[string]bool)
		for _, id := range resolved {
			if seen[id] {
				t.Errorf("duplicate id %s in %v", id, resolved)
			}
			seen[id] = true
		}
	})

	t.Run("unknown ids pass through", func(t *testing.T) {
		resolved := ResolveLinkedHabits([]string{"ghost"}, habitsByID)
		if len(resolved) != 1 || resolved[0] != "ghost" {
			t.Errorf("resolved = %v, want [ghost]", resolved)
		}
	})
}
