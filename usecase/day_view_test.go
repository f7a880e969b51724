package usecase

import (
	"main/model"
	"testing"
)

func dailyBooleanHabit(id, name string) *model.Habit {
	return &model.Habit{
		HabitID: id,
		Name:    name,
		Type:    model.HabitBoolean,
		Goal: model.HabitGoal{
			Type:      model.GoalValueBoolean,
			Frequency: model.FrequencyDaily,
		},
	}
}

func TestBuildDayViewDailyHabits(t *testing.T) {
	dayKey := "2025-01-29"

	t.Run("boolean habit completes on any entry that day", func(t *testing.T) {
		habits := []*model.Habit{dailyBooleanHabit("h1", "Meditate")}
		entries := []model.EntryView{entryView("h1", dayKey, 1)}

		view := BuildDayView(habits, entries, dayKey)
		if view.TotalCount != 1 || view.CompletedCount != 1 {
			t.Fatalf("counts = %d/%d, want 1/1", view.CompletedCount, view.TotalCount)
		}
		if !view.Habits[0].Completed {
			t.Error("habit should be completed")
		}
	})

	t.Run("entry on another day does not complete", func(t *testing.T) {
		habits := []*model.Habit{dailyBooleanHabit("h1", "Meditate")}
		entries := []model.EntryView{entryView("h1", "2025-01-28", 1)}

		view := BuildDayView(habits, entries, dayKey)
		if view.Habits[0].Completed {
			t.Error("yesterday's entry must not complete today")
		}
	})

	t.Run("numeric habit requires the day's sum to reach the target", func(t *testing.T) {
		habit := &model.Habit{
			HabitID: "h1",
			Name:    "Pushups",
			Type:    model.HabitNumber,
			Goal: model.HabitGoal{
				Type:      model.GoalValueNumber,
				Frequency: model.FrequencyDaily,
				Target:    50,
			},
		}
		entries := []model.EntryView{
			entryView("h1", dayKey, 20),
			entryView("h1", dayKey, 30),
		}

		view := BuildDayView([]*model.Habit{habit}, entries, dayKey)
		got := view.Habits[0]
		if !got.Completed {
			t.Error("summed entries reach the target, habit should be complete")
		}
		if got.Value != 50 {
			t.Errorf("value = %v, want 50", got.Value)
		}
		if got.ProgressPercent != 100 {
			t.Errorf("progress = %d, want 100", got.ProgressPercent)
		}
	})
}

func TestBuildDayViewWeeklyHabits(t *testing.T) {
	// 2025-01-29 is a Wednesday; its week runs 2025-01-27 .. 2025-02-02.
	dayKey := "2025-01-29"

	t.Run("boolean with target above one counts distinct days", func(t *testing.T) {
		habit := &model.Habit{
			HabitID: "h1",
			Name:    "Gym",
			Type:    model.HabitBoolean,
			Goal: model.HabitGoal{
				Type:      model.GoalValueBoolean,
				Frequency: model.FrequencyWeekly,
				Target:    2,
			},
		}

		// Two entries on the same day count as one day.
		sameDay := []model.EntryView{
			entryView("h1", "2025-01-27", 1),
			entryView("h1", "2025-01-27", 1),
		}
		view := BuildDayView([]*model.Habit{habit}, sameDay, dayKey)
		if view.Habits[0].Completed {
			t.Error("one distinct day must not satisfy a target of two")
		}

		twoDays := []model.EntryView{
			entryView("h1", "2025-01-27", 1),
			entryView("h1", "2025-01-28", 1),
		}
		view = BuildDayView([]*model.Habit{habit}, twoDays, dayKey)
		if !view.Habits[0].Completed {
			t.Error("two distinct days should satisfy a target of two")
		}
	})

	t.Run("boolean with target of one completes on any entry in the week", func(t *testing.T) {
		habit := &model.Habit{
			HabitID: "h1",
			Name:    "Call parents",
			Type:    model.HabitBoolean,
			Goal: model.HabitGoal{
				Type:      model.GoalValueBoolean,
				Frequency: model.FrequencyWeekly,
				Target:    1,
			},
		}
		entries := []model.EntryView{entryView("h1", "2025-02-01", 1)}

		view := BuildDayView([]*model.Habit{habit}, entries, dayKey)
		if !view.Habits[0].Completed {
			t.Error("an entry anywhere in the week should complete the habit")
		}
	})

	t.Run("numeric sums values across the week", func(t *testing.T) {
		habit := &model.Habit{
			HabitID: "h1",
			Name:    "Run",
			Type:    model.HabitNumber,
			Goal: model.HabitGoal{
				Type:      model.GoalValueNumber,
				Frequency: model.FrequencyWeekly,
				Target:    20,
				Unit:      "km",
			},
		}
		entries := []model.EntryView{
			entryView("h1", "2025-01-27", 8),
			entryView("h1", "2025-01-29", 12),
		}

		view := BuildDayView([]*model.Habit{habit}, entries, dayKey)
		got := view.Habits[0]
		if !got.Completed {
			t.Error("week sum reaches the target, habit should be complete")
		}
		if got.Value != 20 {
			t.Errorf("value = %v, want 20", got.Value)
		}
	})
}

func TestBuildDayViewBundles(t *testing.T) {
	dayKey := "2025-01-29"
	bundle := &model.Habit{
		HabitID:     "bundle",
		Name:        "Morning stack",
		Type:        model.HabitBundle,
		BundleType:  model.BundleChecklist,
		SubHabitIDs: []string{"child1", "child2"},
		Goal: model.HabitGoal{
			Type:      model.GoalValueBoolean,
			Frequency: model.FrequencyDaily,
		},
	}
	habits := []*model.Habit{
		bundle,
		dailyBooleanHabit("child1", "Stretch"),
		dailyBooleanHabit("child2", "Journal"),
	}

	t.Run("one of two children logged reads exactly 50 percent", func(t *testing.T) {
		entries := []model.EntryView{entryView("child1", dayKey, 1)}

		view := BuildDayView(habits, entries, dayKey)
		var got model.DayViewHabit
		for _, h := range view.Habits {
			if h.HabitID == "bundle" {
				got = h
			}
		}
		if got.ProgressPercent != 50 {
			t.Errorf("bundle progress = %d, want 50", got.ProgressPercent)
		}
		if !got.Completed {
			t.Error("bundle completes when any child is logged")
		}
		if got.CompletedChildren != 1 || got.TotalChildren != 2 {
			t.Errorf("children = %d/%d, want 1/2", got.CompletedChildren, got.TotalChildren)
		}
	})

	t.Run("no children logged leaves the bundle incomplete", func(t *testing.T) {
		view := BuildDayView(habits, nil, dayKey)
		for _, h := range view.Habits {
			if h.HabitID == "bundle" {
				if h.Completed || h.ProgressPercent != 0 {
					t.Errorf("bundle should be incomplete at 0%%, got %v / %d%%", h.Completed, h.ProgressPercent)
				}
			}
		}
	})
}
