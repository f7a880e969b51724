package usecase

import (
	"main/model"
	"testing"
)

func TestShouldAutoFreeze(t *testing.T) {
	dailyHabit := func(freezes int) *model.Habit {
		return &model.Habit{
			HabitID:     "h1",
			Type:        model.HabitBoolean,
			FreezeCount: freezes,
			Goal: model.HabitGoal{
				Type:      model.GoalValueBoolean,
				Frequency: model.FrequencyDaily,
			},
		}
	}
	streak := []model.EntryView{entryView("h1", "2025-01-25", 1)}

	tests := []struct {
		name      string
		habit     *model.Habit
		yesterday []model.EntryView
		dayBefore []model.EntryView
		want      bool
	}{
		{
			name:      "broken streak with inventory freezes",
			habit:     dailyHabit(2),
			yesterday: nil,
			dayBefore: streak,
			want:      true,
		},
		{
			name:      "no freeze inventory",
			habit:     dailyHabit(0),
			yesterday: nil,
			dayBefore: streak,
			want:      false,
		},
		{
			name:      "yesterday already logged",
			habit:     dailyHabit(2),
			yesterday: []model.EntryView{entryView("h1", "2025-01-26", 1)},
			dayBefore: streak,
			want:      false,
		},
		{
			name:      "no active streak to protect",
			habit:     dailyHabit(2),
			yesterday: nil,
			dayBefore: nil,
			want:      false,
		},
		{
			name: "weekly habits never freeze",
			habit: &model.Habit{
				HabitID:     "h1",
				Type:        model.HabitBoolean,
				FreezeCount: 2,
				Goal: model.HabitGoal{
					Type:      model.GoalValueBoolean,
					Frequency: model.FrequencyWeekly,
				},
			},
			yesterday: nil,
			dayBefore: streak,
			want:      false,
		},
		{
			name: "bundles never freeze",
			habit: &model.Habit{
				HabitID:     "h1",
				Type:        model.HabitBundle,
				BundleType:  model.BundleChecklist,
				FreezeCount: 2,
				Goal: model.HabitGoal{
					Type:      model.GoalValueBoolean,
					Frequency: model.FrequencyDaily,
				},
			},
			yesterday: nil,
			dayBefore: streak,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldAutoFreeze(tt.habit, tt.yesterday, tt.dayBefore); got != tt.want {
				t.Errorf("ShouldAutoFreeze() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFreezeMarkerContributesZero(t *testing.T) {
	// A freeze marker keeps the day present for streak purposes but adds
	// nothing in sum mode.
	goal := &model.Goal{
		GoalID:          "g1",
		Type:            model.GoalFrequency,
		TargetValue:     5,
		AggregationMode: model.AggregateCount,
	}
	marker := model.EntryView{
		EntryID: "m1",
		HabitID: "h1",
		DayKey:  "2025-01-26",
		Value:   0,
		Source:  model.SourceManual,
		Note:    model.FreezeNote,
	}

	progress := ComputeGoalProgress(goal, []model.EntryView{marker}, nil,
		mustParseTime(t, "2025-01-27"))
	if progress.CurrentValue != 1 {
		t.Errorf("frequency should count the frozen day, got %v", progress.CurrentValue)
	}

	sumGoal := &model.Goal{
		GoalID:          "g2",
		Type:            model.GoalCumulative,
		TargetValue:     100,
		AggregationMode: model.AggregateSum,
	}
	progress = ComputeGoalProgress(sumGoal, []model.EntryView{marker}, nil,
		mustParseTime(t, "2025-01-27"))
	if progress.CurrentValue != 0 {
		t.Errorf("sum mode should add zero for a freeze marker, got %v", progress.CurrentValue)
	}
}
