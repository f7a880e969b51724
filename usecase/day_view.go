package usecase

import (
	"context"
	"errors"
	"main/model"
	"main/repository"
	"main/utils"
	"math"
)

type DayViewService struct {
	habitsRepo  *repository.HabitsRepo
	entriesRepo *repository.EntriesRepo
}

func NewDayViewService(habitsRepo *repository.HabitsRepo, entriesRepo *repository.EntriesRepo) *DayViewService {
	return &DayViewService{habitsRepo: habitsRepo, entriesRepo: entriesRepo}
}

// ComputeDayView fetches the day's habits and the surrounding ISO week of
// entries, then derives per-habit completion for the requested day.
func (svc *DayViewService) ComputeDayView(ctx context.Context, userID string, dayKey string) (*model.DayView, error) {
	if !utils.IsValidDayKey(dayKey) {
		return nil, errors.New("invalid day key, expected YYYY-MM-DD")
	}

	habits, err := svc.habitsRepo.GetActiveHabits(ctx, userID)
	if err != nil {
		return nil, err
	}

	// One fetch covers both the day itself and weekly-cadence windows.
	weekStart, weekEnd, err := utils.WeekWindow(dayKey)
	if err != nil {
		return nil, err
	}
	rawEntries, err := svc.entriesRepo.GetEntriesInRange(ctx, userID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	return BuildDayView(habits, model.ToEntryViews(rawEntries), dayKey), nil
}

// BuildDayView derives the day view from pre-fetched data. Pure.
func BuildDayView(habits []*model.Habit, entries []model.EntryView, dayKey string) *model.DayView {
	entriesByHabit := make(map[string][]model.EntryView)
	for _, entry := range entries {
		entriesByHabit[entry.HabitID] = append(entriesByHabit[entry.HabitID], entry)
	}

	view := &model.DayView{DayKey: dayKey}
	for _, habit := range habits {
		var habitView model.DayViewHabit
		if habit.IsBundle() {
			habitView = bundleDayView(habit, entriesByHabit, dayKey)
		} else {
			habitView = leafDayView(habit, entriesByHabit[habit.HabitID], dayKey)
		}
		view.Habits = append(view.Habits, habitView)
		view.TotalCount++
		if habitView.Completed {
			view.CompletedCount++
		}
	}
	return view
}

// leafDayView evaluates a non-bundle habit against its goal for one day.
func leafDayView(habit *model.Habit, entries []model.EntryView, dayKey string) model.DayViewHabit {
	habitView := model.DayViewHabit{
		HabitID:   habit.HabitID,
		Name:      habit.Name,
		Type:      habit.Type,
		Frequency: habit.Goal.Frequency,
		Target:    habit.Goal.Target,
		Unit:      habit.Goal.Unit,
	}

	dayCount := 0
	daySum := 0.0
	distinctDays := make(map[string]bool)
	weekSum := 0.0
	for _, entry := range entries {
		distinctDays[entry.DayKey] = true
		weekSum += entry.Value
		if entry.DayKey == dayKey {
			dayCount++
			daySum += entry.Value
		}
	}

	if habit.Goal.Frequency == model.FrequencyWeekly {
		if habit.Goal.Type == model.GoalValueNumber {
			// Quantity semantics: the week's summed values carry the target.
			habitView.Value = weekSum
			habitView.Completed = habit.Goal.Target > 0 && weekSum >= habit.Goal.Target
			habitView.ProgressPercent = ratioPercent(weekSum, habit.Goal.Target)
			return habitView
		}
		// Frequency semantics: distinct entry days in the week.
		days := float64(len(distinctDays))
		habitView.Value = days
		if habit.Goal.Target > 1 {
			habitView.Completed = days >= habit.Goal.Target
			habitView.ProgressPercent = ratioPercent(days, habit.Goal.Target)
		} else {
			habitView.Completed = len(entries) > 0
			if habitView.Completed {
				habitView.ProgressPercent = 100
			}
		}
		return habitView
	}

	// Daily (and total-cadence) habits look only at the requested day.
	if habit.Goal.Type == model.GoalValueNumber {
		habitView.Value = daySum
		habitView.Completed = habit.Goal.Target > 0 && daySum >= habit.Goal.Target
		habitView.ProgressPercent = ratioPercent(daySum, habit.Goal.Target)
		return habitView
	}
	habitView.Value = float64(dayCount)
	habitView.Completed = dayCount > 0
	if habitView.Completed {
		habitView.ProgressPercent = 100
	}
	return habitView
}

// bundleDayView derives a bundle parent's completion from its children: the
// parent is complete when any child is complete that day.
func bundleDayView(habit *model.Habit, entriesByHabit map[string][]model.EntryView, dayKey string) model.DayViewHabit {
	habitView := model.DayViewHabit{
		HabitID:   habit.HabitID,
		Name:      habit.Name,
		Type:      habit.Type,
		Frequency: habit.Goal.Frequency,
	}

	habitView.TotalChildren = len(habit.SubHabitIDs)
	for _, childID := range habit.SubHabitIDs {
		childComplete := false
		for _, entry := range entriesByHabit[childID] {
			if entry.DayKey == dayKey {
				childComplete = true
				break
			}
		}
		if childComplete {
			habitView.CompletedChildren++
		}
	}

	habitView.Completed = habitView.CompletedChildren > 0
	if habitView.TotalChildren > 0 {
		habitView.ProgressPercent = ratioPercent(
			float64(habitView.CompletedChildren), float64(habitView.TotalChildren))
	}
	return habitView
}

func ratioPercent(value, target float64) int {
	if target <= 0 {
		return 0
	}
	percent := int(math.Round(value / target * 100))
	if percent > 100 {
		percent = 100
	}
	return percent
}
