package usecase

import (
	"context"
	"errors"
	"main/model"
	"main/repository"
	"main/utils"
	"math"
	"time"
)

// inactivityZeroDayThreshold: a goal warns when at least this many of the
// last seven days had zero progress.
const inactivityZeroDayThreshold = 4

type GoalProgressService struct {
	goalsRepo    *repository.GoalsRepo
	goalLogsRepo *repository.GoalLogsRepo
	habitsRepo   *repository.HabitsRepo
	entriesRepo  *repository.EntriesRepo
}

func NewGoalProgressService(
	goalsRepo *repository.GoalsRepo,
	goalLogsRepo *repository.GoalLogsRepo,
	habitsRepo *repository.HabitsRepo,
	entriesRepo *repository.EntriesRepo,
) *GoalProgressService {
	return &GoalProgressService{
		goalsRepo:    goalsRepo,
		goalLogsRepo: goalLogsRepo,
		habitsRepo:   habitsRepo,
		entriesRepo:  entriesRepo,
	}
}

// ResolveLinkedHabits expands linked habit IDs through bundles: a linked
// bundle habit is replaced by its children, since bundles carry no entries
// of their own. Unknown IDs pass through untouched so stale links degrade
// to zero progress instead of an error.
func ResolveLinkedHabits(linkedHabitIDs []string, habitsByID map[string]*model.Habit) []string {
	var resolved []string
	seen := make(map[string]bool)
	for _, id := range linkedHabitIDs {
		habit, ok := habitsByID[id]
		if ok && habit.IsBundle() {
			for _, childID := range habit.SubHabitIDs {
				if !seen[childID] {
					seen[childID] = true
					resolved = append(resolved, childID)
				}
			}
			continue
		}
		if !seen[id] {
			seen[id] = true
			resolved = append(resolved, id)
		}
	}
	return resolved
}

// ComputeGoalProgress derives the progress view for one goal from
// pre-fetched entry views and manual logs. Pure: no I/O, no clock reads.
func ComputeGoalProgress(goal *model.Goal, entries []model.EntryView, manualLogs []*model.GoalManualLog, now time.Time) *model.GoalProgress {
	dayTotals := make(map[string]float64)

	for _, entry := range entries {
		if goal.AggregationMode == model.AggregateSum {
			dayTotals[entry.DayKey] += entry.Value
		} else {
			dayTotals[entry.DayKey]++
		}
	}

	if goal.Type == model.GoalCumulative {
		// Manual contributions bucket to a day by the date portion of
		// their timestamp.
		for _, log := range manualLogs {
			dayTotals[utils.FormatDayKey(log.LoggedAt)] += log.Value
		}
	}

	var currentValue float64
	switch goal.Type {
	case model.GoalCumulative:
		for _, v := range dayTotals {
			currentValue += v
		}
	case model.GoalFrequency:
		// Count of distinct days with at least one completed log.
		for range dayTotals {
			currentValue++
		}
	case model.GoalOnetime:
		if goal.IsCompleted() {
			currentValue = 1
		}
	}

	percent := 0
	if goal.Type == model.GoalOnetime {
		// Binary: target value is ignored for one-time goals.
		if goal.IsCompleted() {
			percent = 100
		}
	} else if goal.TargetValue > 0 {
		percent = int(math.Round(currentValue / goal.TargetValue * 100))
		if percent > 100 {
			percent = 100
		}
	}

	lastSeven := bucketDays(dayTotals, utils.LastNDayKeys(now, 7))
	lastThirty := bucketDays(dayTotals, utils.LastNDayKeys(now, 30))

	zeroDays := 0
	for _, day := range lastSeven {
		if day.Value == 0 {
			zeroDays++
		}
	}
	// Completed goals never warn, whatever the recent history looks like.
	warning := zeroDays >= inactivityZeroDayThreshold && !goal.IsCompleted()

	return &model.GoalProgress{
		GoalID:            goal.GoalID,
		CurrentValue:      currentValue,
		TargetValue:       goal.TargetValue,
		Percent:           percent,
		LastSevenDays:     lastSeven,
		LastThirtyDays:    lastThirty,
		InactivityWarning: warning,
	}
}

func bucketDays(dayTotals map[string]float64, dayKeys []string) []model.DayProgress {
	buckets := make([]model.DayProgress, len(dayKeys))
	for i, key := range dayKeys {
		buckets[i] = model.DayProgress{DayKey: key, Value: dayTotals[key]}
	}
	return buckets
}

// ComputeFullGoalProgress fetches everything a single goal needs and
// computes its progress.
func (svc *GoalProgressService) ComputeFullGoalProgress(ctx context.Context, userID string, goalID string) (*model.GoalProgress, error) {
	goal, err := svc.goalsRepo.GetGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, errors.New("goal not found")
	}

	habits, err := svc.habitsRepo.GetUserHabits(ctx, userID)
	if err != nil {
		return nil, err
	}
	habitsByID := indexHabits(habits)

	resolved := ResolveLinkedHabits(goal.LinkedHabitIDs, habitsByID)
	rawEntries, err := svc.entriesRepo.GetEntriesByHabitIDs(ctx, userID, resolved, "", "")
	if err != nil {
		return nil, err
	}

	manualLogs, err := svc.goalLogsRepo.GetLogsByGoalID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}

	return ComputeGoalProgress(goal, model.ToEntryViews(rawEntries), manualLogs, time.Now()), nil
}

// ComputeGoalsWithProgress is the batch variant: all goals, all habits for
// bundle resolution, then one entry query for the union of resolved habit
// IDs, fanned back out per goal. Avoids the per-goal N+1 pattern.
func (svc *GoalProgressService) ComputeGoalsWithProgress(ctx context.Context, userID string) ([]model.GoalWithProgress, error) {
	goals, err := svc.goalsRepo.GetUserGoals(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return []model.GoalWithProgress{}, nil
	}

	habits, err := svc.habitsRepo.GetUserHabits(ctx, userID)
	if err != nil {
		return nil, err
	}
	habitsByID := indexHabits(habits)

	resolvedByGoal := make(map[string][]string, len(goals))
	var unionIDs []string
	inUnion := make(map[string]bool)
	goalIDs := make([]string, 0, len(goals))
	for _, goal := range goals {
		resolved := ResolveLinkedHabits(goal.LinkedHabitIDs, habitsByID)
		resolvedByGoal[goal.GoalID] = resolved
		for _, id := range resolved {
			if !inUnion[id] {
				inUnion[id] = true
				unionIDs = append(unionIDs, id)
			}
		}
		goalIDs = append(goalIDs, goal.GoalID)
	}

	rawEntries, err := svc.entriesRepo.GetEntriesByHabitIDs(ctx, userID, unionIDs, "", "")
	if err != nil {
		return nil, err
	}
	entriesByHabit := make(map[string][]model.EntryView)
	for _, view := range model.ToEntryViews(rawEntries) {
		entriesByHabit[view.HabitID] = append(entriesByHabit[view.HabitID], view)
	}

	manualLogs, err := svc.goalLogsRepo.GetLogsByGoalIDs(ctx, userID, goalIDs)
	if err != nil {
		return nil, err
	}
	logsByGoal := make(map[string][]*model.GoalManualLog)
	for _, log := range manualLogs {
		logsByGoal[log.GoalID] = append(logsByGoal[log.GoalID], log)
	}

	now := time.Now()
	results := make([]model.GoalWithProgress, 0, len(goals))
	for _, goal := range goals {
		var goalEntries []model.EntryView
		for _, habitID := range resolvedByGoal[goal.GoalID] {
			goalEntries = append(goalEntries, entriesByHabit[habitID]...)
		}
		results = append(results, model.GoalWithProgress{
			Goal:     goal,
			Progress: ComputeGoalProgress(goal, goalEntries, logsByGoal[goal.GoalID], now),
		})
	}
	return results, nil
}

func indexHabits(habits []*model.Habit) map[string]*model.Habit {
	byID := make(map[string]*model.Habit, len(habits))
	for _, habit := range habits {
		byID[habit.HabitID] = habit
	}
	return byID
}
