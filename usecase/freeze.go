package usecase

import (
	"context"
	"log"
	"main/model"
	"main/repository"
	"main/utils"
	"time"

	"github.com/google/uuid"
)

type FreezeService struct {
	habitsRepo  *repository.HabitsRepo
	entriesRepo *repository.EntriesRepo
}

func NewFreezeService(habitsRepo *repository.HabitsRepo, entriesRepo *repository.EntriesRepo) *FreezeService {
	return &FreezeService{habitsRepo: habitsRepo, entriesRepo: entriesRepo}
}

// ShouldAutoFreeze decides whether a habit earns an auto-freeze for
// yesterday: there is a token to spend, yesterday is empty, and the day
// before shows an active streak. Pure.
func ShouldAutoFreeze(habit *model.Habit, yesterdayEntries, dayBeforeEntries []model.EntryView) bool {
	if habit.IsBundle() || habit.Goal.Frequency != model.FrequencyDaily {
		return false
	}
	if habit.FreezeCount <= 0 {
		return false
	}
	return len(yesterdayEntries) == 0 && len(dayBeforeEntries) > 0
}

// ProcessAutoFreezes runs the daily sweep for one user: each daily habit
// with freeze inventory gets a zero-value marker entry backfilled for
// yesterday when the streak would otherwise break. Idempotent per day —
// once yesterday holds any entry the habit is skipped and inventory is
// untouched. Returns the number of freezes consumed.
func (svc *FreezeService) ProcessAutoFreezes(ctx context.Context, userID string, now time.Time) (int, error) {
	yesterday := utils.FormatDayKey(now.AddDate(0, 0, -1))
	dayBefore := utils.FormatDayKey(now.AddDate(0, 0, -2))

	habits, err := svc.habitsRepo.GetActiveHabits(ctx, userID)
	if err != nil {
		return 0, err
	}

	var candidateIDs []string
	for _, habit := range habits {
		if !habit.IsBundle() && habit.Goal.Frequency == model.FrequencyDaily && habit.FreezeCount > 0 {
			candidateIDs = append(candidateIDs, habit.HabitID)
		}
	}
	if len(candidateIDs) == 0 {
		return 0, nil
	}

	// One window query for all candidates instead of two per habit.
	rawEntries, err := svc.entriesRepo.GetEntriesByHabitIDs(ctx, userID, candidateIDs, dayBefore, yesterday)
	if err != nil {
		return 0, err
	}
	byHabitDay := make(map[string]map[string][]model.EntryView)
	for _, view := range model.ToEntryViews(rawEntries) {
		if byHabitDay[view.HabitID] == nil {
			byHabitDay[view.HabitID] = make(map[string][]model.EntryView)
		}
		byHabitDay[view.HabitID][view.DayKey] = append(byHabitDay[view.HabitID][view.DayKey], view)
	}

	consumed := 0
	for _, habit := range habits {
		if !ShouldAutoFreeze(habit, byHabitDay[habit.HabitID][yesterday], byHabitDay[habit.HabitID][dayBefore]) {
			continue
		}

		marker := &model.HabitEntry{
			EntryID:   uuid.New().String(),
			UserID:    userID,
			HabitID:   habit.HabitID,
			DayKey:    yesterday,
			Timestamp: now,
			Value:     0,
			Source:    model.SourceManual,
			Note:      model.FreezeNote,
		}
		if err := svc.entriesRepo.CreateEntry(ctx, marker); err != nil {
			return consumed, err
		}
		if err := svc.habitsRepo.DecrementFreezeCount(ctx, habit.HabitID, userID); err != nil {
			// The marker is already written, so a rerun will not double
			// spend; log and move on.
			log.Printf("freeze decrement failed for habit %s: %v", habit.HabitID, err)
			continue
		}
		utils.FreezesConsumedTotal.Inc()
		consumed++
	}
	return consumed, nil
}
