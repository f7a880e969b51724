package usecase

import (
	"context"
	"errors"
	"main/model"
	"main/repository"
	"main/utils"
	"time"

	"github.com/google/uuid"
)

type RoutinesService struct {
	routinesRepo *repository.RoutinesRepo
	habitsRepo   *repository.HabitsRepo
	entriesRepo  *repository.EntriesRepo
}

func NewRoutinesService(
	routinesRepo *repository.RoutinesRepo,
	habitsRepo *repository.HabitsRepo,
	entriesRepo *repository.EntriesRepo,
) *RoutinesService {
	return &RoutinesService{
		routinesRepo: routinesRepo,
		habitsRepo:   habitsRepo,
		entriesRepo:  entriesRepo,
	}
}

func (svc *RoutinesService) CreateRoutine(ctx context.Context, routine *model.Routine) error {
	if routine.UserID == "" {
		return errors.New("user ID is required")
	}
	if routine.Name == "" {
		return errors.New("routine name is required")
	}

	if routine.RoutineID == "" {
		routine.RoutineID = uuid.New().String()
	}
	for i := range routine.Steps {
		if routine.Steps[i].StepID == "" {
			routine.Steps[i].StepID = uuid.New().String()
		}
		routine.Steps[i].Position = i
	}

	now := time.Now()
	routine.CreatedAt = now
	routine.UpdatedAt = now

	return svc.routinesRepo.CreateRoutine(ctx, routine)
}

func (svc *RoutinesService) GetUserRoutines(ctx context.Context, userID string) ([]*model.Routine, error) {
	return svc.routinesRepo.GetUserRoutines(ctx, userID)
}

func (svc *RoutinesService) UpdateRoutine(ctx context.Context, routineID string, userID string, updates *model.Routine) (*model.Routine, error) {
	existing, err := svc.routinesRepo.GetRoutineByID(ctx, userID, routineID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("routine not found")
	}

	if updates.Name != "" {
		existing.Name = updates.Name
	}
	if updates.Steps != nil {
		for i := range updates.Steps {
			if updates.Steps[i].StepID == "" {
				updates.Steps[i].StepID = uuid.New().String()
			}
			updates.Steps[i].Position = i
		}
		existing.Steps = updates.Steps
	}
	if updates.ImageID != "" {
		existing.ImageID = updates.ImageID
	}
	existing.Archived = updates.Archived

	if err := svc.routinesRepo.UpdateRoutine(ctx, routineID, userID, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (svc *RoutinesService) DeleteRoutine(ctx context.Context, routineID string, userID string) error {
	return svc.routinesRepo.DeleteRoutine(ctx, routineID, userID)
}

// CompleteRoutine records a completion log and writes routine-sourced
// entries for every completed step that links a loggable habit. Bundle
// parents are skipped — their completion is always derived.
func (svc *RoutinesService) CompleteRoutine(ctx context.Context, userID string, routineID string, dayKey string, completedStepIDs []string) (*model.RoutineLog, error) {
	if !utils.IsValidDayKey(dayKey) {
		return nil, errors.New("invalid day key, expected YYYY-MM-DD")
	}

	routine, err := svc.routinesRepo.GetRoutineByID(ctx, userID, routineID)
	if err != nil {
		return nil, err
	}
	if routine == nil {
		return nil, errors.New("routine not found")
	}

	completed := make(map[string]bool, len(completedStepIDs))
	for _, stepID := range completedStepIDs {
		completed[stepID] = true
	}

	now := time.Now()
	routineLog := &model.RoutineLog{
		LogID:       uuid.New().String(),
		UserID:      userID,
		RoutineID:   routineID,
		DayKey:      dayKey,
		CompletedAt: now,
	}

	for _, step := range routine.Steps {
		if len(completedStepIDs) > 0 && !completed[step.StepID] {
			continue
		}
		routineLog.CompletedSteps = append(routineLog.CompletedSteps, step.StepID)
		routineLog.DurationTotalMin += step.DurationMin

		if step.LinkedHabitID == "" {
			continue
		}
		habit, err := svc.habitsRepo.GetHabitByID(ctx, userID, step.LinkedHabitID)
		if err != nil {
			return nil, err
		}
		if habit == nil || habit.IsBundle() || habit.Archived {
			continue
		}

		entry := &model.HabitEntry{
			EntryID:   uuid.New().String(),
			UserID:    userID,
			HabitID:   habit.HabitID,
			DayKey:    dayKey,
			Timestamp: now,
			Value:     1,
			Source:    model.SourceRoutine,
		}
		if habit.Goal.Type == model.GoalValueNumber && step.DurationMin > 0 {
			entry.Value = float64(step.DurationMin)
		}
		if err := svc.entriesRepo.CreateEntry(ctx, entry); err != nil {
			return nil, err
		}
		utils.TrackEntryLogged(string(model.SourceRoutine))
		routineLog.LoggedEntryIDs = append(routineLog.LoggedEntryIDs, entry.EntryID)
	}

	if err := svc.routinesRepo.CreateRoutineLog(ctx, routineLog); err != nil {
		return nil, err
	}
	return routineLog, nil
}

// GetOrderedRoutines lists routines with weekday mirroring applied: the
// ones used on the same weekday last week come first.
func (svc *RoutinesService) GetOrderedRoutines(ctx context.Context, userID string, todayKey string) ([]*model.Routine, error) {
	if !utils.IsValidDayKey(todayKey) {
		return nil, errors.New("invalid day key, expected YYYY-MM-DD")
	}

	routines, err := svc.routinesRepo.GetUserRoutines(ctx, userID)
	if err != nil {
		return nil, err
	}

	mirrorDay, err := utils.GetLastWeekSameWeekday(todayKey)
	if err != nil {
		return nil, err
	}
	logs, err := svc.routinesRepo.GetRoutineLogsInRange(ctx, userID, mirrorDay, mirrorDay)
	if err != nil {
		return nil, err
	}

	return OrderRoutinesByWeekdayMirroring(routines, logs, todayKey), nil
}

// OrderRoutinesByWeekdayMirroring sorts routines used on the same weekday
// last week first, preserving relative order within both groups. When no
// routine qualifies the input order is returned unchanged. Pure.
func OrderRoutinesByWeekdayMirroring(routines []*model.Routine, logs []*model.RoutineLog, todayKey string) []*model.Routine {
	mirrorDay, err := utils.GetLastWeekSameWeekday(todayKey)
	if err != nil {
		return routines
	}

	usedLastWeek := make(map[string]bool)
	for _, log := range logs {
		if log.DayKey == mirrorDay {
			usedLastWeek[log.RoutineID] = true
		}
	}
	if len(usedLastWeek) == 0 {
		return routines
	}

	ordered := make([]*model.Routine, 0, len(routines))
	var rest []*model.Routine
	for _, routine := range routines {
		if usedLastWeek[routine.RoutineID] {
			ordered = append(ordered, routine)
		} else {
			rest = append(rest, routine)
		}
	}
	return append(ordered, rest...)
}
