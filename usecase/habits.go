package usecase

import (
	"context"
	"errors"
	"main/model"
	"main/repository"
	"time"

	"github.com/google/uuid"
)

type HabitsService struct {
	habitsRepo  *repository.HabitsRepo
	entriesRepo *repository.EntriesRepo
}

func NewHabitsService(habitsRepo *repository.HabitsRepo, entriesRepo *repository.EntriesRepo) *HabitsService {
	return &HabitsService{habitsRepo: habitsRepo, entriesRepo: entriesRepo}
}

func (svc *HabitsService) GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	return svc.habitsRepo.GetUserHabits(ctx, userID)
}

func (svc *HabitsService) GetHabitByID(ctx context.Context, userID string, habitID string) (*model.Habit, error) {
	return svc.habitsRepo.GetHabitByID(ctx, userID, habitID)
}

func (svc *HabitsService) CreateHabit(ctx context.Context, habit *model.Habit) error {
	if habit.UserID == "" {
		return errors.New("user ID is required")
	}
	if habit.Name == "" {
		return errors.New("habit name is required")
	}

	if habit.Type == "" {
		habit.Type = model.HabitBoolean
	}
	if err := validateHabitType(habit.Type); err != nil {
		return err
	}
	if habit.Goal.Type == "" {
		habit.Goal.Type = model.GoalValueBoolean
	}
	if habit.Goal.Frequency == "" {
		habit.Goal.Frequency = model.FrequencyDaily
	}
	if err := validateHabitGoal(habit.Goal); err != nil {
		return err
	}

	if habit.FreezeCount < 0 || habit.FreezeCount > model.MaxFreezeCount {
		return errors.New("freeze count must be between 0 and 3")
	}

	if habit.IsBundle() {
		if err := svc.validateBundle(ctx, habit); err != nil {
			return err
		}
	} else if len(habit.SubHabitIDs) > 0 {
		return errors.New("only bundle habits can have sub-habits")
	}

	if habit.HabitID == "" {
		habit.HabitID = uuid.New().String()
	}
	now := time.Now()
	habit.CreatedAt = now
	habit.UpdatedAt = now

	return svc.habitsRepo.CreateHabit(ctx, habit)
}

func (svc *HabitsService) UpdateHabit(ctx context.Context, habitID string, userID string, updates *model.Habit) (*model.Habit, error) {
	existing, err := svc.habitsRepo.GetHabitByID(ctx, userID, habitID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("habit not found")
	}

	if updates.Name != "" {
		existing.Name = updates.Name
	}
	if updates.CategoryID != "" {
		existing.CategoryID = updates.CategoryID
	}
	if updates.Goal.Type != "" || updates.Goal.Frequency != "" || updates.Goal.Target != 0 {
		merged := existing.Goal
		if updates.Goal.Type != "" {
			merged.Type = updates.Goal.Type
		}
		if updates.Goal.Frequency != "" {
			merged.Frequency = updates.Goal.Frequency
		}
		if updates.Goal.Target != 0 {
			merged.Target = updates.Goal.Target
		}
		if updates.Goal.Unit != "" {
			merged.Unit = updates.Goal.Unit
		}
		if err := validateHabitGoal(merged); err != nil {
			return nil, err
		}
		existing.Goal = merged
	}
	if updates.FreezeCount != 0 {
		if updates.FreezeCount < 0 || updates.FreezeCount > model.MaxFreezeCount {
			return nil, errors.New("freeze count must be between 0 and 3")
		}
		existing.FreezeCount = updates.FreezeCount
	}
	if existing.IsBundle() && updates.SubHabitIDs != nil {
		existing.SubHabitIDs = updates.SubHabitIDs
		if err := svc.validateBundle(ctx, existing); err != nil {
			return nil, err
		}
	}
	existing.Archived = updates.Archived

	if err := svc.habitsRepo.UpdateHabit(ctx, habitID, userID, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (svc *HabitsService) ArchiveHabit(ctx context.Context, habitID string, userID string, archived bool) error {
	return svc.habitsRepo.SetArchived(ctx, habitID, userID, archived)
}

// DeleteHabit removes the habit and hard-deletes its entries with it.
func (svc *HabitsService) DeleteHabit(ctx context.Context, habitID string, userID string) error {
	existing, err := svc.habitsRepo.GetHabitByID(ctx, userID, habitID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("habit not found")
	}

	if err := svc.habitsRepo.DeleteHabit(ctx, habitID, userID); err != nil {
		return err
	}
	return svc.entriesRepo.DeleteByHabitID(ctx, habitID, userID)
}

// validateBundle checks that every child exists, belongs to the user, and
// is not itself a bundle — bundles never nest.
func (svc *HabitsService) validateBundle(ctx context.Context, habit *model.Habit) error {
	if habit.BundleType != model.BundleChecklist && habit.BundleType != model.BundleChoice {
		return errors.New("bundle type must be checklist or choice")
	}
	if len(habit.SubHabitIDs) == 0 {
		return errors.New("bundle habits require at least one sub-habit")
	}
	for _, childID := range habit.SubHabitIDs {
		child, err := svc.habitsRepo.GetHabitByID(ctx, habit.UserID, childID)
		if err != nil {
			return err
		}
		if child == nil {
			return errors.New("sub-habit not found")
		}
		if child.IsBundle() {
			return errors.New("bundles cannot contain other bundles")
		}
	}
	if habit.BundleType == model.BundleChoice && len(habit.BundleOptions) == 0 {
		return errors.New("choice bundles require bundle options")
	}
	return nil
}

func validateHabitType(t model.HabitType) error {
	switch t {
	case model.HabitBoolean, model.HabitNumber, model.HabitTime, model.HabitBundle:
		return nil
	default:
		return errors.New("invalid habit type")
	}
}

func validateHabitGoal(goal model.HabitGoal) error {
	switch goal.Type {
	case model.GoalValueBoolean, model.GoalValueNumber:
	default:
		return errors.New("invalid goal value type")
	}
	switch goal.Frequency {
	case model.FrequencyDaily, model.FrequencyWeekly, model.FrequencyTotal:
	default:
		return errors.New("invalid goal frequency")
	}
	if goal.Type == model.GoalValueNumber && goal.Target <= 0 {
		return errors.New("numeric goals require a positive target")
	}
	if goal.Target < 0 {
		return errors.New("goal target cannot be negative")
	}
	return nil
}
