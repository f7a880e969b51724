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

type GoalsService struct {
	goalsRepo    *repository.GoalsRepo
	goalLogsRepo *repository.GoalLogsRepo
	habitsRepo   *repository.HabitsRepo
}

func NewGoalsService(
	goalsRepo *repository.GoalsRepo,
	goalLogsRepo *repository.GoalLogsRepo,
	habitsRepo *repository.HabitsRepo,
) *GoalsService {
	return &GoalsService{
		goalsRepo:    goalsRepo,
		goalLogsRepo: goalLogsRepo,
		habitsRepo:   habitsRepo,
	}
}

func (svc *GoalsService) GetUserGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	return svc.goalsRepo.GetUserGoals(ctx, userID)
}

func (svc *GoalsService) GetGoalByID(ctx context.Context, userID string, goalID string) (*model.Goal, error) {
	return svc.goalsRepo.GetGoalByID(ctx, userID, goalID)
}

func (svc *GoalsService) CreateGoal(ctx context.Context, goal *model.Goal) error {
	if goal.UserID == "" {
		return errors.New("user ID is required")
	}
	if goal.Name == "" {
		return errors.New("goal name is required")
	}
	if err := validateGoalType(goal.Type); err != nil {
		return err
	}
	if goal.Type != model.GoalOnetime && goal.TargetValue <= 0 {
		return errors.New("target value must be positive")
	}
	if goal.AggregationMode == "" {
		goal.AggregationMode = model.AggregateCount
	}
	if goal.AggregationMode != model.AggregateCount && goal.AggregationMode != model.AggregateSum {
		return errors.New("aggregation mode must be count or sum")
	}
	if err := svc.validateLinkedHabits(ctx, goal); err != nil {
		return err
	}

	if goal.GoalID == "" {
		goal.GoalID = uuid.New().String()
	}
	now := time.Now()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	return svc.goalsRepo.CreateGoal(ctx, goal)
}

func (svc *GoalsService) UpdateGoal(ctx context.Context, goalID string, userID string, updates *model.Goal) (*model.Goal, error) {
	existing, err := svc.goalsRepo.GetGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("goal not found")
	}

	if updates.Name != "" {
		existing.Name = updates.Name
	}
	if updates.CategoryID != "" {
		existing.CategoryID = updates.CategoryID
	}
	if updates.Type != "" {
		if err := validateGoalType(updates.Type); err != nil {
			return nil, err
		}
		existing.Type = updates.Type
	}
	if updates.TargetValue != 0 {
		if updates.TargetValue < 0 {
			return nil, errors.New("target value must be positive")
		}
		existing.TargetValue = updates.TargetValue
	}
	if updates.Unit != "" {
		existing.Unit = updates.Unit
	}
	if updates.LinkedHabitIDs != nil {
		existing.LinkedHabitIDs = updates.LinkedHabitIDs
		if err := svc.validateLinkedHabits(ctx, existing); err != nil {
			return nil, err
		}
	}
	if updates.AggregationMode != "" {
		if updates.AggregationMode != model.AggregateCount && updates.AggregationMode != model.AggregateSum {
			return nil, errors.New("aggregation mode must be count or sum")
		}
		existing.AggregationMode = updates.AggregationMode
	}
	if updates.Deadline != nil {
		existing.Deadline = updates.Deadline
	}

	if err := svc.goalsRepo.UpdateGoal(ctx, goalID, userID, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// CompleteGoal stamps completed_at; from then on the goal reads 100% and
// never raises an inactivity warning.
func (svc *GoalsService) CompleteGoal(ctx context.Context, goalID string, userID string) (*model.Goal, error) {
	existing, err := svc.goalsRepo.GetGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("goal not found")
	}
	if existing.IsCompleted() {
		return existing, nil
	}

	completedAt := time.Now()
	if err := svc.goalsRepo.MarkCompleted(ctx, goalID, userID, completedAt); err != nil {
		return nil, err
	}
	utils.GoalsCompletedTotal.Inc()
	existing.CompletedAt = &completedAt
	return existing, nil
}

// DeleteGoal removes the goal and its manual logs with it.
func (svc *GoalsService) DeleteGoal(ctx context.Context, goalID string, userID string) error {
	if err := svc.goalsRepo.DeleteGoal(ctx, goalID, userID); err != nil {
		return err
	}
	return svc.goalLogsRepo.DeleteByGoalID(ctx, goalID, userID)
}

// AddManualLog records a manual contribution. Only cumulative goals accept
// manual progress.
func (svc *GoalsService) AddManualLog(ctx context.Context, userID string, goalID string, value float64, note string) (*model.GoalManualLog, error) {
	goal, err := svc.goalsRepo.GetGoalByID(ctx, userID, goalID)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, errors.New("goal not found")
	}
	if goal.Type != model.GoalCumulative {
		return nil, errors.New("manual logs are only supported for cumulative goals")
	}
	if value <= 0 {
		return nil, errors.New("manual log value must be positive")
	}

	log := &model.GoalManualLog{
		LogID:    uuid.New().String(),
		UserID:   userID,
		GoalID:   goalID,
		Value:    value,
		LoggedAt: time.Now(),
		Note:     note,
	}
	if err := svc.goalLogsRepo.CreateManualLog(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

// validateLinkedHabits checks linked habits exist and belong to the user.
// Bundles are allowed as links; they resolve to children at read time.
func (svc *GoalsService) validateLinkedHabits(ctx context.Context, goal *model.Goal) error {
	for _, habitID := range goal.LinkedHabitIDs {
		habit, err := svc.habitsRepo.GetHabitByID(ctx, goal.UserID, habitID)
		if err != nil {
			return err
		}
		if habit == nil {
			return errors.New("linked habit not found")
		}
	}
	return nil
}

func validateGoalType(t model.GoalType) error {
	switch t {
	case model.GoalCumulative, model.GoalFrequency, model.GoalOnetime:
		return nil
	default:
		return errors.New("invalid goal type")
	}
}
