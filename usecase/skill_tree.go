package usecase

import (
	"context"
	"fmt"
	"main/model"
	"main/repository"
	"sync"
	"time"
)

type SkillTreeService struct {
	categoriesRepo *repository.CategoriesRepo
	goalsRepo      *repository.GoalsRepo
	goalLogsRepo   *repository.GoalLogsRepo
	habitsRepo     *repository.HabitsRepo
	entriesRepo    *repository.EntriesRepo
}

func NewSkillTreeService(
	categoriesRepo *repository.CategoriesRepo,
	goalsRepo *repository.GoalsRepo,
	goalLogsRepo *repository.GoalLogsRepo,
	habitsRepo *repository.HabitsRepo,
	entriesRepo *repository.EntriesRepo,
) *SkillTreeService {
	return &SkillTreeService{
		categoriesRepo: categoriesRepo,
		goalsRepo:      goalsRepo,
		goalLogsRepo:   goalLogsRepo,
		habitsRepo:     habitsRepo,
		entriesRepo:    entriesRepo,
	}
}

// GetSkillTree maps categories to identities, goals to skills, and linked
// habits to leaves. Categories, goals, and habits are independent
// collections, so their reads run in parallel; the first failure rejects
// the whole aggregation.
func (svc *SkillTreeService) GetSkillTree(ctx context.Context, userID string) (*model.SkillTree, error) {
	var (
		categories []*model.Category
		goals      []*model.Goal
		habits     []*model.Habit

		catErr, goalErr, habitErr error
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		categories, catErr = svc.categoriesRepo.GetUserCategories(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		goals, goalErr = svc.goalsRepo.GetUserGoals(ctx, userID)
	}()
	go func() {
		defer wg.Done()
		habits, habitErr = svc.habitsRepo.GetUserHabits(ctx, userID)
	}()
	wg.Wait()

	for _, err := range []error{catErr, goalErr, habitErr} {
		if err != nil {
			return nil, err
		}
	}

	habitsByID := indexHabits(habits)

	// Union of resolved habit IDs and all goal IDs, fetched once each.
	var unionIDs []string
	inUnion := make(map[string]bool)
	resolvedByGoal := make(map[string][]string, len(goals))
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

	return BuildSkillTree(categories, goals, habitsByID, resolvedByGoal, entriesByHabit, logsByGoal, time.Now()), nil
}

// BuildSkillTree assembles the tree from pre-fetched data. A goal without an
// explicit category infers one from its first linked habit that has a
// category; a category is included only when at least one goal lands on it.
func BuildSkillTree(
	categories []*model.Category,
	goals []*model.Goal,
	habitsByID map[string]*model.Habit,
	resolvedByGoal map[string][]string,
	entriesByHabit map[string][]model.EntryView,
	logsByGoal map[string][]*model.GoalManualLog,
	now time.Time,
) *model.SkillTree {
	skillsByCategory := make(map[string][]model.SkillNode)

	for _, goal := range goals {
		var goalEntries []model.EntryView
		for _, habitID := range resolvedByGoal[goal.GoalID] {
			goalEntries = append(goalEntries, entriesByHabit[habitID]...)
		}
		progress := ComputeGoalProgress(goal, goalEntries, logsByGoal[goal.GoalID], now)

		skill := model.SkillNode{
			GoalID:       goal.GoalID,
			Name:         goal.Name,
			Percent:      progress.Percent,
			ProgressText: goalProgressText(goal, progress),
			AtRisk:       progress.InactivityWarning,
			Completed:    goal.IsCompleted(),
		}
		for _, habitID := range goal.LinkedHabitIDs {
			habit, ok := habitsByID[habitID]
			if !ok {
				continue
			}
			skill.Habits = append(skill.Habits, model.HabitLeaf{
				HabitID:      habit.HabitID,
				Name:         habit.Name,
				ProgressText: habitLeafText(habit, habitsByID, entriesByHabit),
				Percent:      progress.Percent,
				AtRisk:       progress.InactivityWarning,
			})
		}

		categoryID := inferGoalCategory(goal, habitsByID)
		if categoryID == "" {
			continue
		}
		skillsByCategory[categoryID] = append(skillsByCategory[categoryID], skill)
	}

	tree := &model.SkillTree{}
	for _, category := range categories {
		skills := skillsByCategory[category.CategoryID]
		if len(skills) == 0 {
			continue
		}
		tree.Identities = append(tree.Identities, model.IdentityNode{
			CategoryID: category.CategoryID,
			Name:       category.Name,
			Color:      category.Color,
			Icon:       category.Icon,
			Skills:     skills,
		})
	}
	return tree
}

// inferGoalCategory falls back to the first linked habit's category when the
// goal carries none of its own.
func inferGoalCategory(goal *model.Goal, habitsByID map[string]*model.Habit) string {
	if goal.CategoryID != "" {
		return goal.CategoryID
	}
	for _, habitID := range goal.LinkedHabitIDs {
		if habit, ok := habitsByID[habitID]; ok && habit.CategoryID != "" {
			return habit.CategoryID
		}
	}
	return ""
}

func goalProgressText(goal *model.Goal, progress *model.GoalProgress) string {
	if goal.IsCompleted() {
		return "Completed"
	}
	switch goal.Type {
	case model.GoalOnetime:
		return "Not yet done"
	case model.GoalFrequency:
		return fmt.Sprintf("%d / %d days", int(progress.CurrentValue), int(goal.TargetValue))
	default:
		if goal.Unit != "" {
			return fmt.Sprintf("%g / %g %s", progress.CurrentValue, goal.TargetValue, goal.Unit)
		}
		return fmt.Sprintf("%g / %g", progress.CurrentValue, goal.TargetValue)
	}
}

// habitLeafText reports logged activity per leaf; bundles report across
// their children since they carry no entries of their own.
func habitLeafText(habit *model.Habit, habitsByID map[string]*model.Habit, entriesByHabit map[string][]model.EntryView) string {
	days := make(map[string]bool)
	if habit.IsBundle() {
		for _, childID := range habit.SubHabitIDs {
			for _, entry := range entriesByHabit[childID] {
				days[entry.DayKey] = true
			}
		}
	} else {
		for _, entry := range entriesByHabit[habit.HabitID] {
			days[entry.DayKey] = true
		}
	}
	if len(days) == 1 {
		return "1 logged day"
	}
	return fmt.Sprintf("%d logged days", len(days))
}
