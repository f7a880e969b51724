package usecase

import (
	"context"
	"errors"
	"main/model"
	"main/repository"
	"main/utils"
	"time"
)

type DashboardService struct {
	habitsRepo     *repository.HabitsRepo
	categoriesRepo *repository.CategoriesRepo
	entriesRepo    *repository.EntriesRepo
}

func NewDashboardService(
	habitsRepo *repository.HabitsRepo,
	categoriesRepo *repository.CategoriesRepo,
	entriesRepo *repository.EntriesRepo,
) *DashboardService {
	return &DashboardService{
		habitsRepo:     habitsRepo,
		categoriesRepo: categoriesRepo,
		entriesRepo:    entriesRepo,
	}
}

// GetMainDashboard fetches the month's inputs and builds the read model.
func (svc *DashboardService) GetMainDashboard(ctx context.Context, userID string, query model.DashboardQuery) (*model.MainDashboardReadModel, error) {
	first, last, err := utils.MonthWindow(query.Month)
	if err != nil {
		return nil, err
	}
	if query.Cadence != "" && query.Cadence != "daily" && query.Cadence != "weekly" {
		return nil, errors.New("cadence must be daily or weekly")
	}

	habits, err := svc.habitsRepo.GetActiveHabits(ctx, userID)
	if err != nil {
		return nil, err
	}
	categories, err := svc.categoriesRepo.GetUserCategories(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries, err := svc.entriesRepo.GetEntriesInRange(ctx, userID, first, last)
	if err != nil {
		return nil, err
	}

	return BuildMainDashboardReadModel(habits, categories, entries, query, time.Now())
}

// BuildMainDashboardReadModel derives the month's dashboard view from
// pre-fetched collections. Pure function over its inputs; soft-deleted
// entries never count toward any cell.
func BuildMainDashboardReadModel(
	habits []*model.Habit,
	categories []*model.Category,
	entries []*model.HabitEntry,
	query model.DashboardQuery,
	now time.Time,
) (*model.MainDashboardReadModel, error) {
	monthDays, err := utils.MonthDayKeys(query.Month)
	if err != nil {
		return nil, err
	}
	first := monthDays[0]
	last := monthDays[len(monthDays)-1]

	habitsByID := indexHabits(habits)

	// Live entries within the displayed month only.
	var live []*model.HabitEntry
	for _, entry := range entries {
		if entry.IsDeleted() {
			continue
		}
		if entry.DayKey < first || entry.DayKey > last {
			continue
		}
		if _, ok := habitsByID[entry.HabitID]; !ok {
			continue
		}
		live = append(live, entry)
	}

	rm := &model.MainDashboardReadModel{
		Month:       query.Month,
		DailyCounts: make(map[string]int, len(monthDays)),
	}
	for _, day := range monthDays {
		rm.DailyCounts[day] = 0
	}

	// Distinct habit-days, the unit every count below is built from: two
	// entries for the same habit on the same day count once.
	habitDays := make(map[string]map[string]bool) // dayKey -> habitID set
	entryCountByDay := make(map[string]int)
	for _, entry := range live {
		if habitDays[entry.DayKey] == nil {
			habitDays[entry.DayKey] = make(map[string]bool)
		}
		habitDays[entry.DayKey][entry.HabitID] = true
		entryCountByDay[entry.DayKey]++
	}

	for _, day := range monthDays {
		dailyCount := 0
		heatCount := 0
		for habitID := range habitDays[day] {
			habit := habitsByID[habitID]
			if matchesCadence(habit, query.Cadence) {
				dailyCount++
			}
			if includeInHeatmap(habit, query.IncludeWeekly) {
				heatCount++
			}
		}
		rm.DailyCounts[day] = dailyCount
		intensity := heatCount
		if intensity > 4 {
			intensity = 4
		}
		rm.Heatmap = append(rm.Heatmap, model.HeatmapCell{
			DayKey:    day,
			Count:     heatCount,
			Intensity: intensity,
		})
	}

	weekly, err := buildWeeklySummary(habits, live, query, now)
	if err != nil {
		return nil, err
	}
	rm.WeeklySummary = *weekly

	rm.MonthlySummary = buildMonthlySummary(habitsByID, habitDays, entryCountByDay, monthDays)
	rm.CategoryRollup = buildCategoryRollup(categories, habits, live, query)

	return rm, nil
}

// buildWeeklySummary reports weekly-cadence habits against their weekly
// requirement. The reference day is clamped into the displayed month so a
// historical month never computes an out-of-range "current week".
func buildWeeklySummary(habits []*model.Habit, live []*model.HabitEntry, query model.DashboardQuery, now time.Time) (*model.WeeklySummary, error) {
	refDay, err := utils.ClampDayKeyToMonth(utils.FormatDayKey(now), query.Month)
	if err != nil {
		return nil, err
	}
	weekStart, weekEnd, err := utils.WeekWindow(refDay)
	if err != nil {
		return nil, err
	}

	summary := &model.WeeklySummary{WeekStart: weekStart, WeekEnd: weekEnd}
	if query.Cadence == "daily" {
		return summary, nil
	}

	weekDaysByHabit := make(map[string]map[string]bool)
	weekSumByHabit := make(map[string]float64)
	for _, entry := range live {
		if entry.DayKey < weekStart || entry.DayKey > weekEnd {
			continue
		}
		if weekDaysByHabit[entry.HabitID] == nil {
			weekDaysByHabit[entry.HabitID] = make(map[string]bool)
		}
		weekDaysByHabit[entry.HabitID][entry.DayKey] = true
		weekSumByHabit[entry.HabitID] += entry.Value
	}

	for _, habit := range habits {
		if habit.IsBundle() || habit.Goal.Frequency != model.FrequencyWeekly {
			continue
		}
		summary.Goal++
		if weeklyRequirementMet(habit, weekDaysByHabit[habit.HabitID], weekSumByHabit[habit.HabitID]) {
			summary.Completed++
		}
	}
	return summary, nil
}

// weeklyRequirementMet applies the weekly habit semantics: boolean targets
// count distinct entry days, numeric targets sum values.
func weeklyRequirementMet(habit *model.Habit, days map[string]bool, sum float64) bool {
	if habit.Goal.Type == model.GoalValueNumber {
		return habit.Goal.Target > 0 && sum >= habit.Goal.Target
	}
	if habit.Goal.Target > 1 {
		return float64(len(days)) >= habit.Goal.Target
	}
	return len(days) > 0
}

func buildMonthlySummary(
	habitsByID map[string]*model.Habit,
	habitDays map[string]map[string]bool,
	entryCountByDay map[string]int,
	monthDays []string,
) model.MonthlySummary {
	summary := model.MonthlySummary{}
	dailyHabitCount := 0
	for _, habit := range habitsByID {
		if !habit.IsBundle() && habit.Goal.Frequency == model.FrequencyDaily {
			dailyHabitCount++
		}
	}

	for _, day := range monthDays {
		if len(habitDays[day]) > 0 {
			summary.ActiveDays++
		}
		summary.TotalEntries += entryCountByDay[day]
		for habitID := range habitDays[day] {
			habit := habitsByID[habitID]
			if !habit.IsBundle() && habit.Goal.Frequency == model.FrequencyDaily {
				summary.CompletedHabitDays++
			}
		}
	}

	possible := dailyHabitCount * len(monthDays)
	if possible > 0 {
		summary.CompletionRate = float64(summary.CompletedHabitDays) / float64(possible)
	}
	return summary
}

func buildCategoryRollup(
	categories []*model.Category,
	habits []*model.Habit,
	live []*model.HabitEntry,
	query model.DashboardQuery,
) []model.CategoryRollup {
	habitCategory := make(map[string]string)
	included := make(map[string]bool)
	countByCategory := make(map[string]int)
	for _, habit := range habits {
		if !includeInHeatmap(habit, query.IncludeWeekly) {
			continue
		}
		habitCategory[habit.HabitID] = habit.CategoryID
		included[habit.HabitID] = true
		countByCategory[habit.CategoryID]++
	}

	entriesByCategory := make(map[string]int)
	daysByCategory := make(map[string]map[string]bool)
	for _, entry := range live {
		if !included[entry.HabitID] {
			continue
		}
		categoryID := habitCategory[entry.HabitID]
		entriesByCategory[categoryID]++
		if daysByCategory[categoryID] == nil {
			daysByCategory[categoryID] = make(map[string]bool)
		}
		daysByCategory[categoryID][entry.DayKey] = true
	}

	var rollup []model.CategoryRollup
	for _, category := range categories {
		rollup = append(rollup, model.CategoryRollup{
			CategoryID: category.CategoryID,
			Name:       category.Name,
			HabitCount: countByCategory[category.CategoryID],
			EntryCount: entriesByCategory[category.CategoryID],
			ActiveDays: len(daysByCategory[category.CategoryID]),
		})
	}
	return rollup
}

func matchesCadence(habit *model.Habit, cadence string) bool {
	if habit.IsBundle() {
		return cadence == ""
	}
	switch cadence {
	case "daily":
		return habit.Goal.Frequency != model.FrequencyWeekly
	case "weekly":
		return habit.Goal.Frequency == model.FrequencyWeekly
	default:
		return true
	}
}

// includeInHeatmap: weekly-cadence habits appear in heatmap and rollup only
// when the query asks for them, independent of the cadence filter.
func includeInHeatmap(habit *model.Habit, includeWeekly bool) bool {
	if habit.IsBundle() {
		return true
	}
	if habit.Goal.Frequency == model.FrequencyWeekly {
		return includeWeekly
	}
	return true
}
