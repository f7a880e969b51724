package handler

import (
	"log"
	"main/model"
	"main/repository"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	habitsRepo   *repository.HabitsRepo
	entriesRepo  *repository.EntriesRepo
	goalsRepo    *repository.GoalsRepo
	routinesRepo *repository.RoutinesRepo
}

func NewStatsHandler(
	habitsRepo *repository.HabitsRepo,
	entriesRepo *repository.EntriesRepo,
	goalsRepo *repository.GoalsRepo,
	routinesRepo *repository.RoutinesRepo,
) *StatsHandler {
	return &StatsHandler{
		habitsRepo:   habitsRepo,
		entriesRepo:  entriesRepo,
		goalsRepo:    goalsRepo,
		routinesRepo: routinesRepo,
	}
}

func (h *StatsHandler) GetUserStats(c *gin.Context) {
	ctx := c.Request.Context()
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var stats model.UserStats

	habits, err := h.habitsRepo.GetUserHabits(ctx, userID.(string))
	if err != nil {
		log.Printf("Error fetching habits for stats: %v", err)
		utils.InternalError(c, "Failed to fetch habits")
		return
	}
	stats.HabitStats.Total = len(habits)
	for _, habit := range habits {
		if habit.Archived {
			stats.HabitStats.Archived++
		} else {
			stats.HabitStats.Active++
		}
		if habit.IsBundle() {
			stats.HabitStats.Bundles++
		}
	}

	now := time.Now()
	fromKey := utils.FormatDayKey(now.AddDate(0, 0, -29))
	toKey := utils.FormatDayKey(now)
	rawEntries, err := h.entriesRepo.GetEntriesInRange(ctx, userID.(string), fromKey, toKey)
	if err != nil {
		log.Printf("Error fetching entries for stats: %v", err)
		utils.InternalError(c, "Failed to fetch entries")
		return
	}
	views := model.ToEntryViews(rawEntries)
	stats.EntryStats.Last30Days = len(views)
	stats.EntryStats.BySource = make(map[string]int)
	activeDays := make(map[string]bool)
	for _, view := range views {
		stats.EntryStats.BySource[string(view.Source)]++
		activeDays[view.DayKey] = true
	}
	stats.EntryStats.ActiveDays = len(activeDays)

	goals, err := h.goalsRepo.GetUserGoals(ctx, userID.(string))
	if err != nil {
		log.Printf("Error fetching goals for stats: %v", err)
		utils.InternalError(c, "Failed to fetch goals")
		return
	}
	stats.GoalStats.Total = len(goals)
	for _, goal := range goals {
		if goal.IsCompleted() {
			stats.GoalStats.Completed++
		}
	}

	routines, err := h.routinesRepo.GetUserRoutines(ctx, userID.(string))
	if err != nil {
		log.Printf("Error fetching routines for stats: %v", err)
		utils.InternalError(c, "Failed to fetch routines")
		return
	}
	stats.RoutineStats.Total = len(routines)

	stats.SystemStats.CPUUsagePercent = utils.GetCPUUsage()

	utils.Success(c, gin.H{
		"stats": stats,
	})
}
