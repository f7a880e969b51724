package handler

import (
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type GoalsHandler struct {
	service     *usecase.GoalsService
	progressSvc *usecase.GoalProgressService
}

func NewGoalsHandler(service *usecase.GoalsService, progressSvc *usecase.GoalProgressService) *GoalsHandler {
	return &GoalsHandler{service: service, progressSvc: progressSvc}
}

func (h *GoalsHandler) CreateGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Name            string                `json:"name" binding:"required"`
		CategoryID      string                `json:"category_id"`
		Type            model.GoalType        `json:"type" binding:"required"`
		TargetValue     float64               `json:"target_value"`
		Unit            string                `json:"unit"`
		LinkedHabitIDs  []string              `json:"linked_habit_ids"`
		AggregationMode model.AggregationMode `json:"aggregation_mode"`
		Deadline        *time.Time            `json:"deadline"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	goal := &model.Goal{
		UserID:          userID.(string),
		Name:            req.Name,
		CategoryID:      req.CategoryID,
		Type:            req.Type,
		TargetValue:     req.TargetValue,
		Unit:            req.Unit,
		LinkedHabitIDs:  req.LinkedHabitIDs,
		AggregationMode: req.AggregationMode,
		Deadline:        req.Deadline,
	}

	if err := h.service.CreateGoal(c.Request.Context(), goal); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.BadRequest(c, err.Error())
			return
		}
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, dto.ToGoalResponse(goal))
}

func (h *GoalsHandler) GetUserGoals(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goals, err := h.service.GetUserGoals(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToGoalResponses(goals))
}

func (h *GoalsHandler) UpdateGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goalID := c.Param("id")
	if goalID == "" {
		utils.BadRequest(c, "Missing goal ID")
		return
	}

	var updates model.Goal
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateGoal(c.Request.Context(), goalID, userID.(string), &updates)
	if err != nil {
		if strings.Contains(err.Error(), "goal not found") {
			utils.NotFound(c, err.Error())
			return
		}
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToGoalResponse(updated))
}

func (h *GoalsHandler) DeleteGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goalID := c.Param("id")
	if goalID == "" {
		utils.BadRequest(c, "Missing goal ID")
		return
	}

	if err := h.service.DeleteGoal(c.Request.Context(), goalID, userID.(string)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Goal deleted successfully"})
}

// GetGoalProgress computes the derived progress view for one goal.
func (h *GoalsHandler) GetGoalProgress(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goalID := c.Param("id")
	if goalID == "" {
		utils.BadRequest(c, "Missing goal ID")
		return
	}

	progress, err := h.progressSvc.ComputeFullGoalProgress(c.Request.Context(), userID.(string), goalID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, progress)
}

// GetGoalsWithProgress returns every goal paired with its progress, computed
// in one batch.
func (h *GoalsHandler) GetGoalsWithProgress(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	results, err := h.progressSvc.ComputeGoalsWithProgress(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToGoalWithProgressResponses(results))
}

func (h *GoalsHandler) AddManualLog(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goalID := c.Param("id")
	if goalID == "" {
		utils.BadRequest(c, "Missing goal ID")
		return
	}

	var req struct {
		Value float64 `json:"value" binding:"required"`
		Note  string  `json:"note"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	log, err := h.service.AddManualLog(c.Request.Context(), userID.(string), goalID, req.Value, req.Note)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, err.Error())
			return
		}
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, log)
}

func (h *GoalsHandler) CompleteGoal(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	goalID := c.Param("id")
	if goalID == "" {
		utils.BadRequest(c, "Missing goal ID")
		return
	}

	completed, err := h.service.CompleteGoal(c.Request.Context(), goalID, userID.(string))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToGoalResponse(completed))
}
