package handler

import (
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

type RoutinesHandler struct {
	service *usecase.RoutinesService
	cache   *services.ReadModelCache
}

func NewRoutinesHandler(service *usecase.RoutinesService, cache *services.ReadModelCache) *RoutinesHandler {
	return &RoutinesHandler{service: service, cache: cache}
}

func (h *RoutinesHandler) CreateRoutine(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Name    string              `json:"name" binding:"required"`
		Steps   []model.RoutineStep `json:"steps"`
		ImageID string              `json:"image_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	routine := &model.Routine{
		UserID:  userID.(string),
		Name:    req.Name,
		Steps:   req.Steps,
		ImageID: req.ImageID,
	}

	if err := h.service.CreateRoutine(c.Request.Context(), routine); err != nil {
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, routine)
}

func (h *RoutinesHandler) GetUserRoutines(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	routines, err := h.service.GetUserRoutines(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, routines)
}

// GetOrderedRoutines lists routines with weekday mirroring applied: the
// ones used on this weekday last week come first.
func (h *RoutinesHandler) GetOrderedRoutines(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	todayKey := c.DefaultQuery("date", utils.FormatDayKey(time.Now()))

	routines, err := h.service.GetOrderedRoutines(c.Request.Context(), userID.(string), todayKey)
	if err != nil {
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, routines)
}

func (h *RoutinesHandler) UpdateRoutine(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	routineID := c.Param("id")
	if routineID == "" {
		utils.BadRequest(c, "Missing routine ID")
		return
	}

	var updates model.Routine
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateRoutine(c.Request.Context(), routineID, userID.(string), &updates)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, updated)
}

func (h *RoutinesHandler) DeleteRoutine(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	routineID := c.Param("id")
	if routineID == "" {
		utils.BadRequest(c, "Missing routine ID")
		return
	}

	if err := h.service.DeleteRoutine(c.Request.Context(), routineID, userID.(string)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Routine deleted successfully"})
}

// CompleteRoutine records a completion log and writes routine-sourced
// entries for the completed steps that link habits.
func (h *RoutinesHandler) CompleteRoutine(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	routineID := c.Param("id")
	if routineID == "" {
		utils.BadRequest(c, "Missing routine ID")
		return
	}

	var req struct {
		DayKey           string   `json:"day_key"`
		CompletedStepIDs []string `json:"completed_step_ids"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.DayKey == "" {
		req.DayKey = utils.FormatDayKey(time.Now())
	}

	routineLog, err := h.service.CompleteRoutine(c.Request.Context(), userID.(string), routineID, req.DayKey, req.CompletedStepIDs)
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

	if h.cache != nil {
		_ = h.cache.InvalidateUser(c.Request.Context(), userID.(string))
	}
	utils.Created(c, routineLog)
}
