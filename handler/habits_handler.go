package handler

import (
	"main/dto"
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"
	"strings"

	"github.com/gin-gonic/gin"
)

type HabitsHandler struct {
	service *usecase.HabitsService
	cache   *services.ReadModelCache
}

func NewHabitsHandler(service *usecase.HabitsService, cache *services.ReadModelCache) *HabitsHandler {
	return &HabitsHandler{service: service, cache: cache}
}

func (h *HabitsHandler) CreateHabit(c *gin.Context) {
	// Get authenticated user ID
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	// Define request structure matching model fields
	var req struct {
		Name          string               `json:"name" binding:"required"`
		CategoryID    string               `json:"category_id"`
		Type          model.HabitType      `json:"type"`
		Goal          model.HabitGoal      `json:"goal"`
		SubHabitIDs   []string             `json:"sub_habit_ids"`
		BundleType    model.BundleType     `json:"bundle_type"`
		BundleOptions []model.BundleOption `json:"bundle_options"`
		FreezeCount   int                  `json:"freeze_count"`
	}

	// Bind and validate request body
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	habit := &model.Habit{
		UserID:        userID.(string),
		Name:          req.Name,
		CategoryID:    req.CategoryID,
		Type:          req.Type,
		Goal:          req.Goal,
		SubHabitIDs:   req.SubHabitIDs,
		BundleType:    req.BundleType,
		BundleOptions: req.BundleOptions,
		FreezeCount:   req.FreezeCount,
	}

	// Delegate habit creation to service layer
	if err := h.service.CreateHabit(c.Request.Context(), habit); err != nil {
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	h.invalidate(c, userID.(string))
	utils.Created(c, dto.ToHabitResponse(habit))
}

func (h *HabitsHandler) GetUserHabits(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	habits, err := h.service.GetUserHabits(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, dto.ToHabitResponses(habits))
}

func (h *HabitsHandler) GetHabit(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	habitID := c.Param("id")
	if habitID == "" {
		utils.BadRequest(c, "Missing habit ID")
		return
	}

	habit, err := h.service.GetHabitByID(c.Request.Context(), userID.(string), habitID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	if habit == nil {
		utils.NotFound(c, "Habit not found")
		return
	}

	utils.Success(c, dto.ToHabitResponse(habit))
}

func (h *HabitsHandler) UpdateHabit(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	habitID := c.Param("id")
	if habitID == "" {
		utils.BadRequest(c, "Missing habit ID")
		return
	}

	var updates model.Habit
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateHabit(c.Request.Context(), habitID, userID.(string), &updates)
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

	h.invalidate(c, userID.(string))
	utils.Success(c, dto.ToHabitResponse(updated))
}

func (h *HabitsHandler) ArchiveHabit(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	habitID := c.Param("id")
	if habitID == "" {
		utils.BadRequest(c, "Missing habit ID")
		return
	}

	var req struct {
		Archived *bool `json:"archived"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}
	archived := true
	if req.Archived != nil {
		archived = *req.Archived
	}

	if err := h.service.ArchiveHabit(c.Request.Context(), habitID, userID.(string), archived); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	h.invalidate(c, userID.(string))
	utils.Success(c, gin.H{"archived": archived})
}

func (h *HabitsHandler) DeleteHabit(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	habitID := c.Param("id")
	if habitID == "" {
		utils.BadRequest(c, "Missing habit ID")
		return
	}

	if err := h.service.DeleteHabit(c.Request.Context(), habitID, userID.(string)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	h.invalidate(c, userID.(string))
	utils.Success(c, gin.H{"message": "Habit deleted successfully"})
}

// invalidate drops cached dashboards after a write. Best effort: a cache
// failure never fails the request.
func (h *HabitsHandler) invalidate(c *gin.Context, userID string) {
	if h.cache == nil {
		return
	}
	_ = h.cache.InvalidateUser(c.Request.Context(), userID)
}

// isValidationError maps service-layer validation failures to 400s.
func isValidationError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "required") ||
		strings.Contains(msg, "invalid") ||
		strings.Contains(msg, "must be") ||
		strings.Contains(msg, "cannot") ||
		strings.Contains(msg, "bundle") ||
		strings.Contains(msg, "only supported")
}
