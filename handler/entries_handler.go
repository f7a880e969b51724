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

type EntriesHandler struct {
	service    *usecase.EntriesService
	dayViewSvc *usecase.DayViewService
	cache      *services.ReadModelCache
}

func NewEntriesHandler(service *usecase.EntriesService, dayViewSvc *usecase.DayViewService, cache *services.ReadModelCache) *EntriesHandler {
	return &EntriesHandler{service: service, dayViewSvc: dayViewSvc, cache: cache}
}

func (h *EntriesHandler) CreateEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		HabitID            string            `json:"habit_id" binding:"required"`
		DayKey             string            `json:"day_key" binding:"required,daykey"`
		Value              float64           `json:"value"`
		Source             model.EntrySource `json:"source"`
		Note               string            `json:"note"`
		ChoiceChildHabitID string            `json:"choice_child_habit_id"`
		BundleOptionID     string            `json:"bundle_option_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	entry := &model.HabitEntry{
		UserID:             userID.(string),
		HabitID:            req.HabitID,
		DayKey:             req.DayKey,
		Value:              req.Value,
		Source:             req.Source,
		Note:               req.Note,
		ChoiceChildHabitID: req.ChoiceChildHabitID,
		BundleOptionID:     req.BundleOptionID,
	}

	if err := h.service.CreateEntry(c.Request.Context(), entry); err != nil {
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
	utils.Created(c, entry)
}

// GetEntries lists live entries in an inclusive day window, defaulting to
// the trailing 30 days.
func (h *EntriesHandler) GetEntries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	now := time.Now()
	fromKey := c.DefaultQuery("from", utils.FormatDayKey(now.AddDate(0, 0, -29)))
	toKey := c.DefaultQuery("to", utils.FormatDayKey(now))

	views, err := h.service.GetEntriesForRange(c.Request.Context(), userID.(string), fromKey, toKey)
	if err != nil {
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, views)
}

func (h *EntriesHandler) DeleteEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	entryID := c.Param("id")
	if entryID == "" {
		utils.BadRequest(c, "Missing entry ID")
		return
	}

	if err := h.service.DeleteEntry(c.Request.Context(), entryID, userID.(string)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	h.invalidate(c, userID.(string))
	utils.Success(c, gin.H{"message": "Entry deleted successfully"})
}

// GetDayView renders per-habit completion for one day, defaulting to today.
func (h *EntriesHandler) GetDayView(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	dayKey := c.DefaultQuery("date", utils.FormatDayKey(time.Now()))

	view, err := h.dayViewSvc.ComputeDayView(c.Request.Context(), userID.(string), dayKey)
	if err != nil {
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, view)
}

func (h *EntriesHandler) invalidate(c *gin.Context, userID string) {
	if h.cache == nil {
		return
	}
	_ = h.cache.InvalidateUser(c.Request.Context(), userID)
}
