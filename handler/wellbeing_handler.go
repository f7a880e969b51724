package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"
	"strconv"

	"github.com/gin-gonic/gin"
)

type WellbeingHandler struct {
	service *usecase.WellbeingService
}

func NewWellbeingHandler(service *usecase.WellbeingService) *WellbeingHandler {
	return &WellbeingHandler{service: service}
}

// RecordCheckin upserts today's check-in; a second submission for the same
// day replaces the first.
func (h *WellbeingHandler) RecordCheckin(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		DayKey string `json:"day_key"`
		Mood   int    `json:"mood" binding:"required,min=1,max=10"`
		Energy int    `json:"energy"`
		Stress int    `json:"stress"`
		Note   string `json:"note"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	checkin := &model.WellbeingCheckin{
		UserID: userID.(string),
		DayKey: req.DayKey,
		Mood:   req.Mood,
		Energy: req.Energy,
		Stress: req.Stress,
		Note:   req.Note,
	}

	if err := h.service.RecordCheckin(c.Request.Context(), checkin); err != nil {
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, checkin)
}

func (h *WellbeingHandler) GetCheckins(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		utils.BadRequest(c, "Invalid days parameter, must be positive")
		return
	}

	checkins, err := h.service.GetCheckins(c.Request.Context(), userID.(string), days)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, checkins)
}

// GetSummary averages check-in scores over the trailing window.
func (h *WellbeingHandler) GetSummary(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", "30"))
	if err != nil || days <= 0 {
		utils.BadRequest(c, "Invalid days parameter, must be positive")
		return
	}

	summary, err := h.service.GetSummary(c.Request.Context(), userID.(string), days)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, summary)
}
