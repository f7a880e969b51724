package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"
	"strings"

	"github.com/gin-gonic/gin"
)

type JournalHandler struct {
	service *usecase.JournalService
}

func NewJournalHandler(service *usecase.JournalService) *JournalHandler {
	return &JournalHandler{service: service}
}

func (h *JournalHandler) CreateEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		DayKey string   `json:"day_key"`
		Title  string   `json:"title"`
		Body   string   `json:"body" binding:"required"`
		Mood   string   `json:"mood"`
		Tags   []string `json:"tags"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	entry := &model.JournalEntry{
		UserID: userID.(string),
		DayKey: req.DayKey,
		Title:  req.Title,
		Body:   req.Body,
		Mood:   req.Mood,
		Tags:   req.Tags,
	}

	if err := h.service.CreateEntry(c.Request.Context(), entry); err != nil {
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, entry)
}

func (h *JournalHandler) GetUserEntries(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	entries, err := h.service.GetUserEntries(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, entries)
}

func (h *JournalHandler) UpdateEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	journalID := c.Param("id")
	if journalID == "" {
		utils.BadRequest(c, "Missing journal entry ID")
		return
	}

	var updates model.JournalEntry
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateEntry(c.Request.Context(), journalID, userID.(string), &updates)
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

func (h *JournalHandler) DeleteEntry(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	journalID := c.Param("id")
	if journalID == "" {
		utils.BadRequest(c, "Missing journal entry ID")
		return
	}

	if err := h.service.DeleteEntry(c.Request.Context(), journalID, userID.(string)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Journal entry deleted successfully"})
}
