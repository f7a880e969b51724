package handler

import (
	"main/services"
	"main/usecase"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type FreezeHandler struct {
	service *usecase.FreezeService
	cache   *services.ReadModelCache
}

func NewFreezeHandler(service *usecase.FreezeService, cache *services.ReadModelCache) *FreezeHandler {
	return &FreezeHandler{service: service, cache: cache}
}

// RunFreezes triggers the auto-freeze sweep for the calling user outside
// the scheduled run. Idempotent per day.
func (h *FreezeHandler) RunFreezes(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	consumed, err := h.service.ProcessAutoFreezes(c.Request.Context(), userID.(string), time.Now())
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	if consumed > 0 && h.cache != nil {
		_ = h.cache.InvalidateUser(c.Request.Context(), userID.(string))
	}

	utils.Success(c, gin.H{"freezes_consumed": consumed})
}
