package handler

import (
	"log"
	"main/model"
	"main/services"
	"main/usecase"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	service      *usecase.DashboardService
	skillTreeSvc *usecase.SkillTreeService
	cache        *services.ReadModelCache
}

func NewDashboardHandler(service *usecase.DashboardService, skillTreeSvc *usecase.SkillTreeService, cache *services.ReadModelCache) *DashboardHandler {
	return &DashboardHandler{service: service, skillTreeSvc: skillTreeSvc, cache: cache}
}

// GetMainDashboard serves the month's dashboard read model, from cache when
// a fresh copy exists.
func (h *DashboardHandler) GetMainDashboard(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	query := model.DashboardQuery{
		Month:         c.DefaultQuery("month", time.Now().Format(utils.MonthKeyLayout)),
		Cadence:       c.Query("cadence"),
		IncludeWeekly: c.DefaultQuery("includeWeekly", "true") == "true",
	}

	if h.cache != nil {
		cached, err := h.cache.GetDashboard(c.Request.Context(), userID.(string), query)
		if err != nil {
			log.Printf("Dashboard cache read failed: %v", err)
		}
		if cached != nil {
			utils.Success(c, cached)
			return
		}
	}

	rm, err := h.service.GetMainDashboard(c.Request.Context(), userID.(string), query)
	if err != nil {
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	if h.cache != nil {
		if err := h.cache.SetDashboard(c.Request.Context(), userID.(string), query, rm); err != nil {
			log.Printf("Dashboard cache write failed: %v", err)
		}
	}

	utils.Success(c, rm)
}

// GetSkillTree serves the identity/skill/leaf aggregation.
func (h *DashboardHandler) GetSkillTree(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	tree, err := h.skillTreeSvc.GetSkillTree(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, tree)
}
