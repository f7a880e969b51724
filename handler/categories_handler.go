package handler

import (
	"main/model"
	"main/usecase"
	"main/utils"
	"strings"

	"github.com/gin-gonic/gin"
)

type CategoriesHandler struct {
	service *usecase.CategoriesService
}

func NewCategoriesHandler(service *usecase.CategoriesService) *CategoriesHandler {
	return &CategoriesHandler{service: service}
}

func (h *CategoriesHandler) CreateCategory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Name  string `json:"name" binding:"required"`
		Color string `json:"color"`
		Icon  string `json:"icon"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category := &model.Category{
		UserID: userID.(string),
		Name:   req.Name,
		Color:  req.Color,
		Icon:   req.Icon,
	}

	if err := h.service.CreateCategory(c.Request.Context(), category); err != nil {
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, category)
}

func (h *CategoriesHandler) GetUserCategories(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	categories, err := h.service.GetUserCategories(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, categories)
}

func (h *CategoriesHandler) UpdateCategory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	categoryID := c.Param("id")
	if categoryID == "" {
		utils.BadRequest(c, "Missing category ID")
		return
	}

	var updates model.Category
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	updated, err := h.service.UpdateCategory(c.Request.Context(), categoryID, userID.(string), &updates)
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

func (h *CategoriesHandler) DeleteCategory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	categoryID := c.Param("id")
	if categoryID == "" {
		utils.BadRequest(c, "Missing category ID")
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), categoryID, userID.(string)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFound(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Category deleted successfully"})
}
