package handler

import (
	"io"
	"main/usecase"
	"main/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ImagesHandler struct {
	service *usecase.ImagesService
}

func NewImagesHandler(service *usecase.ImagesService) *ImagesHandler {
	return &ImagesHandler{service: service}
}

// UploadRoutineImage accepts a multipart upload under the "image" field and
// stores it with a rendered thumbnail.
func (h *ImagesHandler) UploadRoutineImage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.BadRequest(c, "Missing image file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.InternalError(c, "Failed to read uploaded file")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	routineImage, err := h.service.SaveRoutineImage(c.Request.Context(), userID.(string), data, contentType)
	if err != nil {
		if isValidationError(err) {
			utils.BadRequest(c, err.Error())
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Created(c, gin.H{
		"id":           routineImage.ImageID,
		"content_type": routineImage.ContentType,
		"size":         routineImage.Size,
	})
}

// GetImage streams the original image bytes.
func (h *ImagesHandler) GetImage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	imageID := c.Param("id")
	if imageID == "" {
		utils.BadRequest(c, "Missing image ID")
		return
	}

	routineImage, err := h.service.GetImageByID(c.Request.Context(), userID.(string), imageID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	if routineImage == nil {
		utils.NotFound(c, "Image not found")
		return
	}

	c.Data(http.StatusOK, routineImage.ContentType, routineImage.Data)
}

// GetThumbnail streams the PNG thumbnail rendered at upload time.
func (h *ImagesHandler) GetThumbnail(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	imageID := c.Param("id")
	if imageID == "" {
		utils.BadRequest(c, "Missing image ID")
		return
	}

	routineImage, err := h.service.GetImageByID(c.Request.Context(), userID.(string), imageID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	if routineImage == nil || len(routineImage.Thumbnail) == 0 {
		utils.NotFound(c, "Thumbnail not found")
		return
	}

	c.Data(http.StatusOK, "image/png", routineImage.Thumbnail)
}

func (h *ImagesHandler) DeleteImage(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	imageID := c.Param("id")
	if imageID == "" {
		utils.BadRequest(c, "Missing image ID")
		return
	}

	if err := h.service.DeleteImage(c.Request.Context(), imageID, userID.(string)); err != nil {
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Image deleted successfully"})
}
