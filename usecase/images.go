package usecase

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"image/png"
	"main/model"
	"main/repository"
	"time"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

const thumbnailWidth = 128

type ImagesService struct {
	store repository.ImageStore
}

func NewImagesService(store repository.ImageStore) *ImagesService {
	return &ImagesService{store: store}
}

// SaveRoutineImage validates and stores an uploaded image in the blob
// store, rendering a PNG thumbnail alongside the original bytes.
func (svc *ImagesService) SaveRoutineImage(ctx context.Context, userID string, data []byte, contentType string) (*model.RoutineImage, error) {
	if userID == "" {
		return nil, errors.New("user ID is required")
	}
	if len(data) == 0 {
		return nil, errors.New("image data is required")
	}
	if contentType != "image/png" && contentType != "image/jpeg" {
		return nil, errors.New("unsupported image type, expected image/png or image/jpeg")
	}

	decoded, err := decodeImage(data, contentType)
	if err != nil {
		return nil, errors.New("image data does not match content type")
	}

	thumbnail, err := renderThumbnail(decoded)
	if err != nil {
		return nil, err
	}

	routineImage := &model.RoutineImage{
		ImageID:     uuid.New().String(),
		UserID:      userID,
		ContentType: contentType,
		Data:        data,
		Thumbnail:   thumbnail,
		Size:        len(data),
		CreatedAt:   time.Now(),
	}
	if err := svc.store.SaveImage(ctx, routineImage); err != nil {
		return nil, err
	}
	return routineImage, nil
}

func (svc *ImagesService) GetImageByID(ctx context.Context, userID string, imageID string) (*model.RoutineImage, error) {
	return svc.store.GetImageByID(ctx, userID, imageID)
}

func (svc *ImagesService) DeleteImage(ctx context.Context, imageID string, userID string) error {
	return svc.store.DeleteImage(ctx, imageID, userID)
}

func decodeImage(data []byte, contentType string) (image.Image, error) {
	reader := bytes.NewReader(data)
	if contentType == "image/png" {
		return png.Decode(reader)
	}
	return jpeg.Decode(reader)
}

// renderThumbnail downscales to a fixed width, preserving aspect ratio.
// Images already narrower than the thumbnail width are kept as-is.
func renderThumbnail(src image.Image) ([]byte, error) {
	bounds := src.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil, errors.New("image has empty dimensions")
	}

	targetWidth := thumbnailWidth
	if width < targetWidth {
		targetWidth = width
	}
	targetHeight := height * targetWidth / width
	if targetHeight < 1 {
		targetHeight = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetWidth, targetHeight))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
