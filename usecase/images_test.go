package usecase

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"main/model"
	"testing"
)

type fakeImageStore struct {
	saved map[string]*model.RoutineImage
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{saved: make(map[string]*model.RoutineImage)}
}

func (s *fakeImageStore) SaveImage(_ context.Context, img *model.RoutineImage) error {
	s.saved[img.ImageID] = img
	return nil
}

func (s *fakeImageStore) GetImageByID(_ context.Context, userID, imageID string) (*model.RoutineImage, error) {
	img, ok := s.saved[imageID]
	if !ok || img.UserID != userID {
		return nil, nil
	}
	return img, nil
}

func (s *fakeImageStore) DeleteImage(_ context.Context, imageID, _ string) error {
	delete(s.saved, imageID)
	return nil
}

func encodeTestPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestSaveRoutineImage(t *testing.T) {
	ctx := context.Background()

	t.Run("stores image with a downscaled thumbnail", func(t *testing.T) {
		store := newFakeImageStore()
		svc := NewImagesService(store)
		data := encodeTestPNG(t, 512, 256)

		saved, err := svc.SaveRoutineImage(ctx, "u1", data, "image/png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.Size != len(data) {
			t.Errorf("size = %d, want %d", saved.Size, len(data))
		}
		if len(saved.Thumbnail) == 0 {
			t.Fatal("thumbnail was not rendered")
		}

		thumb, err := png.Decode(bytes.NewReader(saved.Thumbnail))
		if err != nil {
			t.Fatalf("thumbnail is not valid PNG: %v", err)
		}
		bounds := thumb.Bounds()
		if bounds.Dx() != 128 {
			t.Errorf("thumbnail width = %d, want 128", bounds.Dx())
		}
		if bounds.Dy() != 64 {
			t.Errorf("thumbnail height = %d, want 64 (aspect ratio preserved)", bounds.Dy())
		}
	})

	t.Run("narrow images are not upscaled", func(t *testing.T) {
		store := newFakeImageStore()
		svc := NewImagesService(store)
		data := encodeTestPNG(t, 64, 64)

		saved, err := svc.SaveRoutineImage(ctx, "u1", data, "image/png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		thumb, err := png.Decode(bytes.NewReader(saved.Thumbnail))
		if err != nil {
			t.Fatalf("thumbnail is not valid PNG: %v", err)
		}
		if thumb.Bounds().Dx() != 64 {
			t.Errorf("thumbnail width = %d, want 64", thumb.Bounds().Dx())
		}
	})

	t.Run("rejects unsupported content types", func(t *testing.T) {
		svc := NewImagesService(newFakeImageStore())
		if _, err := svc.SaveRoutineImage(ctx, "u1", []byte("GIF89a"), "image/gif"); err == nil {
			t.Error("expected error for image/gif")
		}
	})

	t.Run("rejects data that does not match the declared type", func(t *testing.T) {
		svc := NewImagesService(newFakeImageStore())
		if _, err := svc.SaveRoutineImage(ctx, "u1", []byte("not a png"), "image/png"); err == nil {
			t.Error("expected error for malformed image data")
		}
	})
}
