package usecase

import (
	"context"
	"errors"
	"main/model"
	"main/repository"
	"time"

	"github.com/google/uuid"
)

type CategoriesService struct {
	categoriesRepo *repository.CategoriesRepo
}

func NewCategoriesService(categoriesRepo *repository.CategoriesRepo) *CategoriesService {
	return &CategoriesService{categoriesRepo: categoriesRepo}
}

func (svc *CategoriesService) GetUserCategories(ctx context.Context, userID string) ([]*model.Category, error) {
	return svc.categoriesRepo.GetUserCategories(ctx, userID)
}

func (svc *CategoriesService) CreateCategory(ctx context.Context, category *model.Category) error {
	if category.UserID == "" {
		return errors.New("user ID is required")
	}
	if category.Name == "" {
		return errors.New("category name is required")
	}

	if category.CategoryID == "" {
		category.CategoryID = uuid.New().String()
	}
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	return svc.categoriesRepo.CreateCategory(ctx, category)
}

func (svc *CategoriesService) UpdateCategory(ctx context.Context, categoryID string, userID string, updates *model.Category) (*model.Category, error) {
	existing, err := svc.categoriesRepo.GetCategoryByID(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.New("category not found")
	}

	if updates.Name != "" {
		existing.Name = updates.Name
	}
	if updates.Color != "" {
		existing.Color = updates.Color
	}
	if updates.Icon != "" {
		existing.Icon = updates.Icon
	}

	if err := svc.categoriesRepo.UpdateCategory(ctx, categoryID, userID, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (svc *CategoriesService) DeleteCategory(ctx context.Context, categoryID string, userID string) error {
	return svc.categoriesRepo.DeleteCategory(ctx, categoryID, userID)
}
