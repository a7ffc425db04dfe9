package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/types"
	"github.com/pantrychef/backend/models"
)

// CategoryService owns the admin-curated ingredient category table. Mutations
// are reached only through admin-guarded routes; the resolver uses the read
// path on every ingredient add.
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// DefaultShelfLife implements CategoryReader. A missing row reports ok=false
// rather than an error.
func (s *CategoryService) DefaultShelfLife(ctx context.Context, name string) (int, bool, error) {
	var category models.IngredientCategory
	err := s.db.WithContext(ctx).
		Select("default_expiration_days").
		Where("ingredient_name = ?", name).
		First(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, ErrDatabase.Wrap(err)
	}
	return category.DefaultExpirationDays, true, nil
}

func (s *CategoryService) Create(ctx context.Context, creatorID uuid.UUID, req types.CategoryRequest) (*models.IngredientCategory, error) {
	if req.ChildCategory != "" && req.ParentCategory == "" {
		return nil, ErrInvalidCategoryNesting
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.IngredientCategory{}).
		Where("ingredient_name = ?", req.IngredientName).
		Count(&count).Error; err != nil {
		return nil, ErrDatabase.Wrap(err)
	}
	if count > 0 {
		return nil, ErrDuplicateCategory
	}

	category := models.IngredientCategory{
		UserID:                creatorID,
		IngredientName:        req.IngredientName,
		ParentCategory:        req.ParentCategory,
		ChildCategory:         req.ChildCategory,
		DefaultExpirationDays: req.DefaultExpirationDays,
	}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCategory
		}
		return nil, ErrDatabase.Wrap(err)
	}
	return &category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.IngredientCategory, error) {
	var categories []models.IngredientCategory
	if err := s.db.WithContext(ctx).Order("id").Find(&categories).Error; err != nil {
		return nil, ErrDatabase.Wrap(err)
	}
	return categories, nil
}

func (s *CategoryService) UpdateShelfLife(ctx context.Context, name string, days int) error {
	result := s.db.WithContext(ctx).Model(&models.IngredientCategory{}).
		Where("ingredient_name = ?", name).
		Update("default_expiration_days", days)
	if result.Error != nil {
		return ErrDatabase.Wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *CategoryService) Delete(ctx context.Context, name string) error {
	result := s.db.WithContext(ctx).
		Where("ingredient_name = ?", name).
		Delete(&models.IngredientCategory{})
	if result.Error != nil {
		return ErrDatabase.Wrap(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}
