package repository

import (
	"context"
	"errors"

	"interiorstudio/internal/database"
	"interiorstudio/internal/domain"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	h *database.Handle
}

func NewCategoryRepository(h *database.Handle) *CategoryRepository {
	return &CategoryRepository{h: h}
}

func (r *CategoryRepository) GetAll(ctx context.Context) ([]domain.Category, error) {
	if !r.h.Configured() {
		return []domain.Category{}, nil
	}

	var categories []domain.Category
	err := r.h.DB().WithContext(ctx).
		Order("display_order ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	if !r.h.Configured() {
		return nil, nil
	}

	var c domain.Category
	err := r.h.DB().WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	return r.h.DB().WithContext(ctx).Create(c).Error
}

func (r *CategoryRepository) Update(ctx context.Context, c *domain.Category) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	return r.h.DB().WithContext(ctx).Save(c).Error
}

// Delete removes the category only. Portfolio rows keep referencing the name
// as free text.
func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	return r.h.DB().WithContext(ctx).Delete(&domain.Category{}, id).Error
}

func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	if !r.h.Configured() {
		return 0, nil
	}
	var n int64
	err := r.h.DB().WithContext(ctx).Model(&domain.Category{}).Count(&n).Error
	return n, err
}
