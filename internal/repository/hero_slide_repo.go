package repository

import (
	"context"
	"errors"

	"interiorstudio/internal/database"
	"interiorstudio/internal/domain"

	"gorm.io/gorm"
)

type HeroSlideRepository struct {
	h *database.Handle
}

func NewHeroSlideRepository(h *database.Handle) *HeroSlideRepository {
	return &HeroSlideRepository{h: h}
}

// GetActive returns the slides shown on the home page, in display order.
func (r *HeroSlideRepository) GetActive(ctx context.Context) ([]domain.HeroSlide, error) {
	if !r.h.Configured() {
		return []domain.HeroSlide{}, nil
	}

	var slides []domain.HeroSlide
	err := r.h.DB().WithContext(ctx).
		Where("is_active = ?", true).
		Order("display_order ASC").
		Find(&slides).Error
	if err != nil {
		return nil, err
	}
	return slides, nil
}

func (r *HeroSlideRepository) GetAll(ctx context.Context) ([]domain.HeroSlide, error) {
	if !r.h.Configured() {
		return []domain.HeroSlide{}, nil
	}

	var slides []domain.HeroSlide
	err := r.h.DB().WithContext(ctx).
		Order("display_order ASC").
		Find(&slides).Error
	if err != nil {
		return nil, err
	}
	return slides, nil
}

func (r *HeroSlideRepository) GetByID(ctx context.Context, id int64) (*domain.HeroSlide, error) {
	if !r.h.Configured() {
		return nil, nil
	}

	var s domain.HeroSlide
	err := r.h.DB().WithContext(ctx).First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *HeroSlideRepository) Create(ctx context.Context, s *domain.HeroSlide) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	return r.h.DB().WithContext(ctx).Create(s).Error
}

func (r *HeroSlideRepository) Update(ctx context.Context, s *domain.HeroSlide) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	return r.h.DB().WithContext(ctx).Save(s).Error
}

func (r *HeroSlideRepository) Delete(ctx context.Context, id int64) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	return r.h.DB().WithContext(ctx).Delete(&domain.HeroSlide{}, id).Error
}

func (r *HeroSlideRepository) CountActive(ctx context.Context) (int64, error) {
	if !r.h.Configured() {
		return 0, nil
	}
	var n int64
	err := r.h.DB().WithContext(ctx).
		Model(&domain.HeroSlide{}).
		Where("is_active = ?", true).
		Count(&n).Error
	return n, err
}
