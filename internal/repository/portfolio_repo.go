package repository

import (
	"context"
	"errors"

	"interiorstudio/internal/database"
	"interiorstudio/internal/domain"

	"gorm.io/gorm"
)

type PortfolioRepository struct {
	h *database.Handle
}

func NewPortfolioRepository(h *database.Handle) *PortfolioRepository {
	return &PortfolioRepository{h: h}
}

// GetPublished returns publicly visible portfolios, newest first. Category is
// an optional exact-match filter.
func (r *PortfolioRepository) GetPublished(ctx context.Context, category string) ([]domain.Portfolio, error) {
	if !r.h.Configured() {
		return []domain.Portfolio{}, nil
	}

	q := r.h.DB().WithContext(ctx).
		Where("is_published = ?", true).
		Order("created_at DESC")
	if category != "" {
		q = q.Where("category = ?", category)
	}

	var items []domain.Portfolio
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PortfolioRepository) GetAll(ctx context.Context) ([]domain.Portfolio, error) {
	if !r.h.Configured() {
		return []domain.Portfolio{}, nil
	}

	var items []domain.Portfolio
	err := r.h.DB().WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID returns nil without error when no row matches.
func (r *PortfolioRepository) GetByID(ctx context.Context, id int64) (*domain.Portfolio, error) {
	if !r.h.Configured() {
		return nil, nil
	}

	var p domain.Portfolio
	err := r.h.DB().WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PortfolioRepository) Create(ctx context.Context, p *domain.Portfolio) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	return r.h.DB().WithContext(ctx).Create(p).Error
}

func (r *PortfolioRepository) Update(ctx context.Context, p *domain.Portfolio) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	return r.h.DB().WithContext(ctx).Save(p).Error
}

func (r *PortfolioRepository) Delete(ctx context.Context, id int64) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	return r.h.DB().WithContext(ctx).Delete(&domain.Portfolio{}, id).Error
}

func (r *PortfolioRepository) Count(ctx context.Context) (int64, error) {
	if !r.h.Configured() {
		return 0, nil
	}
	var n int64
	err := r.h.DB().WithContext(ctx).Model(&domain.Portfolio{}).Count(&n).Error
	return n, err
}
