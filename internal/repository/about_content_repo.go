package repository

import (
	"context"
	"errors"

	"interiorstudio/internal/database"
	"interiorstudio/internal/domain"

	"gorm.io/gorm"
)

type AboutContentRepository struct {
	h *database.Handle
}

func NewAboutContentRepository(h *database.Handle) *AboutContentRepository {
	return &AboutContentRepository{h: h}
}

func (r *AboutContentRepository) GetAll(ctx context.Context) ([]domain.AboutContent, error) {
	if !r.h.Configured() {
		return []domain.AboutContent{}, nil
	}

	var blocks []domain.AboutContent
	err := r.h.DB().WithContext(ctx).
		Order("display_order ASC").
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *AboutContentRepository) GetBySection(ctx context.Context, section string) ([]domain.AboutContent, error) {
	if !r.h.Configured() {
		return []domain.AboutContent{}, nil
	}

	var blocks []domain.AboutContent
	err := r.h.DB().WithContext(ctx).
		Where("section = ?", section).
		Order("display_order ASC").
		Find(&blocks).Error
	if err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *AboutContentRepository) GetByID(ctx context.Context, id int64) (*domain.AboutContent, error) {
	if !r.h.Configured() {
		return nil, nil
	}

	var b domain.AboutContent
	err := r.h.DB().WithContext(ctx).First(&b, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *AboutContentRepository) Create(ctx context.Context, b *domain.AboutContent) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	return r.h.DB().WithContext(ctx).Create(b).Error
}

func (r *AboutContentRepository) Update(ctx context.Context, b *domain.AboutContent) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	return r.h.DB().WithContext(ctx).Save(b).Error
}

func (r *AboutContentRepository) Delete(ctx context.Context, id int64) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	return r.h.DB().WithContext(ctx).Delete(&domain.AboutContent{}, id).Error
}
