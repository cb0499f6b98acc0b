package repository

import (
	"context"
	"errors"

	"interiorstudio/internal/database"
	"interiorstudio/internal/domain"

	"gorm.io/gorm"
)

type InquiryRepository struct {
	h *database.Handle
}

func NewInquiryRepository(h *database.Handle) *InquiryRepository {
	return &InquiryRepository{h: h}
}

func (r *InquiryRepository) GetAll(ctx context.Context) ([]domain.Inquiry, error) {
	if !r.h.Configured() {
		return []domain.Inquiry{}, nil
	}

	var items []domain.Inquiry
	err := r.h.DB().WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *InquiryRepository) GetByID(ctx context.Context, id int64) (*domain.Inquiry, error) {
	if !r.h.Configured() {
		return nil, nil
	}

	var q domain.Inquiry
	err := r.h.DB().WithContext(ctx).First(&q, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *InquiryRepository) Create(ctx context.Context, q *domain.Inquiry) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	return r.h.DB().WithContext(ctx).Create(q).Error
}

func (r *InquiryRepository) MarkAsRead(ctx context.Context, id int64) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	return r.h.DB().WithContext(ctx).
		Model(&domain.Inquiry{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}

func (r *InquiryRepository) Delete(ctx context.Context, id int64) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	return r.h.DB().WithContext(ctx).Delete(&domain.Inquiry{}, id).Error
}

func (r *InquiryRepository) CountUnread(ctx context.Context) (int64, error) {
	if !r.h.Configured() {
		return 0, nil
	}
	var n int64
	err := r.h.DB().WithContext(ctx).
		Model(&domain.Inquiry{}).
		Where("is_read = ?", false).
		Count(&n).Error
	return n, err
}
