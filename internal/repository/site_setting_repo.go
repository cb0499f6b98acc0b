package repository

import (
	"context"
	"errors"
	"time"

	"interiorstudio/internal/database"
	"interiorstudio/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteSettingRepository struct {
	h *database.Handle
}

func NewSiteSettingRepository(h *database.Handle) *SiteSettingRepository {
	return &SiteSettingRepository{h: h}
}

func (r *SiteSettingRepository) GetAll(ctx context.Context) ([]domain.SiteSetting, error) {
	if !r.h.Configured() {
		return []domain.SiteSetting{}, nil
	}

	var settings []domain.SiteSetting
	if err := r.h.DB().WithContext(ctx).Find(&settings).Error; err != nil {
		return nil, err
	}
	return settings, nil
}

// GetByKey returns nil for a missing key; callers apply their own default.
func (r *SiteSettingRepository) GetByKey(ctx context.Context, key string) (*domain.SiteSetting, error) {
	if !r.h.Configured() {
		return nil, nil
	}

	var s domain.SiteSetting
	err := r.h.DB().WithContext(ctx).
		Where("key = ?", key).
		First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert inserts or replaces the value for key, stamping updated_at.
func (r *SiteSettingRepository) Upsert(ctx context.Context, key, value string) (*domain.SiteSetting, error) {
	if !r.h.Configured() {
		return nil, database.ErrNotConfigured
	}

	s := domain.SiteSetting{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	err := r.h.DB().WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
