package repository

import (
	"context"
	"errors"
	"strings"

	"interiorstudio/internal/database"
	"interiorstudio/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	h *database.Handle
}

func NewUserRepository(h *database.Handle) *UserRepository {
	return &UserRepository{h: h}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if !r.h.Configured() {
		return nil, nil
	}

	var u domain.User
	err := r.h.DB().WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if !r.h.Configured() {
		return nil, nil
	}

	var u domain.User
	err := r.h.DB().WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	return r.h.DB().WithContext(ctx).Create(u).Error
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	if !r.h.Configured() {
		return database.ErrNotConfigured
	}
	return r.h.DB().WithContext(ctx).Save(u).Error
}
