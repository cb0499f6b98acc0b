package heroslide

import (
	"context"

	"interiorstudio/internal/domain"
)

type Repository interface {
	GetActive(ctx context.Context) ([]domain.HeroSlide, error)
	GetAll(ctx context.Context) ([]domain.HeroSlide, error)
	GetByID(ctx context.Context, id int64) (*domain.HeroSlide, error)
	Create(ctx context.Context, s *domain.HeroSlide) error
	Update(ctx context.Context, s *domain.HeroSlide) error
	Delete(ctx context.Context, id int64) error
}
