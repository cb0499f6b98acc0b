package portfolio

import (
	"context"

	"interiorstudio/internal/domain"
)

type Repository interface {
	GetPublished(ctx context.Context, category string) ([]domain.Portfolio, error)
	GetAll(ctx context.Context) ([]domain.Portfolio, error)
	GetByID(ctx context.Context, id int64) (*domain.Portfolio, error)
	Create(ctx context.Context, p *domain.Portfolio) error
	Update(ctx context.Context, p *domain.Portfolio) error
	Delete(ctx context.Context, id int64) error
}
