package category

import (
	"context"

	"interiorstudio/internal/cache"
	"interiorstudio/internal/domain"
)

type Repository interface {
	GetAll(ctx context.Context) ([]domain.Category, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	Create(ctx context.Context, c *domain.Category) error
	Update(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo  Repository
	store *cache.Store
}

func NewService(repo Repository, store *cache.Store) *Service {
	return &Service{repo: repo, store: store}
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Category, error) {
	return cache.Fetch(ctx, s.store, cache.KeyCategoriesAll,
		func(ctx context.Context) ([]domain.Category, error) {
			return s.repo.GetAll(ctx)
		})
}

func (s *Service) Create(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	cat := &domain.Category{
		Name:         req.Name,
		DisplayOrder: req.DisplayOrder,
	}

	if err := s.repo.Create(ctx, cat); err != nil {
		return nil, err
	}

	s.store.Invalidate(cache.CategoryKeys()...)
	return cat, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateCategoryRequest) (*domain.Category, error) {
	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrCategoryNotFound
	}

	if req.Name != nil {
		cat.Name = *req.Name
	}
	if req.DisplayOrder != nil {
		cat.DisplayOrder = *req.DisplayOrder
	}

	if err := s.repo.Update(ctx, cat); err != nil {
		return nil, err
	}

	s.store.Invalidate(cache.CategoryKeys()...)
	return cat, nil
}

// Delete removes the category from the selector list only. Portfolios keep
// their category name as free text, so nothing cascades.
func (s *Service) Delete(ctx context.Context, id int64) error {
	cat, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cat == nil {
		return ErrCategoryNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.store.Invalidate(cache.CategoryKeys()...)
	return nil
}
