package portfolio

import (
	"context"

	"interiorstudio/internal/cache"
	"interiorstudio/internal/domain"
)

type Service struct {
	repo  Repository
	store *cache.Store
}

func NewService(repo Repository, store *cache.Store) *Service {
	return &Service{repo: repo, store: store}
}

// GetPublished returns the public gallery, newest first. The unfiltered list
// is what gets cached; category filtering happens over the cached slice, the
// same way the site previously filtered in the browser.
func (s *Service) GetPublished(ctx context.Context, category string) ([]domain.Portfolio, error) {
	items, err := cache.Fetch(ctx, s.store, cache.KeyPortfoliosPublished,
		func(ctx context.Context) ([]domain.Portfolio, error) {
			return s.repo.GetPublished(ctx, "")
		})
	if err != nil {
		return nil, err
	}
	if category == "" {
		return items, nil
	}

	filtered := make([]domain.Portfolio, 0, len(items))
	for _, p := range items {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *Service) GetAll(ctx context.Context) ([]domain.Portfolio, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Portfolio, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPortfolioNotFound
	}
	return p, nil
}

func (s *Service) Create(ctx context.Context, req CreatePortfolioRequest) (*domain.Portfolio, error) {
	p := &domain.Portfolio{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Images:      req.Images,
		IsPublished: req.IsPublished,
	}
	if p.Images == nil {
		p.Images = []string{}
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.store.Invalidate(cache.PortfolioKeys()...)
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdatePortfolioRequest) (*domain.Portfolio, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPortfolioNotFound
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Images != nil {
		p.Images = *req.Images
	}
	if req.IsPublished != nil {
		p.IsPublished = *req.IsPublished
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.store.Invalidate(cache.PortfolioKeys()...)
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPortfolioNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.store.Invalidate(cache.PortfolioKeys()...)
	return nil
}
