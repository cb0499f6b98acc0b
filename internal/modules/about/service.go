package about

import (
	"context"
	"time"

	"interiorstudio/internal/cache"
	"interiorstudio/internal/domain"
)

type Repository interface {
	GetAll(ctx context.Context) ([]domain.AboutContent, error)
	GetBySection(ctx context.Context, section string) ([]domain.AboutContent, error)
	GetByID(ctx context.Context, id int64) (*domain.AboutContent, error)
	Create(ctx context.Context, b *domain.AboutContent) error
	Update(ctx context.Context, b *domain.AboutContent) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	repo  Repository
	store *cache.Store
}

func NewService(repo Repository, store *cache.Store) *Service {
	return &Service{repo: repo, store: store}
}

// GetAll returns every block ordered by display_order; the about page groups
// them by section client-side. Section filtering reuses the cached full list.
func (s *Service) GetAll(ctx context.Context) ([]domain.AboutContent, error) {
	return cache.Fetch(ctx, s.store, cache.KeyAboutAll,
		func(ctx context.Context) ([]domain.AboutContent, error) {
			return s.repo.GetAll(ctx)
		})
}

func (s *Service) GetBySection(ctx context.Context, section string) ([]domain.AboutContent, error) {
	blocks, err := s.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.AboutContent, 0, len(blocks))
	for _, b := range blocks {
		if b.Section == section {
			filtered = append(filtered, b)
		}
	}
	return filtered, nil
}

func (s *Service) Create(ctx context.Context, req CreateContentRequest) (*domain.AboutContent, error) {
	b := &domain.AboutContent{
		Section:      req.Section,
		Title:        req.Title,
		Content:      req.Content,
		DisplayOrder: req.DisplayOrder,
		UpdatedAt:    time.Now(),
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.store.Invalidate(cache.AboutKeys()...)
	return b, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateContentRequest) (*domain.AboutContent, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrContentNotFound
	}

	if req.Section != nil {
		b.Section = *req.Section
	}
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Content != nil {
		b.Content = *req.Content
	}
	if req.DisplayOrder != nil {
		b.DisplayOrder = *req.DisplayOrder
	}
	b.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	s.store.Invalidate(cache.AboutKeys()...)
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrContentNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.store.Invalidate(cache.AboutKeys()...)
	return nil
}
