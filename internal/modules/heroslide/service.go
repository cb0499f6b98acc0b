package heroslide

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

// GetActive returns the home-page carousel, display order ascending.
func (s *Service) GetActive(ctx context.Context) ([]domain.HeroSlide, error) {
	return cache.Fetch(ctx, s.store, cache.KeyHeroSlidesActive,
		func(ctx context.Context) ([]domain.HeroSlide, error) {
			return s.repo.GetActive(ctx)
		})
}

func (s *Service) GetAll(ctx context.Context) ([]domain.HeroSlide, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateSlideRequest) (*domain.HeroSlide, error) {
	slide := &domain.HeroSlide{
		ImageURL:     req.ImageURL,
		Title:        req.Title,
		Subtitle:     req.Subtitle,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	}

	if err := s.repo.Create(ctx, slide); err != nil {
		return nil, err
	}

	s.store.Invalidate(cache.HeroSlideKeys()...)
	return slide, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateSlideRequest) (*domain.HeroSlide, error) {
	slide, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if slide == nil {
		return nil, ErrSlideNotFound
	}

	if req.ImageURL != nil {
		slide.ImageURL = *req.ImageURL
	}
	if req.Title != nil {
		slide.Title = req.Title
	}
	if req.Subtitle != nil {
		slide.Subtitle = req.Subtitle
	}
	if req.DisplayOrder != nil {
		slide.DisplayOrder = *req.DisplayOrder
	}
	if req.IsActive != nil {
		slide.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, slide); err != nil {
		return nil, err
	}

	s.store.Invalidate(cache.HeroSlideKeys()...)
	return slide, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	slide, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if slide == nil {
		return ErrSlideNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.store.Invalidate(cache.HeroSlideKeys()...)
	return nil
}
