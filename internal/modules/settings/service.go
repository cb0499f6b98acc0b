package settings

import (
	"context"

	"interiorstudio/internal/cache"
	"interiorstudio/internal/domain"
)

type Repository interface {
	GetAll(ctx context.Context) ([]domain.SiteSetting, error)
	GetByKey(ctx context.Context, key string) (*domain.SiteSetting, error)
	Upsert(ctx context.Context, key, value string) (*domain.SiteSetting, error)
}

type Service struct {
	repo  Repository
	store *cache.Store
}

func NewService(repo Repository, store *cache.Store) *Service {
	return &Service{repo: repo, store: store}
}

// GetAll returns settings as a key/value map. The site shell reads the whole
// map once per render, so the cached form is the map rather than the rows.
func (s *Service) GetAll(ctx context.Context) (map[string]string, error) {
	return cache.Fetch(ctx, s.store, cache.KeySettingsAll,
		func(ctx context.Context) (map[string]string, error) {
			rows, err := s.repo.GetAll(ctx)
			if err != nil {
				return nil, err
			}
			m := make(map[string]string, len(rows))
			for _, row := range rows {
				m[row.Key] = row.Value
			}
			return m, nil
		})
}

// GetByKey returns the setting value, or ErrSettingNotFound when the key has
// never been written.
func (s *Service) GetByKey(ctx context.Context, key string) (string, error) {
	all, err := s.GetAll(ctx)
	if err != nil {
		return "", err
	}
	v, ok := all[key]
	if !ok {
		return "", ErrSettingNotFound
	}
	return v, nil
}

func (s *Service) Upsert(ctx context.Context, key, value string) (*domain.SiteSetting, error) {
	setting, err := s.repo.Upsert(ctx, key, value)
	if err != nil {
		return nil, err
	}

	s.store.Invalidate(cache.SettingKeys()...)
	return setting, nil
}
