package portfolio

import (
	"context"
	"testing"
	"time"

	"interiorstudio/internal/cache"
	"interiorstudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetPublished(ctx context.Context, category string) ([]domain.Portfolio, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Portfolio), args.Error(1)
}

func (m *mockRepo) GetAll(ctx context.Context) ([]domain.Portfolio, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Portfolio), args.Error(1)
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Portfolio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Portfolio), args.Error(1)
}

func (m *mockRepo) Create(ctx context.Context, p *domain.Portfolio) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockRepo) Update(ctx context.Context, p *domain.Portfolio) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestGetPublishedFiltersByCategoryOverCachedList(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetPublished", mock.Anything, "").Return([]domain.Portfolio{
		{ID: 1, Title: "apt", Category: "주거공간"},
		{ID: 2, Title: "cafe", Category: "상업공간"},
	}, nil).Once()

	svc := NewService(repo, cache.New(time.Minute))

	all, err := svc.GetPublished(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// Filtered read must reuse the cached unfiltered list, hence Once above.
	commercial, err := svc.GetPublished(context.Background(), "상업공간")
	require.NoError(t, err)
	require.Len(t, commercial, 1)
	assert.Equal(t, "cafe", commercial[0].Title)

	repo.AssertExpectations(t)
}

func TestGetByIDMissingMapsToNotFound(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, int64(42)).Return(nil, nil)

	svc := NewService(repo, nil)

	_, err := svc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrPortfolioNotFound)
}

func TestCreateInvalidatesPublishedCache(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetPublished", mock.Anything, "").Return([]domain.Portfolio{}, nil).Once()
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("GetPublished", mock.Anything, "").Return([]domain.Portfolio{
		{ID: 1, Title: "new"},
	}, nil).Once()

	svc := NewService(repo, cache.New(time.Hour))

	before, err := svc.GetPublished(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, before)

	_, err = svc.Create(context.Background(), CreatePortfolioRequest{Title: "new", Category: "주거공간"})
	require.NoError(t, err)

	after, err := svc.GetPublished(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, after, 1)
	assert.Equal(t, "new", after[0].Title)

	repo.AssertExpectations(t)
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	repo := new(mockRepo)
	existing := &domain.Portfolio{
		ID:          7,
		Title:       "old title",
		Description: "old description",
		Category:    "주거공간",
		Images:      []string{"a.jpg"},
		IsPublished: false,
	}
	repo.On("GetByID", mock.Anything, int64(7)).Return(existing, nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(p *domain.Portfolio) bool {
		return p.Title == "new title" &&
			p.Description == "old description" &&
			p.IsPublished
	})).Return(nil)

	svc := NewService(repo, nil)

	title := "new title"
	published := true
	got, err := svc.Update(context.Background(), 7, UpdatePortfolioRequest{
		Title:       &title,
		IsPublished: &published,
	})
	require.NoError(t, err)
	assert.Equal(t, "new title", got.Title)
	assert.Equal(t, "old description", got.Description)
	assert.Equal(t, []string{"a.jpg"}, got.Images)

	repo.AssertExpectations(t)
}

func TestDeleteMissingPortfolio(t *testing.T) {
	repo := new(mockRepo)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	svc := NewService(repo, nil)

	err := svc.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, ErrPortfolioNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
