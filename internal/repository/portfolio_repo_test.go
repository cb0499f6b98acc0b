package repository

import (
	"context"
	"testing"
	"time"

	"interiorstudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioCreateAndGetByID(t *testing.T) {
	repo := NewPortfolioRepository(openTestDB(t))
	ctx := context.Background()

	p := &domain.Portfolio{
		Title:       "한남동 아파트 리모델링",
		Description: "34평 전체 리모델링",
		Category:    "주거공간",
		Images:      []string{"https://cdn.example.com/a.jpg", "https://cdn.example.com/b.jpg"},
		IsPublished: true,
	}
	require.NoError(t, repo.Create(ctx, p))
	require.NotZero(t, p.ID)

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, p.Title, got.Title)
	assert.Equal(t, p.Category, got.Category)
	assert.Equal(t, p.Images, got.Images)
	assert.True(t, got.IsPublished)
	assert.Equal(t, "https://cdn.example.com/a.jpg", got.Thumbnail())
}

func TestPortfolioGetByIDMissingReturnsNil(t *testing.T) {
	repo := NewPortfolioRepository(openTestDB(t))

	got, err := repo.GetByID(context.Background(), 9999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestPortfolioGetPublishedFiltersAndOrders(t *testing.T) {
	repo := NewPortfolioRepository(openTestDB(t))
	ctx := context.Background()

	older := &domain.Portfolio{Title: "older", Category: "주거공간", IsPublished: true, CreatedAt: time.Now().Add(-time.Hour)}
	newer := &domain.Portfolio{Title: "newer", Category: "상업공간", IsPublished: true, CreatedAt: time.Now()}
	draft := &domain.Portfolio{Title: "draft", Category: "주거공간", IsPublished: false, CreatedAt: time.Now()}
	for _, p := range []*domain.Portfolio{older, newer, draft} {
		require.NoError(t, repo.Create(ctx, p))
	}

	published, err := repo.GetPublished(ctx, "")
	require.NoError(t, err)
	require.Len(t, published, 2)
	assert.Equal(t, "newer", published[0].Title, "newest first")
	assert.Equal(t, "older", published[1].Title)

	residential, err := repo.GetPublished(ctx, "주거공간")
	require.NoError(t, err)
	require.Len(t, residential, 1)
	assert.Equal(t, "older", residential[0].Title)
}

func TestPortfolioUpdatePersistsChanges(t *testing.T) {
	repo := NewPortfolioRepository(openTestDB(t))
	ctx := context.Background()

	p := &domain.Portfolio{Title: "before", Category: "주거공간", Images: []string{"x.jpg"}}
	require.NoError(t, repo.Create(ctx, p))

	p.Title = "after"
	p.Images = []string{"x.jpg", "y.jpg"}
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "after", got.Title)
	assert.Equal(t, []string{"x.jpg", "y.jpg"}, got.Images)
}

func TestPortfolioDeleteThenGetReturnsNil(t *testing.T) {
	repo := NewPortfolioRepository(openTestDB(t))
	ctx := context.Background()

	p := &domain.Portfolio{Title: "doomed"}
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, repo.Delete(ctx, p.ID))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
