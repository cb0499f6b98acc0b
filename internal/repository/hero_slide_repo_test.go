package repository

import (
	"context"
	"testing"

	"interiorstudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeroSlideGetActiveOrdersByDisplayOrder(t *testing.T) {
	repo := NewHeroSlideRepository(openTestDB(t))
	ctx := context.Background()

	title := "second"
	slides := []*domain.HeroSlide{
		{ImageURL: "b.jpg", Title: &title, DisplayOrder: 2, IsActive: true},
		{ImageURL: "a.jpg", DisplayOrder: 1, IsActive: true},
		{ImageURL: "hidden.jpg", DisplayOrder: 0, IsActive: false},
	}
	for _, s := range slides {
		require.NoError(t, repo.Create(ctx, s))
	}

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "a.jpg", active[0].ImageURL)
	assert.Equal(t, "b.jpg", active[1].ImageURL)
	assert.Nil(t, active[0].Title)
	require.NotNil(t, active[1].Title)
	assert.Equal(t, "second", *active[1].Title)

	n, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestHeroSlideUpdateTogglesActive(t *testing.T) {
	repo := NewHeroSlideRepository(openTestDB(t))
	ctx := context.Background()

	s := &domain.HeroSlide{ImageURL: "a.jpg", IsActive: true}
	require.NoError(t, repo.Create(ctx, s))

	s.IsActive = false
	require.NoError(t, repo.Update(ctx, s))

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
