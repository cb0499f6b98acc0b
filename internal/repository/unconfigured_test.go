package repository

import (
	"context"
	"testing"

	"interiorstudio/internal/database"
	"interiorstudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without a DATABASE_URL the service still answers: reads degrade to empty
// results and writes fail with ErrNotConfigured.
func TestUnconfiguredHandleBehavior(t *testing.T) {
	h, err := database.Open("")
	require.NoError(t, err)
	require.False(t, h.Configured())

	ctx := context.Background()

	portfolios := NewPortfolioRepository(h)
	got, err := portfolios.GetPublished(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, got)

	p, err := portfolios.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, p)

	err = portfolios.Create(ctx, &domain.Portfolio{Title: "x"})
	assert.ErrorIs(t, err, database.ErrNotConfigured)

	inquiries := NewInquiryRepository(h)
	err = inquiries.Create(ctx, &domain.Inquiry{Name: "x"})
	assert.ErrorIs(t, err, database.ErrNotConfigured)

	n, err := inquiries.CountUnread(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	settings := NewSiteSettingRepository(h)
	s, err := settings.GetByKey(ctx, domain.SettingLogoURL)
	require.NoError(t, err)
	assert.Nil(t, s)

	_, err = settings.Upsert(ctx, domain.SettingLogoURL, "x")
	assert.ErrorIs(t, err, database.ErrNotConfigured)
}
