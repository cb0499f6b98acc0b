package repository

import (
	"context"
	"testing"

	"interiorstudio/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteSettingGetByKeyMissingReturnsNil(t *testing.T) {
	repo := NewSiteSettingRepository(openTestDB(t))

	got, err := repo.GetByKey(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSiteSettingUpsertInsertsThenUpdates(t *testing.T) {
	repo := NewSiteSettingRepository(openTestDB(t))
	ctx := context.Background()

	first, err := repo.Upsert(ctx, domain.SettingFooterText, "v1")
	require.NoError(t, err)
	assert.Equal(t, "v1", first.Value)

	second, err := repo.Upsert(ctx, domain.SettingFooterText, "v2")
	require.NoError(t, err)
	assert.Equal(t, "v2", second.Value)

	got, err := repo.GetByKey(ctx, domain.SettingFooterText)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "v2", got.Value)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1, "upsert must not duplicate the key")
}
