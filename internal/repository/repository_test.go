package repository

import (
	"testing"

	"interiorstudio/internal/database"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *database.Handle {
	t.Helper()

	h, err := database.Open(":memory:")
	require.NoError(t, err)
	require.True(t, h.Configured())
	require.NoError(t, h.Migrate())
	return h
}
