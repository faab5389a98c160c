package out_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	preferenceoutadapter "refdeck/internal/modules/preference/adapter/out"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), ".refdeck", "refdeck.db")
	store, err := preferenceoutadapter.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store.Close()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "theme", "dark"))
	require.NoError(t, store.Set(ctx, "theme", "light"))
	value, ok, err := store.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", value)
}

func TestSQLiteStorePersistsAcrossOpen(t *testing.T) {
	t.Parallel()
	dbPath := filepath.Join(t.TempDir(), "refdeck.db")
	first, err := preferenceoutadapter.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, first.Set(context.Background(), "theme", "dark"))
	require.NoError(t, first.Close())

	second, err := preferenceoutadapter.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer second.Close()
	value, ok, err := second.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "dark", value)
}
