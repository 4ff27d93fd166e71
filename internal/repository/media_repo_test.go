package repository

import (
	"context"
	"testing"
	"time"

	"mediabridge/internal/models"
	"mediabridge/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const trackPath = "/storage/emulated/0/Music/track.mp3"

func insert(t *testing.T, repo *Repository, path string) *models.MediaEntry {
	t.Helper()
	entry, err := repo.InsertEntry(context.Background(), &models.MediaEntry{
		Data:     path,
		Title:    "Track",
		MimeType: "audio/mpeg",
		Size:     1024,
		Duration: 215000,
	})
	require.NoError(t, err)
	return entry
}

func TestInsertAndGetEntry(t *testing.T) {
	repo := setupTestDB(t, 0)
	ctx := context.Background()

	created := insert(t, repo, trackPath)
	assert.NotZero(t, created.ID)
	assert.NotZero(t, created.DateAdded)

	read, err := repo.GetEntry(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, trackPath, read.Data)
	assert.Equal(t, "Track", read.Title)
	assert.Equal(t, "audio/mpeg", read.MimeType)
	assert.Equal(t, int64(1024), read.Size)
	assert.Equal(t, int64(215000), read.Duration)

	_, err = repo.GetEntry(ctx, created.ID+100)
	assert.ErrorIs(t, err, shared.ErrEntryNotFound)
}

func TestInsertEntry_RequiresPath(t *testing.T) {
	repo := setupTestDB(t, 0)
	_, err := repo.InsertEntry(context.Background(), &models.MediaEntry{Title: "No path"})
	assert.ErrorIs(t, err, shared.ErrInvalidPath)
}

func TestFindIDByPath(t *testing.T) {
	repo := setupTestDB(t, 0)
	ctx := context.Background()

	t.Run("No match", func(t *testing.T) {
		_, err := repo.FindIDByPath(ctx, trackPath)
		assert.ErrorIs(t, err, shared.ErrEntryNotFound)
	})

	t.Run("First match wins", func(t *testing.T) {
		first := insert(t, repo, trackPath)
		insert(t, repo, trackPath)

		id, err := repo.FindIDByPath(ctx, trackPath)
		require.NoError(t, err)
		assert.Equal(t, first.ID, id)
	})

	t.Run("Exact match only", func(t *testing.T) {
		_, err := repo.FindIDByPath(ctx, trackPath+".bak")
		assert.ErrorIs(t, err, shared.ErrEntryNotFound)
	})
}

func TestDeleteByID(t *testing.T) {
	repo := setupTestDB(t, 0)
	ctx := context.Background()

	entry := insert(t, repo, trackPath)
	other := insert(t, repo, "/storage/emulated/0/Music/other.mp3")

	n, err := repo.DeleteByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// Second delete is a no-op
	n, err = repo.DeleteByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	_, err = repo.GetEntry(ctx, other.ID)
	assert.NoError(t, err, "Unrelated entries must survive")
}

func TestDeleteByPath(t *testing.T) {
	repo := setupTestDB(t, 0)
	ctx := context.Background()

	insert(t, repo, trackPath)
	insert(t, repo, trackPath)
	insert(t, repo, "/storage/emulated/0/Music/other.mp3")

	n, err := repo.DeleteByPath(ctx, trackPath)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	entries, err := repo.GetEntriesByPath(ctx, trackPath)
	require.NoError(t, err)
	assert.Empty(t, entries)

	count, err := repo.CountEntries(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	n, err = repo.DeleteByPath(ctx, trackPath)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestLookupCache(t *testing.T) {
	repo := setupTestDB(t, time.Minute)
	ctx := context.Background()

	entry := insert(t, repo, trackPath)

	id, err := repo.FindIDByPath(ctx, trackPath)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, id)

	cached, ok := repo.cachedID(trackPath)
	assert.True(t, ok)
	assert.Equal(t, entry.ID, cached)

	t.Run("DeleteByID evicts", func(t *testing.T) {
		n, err := repo.DeleteByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		_, ok := repo.cachedID(trackPath)
		assert.False(t, ok)

		_, err = repo.FindIDByPath(ctx, trackPath)
		assert.ErrorIs(t, err, shared.ErrEntryNotFound)
	})

	t.Run("DeleteByPath evicts stale ids", func(t *testing.T) {
		entry := insert(t, repo, trackPath)
		_, err := repo.FindIDByPath(ctx, trackPath)
		require.NoError(t, err)

		// Removed behind the repository's back, the cache now holds a stale id.
		_, err = repo.DB.Exec("DELETE FROM audio_media WHERE id = ?", entry.ID)
		require.NoError(t, err)

		n, err := repo.DeleteByID(ctx, entry.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		_, err = repo.DeleteByPath(ctx, trackPath)
		require.NoError(t, err)
		_, ok := repo.cachedID(trackPath)
		assert.False(t, ok)
	})
}
