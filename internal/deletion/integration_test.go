package deletion_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mediabridge/internal/config"
	"mediabridge/internal/deletion"
	"mediabridge/internal/models"
	"mediabridge/internal/repository"
	"mediabridge/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sqliteFixture wires the coordinator to a migrated SQLite index and a temp
// music directory.
type sqliteFixture struct {
	repo  *repository.Repository
	coord *deletion.Coordinator
	music string
}

func newSQLiteFixture(t *testing.T) *sqliteFixture {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Index:    config.IndexConfig{Path: filepath.Join(dir, "index.db")},
		CacheTTL: time.Minute,
	}
	repo, err := repository.NewRepository(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	require.NoError(t, repo.EnsureSchemaBootstrapped())

	music := filepath.Join(dir, "Music")
	require.NoError(t, os.MkdirAll(music, 0o755))

	return &sqliteFixture{
		repo:  repo,
		coord: deletion.NewCoordinator(repo, storage.NewLocal()),
		music: music,
	}
}

func (f *sqliteFixture) file(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(f.music, name)
	require.NoError(t, os.WriteFile(path, []byte("audio"), 0o644))
	return path
}

func (f *sqliteFixture) index(t *testing.T, path string) int64 {
	t.Helper()
	entry, err := f.repo.InsertEntry(context.Background(), &models.MediaEntry{Data: path, MimeType: "audio/mpeg"})
	require.NoError(t, err)
	return entry.ID
}

func (f *sqliteFixture) count(t *testing.T) int64 {
	t.Helper()
	n, err := f.repo.CountEntries(context.Background())
	require.NoError(t, err)
	return n
}

func TestSQLite_IndexedFileIsDeleted(t *testing.T) {
	f := newSQLiteFixture(t)
	path := f.file(t, "track.mp3")
	f.index(t, path)
	other := f.file(t, "other.mp3")
	f.index(t, other)

	report := f.coord.Run(context.Background(), path)

	assert.True(t, report.Deleted)
	assert.Equal(t, deletion.StrategyIndexedDelete, report.Strategy)
	assert.NoFileExists(t, path)
	assert.FileExists(t, other)
	assert.Equal(t, int64(1), f.count(t))

	assert.False(t, f.coord.Delete(context.Background(), path))
}

func TestSQLite_IndexOnlyAndFileOnly(t *testing.T) {
	f := newSQLiteFixture(t)
	ghost := filepath.Join(f.music, "ghost.mp3")
	f.index(t, ghost)
	stray := f.file(t, "stray.mp3")

	assert.True(t, f.coord.Delete(context.Background(), ghost))
	assert.Zero(t, f.count(t))

	report := f.coord.Run(context.Background(), stray)
	assert.True(t, report.Deleted)
	assert.Equal(t, deletion.StrategyFileDelete, report.Strategy)
	assert.NoFileExists(t, stray)

	assert.False(t, f.coord.Delete(context.Background(), filepath.Join(f.music, "never.mp3")))
}

func TestSQLite_DuplicateEntriesFirstMatchWins(t *testing.T) {
	f := newSQLiteFixture(t)
	path := f.file(t, "dup.mp3")
	first := f.index(t, path)
	second := f.index(t, path)
	require.Less(t, first, second)

	assert.True(t, f.coord.Delete(context.Background(), path))
	assert.NoFileExists(t, path)

	_, err := f.repo.GetEntry(context.Background(), first)
	assert.Error(t, err, "lowest id is removed first")
	_, err = f.repo.GetEntry(context.Background(), second)
	assert.NoError(t, err)

	// The leftover row is still a deletable index entry.
	assert.True(t, f.coord.Delete(context.Background(), path))
	assert.Zero(t, f.count(t))
	assert.False(t, f.coord.Delete(context.Background(), path))
}

func TestSQLite_StaleCachedIDFallsBackToPredicateDelete(t *testing.T) {
	f := newSQLiteFixture(t)
	path := f.file(t, "stale.mp3")
	oldID := f.index(t, path)

	// Prime the lookup cache, then replace the row behind the repository's back.
	id, err := f.repo.FindIDByPath(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, oldID, id)
	_, err = f.repo.DB.Exec("DELETE FROM audio_media WHERE id = ?", oldID)
	require.NoError(t, err)
	f.index(t, path)

	report := f.coord.Run(context.Background(), path)

	assert.True(t, report.Deleted)
	assert.Equal(t, deletion.StrategyPredicateDelete, report.Strategy)
	require.Len(t, report.Attempts, 2)
	assert.Equal(t, deletion.NotApplicable, report.Attempts[0].Result)
	assert.Zero(t, f.count(t))
	assert.NoFileExists(t, path)
}

func TestSQLite_ClosedIndexFallsBackToFile(t *testing.T) {
	f := newSQLiteFixture(t)
	path := f.file(t, "offline.mp3")
	require.NoError(t, f.repo.Close())

	report := f.coord.Run(context.Background(), path)

	assert.True(t, report.Deleted)
	assert.Equal(t, deletion.StrategyFileDelete, report.Strategy)
	require.Len(t, report.Attempts, 3)
	assert.Equal(t, deletion.Failed, report.Attempts[0].Result)
	assert.Equal(t, deletion.Failed, report.Attempts[1].Result)
	assert.NoFileExists(t, path)
}

// A caller that disconnects mid-request still gets the index entry removed
// before the file.
func TestSQLite_CancelledContextStillClearsIndex(t *testing.T) {
	f := newSQLiteFixture(t)
	path := f.file(t, "track.mp3")
	f.index(t, path)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report := f.coord.Run(ctx, path)

	assert.True(t, report.Deleted)
	assert.Equal(t, deletion.StrategyIndexedDelete, report.Strategy)
	assert.NoFileExists(t, path)
	assert.Zero(t, f.count(t))
}

func TestSQLite_ExpiredDeadlineStillClearsIndex(t *testing.T) {
	f := newSQLiteFixture(t)
	path := f.file(t, "track.mp3")
	f.index(t, path)

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()
	report := f.coord.Run(ctx, path)

	assert.True(t, report.Deleted)
	assert.Equal(t, deletion.StrategyIndexedDelete, report.Strategy)
	assert.Zero(t, f.count(t))
}
