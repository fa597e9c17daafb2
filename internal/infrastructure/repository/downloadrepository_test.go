package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luma/internal/domain/download"
	"luma/internal/infrastructure/database"
	"luma/internal/shared/config"
	"luma/internal/shared/errors"
	"luma/internal/shared/logger"
)

// nopLogger is a no-op logger for testing.
type nopLogger struct{}

func newNopLogger() logger.Interface { return &nopLogger{} }

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func setupTestRepo(t *testing.T) download.Repository {
	t.Helper()

	store := database.NewStore(&config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "downloads.db"),
	})
	t.Cleanup(func() { _ = store.Close() })

	return NewDownloadRepository(store, newNopLogger())
}

func testDownload(t *testing.T, id string) *download.Download {
	t.Helper()
	d, err := download.New(id, "Movie "+id, "https://cdn.example.com/"+id+".jpg", "1.2 GB",
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), []byte("payload-"+id))
	require.NoError(t, err)
	return d
}

func TestPutThenGetReadAfterWrite(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	d := testDownload(t, "ep-101")
	require.NoError(t, repo.Put(ctx, d))

	got, err := repo.Get(ctx, "ep-101")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, d.ID, got.ID)
	assert.Equal(t, d.Title, got.Title)
	assert.Equal(t, d.Thumbnail, got.Thumbnail)
	assert.Equal(t, d.Size, got.Size)
	assert.Equal(t, d.FileData, got.FileData)
	assert.True(t, d.DownloadDate.Equal(got.DownloadDate))
}

func TestPutUpsertIdempotence(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	d := testDownload(t, "ep-101")
	require.NoError(t, repo.Put(ctx, d))
	require.NoError(t, repo.Put(ctx, d))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestPutOverwritesExistingRecord(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, testDownload(t, "ep-101")))

	updated := testDownload(t, "ep-101")
	updated.Title = "Movie ep-101 (remastered)"
	updated.FileData = []byte("new-payload")
	require.NoError(t, repo.Put(ctx, updated))

	got, err := repo.Get(ctx, "ep-101")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Movie ep-101 (remastered)", got.Title)
	assert.Equal(t, []byte("new-payload"), got.FileData)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestGetUnknownIDReturnsNil(t *testing.T) {
	repo := setupTestRepo(t)

	got, err := repo.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetAllEmpty(t *testing.T) {
	repo := setupTestRepo(t)

	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, testDownload(t, "ep-101")))
	require.NoError(t, repo.Put(ctx, testDownload(t, "ep-102")))

	require.NoError(t, repo.Delete(ctx, "ep-101"))

	// Deleting an absent id is a no-op, not an error.
	require.NoError(t, repo.Delete(ctx, "ep-101"))
	require.NoError(t, repo.Delete(ctx, "never-existed"))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "ep-102", all[0].ID)
}

func TestLazyInitializationOpensOnFirstUse(t *testing.T) {
	store := database.NewStore(&config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "lazy.db"),
	})
	t.Cleanup(func() { _ = store.Close() })
	repo := NewDownloadRepository(store, newNopLogger())

	// No explicit Init: the first operation opens the store.
	all, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestFailedOpenFailsFast(t *testing.T) {
	// A path whose parent cannot be created makes the open fail.
	store := database.NewStore(&config.DatabaseConfig{
		Path: filepath.Join("/proc/luma-nonexistent", "downloads.db"),
	})
	repo := NewDownloadRepository(store, newNopLogger())
	ctx := context.Background()

	_, err := repo.GetAll(ctx)
	require.Error(t, err)
	assert.True(t, errors.IsStorageUnavailableError(err))

	// Later operations fail fast with the same classification.
	err = repo.Put(ctx, testDownload(t, "ep-101"))
	require.Error(t, err)
	assert.True(t, errors.IsStorageUnavailableError(err))
}

func TestSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "durable.db")
	ctx := context.Background()

	store := database.NewStore(&config.DatabaseConfig{Path: path})
	repo := NewDownloadRepository(store, newNopLogger())
	require.NoError(t, repo.Put(ctx, testDownload(t, "ep-101")))
	require.NoError(t, store.Close())

	reopened := database.NewStore(&config.DatabaseConfig{Path: path})
	t.Cleanup(func() { _ = reopened.Close() })
	repo = NewDownloadRepository(reopened, newNopLogger())

	got, err := repo.Get(ctx, "ep-101")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []byte("payload-ep-101"), got.FileData)
}
