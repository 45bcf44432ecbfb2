package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/flowpomo/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLiteRepository_AppendAndListSessions(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	records := []domain.SessionRecord{
		{ID: "a", UserID: "u1", Category: "Reading", Duration: 125, Timestamp: 1000},
		{ID: "b", UserID: "u1", Category: "", Duration: 60, Timestamp: 3000},
		{ID: "c", UserID: "u2", Category: "Writing", Duration: 30, Timestamp: 2000},
		{ID: "d", UserID: "u1", Category: "Writing", Duration: 10, Timestamp: 2000},
	}
	for _, r := range records {
		require.NoError(t, repo.AppendSession(ctx, r))
	}

	got, err := repo.ListSessions(ctx, "u1", 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "d", "a"}, []string{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, domain.UncategorizedName, got[0].Category)
	assert.Equal(t, 125, got[2].Duration)
	assert.Equal(t, int64(1000), got[2].Timestamp)

	limited, err := repo.ListSessions(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSQLiteRepository_AppendSessionRejectsIncomplete(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.AppendSession(context.Background(), domain.SessionRecord{ID: "x", Duration: 5})

	assert.Error(t, err)
}

func TestSQLiteRepository_AppendSessionDuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	record := domain.SessionRecord{ID: "a", UserID: "u1", Duration: 5, Timestamp: 1}

	require.NoError(t, repo.AppendSession(ctx, record))
	assert.Error(t, repo.AppendSession(ctx, record))
}

func TestSQLiteRepository_ReplaceCategories(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	first := []domain.Category{
		{Name: "Writing", Color: "#4299E1"},
		{Name: "Reading", Color: "#48BB78"},
	}
	require.NoError(t, repo.ReplaceCategories(ctx, "u1", first))
	require.NoError(t, repo.ReplaceCategories(ctx, "u2", []domain.Category{{Name: "Gym", Color: "#F56565"}}))

	got, err := repo.ListCategories(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first, got, "order is preserved")

	require.NoError(t, repo.ReplaceCategories(ctx, "u1", first[1:]))
	got, err = repo.ListCategories(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first[1:], got)

	require.NoError(t, repo.ReplaceCategories(ctx, "u1", nil))
	got, err = repo.ListCategories(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, got)

	other, err := repo.ListCategories(ctx, "u2")
	require.NoError(t, err)
	assert.Len(t, other, 1)
}

func TestSQLiteRepositoryForPath_ReopensExistingData(t *testing.T) {
	ctx := context.Background()
	home := t.TempDir()

	repo, err := NewSQLiteRepositoryForPath(home)
	require.NoError(t, err)
	require.NoError(t, repo.AppendSession(ctx, domain.SessionRecord{ID: "a", UserID: "u1", Duration: 5, Timestamp: 1}))
	require.NoError(t, repo.Close())

	reopened, err := NewSQLiteRepositoryForPath(home)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.ListSessions(ctx, "u1", 10)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestWithRetry(t *testing.T) {
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	t.Run("retries busy errors", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 3 {
				return busy
			}
			return nil
		}, 3)
		assert.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			return busy
		}, 2)
		assert.ErrorContains(t, err, "failed after 2 retries")
		assert.Equal(t, 2, calls)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			calls++
			return boom
		}, 3)
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})
}
