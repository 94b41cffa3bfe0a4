package offline

import (
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()

	db, err := InitDatabase(context.Background(), filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSQLiteRepository(db)
}

func TestSQLiteRepository_PutAllGet(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	entries := map[string]*Entry{
		"https://assets.example/index.html": {
			Status: http.StatusOK,
			Header: http.Header{"Content-Type": []string{"text/html"}},
			Body:   []byte("<html></html>"),
		},
		"https://assets.example/app.css": {
			Status: http.StatusOK,
			Header: http.Header{"Content-Type": []string{"text/css"}},
			Body:   []byte("body{}"),
		},
	}
	require.NoError(t, repo.PutAll(ctx, "gen-v1", entries))

	got, err := repo.Get(ctx, "gen-v1", "https://assets.example/index.html")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, got.Status)
	require.Equal(t, "text/html", got.Header.Get("Content-Type"))
	require.Equal(t, []byte("<html></html>"), got.Body)
}

func TestSQLiteRepository_GetMiss(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.Get(context.Background(), "gen-v1", "https://assets.example/missing")
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestSQLiteRepository_GetScopedByGeneration(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	entry := &Entry{Status: http.StatusOK, Header: http.Header{}, Body: []byte("v1")}
	require.NoError(t, repo.PutAll(ctx, "gen-v1", map[string]*Entry{"k": entry}))

	_, err := repo.Get(ctx, "gen-v2", "k")
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestSQLiteRepository_PutAllOverwrites(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	first := map[string]*Entry{"k": {Status: http.StatusOK, Header: http.Header{}, Body: []byte("old")}}
	require.NoError(t, repo.PutAll(ctx, "gen-v1", first))

	second := map[string]*Entry{"k": {Status: http.StatusOK, Header: http.Header{}, Body: []byte("new")}}
	require.NoError(t, repo.PutAll(ctx, "gen-v1", second))

	got, err := repo.Get(ctx, "gen-v1", "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), got.Body)
}

func TestSQLiteRepository_CacheNamesAndDelete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	entry := &Entry{Status: http.StatusOK, Header: http.Header{}, Body: []byte("x")}
	require.NoError(t, repo.PutAll(ctx, "gen-v1", map[string]*Entry{"a": entry, "b": entry}))
	require.NoError(t, repo.PutAll(ctx, "gen-v2", map[string]*Entry{"a": entry}))

	names, err := repo.CacheNames(ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"gen-v1", "gen-v2"}, names)

	require.NoError(t, repo.DeleteCache(ctx, "gen-v1"))

	names, err = repo.CacheNames(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"gen-v2"}, names)

	_, err = repo.Get(ctx, "gen-v1", "a")
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestSQLiteRepository_DeleteUnknownIsNoop(t *testing.T) {
	repo := setupRepo(t)
	require.NoError(t, repo.DeleteCache(context.Background(), "gen-nope"))
}
