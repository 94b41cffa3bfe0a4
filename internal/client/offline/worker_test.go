package offline

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/logging"
)

// fakeRepo keeps generations in memory so tests can inspect and fail
// storage deterministically.
type fakeRepo struct {
	caches     map[string]map[string]*Entry
	failPutAll error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{caches: map[string]map[string]*Entry{}}
}

func (f *fakeRepo) PutAll(ctx context.Context, cacheName string, entries map[string]*Entry) error {
	if f.failPutAll != nil {
		return f.failPutAll
	}
	gen := map[string]*Entry{}
	for k, e := range entries {
		gen[k] = e
	}
	f.caches[cacheName] = gen
	return nil
}

func (f *fakeRepo) Get(ctx context.Context, cacheName, requestKey string) (*Entry, error) {
	if e, ok := f.caches[cacheName][requestKey]; ok {
		return e, nil
	}
	return nil, ErrCacheMiss
}

func (f *fakeRepo) CacheNames(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(f.caches))
	for name := range f.caches {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeRepo) DeleteCache(ctx context.Context, cacheName string) error {
	delete(f.caches, cacheName)
	return nil
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newAssetServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/index.html":
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte("<html>home</html>"))
		case "/app.css":
			w.Header().Set("Content-Type", "text/css")
			w.Write([]byte("body{}"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestInstall_PrimesAllAssets(t *testing.T) {
	srv := newAssetServer(t)
	repo := newFakeRepo()

	w := NewWorker("v1", []string{srv.URL + "/index.html", srv.URL + "/app.css"}, "", repo, nil, discardLogger())
	require.NoError(t, w.Install(context.Background()))

	require.Len(t, repo.caches["fulltech-catalogo-v1"], 2)
	entry := repo.caches["fulltech-catalogo-v1"][srv.URL+"/index.html"]
	require.NotNil(t, entry)
	require.Equal(t, []byte("<html>home</html>"), entry.Body)
	require.Equal(t, "text/html", entry.Header.Get("Content-Type"))
}

func TestInstall_OneFailedAssetStoresNothing(t *testing.T) {
	srv := newAssetServer(t)
	repo := newFakeRepo()

	w := NewWorker("v1", []string{srv.URL + "/index.html", srv.URL + "/missing.js"}, "", repo, nil, discardLogger())
	err := w.Install(context.Background())

	require.Error(t, err)
	require.Contains(t, err.Error(), "/missing.js")
	require.Empty(t, repo.caches, "a failed priming must leave no generation behind")
	require.Equal(t, StateInstalling, w.State())
}

func TestInstall_StorageFailureAborts(t *testing.T) {
	srv := newAssetServer(t)
	repo := newFakeRepo()
	repo.failPutAll = errors.New("disk full")

	w := NewWorker("v1", []string{srv.URL + "/index.html"}, "", repo, nil, discardLogger())
	require.Error(t, w.Install(context.Background()))
	require.Equal(t, StateInstalling, w.State())
}

func TestActivate_DeletesEveryOtherGeneration(t *testing.T) {
	repo := newFakeRepo()
	entry := &Entry{Status: http.StatusOK, Header: http.Header{}, Body: []byte("x")}
	repo.caches["fulltech-catalogo-v1"] = map[string]*Entry{"a": entry}
	repo.caches["fulltech-catalogo-v2"] = map[string]*Entry{"a": entry}
	repo.caches["fulltech-catalogo-v3"] = map[string]*Entry{"a": entry}

	w := NewWorker("v2", nil, "", repo, nil, discardLogger())
	require.NoError(t, w.Activate(context.Background()))

	require.Equal(t, StateActive, w.State())
	require.Len(t, repo.caches, 1)
	require.Contains(t, repo.caches, "fulltech-catalogo-v2")
}

func TestRoundTrip_InactivePassesThrough(t *testing.T) {
	srv := newAssetServer(t)
	repo := newFakeRepo()
	repo.caches["fulltech-catalogo-v1"] = map[string]*Entry{
		srv.URL + "/index.html": {Status: http.StatusOK, Header: http.Header{}, Body: []byte("cached")},
	}

	w := NewWorker("v1", nil, "", repo, nil, discardLogger())
	client := &http.Client{Transport: w}

	resp, err := client.Get(srv.URL + "/index.html")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "<html>home</html>", string(body), "before activation the network answers")
}

func TestRoundTrip_CacheFirstSurvivesServerLoss(t *testing.T) {
	srv := newAssetServer(t)
	repo := newFakeRepo()

	w := NewWorker("v1", []string{srv.URL + "/index.html"}, "", repo, nil, discardLogger())
	ctx := context.Background()
	require.NoError(t, w.Install(ctx))
	require.NoError(t, w.Activate(ctx))

	addr := srv.URL
	srv.Close()

	client := &http.Client{Transport: w}
	resp, err := client.Get(addr + "/index.html")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "<html>home</html>", string(body))
}

func TestRoundTrip_APIHostNeverServedFromCache(t *testing.T) {
	srv := newAssetServer(t)
	apiURL, err := url.Parse(srv.URL)
	require.NoError(t, err)

	repo := newFakeRepo()
	repo.caches["fulltech-catalogo-v1"] = map[string]*Entry{
		srv.URL + "/index.html": {Status: http.StatusOK, Header: http.Header{}, Body: []byte("stale")},
	}

	w := NewWorker("v1", nil, apiURL.Host, repo, nil, discardLogger())
	require.NoError(t, w.Activate(context.Background()))

	client := &http.Client{Transport: w}
	resp, err := client.Get(srv.URL + "/index.html")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "<html>home</html>", string(body), "API reads go to the network even with a cached copy")

	srv.Close()
	_, err = client.Get(srv.URL + "/index.html")
	require.Error(t, err, "API reads have no stale fallback")
}

func TestRoundTrip_NonGETPassesThrough(t *testing.T) {
	var method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	repo := newFakeRepo()
	repo.caches["fulltech-catalogo-v1"] = map[string]*Entry{
		srv.URL + "/items": {Status: http.StatusOK, Header: http.Header{}, Body: []byte("cached")},
	}

	w := NewWorker("v1", nil, "", repo, nil, discardLogger())
	require.NoError(t, w.Activate(context.Background()))

	client := &http.Client{Transport: w}
	resp, err := client.Post(srv.URL+"/items", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	resp.Body.Close()

	require.Equal(t, http.MethodPost, method)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestRoundTrip_MissFallsBackToNetworkWithoutWriteBack(t *testing.T) {
	srv := newAssetServer(t)
	repo := newFakeRepo()

	w := NewWorker("v1", nil, "", repo, nil, discardLogger())
	require.NoError(t, w.Activate(context.Background()))

	client := &http.Client{Transport: w}
	resp, err := client.Get(srv.URL + "/app.css")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "body{}", string(body))
	require.Empty(t, repo.caches["fulltech-catalogo-v1"], "misses are not written back")
}

func TestRequestKey_StripsFragment(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://assets.example/index.html?x=1#section", nil)
	require.NoError(t, err)
	require.Equal(t, "https://assets.example/index.html?x=1", requestKey(req))
}
