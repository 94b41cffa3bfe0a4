// Package offline implements the offline resource cache: a long-lived
// interception layer that primes a versioned generation of core assets and
// serves them at the transport boundary, independent of which component
// issued the request.
package offline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/logging"
)

// State names a phase of the worker lifecycle.
type State string

const (
	// StateInstalling covers the worker from creation until Activate
	// finishes; requests pass through untouched.
	StateInstalling State = "installing"
	// StateActive means the current generation is primed, stale
	// generations are gone, and interception is on.
	StateActive State = "active"
)

// cacheNamePrefix plus the version token forms a generation name. Bumping
// the version is the only way to invalidate the primed assets.
const cacheNamePrefix = "fulltech-catalogo-"

// Worker mirrors the lifecycle of a page-controlling service worker:
// install primes a manifest of core assets all-or-nothing, activate wipes
// every other generation, and the fetch path dispatches each intercepted
// request by class: mutating (pass through), API read (network-first,
// never cached), static asset (cache-first).
//
// Worker implements http.RoundTripper; wire it as the transport of the
// http.Client the rest of the app uses.
type Worker struct {
	version string
	assets  []string
	apiHost string
	repo    Repository
	base    http.RoundTripper
	log     logging.Logger

	mu    sync.Mutex
	state State
}

// NewWorker builds a worker priming assets (absolute URLs) into the
// generation named after version. Requests whose host equals apiHost are
// treated as API reads. A nil base falls back to http.DefaultTransport.
func NewWorker(version string, assets []string, apiHost string, repo Repository, base http.RoundTripper, log logging.Logger) *Worker {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Worker{
		version: version,
		assets:  assets,
		apiHost: apiHost,
		repo:    repo,
		base:    base,
		log:     log.With("component", "offline-worker"),
		state:   StateInstalling,
	}
}

// CacheName returns the current generation name.
func (w *Worker) CacheName() string {
	return cacheNamePrefix + w.version
}

// State returns the current lifecycle state.
func (w *Worker) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Install fetches every manifest asset and stores the whole set in one
// atomic write. Any single failed fetch aborts the install with nothing
// stored: a half-primed generation cannot be told apart from a complete
// one at serve time, so the manifest must only list assets reachable at
// install time.
func (w *Worker) Install(ctx context.Context) error {
	entries := make(map[string]*Entry, len(w.assets))
	for _, asset := range w.assets {
		key, entry, err := w.fetchAsset(ctx, asset)
		if err != nil {
			return fmt.Errorf("priming %s: %w", asset, err)
		}
		entries[key] = entry
	}

	if err := w.repo.PutAll(ctx, w.CacheName(), entries); err != nil {
		return fmt.Errorf("storing generation %s: %w", w.CacheName(), err)
	}

	w.log.Info(ctx, "core assets primed", "cache", w.CacheName(), "assets", len(entries))
	return nil
}

// Activate deletes every generation whose name differs from the current
// one, then turns interception on. Cleanup happens before any request is
// served, so no caller ever sees a mix of generations.
func (w *Worker) Activate(ctx context.Context) error {
	names, err := w.repo.CacheNames(ctx)
	if err != nil {
		return fmt.Errorf("listing cache generations: %w", err)
	}

	current := w.CacheName()
	for _, name := range names {
		if name == current {
			continue
		}
		if err := w.repo.DeleteCache(ctx, name); err != nil {
			return fmt.Errorf("deleting stale generation %s: %w", name, err)
		}
		w.log.Info(ctx, "stale cache generation removed", "cache", name)
	}

	w.mu.Lock()
	w.state = StateActive
	w.mu.Unlock()

	w.log.Info(ctx, "offline worker active", "cache", current)
	return nil
}

// RoundTrip dispatches an intercepted request by class:
//
//   - not active yet, or non-GET: pass through, so mutations always hit
//     the network and are never served stale;
//   - GET to the API host: network-first with no stale fallback, and the
//     response is not written to the cache; catalog and price data win
//     correctness over offline availability;
//   - any other GET: cache-first; a hit is served verbatim, a miss goes to
//     the network without write-back (freshness beyond the primed manifest
//     is not guaranteed).
func (w *Worker) RoundTrip(req *http.Request) (*http.Response, error) {
	if w.State() != StateActive || req.Method != http.MethodGet {
		return w.base.RoundTrip(req)
	}

	if req.URL.Host == w.apiHost {
		return w.base.RoundTrip(req)
	}

	entry, err := w.repo.Get(req.Context(), w.CacheName(), requestKey(req))
	if err == nil {
		return entry.Response(req), nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		w.log.Warn(req.Context(), "cache lookup failed, falling back to network", "key", requestKey(req), "err", err)
	}
	return w.base.RoundTrip(req)
}

func (w *Worker) fetchAsset(ctx context.Context, asset string) (string, *Entry, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, asset, nil)
	if err != nil {
		return "", nil, err
	}

	resp, err := w.base.RoundTrip(req)
	if err != nil {
		return "", nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, err
	}

	entry := &Entry{Status: resp.StatusCode, Header: resp.Header.Clone(), Body: body}
	return requestKey(req), entry, nil
}

// requestKey canonicalizes a request into its cache key: the full URL
// minus the fragment.
func requestKey(req *http.Request) string {
	u := *req.URL
	u.Fragment = ""
	return u.String()
}
