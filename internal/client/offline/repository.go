package offline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
)

// ErrCacheMiss signals that no entry is stored under the requested
// (cacheName, requestKey) pair.
var ErrCacheMiss = errors.New("cache miss")

// Entry is one cached response, stored verbatim: status, headers and body.
type Entry struct {
	Status int
	Header http.Header
	Body   []byte
}

// Response materializes the entry as an *http.Response answering req.
func (e *Entry) Response(req *http.Request) *http.Response {
	return &http.Response{
		StatusCode:    e.Status,
		Status:        http.StatusText(e.Status),
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        e.Header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(e.Body)),
		ContentLength: int64(len(e.Body)),
		Request:       req,
	}
}

// Repository persists cache generations, each a named set of primed
// responses. Exactly one generation is current at any time; the rest are
// garbage awaiting cleanup on activation.
type Repository interface {
	// PutAll stores a whole generation atomically: either every entry
	// lands or none does.
	PutAll(ctx context.Context, cacheName string, entries map[string]*Entry) error

	// Get returns the entry stored under (cacheName, requestKey), or
	// ErrCacheMiss.
	Get(ctx context.Context, cacheName, requestKey string) (*Entry, error)

	// CacheNames lists every stored generation.
	CacheNames(ctx context.Context) ([]string, error)

	// DeleteCache removes a whole generation. Unknown names are a no-op.
	DeleteCache(ctx context.Context, cacheName string) error
}
