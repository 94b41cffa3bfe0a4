package offline

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/dbx"
)

// SQLiteRepository implements Repository over the cache_entries table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// PutAll writes the whole generation inside one transaction, so a failed
// priming never leaves a partial generation behind.
func (r *SQLiteRepository) PutAll(ctx context.Context, cacheName string, entries map[string]*Entry) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for key, e := range entries {
			if err := put(ctx, tx, cacheName, key, e); err != nil {
				return err
			}
		}
		return nil
	})
}

func put(ctx context.Context, db dbx.DBTX, cacheName, requestKey string, e *Entry) error {
	headers, err := json.Marshal(e.Header)
	if err != nil {
		return fmt.Errorf("failed to encode headers: %w", err)
	}

	query := `INSERT INTO cache_entries (cache_name, request_key, status, headers, body)
			VALUES (?, ?, ?, ?, ?)
			ON CONFLICT(cache_name, request_key) DO UPDATE SET
				status = excluded.status,
				headers = excluded.headers,
				body = excluded.body
	`
	if _, err := db.ExecContext(ctx, query, cacheName, requestKey, e.Status, headers, e.Body); err != nil {
		return fmt.Errorf("failed to store cache entry %s: %w", requestKey, err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, cacheName, requestKey string) (*Entry, error) {
	query := `SELECT status, headers, body FROM cache_entries WHERE cache_name = ? AND request_key = ?`

	var (
		status  int
		headers []byte
		body    []byte
	)
	err := r.db.QueryRowContext(ctx, query, cacheName, requestKey).Scan(&status, &headers, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache entry %s: %w", requestKey, err)
	}

	header := http.Header{}
	if err := json.Unmarshal(headers, &header); err != nil {
		return nil, fmt.Errorf("failed to decode headers for %s: %w", requestKey, err)
	}
	return &Entry{Status: status, Header: header, Body: body}, nil
}

func (r *SQLiteRepository) CacheNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT cache_name FROM cache_entries`)
	if err != nil {
		return nil, fmt.Errorf("failed to list cache names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return names, nil
}

func (r *SQLiteRepository) DeleteCache(ctx context.Context, cacheName string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cache_entries WHERE cache_name = ?`, cacheName); err != nil {
		return fmt.Errorf("failed to delete cache %s: %w", cacheName, err)
	}
	return nil
}
