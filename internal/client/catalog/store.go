// Package catalog holds the in-memory product list: the single source of
// truth for rendering, mutated optimistically with rollback on remote
// failure.
package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/models"
)

// Store owns the ordered product sequence for the page session. All
// mutations go through the store; subscribers are notified with a snapshot
// after every change so re-rendering is a reaction, not a side effect.
type Store struct {
	mu       sync.Mutex
	products []models.Product
	subs     []func([]models.Product)
}

func NewStore() *Store {
	return &Store{}
}

// Subscribe registers fn to be called with a fresh snapshot after every
// mutation. Subscribers must not mutate the slice they receive.
func (s *Store) Subscribe(fn func([]models.Product)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Snapshot returns a copy of the current sequence.
func (s *Store) Snapshot() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get looks up a product by id.
func (s *Store) Get(id string) (models.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// Len reports the number of cached products.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

// ReplaceAll overwrites the whole sequence, used after any full fetch.
func (s *Store) ReplaceAll(items []models.Product) {
	s.mu.Lock()
	s.products = make([]models.Product, len(items))
	copy(s.products, items)
	snapshot := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
}

// Upsert replaces the product with the same id in place, preserving its
// position; a product with an unknown id is inserted at the front
// (newest-first for admin-created items).
func (s *Store) Upsert(p models.Product) {
	s.mu.Lock()
	if i := s.indexLocked(p.ID); i >= 0 {
		s.products[i] = p
	} else {
		s.products = append([]models.Product{p}, s.products...)
	}
	snapshot := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
}

// RemoveByID filters out the matching product. Removing an unknown id is a
// no-op (subscribers are still notified).
func (s *Store) RemoveByID(id string) {
	s.mu.Lock()
	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	snapshot := s.snapshotLocked()
	subs := s.subs
	s.mu.Unlock()

	notify(subs, snapshot)
}

func (s *Store) indexLocked(id string) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func notify(subs []func([]models.Product), snapshot []models.Product) {
	for _, fn := range subs {
		fn(snapshot)
	}
}

// Outcome is the tagged result of an optimistic mutation: either the
// mutation was applied (and reconciled with the server's canonical data),
// or the remote call failed and the pre-mutation snapshot was restored.
type Outcome struct {
	// RolledBack is true when the remote call failed and the sequence was
	// restored to the snapshot taken at invocation.
	RolledBack bool
	// Products is the sequence held by the store after the mutation
	// settled.
	Products []models.Product
	// Err is the remote error. Set only when RolledBack.
	Err error
}

// OptimisticUpsert applies p locally, notifies subscribers, then runs
// remote. On success the server-returned canonical product replaces the
// local one in place; creations trade their provisional id for the
// server-assigned one without losing their front position. On failure the
// invocation-time snapshot is restored and the error surfaced in the
// Outcome.
//
// Snapshots are per-invocation and restored in completion order: when two
// mutations overlap, a rollback may undo a later already-confirmed change.
// Known limitation, kept as-is.
func (s *Store) OptimisticUpsert(ctx context.Context, p models.Product, remote func(context.Context, models.Product) (*models.Product, error)) Outcome {
	snapshot := s.Snapshot()

	local := p
	if local.IsNew() {
		local.ID = provisionalID()
	}
	s.Upsert(local)

	canonical, err := remote(ctx, p)
	if err != nil {
		s.ReplaceAll(snapshot)
		return Outcome{RolledBack: true, Products: s.Snapshot(), Err: err}
	}

	s.reconcile(local.ID, *canonical)
	return Outcome{Products: s.Snapshot()}
}

// OptimisticRemove removes id locally, notifies subscribers, then runs
// remote. The server returns no body for deletes, so success leaves the
// sequence as-is; failure restores the invocation-time snapshot.
func (s *Store) OptimisticRemove(ctx context.Context, id string, remote func(context.Context, string) error) Outcome {
	snapshot := s.Snapshot()

	s.RemoveByID(id)

	if err := remote(ctx, id); err != nil {
		s.ReplaceAll(snapshot)
		return Outcome{RolledBack: true, Products: s.Snapshot(), Err: err}
	}
	return Outcome{Products: s.Snapshot()}
}

// reconcile swaps the optimistic entry for the server's canonical product,
// keeping its position. If the entry is gone (clobbered by an overlapping
// mutation), the canonical product is upserted normally.
func (s *Store) reconcile(localID string, canonical models.Product) {
	s.mu.Lock()
	if i := s.indexLocked(localID); i >= 0 {
		s.products[i] = canonical
		snapshot := s.snapshotLocked()
		subs := s.subs
		s.mu.Unlock()
		notify(subs, snapshot)
		return
	}
	s.mu.Unlock()

	s.Upsert(canonical)
}

func provisionalID() string {
	return "pending-" + uuid.NewString()
}
