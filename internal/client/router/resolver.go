package router

import (
	"context"

	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/catalog"
	"github.com/JUNIORPRUEVA/pwa-catalogo-fulltech/internal/client/models"
)

// Resolver resolves routes against the catalog store. A detail id missing
// from the cache triggers at most one fresh full fetch before the route
// settles into the terminal not-found state. List resolution never touches
// the network.
type Resolver struct {
	store   *catalog.Store
	refresh func(context.Context) ([]models.Product, error)
}

func NewResolver(store *catalog.Store, refresh func(context.Context) ([]models.Product, error)) *Resolver {
	return &Resolver{store: store, refresh: refresh}
}

// Resolution is the outcome of resolving a route. Route records which
// navigation this resolution answers, so callers can discard results that
// arrive after the user has already navigated elsewhere.
type Resolution struct {
	Route    Route
	Product  *models.Product
	NotFound bool
}

// Resolve computes the presentation for rt. Re-resolving the same route is
// idempotent: a cached detail id resolves without side effects.
func (r *Resolver) Resolve(ctx context.Context, rt Route) (Resolution, error) {
	if rt.Kind == KindList {
		return Resolution{Route: rt}, nil
	}

	if p, ok := r.store.Get(rt.ProductID); ok {
		return Resolution{Route: rt, Product: &p}, nil
	}

	// One refresh, one retry. No loops.
	items, err := r.refresh(ctx)
	if err != nil {
		return Resolution{Route: rt}, err
	}
	r.store.ReplaceAll(items)

	if p, ok := r.store.Get(rt.ProductID); ok {
		return Resolution{Route: rt, Product: &p}, nil
	}
	return Resolution{Route: rt, NotFound: true}, nil
}
