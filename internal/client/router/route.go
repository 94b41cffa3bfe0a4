// Package router derives the active view from a URL fragment and resolves
// it against the catalog cache.
package router

import "strings"

// Kind tags a route value.
type Kind int

const (
	// KindList is the catalog grid.
	KindList Kind = iota
	// KindDetail is a single product page.
	KindDetail
)

// productPrefix is the reserved fragment prefix selecting a detail view.
const productPrefix = "product="

// Route is the parsed navigation state. It is derived, never stored:
// recompute it from the fragment on every navigation.
type Route struct {
	Kind      Kind
	ProductID string
}

// Parse maps a URL fragment to a Route. A fragment starting with
// "#product=" (the leading '#' is optional) selects the detail view for
// the embedded id; anything else, including the empty fragment, selects
// the list view. Pure function, independently testable.
func Parse(fragment string) Route {
	f := strings.TrimPrefix(fragment, "#")
	if id, ok := strings.CutPrefix(f, productPrefix); ok {
		return Route{Kind: KindDetail, ProductID: id}
	}
	return Route{Kind: KindList}
}
