// Package client contains the remote catalog API contract and its HTTP
// implementation.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) to talk
//     to the catalog backend: Login, ListProducts, UpsertProduct,
//     DeleteProduct, UploadFile and the site-settings pair.
//  2. A concrete HTTP implementation (see HTTPClient) that speaks the
//     single-endpoint action-dispatch protocol, injects the bearer token as
//     a query parameter, adds a cache-buster to list fetches, and maps
//     transport and envelope failures to sentinel errors.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match
// with errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound. A server
// rejection with a user-facing message is a *RemoteError, matched with
// errors.As.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation.
package client
