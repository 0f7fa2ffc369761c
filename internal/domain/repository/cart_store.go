// Package repository defines the persistence boundaries of the domain. The
// cart has two backing stores, selected per operation by authority mode: the
// durable local cache for anonymous sessions and the remote server resource
// for authenticated ones.
package repository

import (
	"context"

	"boutique/internal/domain/entity"
)

// LocalCartStore persists the anonymous cart, one serialized item list per
// session owner.
type LocalCartStore interface {
	// Load returns the persisted list for the owner. An absent key yields an
	// empty list; corrupt data is discarded, the key cleared, and an empty
	// list returned rather than an error.
	Load(ctx context.Context, ownerID string) ([]entity.LineItem, error)

	// Save serializes and writes the list. Callers treat failures as
	// non-fatal: the in-memory cart stays authoritative.
	Save(ctx context.Context, ownerID string, items []entity.LineItem) error

	// Clear deletes the owner's key. Clearing an absent key succeeds.
	Clear(ctx context.Context, ownerID string) error
}

// MutationResult is the non-throwing outcome of a remote cart mutation.
// Transport and server failures are converted into Success=false with a
// human-readable message, so callers branch instead of unwrapping errors.
type MutationResult struct {
	Success bool
	Message string
}

// RemoteCartStore adapts the authoritative server-side cart resource.
type RemoteCartStore interface {
	// Fetch returns the current server cart. A not-authenticated or missing
	// cart yields (nil, nil); only transport or server failures error.
	Fetch(ctx context.Context, cred entity.Credential) (*entity.Cart, error)

	Add(ctx context.Context, cred entity.Credential, variantID string, quantity int) MutationResult
	Update(ctx context.Context, cred entity.Credential, itemID string, quantity int) MutationResult
	Remove(ctx context.Context, cred entity.Credential, itemID string) MutationResult
	Clear(ctx context.Context, cred entity.Credential) MutationResult
}
