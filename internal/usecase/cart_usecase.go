package usecase

import (
	"context"

	"boutique/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddItemInput is a line-item candidate for an add operation. In local mode
// the snapshot fields (name, price, stock, descriptors) become the stored
// line; in remote mode only the variant id and quantity reach the server,
// which answers with its own canonical detail.
type AddItemInput struct {
	VariantID string          `json:"variant_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	ImageURL  string          `json:"image_url,omitempty"`
	Stock     int             `json:"stock"`
}

// CartView is the read-only snapshot handed to the delivery layer. Consumers
// never hold a reference into the manager's mutable state.
type CartView struct {
	Items      []entity.LineItem `json:"items"`
	TotalItems int               `json:"total_items"`
	TotalPrice decimal.Decimal   `json:"total_price"`
}

// CartUsecase is the mode-agnostic cart API. Every operation consults the
// session on the context to decide whether the durable local cache or the
// remote cart resource is authoritative, and resolves only once the in-memory
// view is final for that call.
type CartUsecase interface {
	// Cart returns the current cart for the session.
	Cart(ctx context.Context) (CartView, error)

	// Add merges a candidate line into the cart. Same-variant adds sum
	// quantities and clamp against the stock ceiling.
	Add(ctx context.Context, input AddItemInput) (CartView, error)

	// UpdateQuantity sets a line's quantity, clamped to [1, stock]. A request
	// at or below zero is normalized to 1, never treated as removal.
	UpdateQuantity(ctx context.Context, lineID uuid.UUID, quantity int) (CartView, error)

	// Remove deletes the identified line.
	Remove(ctx context.Context, lineID uuid.UUID) (CartView, error)

	// Clear empties the cart. Calling it on an already-empty cart succeeds.
	Clear(ctx context.Context) (CartView, error)

	// IsInCart reports whether any line references the variant.
	IsInCart(ctx context.Context, variantID string) (bool, error)

	// SyncWithServer re-fetches the canonical cart from the server and clears
	// the local cache. It is a silent no-op for anonymous sessions.
	SyncWithServer(ctx context.Context) (CartView, error)

	// EndSession tears down the session's in-memory cart state, persisting it
	// first when the session is anonymous.
	EndSession(ctx context.Context) error
}
