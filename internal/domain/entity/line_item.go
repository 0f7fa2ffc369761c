// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one cart entry: a specific product variant with a quantity,
// a unit price, and a snapshot of the display attributes the storefront needs.
type LineItem struct {
	// ID is the local identifier, stable within a session. It is assigned when
	// the line is created and never changes, regardless of authority mode.
	ID uuid.UUID `json:"id"`

	// RemoteID is the server-assigned item id, required for remote update and
	// remove calls. Empty until the server has seen this line.
	RemoteID string `json:"remoteId,omitempty"`

	VariantID string          `json:"variantId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	ImageURL  string          `json:"imageUrl,omitempty"`

	// Stock is the available-stock ceiling for this variant. Quantities are
	// clamped against it after every mutation.
	Stock int `json:"stock"`
}

// NewLineItem creates a line item with a fresh local id and its quantity
// already clamped against the stock ceiling.
func NewLineItem(variantID, name string, price decimal.Decimal, quantity, stock int) LineItem {
	return LineItem{
		ID:        uuid.New(),
		VariantID: variantID,
		Name:      name,
		UnitPrice: price,
		Quantity:  ClampQuantity(quantity, stock),
		Stock:     stock,
	}
}

// ClampQuantity normalizes a requested quantity into [1, stock]. Requests at
// or below zero become 1 (never removal); requests above the ceiling clamp to
// the ceiling. A non-positive stock means the ceiling is unknown, so only the
// lower bound applies.
func ClampQuantity(quantity, stock int) int {
	if quantity < 1 {
		quantity = 1
	}
	if stock >= 1 && quantity > stock {
		return stock
	}

	return quantity
}

// WithQuantity returns a copy of the line with its quantity set to the clamped
// value of quantity.
func (li LineItem) WithQuantity(quantity int) LineItem {
	li.Quantity = ClampQuantity(quantity, li.Stock)

	return li
}

// Subtotal returns unit price times quantity.
func (li LineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(decimal.NewFromInt(int64(li.Quantity)))
}
