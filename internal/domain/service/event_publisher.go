package service

import (
	"context"
)

// Cart event actions.
const (
	CartEventAdd    = "add"
	CartEventUpdate = "update"
	CartEventRemove = "remove"
	CartEventClear  = "clear"
	CartEventSync   = "sync"
)

// CartEvent describes one successful cart mutation, published for downstream
// consumers (merchant dashboard, analytics). Publishing is best-effort and
// never blocks the mutation result.
type CartEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	Action    string `json:"action"`
	OwnerID   string `json:"owner_id"`             // Session id or user id
	Authority string `json:"authority"`            // "local" or "remote"
	VariantID string `json:"variant_id,omitempty"` // Empty for clear/sync
	Quantity  int    `json:"quantity,omitempty"`
	ItemCount int    `json:"item_count"` // Cart size after the mutation
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishCartEvent publishes a cart activity event for async processing
	PublishCartEvent(ctx context.Context, event *CartEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
