package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
		stock    int
		want     int
	}{
		{name: "within bounds", quantity: 3, stock: 5, want: 3},
		{name: "zero becomes one", quantity: 0, stock: 5, want: 1},
		{name: "negative becomes one", quantity: -4, stock: 5, want: 1},
		{name: "above ceiling clamps", quantity: 9, stock: 5, want: 5},
		{name: "exactly at ceiling", quantity: 5, stock: 5, want: 5},
		{name: "unknown stock has no ceiling", quantity: 500, stock: 0, want: 500},
		{name: "negative stock has no ceiling", quantity: 500, stock: -1, want: 500},
		{name: "unknown stock still floors at one", quantity: 0, stock: 0, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampQuantity(tt.quantity, tt.stock))
		})
	}
}

func TestNewLineItem_ClampsOnCreation(t *testing.T) {
	item := NewLineItem("variant-1", "Linen Shirt", decimal.NewFromFloat(39.90), 10, 4)

	assert.NotEqual(t, uuid.Nil, item.ID)
	assert.Empty(t, item.RemoteID)
	assert.Equal(t, 4, item.Quantity)
	assert.Equal(t, 4, item.Stock)
}

func TestCart_MergeAdd_SumsSameVariant(t *testing.T) {
	cart := Cart{}

	first := cart.MergeAdd(NewLineItem("variant-1", "Linen Shirt", decimal.NewFromFloat(39.90), 2, 5))
	require.Len(t, cart.Items, 1)

	merged := cart.MergeAdd(NewLineItem("variant-1", "Linen Shirt", decimal.NewFromFloat(39.90), 2, 5))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, merged.Quantity)

	// The merged line keeps the original local id.
	assert.Equal(t, first.ID, merged.ID)
}

func TestCart_MergeAdd_ClampsMergedQuantity(t *testing.T) {
	cart := Cart{}
	cart.MergeAdd(NewLineItem("variant-1", "Linen Shirt", decimal.NewFromFloat(39.90), 3, 5))

	merged := cart.MergeAdd(NewLineItem("variant-1", "Linen Shirt", decimal.NewFromFloat(39.90), 4, 5))
	assert.Equal(t, 5, merged.Quantity)
}

func TestCart_MergeAdd_DistinctVariantsAppend(t *testing.T) {
	cart := Cart{}
	cart.MergeAdd(NewLineItem("variant-1", "Linen Shirt", decimal.NewFromFloat(39.90), 1, 5))
	cart.MergeAdd(NewLineItem("variant-2", "Wool Scarf", decimal.NewFromFloat(24.00), 1, 5))

	assert.Len(t, cart.Items, 2)
	assert.True(t, cart.Contains("variant-1"))
	assert.True(t, cart.Contains("variant-2"))
	assert.False(t, cart.Contains("variant-3"))
}

func TestCart_Remove(t *testing.T) {
	cart := Cart{}
	item := cart.MergeAdd(NewLineItem("variant-1", "Linen Shirt", decimal.NewFromFloat(39.90), 1, 5))

	assert.False(t, cart.Remove(uuid.New()))
	require.Len(t, cart.Items, 1)

	assert.True(t, cart.Remove(item.ID))
	assert.Empty(t, cart.Items)
}

func TestCart_SetQuantity(t *testing.T) {
	cart := Cart{}
	item := cart.MergeAdd(NewLineItem("variant-1", "Linen Shirt", decimal.NewFromFloat(39.90), 2, 5))

	assert.False(t, cart.SetQuantity(uuid.New(), 3))

	require.True(t, cart.SetQuantity(item.ID, 0))
	got, ok := cart.FindByID(item.ID)
	require.True(t, ok)
	assert.Equal(t, 1, got.Quantity)

	require.True(t, cart.SetQuantity(item.ID, 99))
	got, _ = cart.FindByID(item.ID)
	assert.Equal(t, 5, got.Quantity)
}

func TestCart_Totals(t *testing.T) {
	cart := Cart{}
	assert.Equal(t, 0, cart.TotalQuantity())
	assert.True(t, decimal.Zero.Equal(cart.TotalPrice()))

	cart.MergeAdd(NewLineItem("variant-1", "Linen Shirt", decimal.NewFromFloat(39.90), 2, 5))
	cart.MergeAdd(NewLineItem("variant-2", "Wool Scarf", decimal.NewFromFloat(24.00), 3, 5))

	assert.Equal(t, 5, cart.TotalQuantity())
	assert.True(t, decimal.NewFromFloat(151.80).Equal(cart.TotalPrice()))
}

func TestLineItem_Subtotal(t *testing.T) {
	item := NewLineItem("variant-1", "Linen Shirt", decimal.NewFromFloat(39.90), 3, 5)
	assert.True(t, decimal.NewFromFloat(119.70).Equal(item.Subtotal()))
}
