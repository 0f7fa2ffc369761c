package localcart

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"boutique/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/memblob"
)

func newTestStore(t *testing.T) (*blobStore, *blob.Bucket) {
	bucket, err := blob.OpenBucket(context.Background(), "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewWithBucket(bucket, logger).(*blobStore), bucket
}

func TestBlobStore_LoadAbsentKey(t *testing.T) {
	store, _ := newTestStore(t)

	items, err := store.Load(context.Background(), "session-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestBlobStore_SaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	saved := []entity.LineItem{
		entity.NewLineItem("v1", "Linen shirt", decimal.NewFromFloat(39.90), 2, 10),
		entity.NewLineItem("v2", "Silk scarf", decimal.NewFromFloat(24.50), 1, 3),
	}

	require.NoError(t, store.Save(ctx, "session-1", saved))

	loaded, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	for i := range saved {
		assert.Equal(t, saved[i].VariantID, loaded[i].VariantID)
		assert.Equal(t, saved[i].Quantity, loaded[i].Quantity)
		assert.True(t, saved[i].UnitPrice.Equal(loaded[i].UnitPrice),
			"price mismatch: %s vs %s", saved[i].UnitPrice, loaded[i].UnitPrice)
	}
}

func TestBlobStore_SaveIsolatedPerOwner(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "session-1", []entity.LineItem{
		entity.NewLineItem("v1", "Linen shirt", decimal.NewFromInt(40), 1, 5),
	}))

	other, err := store.Load(ctx, "session-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestBlobStore_CorruptDataDiscardedAndKeyCleared(t *testing.T) {
	store, bucket := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, bucket.WriteAll(ctx, cartKey("session-1"), []byte("{not json"), nil))

	items, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, items)

	exists, err := bucket.Exists(ctx, cartKey("session-1"))
	require.NoError(t, err)
	assert.False(t, exists, "corrupt key should have been cleared")
}

func TestBlobStore_ClearIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "session-1", []entity.LineItem{
		entity.NewLineItem("v1", "Linen shirt", decimal.NewFromInt(40), 1, 5),
	}))

	require.NoError(t, store.Clear(ctx, "session-1"))
	require.NoError(t, store.Clear(ctx, "session-1"))

	items, err := store.Load(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
