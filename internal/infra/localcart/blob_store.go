// Package localcart persists anonymous carts in a blob bucket, one JSON
// object per session. It is the durable mirror of the in-memory cart while no
// remote identity is active.
package localcart

import (
	"context"
	"encoding/json"
	"log/slog"

	"boutique/config"
	"boutique/internal/domain/entity"
	"boutique/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // register the file:// bucket driver
	"gocloud.dev/gcerrors"
)

// Params holds dependencies for the blob store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

type blobStore struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

// New opens the configured bucket and returns a LocalCartStore backed by it.
// The bucket is closed on shutdown.
func New(params Params) (repository.LocalCartStore, error) {
	bucket, err := blob.OpenBucket(params.Ctx, params.Config.LocalCart.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open local cart bucket %s", params.Config.LocalCart.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewWithBucket(bucket, params.Logger), nil
}

// NewWithBucket wraps an already-open bucket. Tests use this with memblob.
func NewWithBucket(bucket *blob.Bucket, logger *slog.Logger) repository.LocalCartStore {
	return &blobStore{bucket: bucket, logger: logger}
}

func cartKey(ownerID string) string {
	return "carts/" + ownerID + ".json"
}

// Load returns the persisted list for the owner. An absent key yields an
// empty list. Corrupt data is discarded and the key cleared; the caller never
// sees a parse error.
func (s *blobStore) Load(ctx context.Context, ownerID string) ([]entity.LineItem, error) {
	data, err := s.bucket.ReadAll(ctx, cartKey(ownerID))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return []entity.LineItem{}, nil
		}

		return nil, errors.Wrap(err, "read local cart")
	}

	var items []entity.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Warn("discarding corrupt local cart",
			slog.String("owner_id", ownerID),
			slog.Any("error", err),
		)
		if err := s.Clear(ctx, ownerID); err != nil {
			s.logger.Warn("failed to clear corrupt local cart", slog.Any("error", err))
		}

		return []entity.LineItem{}, nil
	}

	return items, nil
}

// Save serializes and writes the list for the owner.
func (s *blobStore) Save(ctx context.Context, ownerID string, items []entity.LineItem) error {
	if items == nil {
		items = []entity.LineItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "serialize local cart")
	}

	if err := s.bucket.WriteAll(ctx, cartKey(ownerID), data, nil); err != nil {
		return errors.Wrap(err, "write local cart")
	}

	return nil
}

// Clear deletes the owner's key. A missing key is success.
func (s *blobStore) Clear(ctx context.Context, ownerID string) error {
	err := s.bucket.Delete(ctx, cartKey(ownerID))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "delete local cart")
	}

	return nil
}
