// Package commerce adapts the external backend's cart resource to the domain
// model. The backend owns the authoritative cart; this client translates its
// wire shapes (nested variant detail, string prices, server-side item ids)
// into line items and converts every failure into a non-throwing result the
// use case layer can branch on.
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"boutique/config"
	"boutique/internal/domain/entity"
	"boutique/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	msgUnreachable = "cart service unreachable"
	msgRejected    = "cart service rejected the request"
)

// Params holds dependencies for the gateway, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type cartGateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a RemoteCartStore talking to the configured commerce backend.
func New(params Params) repository.RemoteCartStore {
	return &cartGateway{
		baseURL: params.Config.CommerceAPI.BaseURL,
		httpClient: &http.Client{
			Timeout: params.Config.CommerceAPI.Timeout,
		},
		logger: params.Logger,
	}
}

// apiEnvelope is the backend's uniform response shape.
type apiEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Cart    *cartPayload `json:"carrito,omitempty"`
	Item    *itemPayload `json:"item,omitempty"`
}

type cartPayload struct {
	ID    string        `json:"id"`
	Items []itemPayload `json:"items"`
}

type itemPayload struct {
	ID       string          `json:"id"`
	Quantity int             `json:"quantity"`
	Variant  *variantPayload `json:"variant,omitempty"`
}

type variantPayload struct {
	ID      string          `json:"id"`
	Price   string          `json:"price"` // decimal carried as a string
	Stock   int             `json:"stock"`
	Size    string          `json:"size,omitempty"`
	Color   string          `json:"color,omitempty"`
	Product *productPayload `json:"product,omitempty"`
}

type productPayload struct {
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// toLineItem maps one server item to the domain shape. Missing nested variant
// info degrades to zero stock and empty strings instead of failing the fetch.
func (p itemPayload) toLineItem() entity.LineItem {
	item := entity.LineItem{
		ID:        uuid.New(),
		RemoteID:  p.ID,
		Quantity:  p.Quantity,
		UnitPrice: decimal.Zero,
	}

	if p.Variant == nil {
		return item
	}

	item.VariantID = p.Variant.ID
	item.Stock = p.Variant.Stock
	item.Size = p.Variant.Size
	item.Color = p.Variant.Color

	if price, err := decimal.NewFromString(p.Variant.Price); err == nil {
		item.UnitPrice = price
	}

	if p.Variant.Product != nil {
		item.Name = p.Variant.Product.Name
		item.ImageURL = p.Variant.Product.ImageURL
	}

	return item
}

// Fetch returns the current server cart. An unauthenticated or missing cart
// is (nil, nil), not an error.
func (g *cartGateway) Fetch(ctx context.Context, cred entity.Credential) (*entity.Cart, error) {
	envelope, status, err := g.do(ctx, http.MethodGet, "/cart", cred, nil)
	if err != nil {
		return nil, errors.Wrap(err, "fetch remote cart")
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusNotFound:
		return nil, nil
	case status < 200 || status >= 300:
		return nil, errors.Errorf("remote cart fetch returned status %d", status)
	case !envelope.Success:
		return nil, errors.Errorf("remote cart fetch failed: %s", envelope.Message)
	}

	cart := &entity.Cart{Items: []entity.LineItem{}}
	if envelope.Cart != nil {
		for _, item := range envelope.Cart.Items {
			cart.Items = append(cart.Items, item.toLineItem())
		}
	}

	return cart, nil
}

type addItemRequest struct {
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (g *cartGateway) Add(ctx context.Context, cred entity.Credential, variantID string, quantity int) repository.MutationResult {
	return g.mutate(ctx, http.MethodPost, "/cart/items", cred, addItemRequest{
		VariantID: variantID,
		Quantity:  quantity,
	})
}

func (g *cartGateway) Update(ctx context.Context, cred entity.Credential, itemID string, quantity int) repository.MutationResult {
	return g.mutate(ctx, http.MethodPut, "/cart/items/"+itemID, cred, updateItemRequest{
		Quantity: quantity,
	})
}

func (g *cartGateway) Remove(ctx context.Context, cred entity.Credential, itemID string) repository.MutationResult {
	return g.mutate(ctx, http.MethodDelete, "/cart/items/"+itemID, cred, nil)
}

func (g *cartGateway) Clear(ctx context.Context, cred entity.Credential) repository.MutationResult {
	return g.mutate(ctx, http.MethodDelete, "/cart", cred, nil)
}

// mutate runs one write call and folds every failure mode into a
// MutationResult, so callers never handle transport errors themselves.
func (g *cartGateway) mutate(ctx context.Context, method, path string, cred entity.Credential, body any) repository.MutationResult {
	envelope, status, err := g.do(ctx, method, path, cred, body)
	if err != nil {
		g.logger.Warn("remote cart call failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.Any("error", err),
		)

		return repository.MutationResult{Success: false, Message: msgUnreachable}
	}

	if status < 200 || status >= 300 || !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = msgRejected
		}

		return repository.MutationResult{Success: false, Message: message}
	}

	return repository.MutationResult{Success: true, Message: envelope.Message}
}

// do performs one HTTP round trip and decodes the response envelope. A body
// that fails to decode is treated as an empty envelope so status handling
// still applies.
func (g *cartGateway) do(ctx context.Context, method, path string, cred entity.Credential, body any) (apiEnvelope, int, error) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apiEnvelope{}, 0, errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return apiEnvelope{}, 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cred.Token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return apiEnvelope{}, 0, errors.WithStack(err)
	}
	defer resp.Body.Close()

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		envelope = apiEnvelope{}
	}

	return envelope, resp.StatusCode, nil
}
