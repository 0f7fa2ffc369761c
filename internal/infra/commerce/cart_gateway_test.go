package commerce

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"boutique/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGateway(baseURL string) *cartGateway {
	return &cartGateway{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 2 * time.Second},
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func testCredential() entity.Credential {
	return entity.Credential{Token: "token-abc", UserID: "user-1"}
}

func TestFetch_MapsServerCart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/cart", r.URL.Path)
		assert.Equal(t, "Bearer token-abc", r.Header.Get("Authorization"))

		_, _ = w.Write([]byte(`{
			"success": true,
			"message": "ok",
			"carrito": {
				"id": "cart-9",
				"items": [
					{
						"id": "srv-1",
						"quantity": 2,
						"variant": {
							"id": "v1",
							"price": "39.90",
							"stock": 10,
							"size": "M",
							"color": "navy",
							"product": {"name": "Linen shirt", "imageUrl": "https://img/1.jpg"}
						}
					}
				]
			}
		}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	cart, err := gateway.Fetch(context.Background(), testCredential())
	require.NoError(t, err)
	require.NotNil(t, cart)
	require.Len(t, cart.Items, 1)

	item := cart.Items[0]
	assert.Equal(t, "srv-1", item.RemoteID)
	assert.Equal(t, "v1", item.VariantID)
	assert.Equal(t, "Linen shirt", item.Name)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 10, item.Stock)
	assert.Equal(t, "M", item.Size)
	assert.Equal(t, "navy", item.Color)
	assert.True(t, item.UnitPrice.InexactFloat64() == 39.90)
	assert.NotEqual(t, item.ID.String(), "", "local id must be assigned")
}

func TestFetch_MissingVariantDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"success": true,
			"carrito": {"id": "cart-9", "items": [{"id": "srv-2", "quantity": 1}]}
		}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	cart, err := gateway.Fetch(context.Background(), testCredential())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)

	item := cart.Items[0]
	assert.Equal(t, "", item.VariantID)
	assert.Equal(t, "", item.Name)
	assert.Equal(t, 0, item.Stock)
	assert.True(t, item.UnitPrice.IsZero())
}

func TestFetch_UnparseablePriceBecomesZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"success": true,
			"carrito": {"items": [{"id": "srv-3", "quantity": 1, "variant": {"id": "v3", "price": "n/a", "stock": 4}}]}
		}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	cart, err := gateway.Fetch(context.Background(), testCredential())
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.True(t, cart.Items[0].UnitPrice.IsZero())
}

func TestFetch_UnauthorizedIsNoCartNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	cart, err := gateway.Fetch(context.Background(), entity.Credential{})
	require.NoError(t, err)
	assert.Nil(t, cart)
}

func TestFetch_ServerErrorIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	_, err := gateway.Fetch(context.Background(), testCredential())
	assert.Error(t, err)
}

func TestAdd_SendsVariantAndQuantity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cart/items", r.URL.Path)

		var body addItemRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "v1", body.VariantID)
		assert.Equal(t, 3, body.Quantity)

		_, _ = w.Write([]byte(`{"success": true, "message": "added"}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	result := gateway.Add(context.Background(), testCredential(), "v1", 3)
	assert.True(t, result.Success)
	assert.Equal(t, "added", result.Message)
}

func TestMutate_ServerRejectionKeepsMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"success": false, "message": "not enough stock"}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	result := gateway.Add(context.Background(), testCredential(), "v1", 99)
	assert.False(t, result.Success)
	assert.Equal(t, "not enough stock", result.Message)
}

func TestMutate_TransportFailureIsResultNotPanic(t *testing.T) {
	gateway := newTestGateway("http://127.0.0.1:1")

	result := gateway.Clear(context.Background(), testCredential())
	assert.False(t, result.Success)
	assert.Equal(t, msgUnreachable, result.Message)
}

func TestUpdateAndRemove_TargetServerItemID(t *testing.T) {
	var gotPaths []string
	var gotMethods []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPaths = append(gotPaths, r.URL.Path)
		gotMethods = append(gotMethods, r.Method)
		_, _ = w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	gateway := newTestGateway(server.URL)

	assert.True(t, gateway.Update(context.Background(), testCredential(), "srv-7", 2).Success)
	assert.True(t, gateway.Remove(context.Background(), testCredential(), "srv-7").Success)

	require.Equal(t, []string{"/cart/items/srv-7", "/cart/items/srv-7"}, gotPaths)
	require.Equal(t, []string{http.MethodPut, http.MethodDelete}, gotMethods)
}
