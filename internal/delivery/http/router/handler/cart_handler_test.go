package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"boutique/internal/delivery/http/validator"
	domainerrors "boutique/internal/domain/errors"
	mockUsecase "boutique/internal/mocks/usecase"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartHandlerFixtures holds all test dependencies for cart handler tests.
type cartHandlerFixtures struct {
	handler *CartHandler
	uc      *mockUsecase.MockCartUsecase
	echo    *echo.Echo
}

func createTestCartHandler(t *testing.T) cartHandlerFixtures {
	uc := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	e.Validator = validator.New()

	return cartHandlerFixtures{
		handler: h,
		uc:      uc,
		echo:    e,
	}
}

func TestCartHandler_GetCart(t *testing.T) {
	fx := createTestCartHandler(t)

	fx.uc.EXPECT().
		Cart(mock.Anything).
		Return(usecase.CartView{TotalItems: 3, TotalPrice: decimal.NewFromInt(120)}, nil)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.GetCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_items":3`)
}

func TestCartHandler_AddItem(t *testing.T) {
	fx := createTestCartHandler(t)

	var got usecase.AddItemInput
	fx.uc.EXPECT().
		Add(mock.Anything, mock.AnythingOfType("usecase.AddItemInput")).
		Run(func(_ context.Context, input usecase.AddItemInput) {
			got = input
		}).
		Return(usecase.CartView{TotalItems: 2}, nil).
		Once()

	body := `{"variantId":"variant-1","name":"Linen Shirt","unitPrice":"39.9","quantity":2,"stock":5}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, "variant-1", got.VariantID)
	assert.Equal(t, 2, got.Quantity)
	assert.Equal(t, 5, got.Stock)
	assert.True(t, decimal.NewFromFloat(39.90).Equal(got.UnitPrice))
}

func TestCartHandler_AddItem_RejectsMissingVariant(t *testing.T) {
	fx := createTestCartHandler(t)

	body := `{"name":"Linen Shirt","quantity":2}`
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	// Validation fails before the use case is ever consulted.
	err := fx.handler.AddItem(c)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestCartHandler_UpdateQuantity(t *testing.T) {
	fx := createTestCartHandler(t)
	lineID := uuid.New()

	fx.uc.EXPECT().
		UpdateQuantity(mock.Anything, lineID, 4).
		Return(usecase.CartView{TotalItems: 4}, nil).
		Once()

	req := httptest.NewRequest(http.MethodPut, "/cart/items/"+lineID.String(), strings.NewReader(`{"quantity":4}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(lineID.String())

	require.NoError(t, fx.handler.UpdateQuantity(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_UpdateQuantity_ZeroReachesUsecase(t *testing.T) {
	fx := createTestCartHandler(t)
	lineID := uuid.New()

	// Zero is not rejected at the boundary; the use case normalizes it to 1.
	fx.uc.EXPECT().
		UpdateQuantity(mock.Anything, lineID, 0).
		Return(usecase.CartView{TotalItems: 1}, nil).
		Once()

	req := httptest.NewRequest(http.MethodPut, "/cart/items/"+lineID.String(), strings.NewReader(`{"quantity":0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(lineID.String())

	require.NoError(t, fx.handler.UpdateQuantity(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_UpdateQuantity_BadLineID(t *testing.T) {
	fx := createTestCartHandler(t)

	req := httptest.NewRequest(http.MethodPut, "/cart/items/not-a-uuid", strings.NewReader(`{"quantity":4}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, fx.handler.UpdateQuantity(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_LINE_ID")
}

func TestCartHandler_RemoveItem_PropagatesAppError(t *testing.T) {
	fx := createTestCartHandler(t)
	lineID := uuid.New()

	fx.uc.EXPECT().
		Remove(mock.Anything, lineID).
		Return(usecase.CartView{}, domainerrors.ErrCartItemNotSynced).
		Once()

	req := httptest.NewRequest(http.MethodDelete, "/cart/items/"+lineID.String(), nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(lineID.String())

	err := fx.handler.RemoveItem(c)
	require.Error(t, err)

	// The error middleware maps AppErrors to status codes; the handler just
	// passes them through.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

func TestCartHandler_Contains(t *testing.T) {
	fx := createTestCartHandler(t)

	fx.uc.EXPECT().
		IsInCart(mock.Anything, "variant-1").
		Return(true, nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/cart/contains/variant-1", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)
	c.SetParamNames("variantId")
	c.SetParamValues("variant-1")

	require.NoError(t, fx.handler.Contains(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"inCart":true`)
}

func TestCartHandler_ClearCart(t *testing.T) {
	fx := createTestCartHandler(t)

	fx.uc.EXPECT().
		Clear(mock.Anything).
		Return(usecase.CartView{}, nil).
		Once()

	req := httptest.NewRequest(http.MethodDelete, "/cart", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.ClearCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_Sync(t *testing.T) {
	fx := createTestCartHandler(t)

	fx.uc.EXPECT().
		SyncWithServer(mock.Anything).
		Return(usecase.CartView{TotalItems: 1}, nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/cart/sync", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.Sync(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCartHandler_EndSession(t *testing.T) {
	fx := createTestCartHandler(t)

	fx.uc.EXPECT().
		EndSession(mock.Anything).
		Return(nil).
		Once()

	req := httptest.NewRequest(http.MethodDelete, "/cart/session", nil)
	rec := httptest.NewRecorder()
	c := fx.echo.NewContext(req, rec)

	require.NoError(t, fx.handler.EndSession(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
