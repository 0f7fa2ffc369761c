// Package handler contains the HTTP handlers for the storefront cart API.
package handler

import (
	"log/slog"
	"net/http"

	"boutique/internal/delivery/http/response"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddItemRequest is the body for adding a line to the cart.
type AddItemRequest struct {
	VariantID string          `json:"variantId" validate:"required"`
	Name      string          `json:"name" validate:"required"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity" validate:"required,min=1"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	ImageURL  string          `json:"imageUrl,omitempty"`
	Stock     int             `json:"stock" validate:"min=0"`
}

// UpdateQuantityRequest is the body for changing a line's quantity. Any
// value is accepted here: zero and negative normalize to 1 downstream, and
// values above the stock ceiling clamp to it.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart returns the current cart for the session.
func (h *CartHandler) GetCart(c echo.Context) error {
	view, err := h.uc.Cart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// AddItem merges a line into the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	view, err := h.uc.Add(c.Request().Context(), usecase.AddItemInput{
		VariantID: req.VariantID,
		Name:      req.Name,
		UnitPrice: req.UnitPrice,
		Quantity:  req.Quantity,
		Size:      req.Size,
		Color:     req.Color,
		ImageURL:  req.ImageURL,
		Stock:     req.Stock,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item added to cart")
}

// UpdateQuantity sets the quantity of one cart line.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_LINE_ID", "Invalid cart line id")
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	view, err := h.uc.UpdateQuantity(c.Request().Context(), lineID, req.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Quantity updated")
}

// RemoveItem deletes one cart line.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_LINE_ID", "Invalid cart line id")
	}

	view, err := h.uc.Remove(c.Request().Context(), lineID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Item removed from cart")
}

// ClearCart empties the cart.
func (h *CartHandler) ClearCart(c echo.Context) error {
	view, err := h.uc.Clear(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Cart cleared")
}

// Contains reports whether a variant is already in the cart.
func (h *CartHandler) Contains(c echo.Context) error {
	variantID := c.Param("variantId")
	if variantID == "" {
		return errors.WithStack(domainerrors.ErrValidationFailed)
	}

	present, err := h.uc.IsInCart(c.Request().Context(), variantID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"variantId": variantID,
		"inCart":    present,
	}, "")
}

// Sync re-fetches the canonical cart from the commerce backend. For anonymous
// sessions it returns the current cart unchanged.
func (h *CartHandler) Sync(c echo.Context) error {
	view, err := h.uc.SyncWithServer(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Cart synchronized")
}

// EndSession tears down the server-side cart state for this session.
func (h *CartHandler) EndSession(c echo.Context) error {
	if err := h.uc.EndSession(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Session ended")
}
