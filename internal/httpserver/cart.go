package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoply/backend/internal/logging"
	"github.com/shoply/backend/internal/service"
)

type CartHTTP struct {
	Svc *service.CartService
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get")

	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	cart, err := h.Svc.GetCart(ctx, userID)
	if err != nil {
		l.Error("get_cart_error", "error", err)
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) AddToCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add")

	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req struct {
		ProductID uint `json:"product_id"`
		Quantity  uint `json:"quantity"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("add_to_cart_error", "status", 400, "error", err)
		return invalidBody(c)
	}

	cart, err := h.Svc.AddToCart(ctx, userID, req.ProductID, req.Quantity)
	if err != nil {
		return respondError(c, err)
	}

	l.Info("cart_item_added", "product_id", req.ProductID)
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) RemoveFromCart(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	productID, err := paramID(c, "productId")
	if err != nil {
		return invalidBody(c)
	}

	cart, err := h.Svc.RemoveFromCart(ctx, userID, productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, cart)
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	cart, err := h.Svc.ClearCart(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}

	l.Info("cart_cleared")
	return c.JSON(http.StatusOK, cart)
}
