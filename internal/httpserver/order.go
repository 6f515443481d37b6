package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoply/backend/internal/logging"
	"github.com/shoply/backend/internal/service"
)

type OrderHTTP struct {
	Svc *service.OrderService
}

func (h *OrderHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	orders, err := h.Svc.ListOrders(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *OrderHTTP) CreateOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.create")

	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req service.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_order_error", "status", 400, "error", err)
		return invalidBody(c)
	}

	order, err := h.Svc.Checkout(ctx, userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	orderID, err := paramID(c, "id")
	if err != nil {
		return invalidBody(c)
	}

	order, err := h.Svc.GetOrderForUser(ctx, orderID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) TrackOrder(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	orderID, err := paramID(c, "id")
	if err != nil {
		return invalidBody(c)
	}

	info, err := h.Svc.Track(ctx, orderID, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, info)
}
