package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoply/backend/internal/logging"
	"github.com/shoply/backend/internal/models"
	"github.com/shoply/backend/internal/service"
)

type AdminHTTP struct {
	Svc     *service.AdminService
	Catalog *service.CatalogService
	Orders  *service.OrderService
	Coupons *service.CouponService
}

func (h *AdminHTTP) Stats(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.Svc.Stats(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.create_product")

	var product models.Product
	if err := c.Bind(&product); err != nil {
		l.Warn("create_product_error", "status", 400, "error", err)
		return invalidBody(c)
	}

	if err := h.Catalog.CreateProduct(ctx, &product); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, product)
}

func (h *AdminHTTP) UpdateProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return invalidBody(c)
	}

	var req models.Product
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	product, err := h.Catalog.UpdateProduct(ctx, id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *AdminHTTP) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return invalidBody(c)
	}

	if err := h.Catalog.DeleteProduct(ctx, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}

func (h *AdminHTTP) ListOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.Orders.ListAll(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

func (h *AdminHTTP) UpdateOrderStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.update_order_status")

	id, err := paramID(c, "id")
	if err != nil {
		return invalidBody(c)
	}

	var req struct {
		Status         string  `json:"status"`
		TrackingNumber *string `json:"tracking_number"`
		Note           string  `json:"note"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("update_order_status_error", "status", 400, "error", err)
		return invalidBody(c)
	}

	order, err := h.Orders.UpdateStatus(ctx, id, req.Status, req.Note, req.TrackingNumber)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *AdminHTTP) ListUsers(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.Svc.ListUsers(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *AdminHTTP) SetUserAdmin(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return invalidBody(c)
	}

	var req struct {
		IsAdmin bool `json:"is_admin"`
	}
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	user, err := h.Svc.SetAdmin(ctx, id, req.IsAdmin)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *AdminHTTP) ListCoupons(c echo.Context) error {
	ctx := c.Request().Context()

	coupons, err := h.Coupons.List(ctx)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, coupons)
}

func (h *AdminHTTP) CreateCoupon(c echo.Context) error {
	ctx := c.Request().Context()

	var coupon models.Coupon
	if err := c.Bind(&coupon); err != nil {
		return invalidBody(c)
	}

	if err := h.Coupons.Create(ctx, &coupon); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, coupon)
}

func (h *AdminHTTP) UpdateCoupon(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return invalidBody(c)
	}

	var req models.Coupon
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	coupon, err := h.Coupons.Update(ctx, id, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, coupon)
}

func (h *AdminHTTP) DeleteCoupon(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := paramID(c, "id")
	if err != nil {
		return invalidBody(c)
	}

	if err := h.Coupons.Delete(ctx, id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Coupon deleted successfully"})
}
