package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoply/backend/internal/logging"
	"github.com/shoply/backend/internal/service"
)

type CouponHTTP struct {
	Svc *service.CouponService
}

func (h *CouponHTTP) Validate(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "coupon.validate")

	var req struct {
		Code        string  `json:"code"`
		OrderAmount float64 `json:"order_amount"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("validate_coupon_error", "status", 400, "error", err)
		return invalidBody(c)
	}

	quote, err := h.Svc.Evaluate(ctx, req.Code, req.OrderAmount)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"valid":  true,
		"coupon": quote,
	})
}

func (h *CouponHTTP) Apply(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "coupon.apply")

	var req struct {
		Code string `json:"code"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("apply_coupon_error", "status", 400, "error", err)
		return invalidBody(c)
	}

	if err := h.Svc.Apply(ctx, req.Code); err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Coupon applied successfully"})
}
