package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoply/backend/internal/logging"
	"github.com/shoply/backend/internal/service"
)

type PaymentHTTP struct {
	Svc *service.OrderService
}

func (h *PaymentHTTP) ProcessPayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.process")

	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req struct {
		OrderID        uint                 `json:"order_id"`
		PaymentMethod  string               `json:"payment_method"`
		PaymentDetails service.PaymentInput `json:"payment_details"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("process_payment_error", "status", 400, "error", err)
		return invalidBody(c)
	}

	order, result, err := h.Svc.ProcessPayment(ctx, userID, req.OrderID, req.PaymentMethod, req.PaymentDetails)
	if err != nil {
		return respondError(c, err)
	}

	if !result.Success {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": result.Reason,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Payment processed successfully",
		"order":   order,
	})
}

func (h *PaymentHTTP) GetPaymentMethods(c echo.Context) error {
	return c.JSON(http.StatusOK, service.PaymentMethods())
}
