package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoply/backend/internal/service"
)

type UserHTTP struct {
	Svc *service.UserService
}

func (h *UserHTTP) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	user, err := h.Svc.GetProfile(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHTTP) UpdateProfile(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req service.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return invalidBody(c)
	}

	user, err := h.Svc.UpdateProfile(ctx, userID, req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
