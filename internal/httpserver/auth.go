package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shoply/backend/internal/logging"
	"github.com/shoply/backend/internal/service"
)

type AuthHTTP struct {
	Svc *service.AuthService
}

func createCookie(name, value, path string, exp time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     path,
		Expires:  exp,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("register_error", "status", 400, "error", err)
		return invalidBody(c)
	}

	user, err := h.Svc.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		l.Warn("login_error", "status", 400, "error", err)
		return invalidBody(c)
	}

	result, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	c.SetCookie(createCookie("accessToken", result.AccessToken, "/", result.AccessExp))
	c.SetCookie(createCookie("refreshToken", result.RefreshToken, "/", result.RefreshExp))

	return c.JSON(http.StatusOK, echo.Map{
		"access_token":  result.AccessToken,
		"refresh_token": result.RefreshToken,
		"is_admin":      result.IsAdmin,
	})
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	refreshCookie, err := c.Cookie("refreshToken")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "refresh token missing"})
	}

	if err := h.Svc.Logout(ctx, refreshCookie.Value); err != nil {
		return respondError(c, err)
	}

	c.SetCookie(createCookie("accessToken", "", "/", time.Unix(0, 0)))
	c.SetCookie(createCookie("refreshToken", "", "/", time.Unix(0, 0)))
	return c.JSON(http.StatusOK, echo.Map{"message": "logged out"})
}
