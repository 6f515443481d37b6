package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shoply/backend/internal/service"
)

func getUserID(c echo.Context) (uint, error) {
	v := c.Get("user_id")
	s, ok := v.(string)
	if !ok || s == "" {
		return 0, errors.New("unauthorized")
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errors.New("unauthorized")
	}
	return uint(id), nil
}

func paramID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// respondError maps service sentinels onto the HTTP error taxonomy; store
// errors fall through as 500 with the underlying message exposed.
func respondError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"message": errMessage(err)})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"message": errMessage(err)})
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"message": errMessage(err)})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
}

func errMessage(err error) string {
	msg := err.Error()
	for _, prefix := range []string{"validation: ", "not found: ", "forbidden: "} {
		if rest, found := strings.CutPrefix(msg, prefix); found {
			return rest
		}
	}
	return msg
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
}

func invalidBody(c echo.Context) error {
	return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
}
