package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shoply/backend/internal/service"
)

type WishlistHTTP struct {
	Svc *service.WishlistService
}

func (h *WishlistHTTP) GetWishlist(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	wishlist, err := h.Svc.GetWishlist(ctx, userID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, wishlist)
}

func (h *WishlistHTTP) Add(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	productID, err := paramID(c, "productId")
	if err != nil {
		return invalidBody(c)
	}

	wishlist, err := h.Svc.Add(ctx, userID, productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Product added to wishlist",
		"wishlist": wishlist,
	})
}

func (h *WishlistHTTP) Remove(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	productID, err := paramID(c, "productId")
	if err != nil {
		return invalidBody(c)
	}

	wishlist, err := h.Svc.Remove(ctx, userID, productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Product removed from wishlist",
		"wishlist": wishlist,
	})
}

func (h *WishlistHTTP) Check(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	productID, err := paramID(c, "productId")
	if err != nil {
		return invalidBody(c)
	}

	inWishlist, err := h.Svc.Contains(ctx, userID, productID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"is_in_wishlist": inWishlist})
}
