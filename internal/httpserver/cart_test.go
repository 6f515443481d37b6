package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartHTTP_AddAndGet(t *testing.T) {
	env := newTestEnv(t)
	shirt := env.seedProduct(t, "Shirt", 10)

	body := fmt.Sprintf(`{"product_id": %d, "quantity": 2}`, shirt.ID)
	c, rec := env.newContext(http.MethodPost, "/api/cart/add", body, "1")
	require.NoError(t, env.cart.AddToCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	assert.Equal(t, 20.0, payload["total"])
	assert.Len(t, payload["items"], 1)

	c, rec = env.newContext(http.MethodGet, "/api/cart", "", "1")
	require.NoError(t, env.cart.GetCart(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 20.0, decodeBody(t, rec)["total"])
}

func TestCartHTTP_AddUnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	c, rec := env.newContext(http.MethodPost, "/api/cart/add", `{"product_id": 999}`, "1")
	require.NoError(t, env.cart.AddToCart(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "product not found", decodeBody(t, rec)["message"])
}

func TestCartHTTP_RequiresUser(t *testing.T) {
	env := newTestEnv(t)

	c, rec := env.newContext(http.MethodGet, "/api/cart", "", "")
	require.NoError(t, env.cart.GetCart(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartHTTP_RemoveAndClear(t *testing.T) {
	env := newTestEnv(t)
	shirt := env.seedProduct(t, "Shirt", 10)
	mug := env.seedProduct(t, "Mug", 20)
	env.seedCartItem(t, 1, shirt.ID, 1)
	env.seedCartItem(t, 1, mug.ID, 1)

	c, rec := env.newContext(http.MethodDelete, "/api/cart/remove/1", "", "1")
	c.SetParamNames("productId")
	c.SetParamValues(fmt.Sprint(shirt.ID))
	require.NoError(t, env.cart.RemoveFromCart(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 20.0, decodeBody(t, rec)["total"])

	c, rec = env.newContext(http.MethodDelete, "/api/cart/clear", "", "1")
	require.NoError(t, env.cart.ClearCart(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0.0, decodeBody(t, rec)["total"])
}
