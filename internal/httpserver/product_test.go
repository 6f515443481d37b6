package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductHTTP_ListWithPagination(t *testing.T) {
	env := newTestEnv(t)
	for i := 0; i < 12; i++ {
		env.seedProduct(t, fmt.Sprintf("Product %02d", i), float64(i+1))
	}

	c, rec := env.newContext(http.MethodGet, "/api/products?page=2&size=5", "", "")
	require.NoError(t, env.products.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	meta := payload["meta"].(map[string]any)
	assert.Equal(t, 2.0, meta["page"])
	assert.Equal(t, 12.0, meta["total"])
	assert.Equal(t, 3.0, meta["total_pages"])
	assert.Equal(t, true, meta["has_prev"])
	assert.Equal(t, true, meta["has_next"])
	assert.Len(t, payload["data"], 5)
}

func TestProductHTTP_ListByCategory(t *testing.T) {
	env := newTestEnv(t)
	env.seedProduct(t, "Shirt", 10)

	c, rec := env.newContext(http.MethodGet, "/api/products?category=missing", "", "")
	require.NoError(t, env.products.GetProducts(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody(t, rec)["data"], 0)
}

func TestProductHTTP_GetProduct(t *testing.T) {
	env := newTestEnv(t)
	shirt := env.seedProduct(t, "Shirt", 10)

	c, rec := env.newContext(http.MethodGet, "/api/products/1", "", "")
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(shirt.ID))
	require.NoError(t, env.products.GetProduct(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Shirt", decodeBody(t, rec)["name"])

	c, rec = env.newContext(http.MethodGet, "/api/products/999", "", "")
	c.SetParamNames("id")
	c.SetParamValues("999")
	require.NoError(t, env.products.GetProduct(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestProductHTTP_Search_RequiresQuery(t *testing.T) {
	env := newTestEnv(t)

	c, rec := env.newContext(http.MethodGet, "/api/products/search", "", "")
	require.NoError(t, env.products.Search(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
