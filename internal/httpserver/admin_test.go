package httpserver

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminHTTP_CreateProduct(t *testing.T) {
	env := newTestEnv(t)

	body := `{"name": "Shirt", "description": "Plain tee", "price": 10, "category": "apparel", "stock": 5}`
	c, rec := env.newContext(http.MethodPost, "/api/admin/products", body, "1")
	require.NoError(t, env.admin.CreateProduct(c))
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.NotZero(t, decodeBody(t, rec)["id"])

	c, rec = env.newContext(http.MethodPost, "/api/admin/products", `{"price": 10}`, "1")
	require.NoError(t, env.admin.CreateProduct(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHTTP_UpdateOrderStatus(t *testing.T) {
	env := newTestEnv(t)
	order := env.seedOrder(t, 1)

	c, rec := env.newContext(http.MethodPut, "/api/admin/orders/1/status",
		`{"status": "processing"}`, "1")
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(order.ID))
	require.NoError(t, env.admin.UpdateOrderStatus(c))
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	assert.Equal(t, "processing", payload["status"])
	assert.Len(t, payload["status_history"], 2)

	// skipping a stage is a validation error
	c, rec = env.newContext(http.MethodPut, "/api/admin/orders/1/status",
		`{"status": "delivered"}`, "1")
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(order.ID))
	require.NoError(t, env.admin.UpdateOrderStatus(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHTTP_Stats(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser(t, "ada@example.com")
	env.seedOrder(t, 1)

	c, rec := env.newContext(http.MethodGet, "/api/admin/stats", "", "1")
	require.NoError(t, env.admin.Stats(c))
	require.Equal(t, http.StatusOK, rec.Code)

	payload := decodeBody(t, rec)
	assert.Equal(t, 1.0, payload["total_products"])
	assert.Equal(t, 1.0, payload["total_orders"])
	assert.Equal(t, 1.0, payload["total_users"])
	assert.Equal(t, 15.0, payload["total_revenue"])
}

func TestAdminHTTP_SetUserAdmin(t *testing.T) {
	env := newTestEnv(t)
	user := env.seedUser(t, "ada@example.com")

	c, rec := env.newContext(http.MethodPut, "/api/admin/users/1/admin", `{"is_admin": true}`, "1")
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(user.ID))
	require.NoError(t, env.admin.SetUserAdmin(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", decodeBody(t, rec)["role"])
}

func TestAdminHTTP_CouponCRUD(t *testing.T) {
	env := newTestEnv(t)

	body := `{"code": "save5", "discount_type": "fixed", "discount_value": 5, "expiry_date": "2030-01-01T00:00:00Z", "is_active": true}`
	c, rec := env.newContext(http.MethodPost, "/api/admin/coupons", body, "1")
	require.NoError(t, env.admin.CreateCoupon(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	payload := decodeBody(t, rec)
	assert.Equal(t, "SAVE5", payload["code"])
	id := uint(payload["id"].(float64))

	c, rec = env.newContext(http.MethodGet, "/api/admin/coupons", "", "1")
	require.NoError(t, env.admin.ListCoupons(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = env.newContext(http.MethodDelete, "/api/admin/coupons/1", "", "1")
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(id))
	require.NoError(t, env.admin.DeleteCoupon(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
