package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoply/backend/internal/tokens"
)

func newTestServer(t *testing.T) (*echo.Echo, *testEnv) {
	t.Helper()
	env := newTestEnv(t)

	e := echo.New()
	Register(e, &Deps{
		AuthHandler:     env.auth,
		ProductHandler:  env.products,
		CartHandler:     env.cart,
		OrderHandler:    env.orders,
		PaymentHandler:  env.payments,
		CouponHandler:   env.coupons,
		UserHandler:     env.users,
		WishlistHandler: env.wishlist,
		AdminHandler:    env.admin,
		JWTSecret:       []byte("test-access-secret"),
	})
	return e, env
}

func accessToken(t *testing.T, role string) string {
	t.Helper()
	token, err := tokens.NewAccessToken([]byte("test-access-secret"), "1", role, time.Now().Add(time.Hour))
	require.NoError(t, err)
	return token
}

func TestRouter_HealthEndpoints(t *testing.T) {
	e, _ := newTestServer(t)

	for _, path := range []string{"/health/live", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_ProtectedRoutesRejectAnonymous(t *testing.T) {
	e, _ := newTestServer(t)

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/cart"},
		{http.MethodGet, "/api/orders"},
		{http.MethodGet, "/api/users/profile"},
		{http.MethodGet, "/api/wishlist"},
		{http.MethodGet, "/api/admin/stats"},
	} {
		req := httptest.NewRequest(route.method, route.path, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, route.path)
	}
}

func TestRouter_BearerTokenGrantsAccess(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken(t, "user"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CookieTokenGrantsAccess(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: accessToken(t, "user")})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AdminRoutesRejectPlainUsers(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken(t, "user"))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken(t, "admin"))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_PublicProductListing(t *testing.T) {
	e, env := newTestServer(t)
	env.seedProduct(t, "Shirt", 10)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RejectsGarbageToken(t *testing.T) {
	e, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
