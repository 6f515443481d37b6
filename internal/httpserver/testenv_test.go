package httpserver

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shoply/backend/internal/db"
	"github.com/shoply/backend/internal/models"
	"github.com/shoply/backend/internal/repo"
	"github.com/shoply/backend/internal/service"
)

type testEnv struct {
	echo *echo.Echo
	repo *repo.GormRepo

	auth     *AuthHTTP
	products *ProductHTTP
	cart     *CartHTTP
	orders   *OrderHTTP
	payments *PaymentHTTP
	coupons  *CouponHTTP
	users    *UserHTTP
	wishlist *WishlistHTTP
	admin    *AdminHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	r := repo.New(gdb)
	payments := &service.PaymentSimulator{}
	catalog := &service.CatalogService{Repo: r}
	orders := &service.OrderService{Repo: r, Payments: payments}
	coupons := &service.CouponService{Repo: r}

	return &testEnv{
		echo: echo.New(),
		repo: r,
		auth: &AuthHTTP{Svc: &service.AuthService{
			Repo:          r,
			JWTSecret:     []byte("test-access-secret"),
			RefreshSecret: []byte("test-refresh-secret"),
		}},
		products: &ProductHTTP{Svc: catalog},
		cart:     &CartHTTP{Svc: &service.CartService{Repo: r}},
		orders:   &OrderHTTP{Svc: orders},
		payments: &PaymentHTTP{Svc: orders},
		coupons:  &CouponHTTP{Svc: coupons},
		users:    &UserHTTP{Svc: &service.UserService{Repo: r}},
		wishlist: &WishlistHTTP{Svc: &service.WishlistService{Repo: r}},
		admin: &AdminHTTP{
			Svc:     &service.AdminService{Repo: r},
			Catalog: catalog,
			Orders:  orders,
			Coupons: coupons,
		},
	}
}

// newContext builds an echo context around a recorded request. userID is
// set the way the auth middleware would after verifying a token; pass ""
// for an anonymous request.
func (env *testEnv) newContext(method, target, body, userID string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)
	if userID != "" {
		c.Set("user_id", userID)
	}
	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload
}

func (env *testEnv) seedProduct(t *testing.T, name string, price float64) models.Product {
	t.Helper()
	product := models.Product{Name: name, Description: name, Price: price, Category: "test", Stock: 50}
	require.NoError(t, env.repo.CreateProduct(context.Background(), &product))
	return product
}

func (env *testEnv) seedUser(t *testing.T, email string) models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, PasswordHash: "x", Role: "user"}
	require.NoError(t, env.repo.CreateUser(context.Background(), &user))
	return user
}

func (env *testEnv) seedCartItem(t *testing.T, userID, productID, quantity uint) {
	t.Helper()
	item := models.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	require.NoError(t, env.repo.AddToCart(context.Background(), &item))
}
