package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authmw "github.com/shoply/backend/internal/middleware/auth"
)

type Deps struct {
	AuthHandler     *AuthHTTP
	ProductHandler  *ProductHTTP
	CartHandler     *CartHTTP
	OrderHandler    *OrderHTTP
	PaymentHandler  *PaymentHTTP
	CouponHandler   *CouponHTTP
	UserHandler     *UserHTTP
	WishlistHandler *WishlistHTTP
	AdminHandler    *AdminHTTP
	JWTSecret       []byte
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	mw := authmw.New(d.JWTSecret)
	api := e.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", d.AuthHandler.Register)
	auth.POST("/login", d.AuthHandler.Login)
	auth.POST("/logout", d.AuthHandler.Logout)

	products := api.Group("/products")
	products.GET("", d.ProductHandler.GetProducts)
	products.GET("/search", d.ProductHandler.Search)
	products.GET("/:id", d.ProductHandler.GetProduct)

	cart := api.Group("/cart", mw.RequireAuth)
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("/add", d.CartHandler.AddToCart)
	cart.DELETE("/remove/:productId", d.CartHandler.RemoveFromCart)
	cart.DELETE("/clear", d.CartHandler.ClearCart)

	orders := api.Group("/orders", mw.RequireAuth)
	orders.GET("", d.OrderHandler.ListOrders)
	orders.POST("", d.OrderHandler.CreateOrder)
	orders.GET("/:id", d.OrderHandler.GetOrder)
	orders.GET("/:id/track", d.OrderHandler.TrackOrder)

	payments := api.Group("/payments", mw.RequireAuth)
	payments.POST("/process", d.PaymentHandler.ProcessPayment)
	payments.GET("/methods", d.PaymentHandler.GetPaymentMethods)

	coupons := api.Group("/coupons", mw.RequireAuth)
	coupons.POST("/validate", d.CouponHandler.Validate)
	coupons.POST("/apply", d.CouponHandler.Apply)

	users := api.Group("/users", mw.RequireAuth)
	users.GET("/profile", d.UserHandler.GetProfile)
	users.PUT("/profile", d.UserHandler.UpdateProfile)

	wishlist := api.Group("/wishlist", mw.RequireAuth)
	wishlist.GET("", d.WishlistHandler.GetWishlist)
	wishlist.POST("/add/:productId", d.WishlistHandler.Add)
	wishlist.DELETE("/remove/:productId", d.WishlistHandler.Remove)
	wishlist.GET("/check/:productId", d.WishlistHandler.Check)

	admin := api.Group("/admin", mw.RequireAdmin)
	admin.GET("/stats", d.AdminHandler.Stats)
	admin.POST("/products", d.AdminHandler.CreateProduct)
	admin.PUT("/products/:id", d.AdminHandler.UpdateProduct)
	admin.DELETE("/products/:id", d.AdminHandler.DeleteProduct)
	admin.GET("/orders", d.AdminHandler.ListOrders)
	admin.PUT("/orders/:id/status", d.AdminHandler.UpdateOrderStatus)
	admin.GET("/users", d.AdminHandler.ListUsers)
	admin.PUT("/users/:id/admin", d.AdminHandler.SetUserAdmin)
	admin.GET("/coupons", d.AdminHandler.ListCoupons)
	admin.POST("/coupons", d.AdminHandler.CreateCoupon)
	admin.PUT("/coupons/:id", d.AdminHandler.UpdateCoupon)
	admin.DELETE("/coupons/:id", d.AdminHandler.DeleteCoupon)
}
