package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/shoply/backend/internal/cache"
	"github.com/shoply/backend/internal/config"
	"github.com/shoply/backend/internal/db"
	"github.com/shoply/backend/internal/es"
	"github.com/shoply/backend/internal/events"
	"github.com/shoply/backend/internal/httpserver"
	"github.com/shoply/backend/internal/logging"
	loggingmw "github.com/shoply/backend/internal/middleware/logging"
	"github.com/shoply/backend/internal/repo"
	"github.com/shoply/backend/internal/service"
)

func main() {
	cfg := config.MustLoad()
	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()
	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatalf("db migrate error: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	var esClient *elasticsearch.Client
	if cfg.ESURL != "" {
		esClient, err = es.NewClient(cfg)
		if err != nil {
			log.Fatalf("es init error: %v", err)
		}
	}

	productCache := cache.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.ServiceName)

	r := repo.New(database)
	payments := &service.PaymentSimulator{Delay: time.Second}

	catalogSvc := &service.CatalogService{Repo: r, Cache: productCache, ES: esClient, Events: producer}
	orderSvc := &service.OrderService{Repo: r, Payments: payments, Events: producer}

	deps := httpserver.Deps{
		AuthHandler:     &httpserver.AuthHTTP{Svc: &service.AuthService{Repo: r, JWTSecret: cfg.JWTSecret, RefreshSecret: cfg.RefreshSecret, Events: producer}},
		ProductHandler:  &httpserver.ProductHTTP{Svc: catalogSvc},
		CartHandler:     &httpserver.CartHTTP{Svc: &service.CartService{Repo: r}},
		OrderHandler:    &httpserver.OrderHTTP{Svc: orderSvc},
		PaymentHandler:  &httpserver.PaymentHTTP{Svc: orderSvc},
		CouponHandler:   &httpserver.CouponHTTP{Svc: &service.CouponService{Repo: r}},
		UserHandler:     &httpserver.UserHTTP{Svc: &service.UserService{Repo: r}},
		WishlistHandler: &httpserver.WishlistHTTP{Svc: &service.WishlistService{Repo: r}},
		AdminHandler: &httpserver.AdminHTTP{
			Svc:     &service.AdminService{Repo: r},
			Catalog: catalogSvc,
			Orders:  orderSvc,
			Coupons: &service.CouponService{Repo: r},
		},
		JWTSecret: cfg.JWTSecret,
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()
	logger.Info("server started", "port", cfg.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}
	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}
	if err := productCache.Close(); err != nil {
		log.Printf("redis close error: %v", err)
	}

	logger.Info("shutdown complete")
}
