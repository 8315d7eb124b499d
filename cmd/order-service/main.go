package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fjod/go_shop/internal/config"
	"github.com/fjod/go_shop/internal/httpserver"
	"github.com/fjod/go_shop/internal/httpx"
	"github.com/fjod/go_shop/internal/mongodb"
	"github.com/fjod/go_shop/internal/order/client"
	orderhttp "github.com/fjod/go_shop/internal/order/http"
	"github.com/fjod/go_shop/internal/order/repository"
	"github.com/fjod/go_shop/internal/order/service"
	"github.com/fjod/go_shop/pkg/logger"
)

func main() {
	cfg, err := config.Load("ORDERSVC_")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.RequireCartURL(); err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.Init("order-service", cfg.App.LogLevel, cfg.App.LogFile)

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer db.Client().Disconnect(ctx)

	if err := repository.CreateIndexes(ctx, db); err != nil {
		log.Fatalf("mongo indexes: %v", err)
	}

	carts := client.NewCartClient(cfg.Services.CartURL, cfg.HTTP.RequestTimeout)
	orders := service.NewOrderService(repository.NewMongoRepository(db), carts, lg)
	handler := orderhttp.NewOrderHandler(orders, cfg.HTTP.RequestTimeout)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))
	r.Use(httpx.Metrics("order-service"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/orders", func(r chi.Router) {
		r.Get("/", handler.ListOrders)
		r.Post("/", handler.CreateOrder)
		r.Get("/{id}", handler.GetOrder)
		r.Delete("/{id}", handler.DeleteOrder)
		r.Put("/{id}/status", handler.UpdateOrderStatus)
		r.Get("/user/{userId}", handler.ListOrdersByUser)
		r.Get("/status/{status}", handler.ListOrdersByStatus)
	})

	wrapped := otelhttp.NewHandler(r, "order-service")
	if err := httpserver.Run(cfg.App.HTTPAddr, wrapped, httpserver.Timeouts{
		Read:     cfg.HTTP.ReadTimeout,
		Write:    cfg.HTTP.WriteTimeout,
		Idle:     cfg.HTTP.IdleTimeout,
		Shutdown: cfg.HTTP.ShutdownTimeout,
	}, lg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
