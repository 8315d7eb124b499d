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
	producthttp "github.com/fjod/go_shop/internal/product/http"
	"github.com/fjod/go_shop/internal/product/repository"
	"github.com/fjod/go_shop/internal/product/service"
	"github.com/fjod/go_shop/pkg/logger"
)

func main() {
	cfg, err := config.Load("PRODUCTSVC_")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.Init("product-service", cfg.App.LogLevel, cfg.App.LogFile)

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer db.Client().Disconnect(ctx)

	products := service.NewProductService(repository.NewMongoRepository(db), lg)
	handler := producthttp.NewProductHandler(products, cfg.HTTP.RequestTimeout)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))
	r.Use(httpx.Metrics("product-service"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/products", func(r chi.Router) {
		r.Get("/", handler.ListProducts)
		r.Post("/", handler.CreateProduct)
		r.Get("/{id}", handler.GetProduct)
		r.Put("/{id}", handler.UpdateProduct)
		r.Delete("/{id}", handler.DeleteProduct)
	})

	wrapped := otelhttp.NewHandler(r, "product-service")
	if err := httpserver.Run(cfg.App.HTTPAddr, wrapped, httpserver.Timeouts{
		Read:     cfg.HTTP.ReadTimeout,
		Write:    cfg.HTTP.WriteTimeout,
		Idle:     cfg.HTTP.IdleTimeout,
		Shutdown: cfg.HTTP.ShutdownTimeout,
	}, lg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
