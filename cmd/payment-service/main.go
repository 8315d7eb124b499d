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
	"github.com/fjod/go_shop/internal/payment/client"
	paymenthttp "github.com/fjod/go_shop/internal/payment/http"
	"github.com/fjod/go_shop/internal/payment/repository"
	"github.com/fjod/go_shop/internal/payment/service"
	"github.com/fjod/go_shop/pkg/logger"
)

func main() {
	cfg, err := config.Load("PAYMENTSVC_")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.RequireOrderURL(); err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.Init("payment-service", cfg.App.LogLevel, cfg.App.LogFile)

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer db.Client().Disconnect(ctx)

	if err := repository.CreateIndexes(ctx, db); err != nil {
		log.Fatalf("mongo indexes: %v", err)
	}

	orders := client.NewOrderClient(cfg.Services.OrderURL, cfg.HTTP.RequestTimeout)
	payments := service.NewPaymentService(repository.NewMongoRepository(db), orders, service.AlwaysApprove{}, lg)
	handler := paymenthttp.NewPaymentHandler(payments, cfg.HTTP.RequestTimeout)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))
	r.Use(httpx.Metrics("payment-service"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/payments", func(r chi.Router) {
		r.Get("/", handler.ListPayments)
		r.Post("/", handler.CreatePayment)
		r.Get("/{id}", handler.GetPayment)
		r.Put("/{id}/refund", handler.RefundPayment)
		r.Get("/order/{orderId}", handler.ListPaymentsByOrder)
		r.Get("/user/{userId}", handler.ListPaymentsByUser)
		r.Get("/status/{status}", handler.ListPaymentsByStatus)
	})

	wrapped := otelhttp.NewHandler(r, "payment-service")
	if err := httpserver.Run(cfg.App.HTTPAddr, wrapped, httpserver.Timeouts{
		Read:     cfg.HTTP.ReadTimeout,
		Write:    cfg.HTTP.WriteTimeout,
		Idle:     cfg.HTTP.IdleTimeout,
		Shutdown: cfg.HTTP.ShutdownTimeout,
	}, lg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
