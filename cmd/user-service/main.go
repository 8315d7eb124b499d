package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/fjod/go_shop/internal/auth"
	"github.com/fjod/go_shop/internal/config"
	"github.com/fjod/go_shop/internal/httpserver"
	"github.com/fjod/go_shop/internal/httpx"
	"github.com/fjod/go_shop/internal/mongodb"
	userhttp "github.com/fjod/go_shop/internal/user/http"
	"github.com/fjod/go_shop/internal/user/repository"
	"github.com/fjod/go_shop/internal/user/service"
	"github.com/fjod/go_shop/pkg/logger"
)

func main() {
	cfg, err := config.Load("USERSVC_")
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := cfg.RequireAuth(); err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.Init("user-service", cfg.App.LogLevel, cfg.App.LogFile)

	ctx := context.Background()
	db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer db.Client().Disconnect(ctx)

	if err := repository.CreateIndexes(ctx, db); err != nil {
		log.Fatalf("mongo indexes: %v", err)
	}

	tokens := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	users := service.NewUserService(repository.NewMongoRepository(db), tokens, lg)
	handler := userhttp.NewUserHandler(users, cfg.HTTP.RequestTimeout)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(cfg.HTTP.RequestTimeout))
	r.Use(httpx.Metrics("user-service"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
		r.With(auth.Middleware(tokens)).Get("/me", handler.Me)
	})

	wrapped := otelhttp.NewHandler(r, "user-service")
	if err := httpserver.Run(cfg.App.HTTPAddr, wrapped, httpserver.Timeouts{
		Read:     cfg.HTTP.ReadTimeout,
		Write:    cfg.HTTP.WriteTimeout,
		Idle:     cfg.HTTP.IdleTimeout,
		Shutdown: cfg.HTTP.ShutdownTimeout,
	}, lg); err != nil {
		log.Fatalf("server: %v", err)
	}
}
