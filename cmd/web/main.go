package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"github.com/cryptotrade/storefront/internal/config"
	"github.com/cryptotrade/storefront/internal/logger"
	ratelimit "github.com/cryptotrade/storefront/internal/middleware"
	"github.com/cryptotrade/storefront/internal/modules/api"
	"github.com/cryptotrade/storefront/internal/modules/pages"
)

func main() {
	// A .env file is a local-dev convenience, not a requirement.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	client := api.NewClient(api.Options{
		BaseURL:  cfg.APIBaseURL,
		MockMode: cfg.UseAPIMocks,
		Logger:   log,
	})

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(ratelimit.RateLimit(rate.Limit(20), 40))

	handler, err := pages.NewHandler(client, log)
	if err != nil {
		log.Error("building page handler", "error", err)
		os.Exit(1)
	}
	handler.RegisterRoutes(router)

	addr := fmt.Sprintf(":%d", cfg.AppPort)
	log.Info("storefront listening",
		"addr", addr,
		"api_base_url", cfg.APIBaseURL,
		"mock_mode", cfg.UseAPIMocks,
	)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
