package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"winterfieldday/logkeeper/internal/api"
	"winterfieldday/logkeeper/internal/config"
	"winterfieldday/logkeeper/internal/db"
	"winterfieldday/logkeeper/internal/logging"
	"winterfieldday/logkeeper/internal/middleware"
)

func RegisterRoutes(cfg *config.Config, upSince time.Time) http.Handler {

	// initialize Chi router
	r := chi.NewRouter()

	// Initialize dependencies using DI pattern
	deps, err := api.InitDependencies(cfg)
	if err != nil {
		panic("Failed to initialize dependencies: " + err.Error())
	}

	// global middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.MetricsMiddleware(deps.Metrics))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://localhost:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	logging.Info("Router initialized with metrics and logging middleware")

	// health check
	r.Get("/healthCheck", api.HealthCheckHandler(db.DB, upSince))

	RegisterAPIRoutes(r, deps)

	return r
}
