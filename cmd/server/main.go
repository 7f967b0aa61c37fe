package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"winterfieldday/logkeeper/internal/config"
	"winterfieldday/logkeeper/internal/db"
	"winterfieldday/logkeeper/internal/logging"
	"winterfieldday/logkeeper/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.FromEnv()

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("Logkeeper starting up",
		"environment", cfg.AppEnv,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// Connect to DB with sqlx
	if err := db.InitSQLX(cfg); err != nil {
		logging.Error("Failed to connect to database (sqlx)", "error", err.Error())
		log.Fatalf("Failed to connect to database (sqlx): %v", err)
	}
	logging.Info("Connected to database (sqlx)", "driver", cfg.DBDriver)

	// Connect to DB with GORM and run migrations
	if _, err := db.InitORM(cfg); err != nil {
		logging.Error("Failed to connect to database (GORM)", "error", err.Error())
		log.Fatalf("Failed to connect to database (GORM): %v", err)
	}
	logging.Info("Connected to database (GORM)", "driver", cfg.DBDriver)

	upSince := time.Now()

	// Initialize router with Chi
	router := routes.RegisterRoutes(cfg, upSince)

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router) // Mount Chi router at root
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	logging.Info("Server starting",
		"addr", cfg.HTTPAddr,
		"environment", cfg.AppEnv,
	)

	log.Printf("Starting server on %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, mux))
}
