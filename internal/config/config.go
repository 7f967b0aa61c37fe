package config

import (
	"fmt"
	"os"
)

// Config collects every environment-driven setting read at startup.
type Config struct {
	AppEnv   string
	HTTPAddr string

	// DBDriver selects the backend: "sqlite" (default, embedded) or
	// "postgres".
	DBDriver   string
	SQLitePath string
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string

	// RedisAddr switches the cache layer to Redis when non-empty.
	RedisAddr     string
	RedisPassword string

	// ExportSigningKey signs single-use export download tokens.
	ExportSigningKey string
}

// FromEnv builds a Config from the process environment with local
// defaults.
func FromEnv() *Config {
	cfg := &Config{
		AppEnv:           getenv("APP_ENV", "development"),
		HTTPAddr:         getenv("HTTP_ADDR", ":8080"),
		DBDriver:         getenv("DB_DRIVER", "sqlite"),
		SQLitePath:       getenv("SQLITE_PATH", "logkeeper.db"),
		PGHost:           os.Getenv("PG_HOST"),
		PGPort:           getenv("PG_PORT", "5432"),
		PGUser:           os.Getenv("PG_USER"),
		PGPassword:       os.Getenv("PG_PASSWORD"),
		PGDatabase:       os.Getenv("PG_DB"),
		RedisAddr:        os.Getenv("REDIS_ADDR"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		ExportSigningKey: getenv("EXPORT_SIGNING_KEY", "change-this-export-key"),
	}
	return cfg
}

// PostgresDSN assembles the postgres connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
