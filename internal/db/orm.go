package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"winterfieldday/logkeeper/internal/config"
	gormModels "winterfieldday/logkeeper/internal/models/gorm"
)

// ORM is the GORM connection for all CRUD repositories.
var ORM *gorm.DB

// InitORM connects GORM against the configured backend and migrates
// the schema.
func InitORM(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.PostgresDSN())
	case "sqlite":
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	conn, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if err := conn.AutoMigrate(
		&gormModels.Contact{},
		&gormModels.StationSetup{},
		&gormModels.StationConfig{},
		&gormModels.Objective{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	ORM = conn
	return conn, nil
}
