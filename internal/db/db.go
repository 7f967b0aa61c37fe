package db

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"

	"winterfieldday/logkeeper/internal/config"
)

// DB is the sqlx connection used for aggregate queries and health
// checks. CRUD goes through the GORM connection in orm.go; both point
// at the same database.
var DB *sqlx.DB

// InitSQLX connects sqlx against the configured backend.
func InitSQLX(cfg *config.Config) error {
	var (
		driver string
		dsn    string
	)

	switch cfg.DBDriver {
	case "postgres":
		driver = "postgres"
		dsn = cfg.PostgresDSN()
	case "sqlite":
		driver = "sqlite3"
		dsn = cfg.SQLitePath
	default:
		return fmt.Errorf("unknown DB_DRIVER %q", cfg.DBDriver)
	}

	var err error
	for i := 0; i < 10; i++ {
		DB, err = sqlx.Connect(driver, dsn)
		if err == nil {
			return nil
		}
		time.Sleep(500 * time.Millisecond)
	}
	return err
}
