package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"shopfront/internal/config"
)

// Connect opens the store and migrates the schema idempotently. The
// default store is a local SQLite file; DATABASE_URL switches to Postgres.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.DatabaseURL != "" {
		dialector = postgres.Open(cfg.DatabaseURL)
	} else {
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := gdb.AutoMigrate(&UserModel{}, &ProductModel{}); err != nil {
		return nil, err
	}

	return gdb, nil
}
