package repo

import (
	"AssetRegistry/internal/model"
	"fmt"
	"strings"

	gormpostgres "gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает БД по DSN и прогоняет миграции моделей.
// postgres:// или postgresql:// — Postgres, иначе файл SQLite
// (драйвер modernc, без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "asset_register.db"
	}

	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = gormpostgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Asset{}); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return db, nil
}
