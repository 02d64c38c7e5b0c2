package main

import (
	"AssetRegistry/internal/config"
	"AssetRegistry/internal/handlers"
	"AssetRegistry/internal/middleware"
	"AssetRegistry/internal/model"
	"AssetRegistry/internal/repo"
	"AssetRegistry/internal/repo/xlsx"
	"AssetRegistry/internal/service"
	"context"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx := context.Background()

	// Учётные записи живут в SQL-базе всегда, активы — по выбору бэкенда.
	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo)

	var assetRepo repo.AssetRepository
	if cfg.Storage == "xlsx" {
		assetRepo = xlsx.NewAssetRepository(cfg.XLSXPath)
	} else {
		assetRepo = repo.NewAssetRepository(gormDB)
	}
	assetService := service.NewAssetService(assetRepo)

	// Bootstrap администратора только из внешнего секрета; встроенных
	// учёток по умолчанию нет.
	if cfg.AdminUser != "" && cfg.AdminPassword != "" {
		if err := userService.Upsert(ctx, cfg.AdminUser, cfg.AdminPassword, model.RoleAdmin); err != nil {
			sugar.Fatalw("failed to bootstrap admin credential", "error", err)
		}
		sugar.Infow("Bootstrap admin credential upserted", "username", cfg.AdminUser)
	} else {
		sugar.Warnw("No bootstrap admin configured; only existing credentials can log in")
	}

	h := handlers.NewHandler(userService, assetService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"Storage", cfg.Storage,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
