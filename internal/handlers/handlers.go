package handlers

import (
	"AssetRegistry/internal/config"
	"AssetRegistry/internal/middleware"
	"AssetRegistry/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	assetService *service.AssetService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	assetHandler := NewAssetHandler(assetService, logger)
	labelHandler := NewLabelHandler(logger)
	reportHandler := NewReportHandler(assetService, logger)

	// User / session routes
	r.Post("/api/user/login", userHandler.Login)
	r.Post("/api/user/logout", userHandler.Logout)
	r.Post("/api/user/status", userHandler.Status)
	r.Post("/api/user/upsert", userHandler.Upsert)
	r.Get("/api/users", userHandler.List)

	// Asset routes
	r.Get("/api/assets", assetHandler.List)
	r.Post("/api/assets", assetHandler.Create)
	r.Get("/api/assets/{tag}", assetHandler.Get)
	r.Patch("/api/assets/{tag}", assetHandler.Update)

	// Derived outputs
	r.Post("/api/labels", labelHandler.Render)
	r.Post("/api/report", reportHandler.Report)

	return &Handler{Router: r}
}
