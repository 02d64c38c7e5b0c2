package handlers

import (
	"AssetRegistry/internal/middleware"
	"AssetRegistry/internal/service"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// ReportHandler считает агрегаты по отфильтрованной коллекции активов.
type ReportHandler struct {
	AssetService *service.AssetService
	Logger       *zap.SugaredLogger
}

func NewReportHandler(assetService *service.AssetService, logger *zap.SugaredLogger) *ReportHandler {
	return &ReportHandler{AssetService: assetService, Logger: logger}
}

// Report применяет фильтр к полной коллекции и возвращает агрегаты
// вместе с отфильтрованными записями.
func (h *ReportHandler) Report(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSessionFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var filter service.Filter
	if err := json.NewDecoder(r.Body).Decode(&filter); err != nil {
		h.Logger.Warnw("Report: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	assets, err := h.AssetService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("Report: list assets failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	summary := service.Report(assets, filter)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(summary)
}
