package handlers

import (
	"AssetRegistry/internal/labels"
	"AssetRegistry/internal/middleware"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// LabelHandler отдаёт PDF с QR-этикетками выбранных активов.
type LabelHandler struct {
	Logger *zap.SugaredLogger
}

func NewLabelHandler(logger *zap.SugaredLogger) *LabelHandler {
	return &LabelHandler{Logger: logger}
}

type renderLabelsRequest struct {
	Tags []string `json:"tags"`
}

// Render собирает документ по списку тегов. Пустой список даёт
// корректный пустой документ.
func (h *LabelHandler) Render(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSessionFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req renderLabelsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Render labels: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	pdf, err := labels.RenderLabels(req.Tags)
	if err != nil {
		h.Logger.Errorw("Render labels: render error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+labels.ExportFilename+`"`)
	_, _ = w.Write(pdf)
}
