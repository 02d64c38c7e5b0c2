package handlers

import (
	"AssetRegistry/internal/middleware"
	"AssetRegistry/internal/model"
	"AssetRegistry/internal/repo"
	"AssetRegistry/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AssetHandler обрабатывает CRUD по активам.
type AssetHandler struct {
	AssetService *service.AssetService
	Logger       *zap.SugaredLogger
}

func NewAssetHandler(assetService *service.AssetService, logger *zap.SugaredLogger) *AssetHandler {
	return &AssetHandler{AssetService: assetService, Logger: logger}
}

// assetFieldColumns — единственная таблица соответствия внешних
// идентификаторов полей колонкам хранилища. Ключей, которых здесь нет,
// клиент менять не может: тег, счётчик, журнал и метки времени
// назначаются только сервером.
var assetFieldColumns = map[string]string{
	"asset_name":           "asset_name",
	"category":             "category",
	"description":          "description",
	"serial_number":        "serial_number",
	"assigned_to":          "assigned_to",
	"department":           "department",
	"purchase_date":        "purchase_date",
	"purchase_price_ghs":   "purchase_price_ghs",
	"condition":            "condition",
	"location":             "location",
	"status":               "status",
	"warranty_end_date":    "warranty_end_date",
	"maintenance_schedule": "maintenance_schedule",
	"disposal_date":        "disposal_date",
	"notes":                "notes",
}

// createAssetRequest — типизированная форма создания актива.
type createAssetRequest struct {
	Name                string  `json:"asset_name"`
	Category            string  `json:"category"`
	Description         string  `json:"description"`
	SerialNumber        string  `json:"serial_number"`
	AssignedTo          string  `json:"assigned_to"`
	Department          string  `json:"department"`
	PurchaseDate        string  `json:"purchase_date"`
	PurchasePrice       float64 `json:"purchase_price_ghs"`
	Condition           string  `json:"condition"`
	Location            string  `json:"location"`
	Status              string  `json:"status"`
	WarrantyEndDate     string  `json:"warranty_end_date"`
	MaintenanceSchedule string  `json:"maintenance_schedule"`
	DisposalDate        *string `json:"disposal_date"`
	Notes               string  `json:"notes"`
}

func inOptions(v string, options []string) bool {
	for _, o := range options {
		if o == v {
			return true
		}
	}
	return false
}

func validateEnums(category, department, condition, status string) error {
	if category != "" && !inOptions(category, model.CategoryOptions) {
		return fmt.Errorf("unknown category %q", category)
	}
	if department != "" && !inOptions(department, model.DepartmentOptions) {
		return fmt.Errorf("unknown department %q", department)
	}
	if condition != "" && !inOptions(condition, model.ConditionOptions) {
		return fmt.Errorf("unknown condition %q", condition)
	}
	if status != "" && !inOptions(status, model.StatusOptions) {
		return fmt.Errorf("unknown status %q", status)
	}
	return nil
}

// List — все активы, новые первыми.
func (h *AssetHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSessionFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	assets, err := h.AssetService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List assets: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(assets)
}

// Get — точечный поиск по тегу.
func (h *AssetHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSessionFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	tag := chi.URLParam(r, "tag")
	a, err := h.AssetService.Get(r.Context(), tag)
	if err != nil {
		h.Logger.Errorw("Get asset: service error", "tag", tag, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if a == nil {
		http.Error(w, "asset not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// Create создаёт актив; тег генерируется сервером. Коллизия тега — 409,
// без автоматического суффиксования: клиент меняет поля и повторяет.
func (h *AssetHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSessionFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Create asset: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if err := validateEnums(req.Category, req.Department, req.Condition, req.Status); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if req.PurchasePrice < 0 {
		http.Error(w, "purchase price must be non-negative", http.StatusBadRequest)
		return
	}

	a, err := h.AssetService.Create(r.Context(), service.AssetInput{
		Name:                req.Name,
		Category:            req.Category,
		Description:         req.Description,
		SerialNumber:        req.SerialNumber,
		AssignedTo:          req.AssignedTo,
		Department:          req.Department,
		PurchaseDate:        req.PurchaseDate,
		PurchasePrice:       req.PurchasePrice,
		Condition:           req.Condition,
		Location:            req.Location,
		Status:              req.Status,
		WarrantyEndDate:     req.WarrantyEndDate,
		MaintenanceSchedule: req.MaintenanceSchedule,
		DisposalDate:        req.DisposalDate,
		Notes:               req.Notes,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateTag) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		h.Logger.Errorw("Create asset: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// Update — частичное обновление: применяются только переданные поля,
// неизвестные идентификаторы отклоняются на границе.
func (h *AssetHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSessionFromContext(r.Context()); !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	tag := chi.URLParam(r, "tag")

	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.Logger.Warnw("Update asset: invalid request body", "tag", tag, "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	changes := make(map[string]any, len(body))
	for field, value := range body {
		column, ok := assetFieldColumns[field]
		if !ok {
			http.Error(w, fmt.Sprintf("unknown or immutable field %q", field), http.StatusBadRequest)
			return
		}
		coerced, err := coerceFieldValue(field, value)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		changes[column] = coerced
	}

	if err := validateEnumChanges(changes); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	a, err := h.AssetService.Update(r.Context(), tag, changes)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, repo.ErrConflict):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			h.Logger.Errorw("Update asset: service error", "tag", tag, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// coerceFieldValue приводит значение JSON к типу колонки.
func coerceFieldValue(field string, value any) (any, error) {
	switch field {
	case "purchase_price_ghs":
		f, ok := value.(float64)
		if !ok {
			return nil, fmt.Errorf("field %q must be a number", field)
		}
		if f < 0 {
			return nil, errors.New("purchase price must be non-negative")
		}
		return f, nil
	case "disposal_date":
		if value == nil {
			return nil, nil
		}
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("field %q must be a string or null", field)
		}
		return s, nil
	default:
		s, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("field %q must be a string", field)
		}
		return s, nil
	}
}

func stringField(changes map[string]any, column string) (string, bool) {
	v, ok := changes[column]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func validateEnumChanges(changes map[string]any) error {
	category, _ := stringField(changes, "category")
	department, _ := stringField(changes, "department")
	condition, _ := stringField(changes, "condition")
	status, _ := stringField(changes, "status")
	return validateEnums(category, department, condition, status)
}
