package handlers

import (
	"AssetRegistry/internal/config"
	"AssetRegistry/internal/middleware"
	"AssetRegistry/internal/model"
	"AssetRegistry/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// UserHandler обрабатывает вход/выход и администрирование учётных записей.
type UserHandler struct {
	UserService *service.UserService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

func NewUserHandler(userService *service.UserService, logger *zap.SugaredLogger, cfg *config.Config) *UserHandler {
	return &UserHandler{UserService: userService, Logger: logger, Config: cfg}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type upsertUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Login проверяет пару логин/пароль и ставит сессионную cookie.
// Неизвестный пользователь и неверный пароль неразличимы в ответе.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Login: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	ok, role, err := h.UserService.Verify(r.Context(), req.Username, req.Password)
	if err != nil {
		h.Logger.Errorw("Login: verify failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, service.ErrAuthentication.Error(), http.StatusUnauthorized)
		return
	}

	if err := middleware.SetLoginCookie(w, req.Username, role, h.Config.AuthSecret); err != nil {
		h.Logger.Errorw("Login: set cookie failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"username": req.Username, "role": role})
}

// Logout сбрасывает сессию.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	middleware.ClearLoginCookie(w)
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"result": "logged out"})
}

// Status сообщает текущее состояние сессии.
func (h *UserHandler) Status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if s, ok := middleware.GetSessionFromContext(r.Context()); ok {
		_ = json.NewEncoder(w).Encode(map[string]string{
			"result": fmt.Sprintf("logged in as %s (%s)", s.Username, s.Role),
		})
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"result": "anonymous"})
}

// Upsert создаёт или обновляет учётную запись. Только для admin.
func (h *UserHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if s.Role != model.RoleAdmin {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var req upsertUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Upsert user: invalid request body", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.Username == "" || req.Password == "" {
		http.Error(w, "username and password required", http.StatusBadRequest)
		return
	}

	if err := h.UserService.Upsert(r.Context(), req.Username, req.Password, req.Role); err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.Logger.Errorw("Upsert user: service error", "username", req.Username, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"username": req.Username, "role": req.Role})
}

// List возвращает пользователей (без верификаторов). Только для admin.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	s, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	if s.Role != model.RoleAdmin {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	users, err := h.UserService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List users: service error", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(users)
}
