package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session — явное состояние входа, передаваемое по контексту запроса.
// Отсутствие сессии в контексте означает анонимный запрос.
type Session struct {
	Username string
	Role     string
}

type contextKey string

const sessionContextKey contextKey = "session"

const (
	cookieName = "auth_token"
	tokenTTL   = 24 * time.Hour
)

type claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// SetLoginCookie подписывает сессию и ставит auth-cookie.
func SetLoginCookie(w http.ResponseWriter, username, role, secret string) error {
	c := claims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
	return nil
}

// ClearLoginCookie сбрасывает auth-cookie — явный teardown сессии при logout.
func ClearLoginCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// WithAuth разбирает auth-cookie и кладёт сессию в контекст. Отсутствующая
// или невалидная cookie оставляет запрос анонимным — решение о 401
// принимает хендлер.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			var c claims
			token, err := jwt.ParseWithClaims(cookie.Value, &c, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid || c.Username == "" {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, Session{
				Username: c.Username,
				Role:     c.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionFromContext возвращает сессию запроса, если пользователь вошёл.
func GetSessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(Session)
	return s, ok
}
