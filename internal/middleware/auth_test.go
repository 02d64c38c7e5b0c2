package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

// loginCookie подписывает сессию и возвращает готовую cookie для запроса
func loginCookie(t *testing.T, username, role, secret string) *http.Cookie {
	t.Helper()
	rr := httptest.NewRecorder()
	err := SetLoginCookie(rr, username, role, secret)
	assert.NoError(t, err)
	cookies := rr.Result().Cookies()
	assert.Len(t, cookies, 1)
	return cookies[0]
}

func TestWithAuth_ValidCookie(t *testing.T) {
	var got Session
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(loginCookie(t, "alice", "admin", testSecret))
	rr := httptest.NewRecorder()

	WithAuth(testSecret)(next).ServeHTTP(rr, req)

	assert.True(t, ok)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "admin", got.Role)
}

func TestWithAuth_NoCookie(t *testing.T) {
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	WithAuth(testSecret)(next).ServeHTTP(rr, req)

	// анонимный запрос проходит дальше, сессии в контексте нет
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, ok)
}

func TestWithAuth_WrongSecret(t *testing.T) {
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = GetSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(loginCookie(t, "alice", "admin", "other-secret"))
	rr := httptest.NewRecorder()

	WithAuth(testSecret)(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, ok)
}

func TestClearLoginCookie(t *testing.T) {
	rr := httptest.NewRecorder()
	ClearLoginCookie(rr)

	cookies := rr.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, cookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
