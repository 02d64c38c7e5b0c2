package config

import (
	"flag"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// resetFlagSet сбрасывает глобальный flag.CommandLine между тестами,
// иначе повторный NewConfig паникует на повторной регистрации флагов
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	os.Args = []string{os.Args[0]}
}

func TestNewConfig_Defaults(t *testing.T) {
	resetFlagSet(t)
	t.Setenv("BASE_URL", "")
	t.Setenv("ENABLE_HTTPS", "false")
	t.Setenv("STORAGE", "")
	t.Setenv("XLSX_PATH", "")
	t.Setenv("AUTH_SECRET", "")

	cfg := NewConfig()

	assert.Equal(t, "localhost:8081", cfg.BaseURL)
	assert.Equal(t, "http://localhost:8081", cfg.ServerURL)
	assert.Equal(t, "sql", cfg.Storage)
	assert.Equal(t, "asset_register.xlsx", cfg.XLSXPath)
	assert.Equal(t, "dev-secret-key", cfg.AuthSecret)
	assert.Empty(t, cfg.AdminUser)
	assert.Empty(t, cfg.AdminPassword)
}

func TestNewConfig_EnvOverrides(t *testing.T) {
	resetFlagSet(t)
	t.Setenv("BASE_URL", "registry.example.com:9090")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("STORAGE", "xlsx")
	t.Setenv("XLSX_PATH", "/data/register.xlsx")
	t.Setenv("AUTH_SECRET", "prod-secret")
	t.Setenv("ADMIN_USER", "root")
	t.Setenv("ADMIN_PASSWORD", "changeme")

	cfg := NewConfig()

	assert.Equal(t, "registry.example.com:9090", cfg.BaseURL)
	assert.Equal(t, "https://registry.example.com:9090", cfg.ServerURL)
	assert.Equal(t, "xlsx", cfg.Storage)
	assert.Equal(t, "/data/register.xlsx", cfg.XLSXPath)
	assert.Equal(t, "prod-secret", cfg.AuthSecret)
	assert.Equal(t, "root", cfg.AdminUser)
	assert.Equal(t, "changeme", cfg.AdminPassword)
}

func TestNewConfig_InvalidBaseURLFallsBack(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"with scheme", "http://localhost:8081"},
		{"with path", "localhost:8081/api"},
		{"no port", "localhost"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resetFlagSet(t)
			t.Setenv("BASE_URL", tc.url)
			t.Setenv("ENABLE_HTTPS", "false")

			cfg := NewConfig()

			assert.Equal(t, "localhost:8081", cfg.BaseURL)
			assert.Equal(t, "http://localhost:8081", cfg.ServerURL)
		})
	}
}
