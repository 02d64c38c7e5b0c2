package fs

import (
	"errors"
	"os"
	"path/filepath"
)

// AuthFSStore — файловое хранилище токена и имени пользователя для CLI.
type AuthFSStore struct{}

func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dir, "AssetRegistry")
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}

func tokenPath() (string, error) {
	// TOKEN_FILE имеет приоритет над каталогом конфигурации
	if p := os.Getenv("TOKEN_FILE"); p != "" {
		return p, nil
	}
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "auth_token"), nil
}

func lastLoginPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "last_login"), nil
}

func trimTrailing(b []byte) []byte {
	for len(b) > 0 {
		c := b[len(b)-1]
		if c == '\n' || c == '\r' || c == ' ' || c == '\t' {
			b = b[:len(b)-1]
			continue
		}
		break
	}
	return b
}

// Save сохраняет auth-токен в файл.
func (AuthFSStore) Save(token string) error {
	p, err := tokenPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(token), 0o600)
}

// Load читает auth-токен из файла.
func (AuthFSStore) Load() (string, error) {
	p, err := tokenPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	b = trimTrailing(b)
	if len(b) == 0 {
		return "", errors.New("empty token file")
	}
	return string(b), nil
}

// SaveLogin сохраняет имя пользователя в файл.
func (AuthFSStore) SaveLogin(username string) error {
	if username == "" {
		return errors.New("empty username")
	}
	p, err := lastLoginPath()
	if err != nil {
		return err
	}
	return os.WriteFile(p, []byte(username), 0o600)
}

// LoadLogin читает имя пользователя из файла.
func (AuthFSStore) LoadLogin() (string, error) {
	p, err := lastLoginPath()
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(p)
	if err != nil {
		return "", err
	}
	b = trimTrailing(b)
	if len(b) == 0 {
		return "", errors.New("no stored username")
	}
	return string(b), nil
}
