package service

import (
	"AssetRegistry/internal/model"
	"AssetRegistry/internal/repo"
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// Параметры вывода верификатора. Высокая фиксированная стоимость —
// защита от перебора по украденной таблице.
const (
	saltLen    = 16
	pbkdf2Iter = 200_000
	keyLen     = 32
)

var (
	// ErrInvalidRole — роль вне закрытого набора {admin, user}.
	ErrInvalidRole = errors.New("invalid role")

	// ErrAuthentication — неверная пара логин/пароль. Намеренно не
	// различает неизвестного пользователя и неверный пароль.
	ErrAuthentication = errors.New("invalid username or password")
)

// UserService инкапсулирует работу с учётными записями: PBKDF2-верификатор
// с солью вместо пароля, сравнение за константное время.
type UserService struct {
	repo repo.UserRepository
}

func NewUserService(r repo.UserRepository) *UserService {
	return &UserService{repo: r}
}

func deriveVerifier(password string, salt []byte) string {
	dk := pbkdf2.Key([]byte(password), salt, pbkdf2Iter, keyLen, sha256.New)
	return base64.StdEncoding.EncodeToString(dk)
}

// Upsert создаёт или замещает учётную запись: свежая случайная соль,
// верификатор по PBKDF2-HMAC-SHA256.
func (s *UserService) Upsert(ctx context.Context, username, password, role string) error {
	if !model.ValidRole(role) {
		return ErrInvalidRole
	}
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return fmt.Errorf("generate salt: %w", err)
	}
	u := &model.User{
		Username:     username,
		PasswordHash: deriveVerifier(password, salt),
		Salt:         base64.StdEncoding.EncodeToString(salt),
		Role:         role,
	}
	return s.repo.Upsert(ctx, u)
}

// Verify проверяет пару логин/пароль. Возвращает (true, роль) при успехе,
// (false, "") если пользователь не найден или пароль не подошёл.
func (s *UserService) Verify(ctx context.Context, username, password string) (bool, string, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return false, "", err
	}
	if u == nil {
		return false, "", nil
	}
	salt, err := base64.StdEncoding.DecodeString(u.Salt)
	if err != nil {
		return false, "", fmt.Errorf("decode salt: %w", err)
	}
	derived := deriveVerifier(password, salt)
	if subtle.ConstantTimeCompare([]byte(derived), []byte(u.PasswordHash)) == 1 {
		return true, u.Role, nil
	}
	return false, "", nil
}

// List возвращает пользователей без верификаторов и солей.
func (s *UserService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
		users[i].Salt = ""
	}
	return users, nil
}
