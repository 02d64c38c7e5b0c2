package repo

import (
	"AssetRegistry/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository — контракт хранилища учётных записей.
type UserRepository interface {
	// Upsert вставляет запись либо замещает существующую по username.
	Upsert(ctx context.Context, u *model.User) error

	// GetByUsername возвращает (nil, nil), если пользователь не найден.
	GetByUsername(ctx context.Context, username string) (*model.User, error)

	// ListAll — все пользователи по username по возрастанию.
	ListAll(ctx context.Context) ([]model.User, error)
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт gorm-реализацию хранилища пользователей.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Upsert(ctx context.Context, u *model.User) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash", "salt", "role"}),
	}).Create(u).Error
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) ListAll(ctx context.Context) ([]model.User, error) {
	var out []model.User
	err := r.db.WithContext(ctx).Order("username ASC").Find(&out).Error
	return out, err
}
