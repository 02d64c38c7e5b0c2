package repo

import (
	"AssetRegistry/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

// AssetRepository — контракт доступа к активам для слоя сервиса.
// Запись мутируется по одной за вызов, мульти-записных транзакций нет.
type AssetRepository interface {
	// Create сохраняет новую запись. Существующий тег — ErrDuplicateTag.
	Create(ctx context.Context, a *model.Asset) error

	// GetByTag — точечный поиск. Отсутствие записи — (nil, nil), не ошибка.
	GetByTag(ctx context.Context, tag string) (*model.Asset, error)

	// ListAll возвращает все записи по date_added по убыванию (новые первыми).
	ListAll(ctx context.Context) ([]model.Asset, error)

	// UpdateFields применяет частичное обновление при условии
	// update_count == expectedCount. Отсутствующий тег — ErrNotFound,
	// несовпавший счётчик — ErrConflict. Тег не меняется никогда.
	UpdateFields(ctx context.Context, tag string, expectedCount int64, changes map[string]any) error
}

type assetRepo struct {
	db *gorm.DB
}

// NewAssetRepository создаёт gorm-реализацию репозитория активов.
func NewAssetRepository(db *gorm.DB) AssetRepository {
	return &assetRepo{db: db}
}

func (r *assetRepo) Create(ctx context.Context, a *model.Asset) error {
	// Проверка дубликата до вставки: нарушение первичного ключа
	// по-разному выглядит у разных драйверов.
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Asset{}).
		Where("asset_tag = ?", a.Tag).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateTag
	}
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *assetRepo) GetByTag(ctx context.Context, tag string) (*model.Asset, error) {
	var a model.Asset
	err := r.db.WithContext(ctx).Where("asset_tag = ?", tag).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assetRepo) ListAll(ctx context.Context) ([]model.Asset, error) {
	var out []model.Asset
	err := r.db.WithContext(ctx).Order("date_added DESC").Find(&out).Error
	return out, err
}

func (r *assetRepo) UpdateFields(ctx context.Context, tag string, expectedCount int64, changes map[string]any) error {
	if len(changes) == 0 {
		return nil
	}
	delete(changes, "asset_tag")

	tx := r.db.WithContext(ctx).Model(&model.Asset{}).
		Where("asset_tag = ? AND update_count = ?", tag, expectedCount).
		Updates(changes)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected > 0 {
		return nil
	}

	// Ноль затронутых строк: записи нет либо её обогнал другой писатель.
	existing, err := r.GetByTag(ctx, tag)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}
	return ErrConflict
}
