package repo

import (
	"AssetRegistry/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleAsset(tag, dateAdded string) *model.Asset {
	return &model.Asset{
		Tag:           tag,
		Name:          "Dell Laptop",
		Category:      "Laptop",
		SerialNumber:  "1042",
		Department:    "IT",
		Location:      "Accra",
		Status:        "In Use",
		Condition:     "New",
		PurchaseDate:  "2024-03-01",
		PurchasePrice: 4500.50,
		DateAdded:     dateAdded,
		LastUpdated:   dateAdded,
	}
}

func TestAssetRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewAssetRepository(db)
	ctx := context.Background()

	a := sampleAsset("DEL-ACC-IT-1042", "2024-03-01 10:00:00")
	a.Notes = "handover pending"

	// round-trip: вставили — получили те же поля
	assert.NoError(t, r.Create(ctx, a))
	got, err := r.GetByTag(ctx, a.Tag)
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, *a, *got)
	}

	// отсутствие даты выбытия — это nil, а не пустая строка-заглушка
	assert.Nil(t, got.DisposalDate)

	// повторная вставка того же тега — ErrDuplicateTag
	err = r.Create(ctx, sampleAsset("DEL-ACC-IT-1042", "2024-03-02 10:00:00"))
	assert.ErrorIs(t, err, ErrDuplicateTag)

	// точечный поиск несуществующего тега — (nil, nil), не ошибка
	got, err = r.GetByTag(ctx, "NOP-NOP-NOP-0000")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestAssetRepository_ListAllOrder(t *testing.T) {
	db := newTestDB(t)
	r := NewAssetRepository(db)
	ctx := context.Background()

	assert.NoError(t, r.Create(ctx, sampleAsset("AAA-ACC-IT-0001", "2024-01-01 09:00:00")))
	assert.NoError(t, r.Create(ctx, sampleAsset("BBB-ACC-IT-0002", "2024-06-01 09:00:00")))
	assert.NoError(t, r.Create(ctx, sampleAsset("CCC-ACC-IT-0003", "2024-03-01 09:00:00")))

	list, err := r.ListAll(ctx)
	assert.NoError(t, err)
	if assert.Len(t, list, 3) {
		// новые первыми
		assert.Equal(t, "BBB-ACC-IT-0002", list[0].Tag)
		assert.Equal(t, "CCC-ACC-IT-0003", list[1].Tag)
		assert.Equal(t, "AAA-ACC-IT-0001", list[2].Tag)
	}

	// идемпотентность порядка между вызовами без записей
	again, err := r.ListAll(ctx)
	assert.NoError(t, err)
	assert.Equal(t, list, again)
}

func TestAssetRepository_UpdateFields(t *testing.T) {
	db := newTestDB(t)
	r := NewAssetRepository(db)
	ctx := context.Background()

	a := sampleAsset("DEL-ACC-IT-1042", "2024-03-01 10:00:00")
	assert.NoError(t, r.Create(ctx, a))

	t.Run("partial update leaves other fields untouched", func(t *testing.T) {
		err := r.UpdateFields(ctx, a.Tag, 0, map[string]any{
			"status":         "Under Maintenance",
			"update_count":   int64(1),
			"update_history": "2024-03-05 12:00:00",
			"last_updated":   "2024-03-05 12:00:00",
		})
		assert.NoError(t, err)

		got, err := r.GetByTag(ctx, a.Tag)
		assert.NoError(t, err)
		assert.Equal(t, "Under Maintenance", got.Status)
		assert.Equal(t, int64(1), got.UpdateCount)
		// непереданные поля не изменились
		assert.Equal(t, a.Name, got.Name)
		assert.Equal(t, a.PurchasePrice, got.PurchasePrice)
	})

	t.Run("tag is immutable", func(t *testing.T) {
		err := r.UpdateFields(ctx, a.Tag, 1, map[string]any{
			"asset_tag":    "HCK-ACC-IT-9999",
			"update_count": int64(2),
		})
		assert.NoError(t, err)

		got, err := r.GetByTag(ctx, a.Tag)
		assert.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("missing tag returns ErrNotFound", func(t *testing.T) {
		err := r.UpdateFields(ctx, "NOP-NOP-NOP-0000", 0, map[string]any{"status": "Lost"})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("stale counter returns ErrConflict", func(t *testing.T) {
		err := r.UpdateFields(ctx, a.Tag, 0, map[string]any{"status": "Lost"})
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("disposal date settable and clearable", func(t *testing.T) {
		got, err := r.GetByTag(ctx, a.Tag)
		assert.NoError(t, err)

		err = r.UpdateFields(ctx, a.Tag, got.UpdateCount, map[string]any{
			"disposal_date": "2025-01-31",
			"update_count":  got.UpdateCount + 1,
		})
		assert.NoError(t, err)

		got, err = r.GetByTag(ctx, a.Tag)
		assert.NoError(t, err)
		if assert.NotNil(t, got.DisposalDate) {
			assert.Equal(t, "2025-01-31", *got.DisposalDate)
		}
	})
}
