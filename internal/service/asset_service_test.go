package service

import (
	"AssetRegistry/internal/model"
	"AssetRegistry/internal/repo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// мок для repo.AssetRepository
type mockAssetRepo struct{ mock.Mock }

func (m *mockAssetRepo) Create(ctx context.Context, a *model.Asset) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockAssetRepo) GetByTag(ctx context.Context, tag string) (*model.Asset, error) {
	args := m.Called(ctx, tag)
	if a, ok := args.Get(0).(*model.Asset); ok {
		return a, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAssetRepo) ListAll(ctx context.Context) ([]model.Asset, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Asset); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAssetRepo) UpdateFields(ctx context.Context, tag string, expectedCount int64, changes map[string]any) error {
	return m.Called(ctx, tag, expectedCount, changes).Error(0)
}

var _ repo.AssetRepository = (*mockAssetRepo)(nil)

func TestAssetService_Create(t *testing.T) {
	ctx := context.Background()
	m := new(mockAssetRepo)
	svc := NewAssetService(m)

	var created *model.Asset
	m.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*model.Asset)
	}).Return(nil).Once()

	a, err := svc.Create(ctx, AssetInput{
		Name:         "Dell Laptop",
		Location:     "Accra",
		Department:   "IT",
		SerialNumber: "1",
		Category:     "Laptop",
		Status:       "In Use",
	})
	assert.NoError(t, err)
	if assert.NotNil(t, created) {
		assert.Equal(t, "DEL-ACC-IT-0001", created.Tag)
		// создание начинается со счётчика 0 и пустого журнала
		assert.Equal(t, int64(0), created.UpdateCount)
		assert.Empty(t, created.UpdateHistory)
		assert.NotEmpty(t, created.DateAdded)
		assert.Equal(t, created.DateAdded, created.LastUpdated)
	}
	assert.Equal(t, created, a)
}

func TestAssetService_CreateDuplicate(t *testing.T) {
	ctx := context.Background()
	m := new(mockAssetRepo)
	svc := NewAssetService(m)

	m.On("Create", mock.Anything, mock.Anything).Return(repo.ErrDuplicateTag).Once()

	// одна попытка генерации, без суффиксов и повторов
	_, err := svc.Create(ctx, AssetInput{Name: "Dell", Location: "Accra", Department: "IT ", SerialNumber: "1"})
	assert.ErrorIs(t, err, repo.ErrDuplicateTag)
	m.AssertNumberOfCalls(t, "Create", 1)
}

func TestAssetService_Update(t *testing.T) {
	ctx := context.Background()
	m := new(mockAssetRepo)
	svc := NewAssetService(m)

	existing := &model.Asset{
		Tag:           "DEL-ACC-IT-0001",
		Status:        "In Use",
		UpdateCount:   2,
		UpdateHistory: "2024-01-01 10:00:00 | 2024-02-01 10:00:00",
	}
	m.On("GetByTag", mock.Anything, existing.Tag).Return(existing, nil).Once()

	var gotChanges map[string]any
	m.On("UpdateFields", mock.Anything, existing.Tag, int64(2), mock.Anything).
		Run(func(args mock.Arguments) {
			gotChanges = args.Get(3).(map[string]any)
		}).Return(nil).Once()

	updated := &model.Asset{Tag: existing.Tag, Status: "In Storage", UpdateCount: 3}
	m.On("GetByTag", mock.Anything, existing.Tag).Return(updated, nil).Once()

	a, err := svc.Update(ctx, existing.Tag, map[string]any{"status": "In Storage"})
	assert.NoError(t, err)
	assert.Equal(t, updated, a)

	// счётчик +1, метка дописана в журнал
	assert.Equal(t, int64(3), gotChanges["update_count"])
	history := gotChanges["update_history"].(string)
	assert.Contains(t, history, existing.UpdateHistory+" | ")
	assert.Equal(t, gotChanges["last_updated"], history[len(history)-19:])
}

func TestAssetService_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	m := new(mockAssetRepo)
	svc := NewAssetService(m)

	m.On("GetByTag", mock.Anything, "NOP-NOP-NOP-0000").Return((*model.Asset)(nil), nil).Once()

	_, err := svc.Update(ctx, "NOP-NOP-NOP-0000", map[string]any{"status": "Lost"})
	assert.ErrorIs(t, err, repo.ErrNotFound)
	m.AssertNotCalled(t, "UpdateFields")
}

func TestAssetService_UpdateConflictPropagates(t *testing.T) {
	ctx := context.Background()
	m := new(mockAssetRepo)
	svc := NewAssetService(m)

	existing := &model.Asset{Tag: "DEL-ACC-IT-0001", UpdateCount: 1, UpdateHistory: "2024-01-01 10:00:00"}
	m.On("GetByTag", mock.Anything, existing.Tag).Return(existing, nil).Once()
	m.On("UpdateFields", mock.Anything, existing.Tag, int64(1), mock.Anything).Return(repo.ErrConflict).Once()

	_, err := svc.Update(ctx, existing.Tag, map[string]any{"status": "Lost"})
	assert.ErrorIs(t, err, repo.ErrConflict)
}
