package repo

import (
	"AssetRegistry/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserRepository_UpsertAndGet(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	// успешное создание
	err := r.Upsert(ctx, &model.User{Username: "john", PasswordHash: "hash1", Salt: "salt1", Role: "user"})
	assert.NoError(t, err)

	got, err := r.GetByUsername(ctx, "john")
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, "hash1", got.PasswordHash)
		assert.Equal(t, "user", got.Role)
	}

	// повторный upsert замещает верификатор, соль и роль
	err = r.Upsert(ctx, &model.User{Username: "john", PasswordHash: "hash2", Salt: "salt2", Role: "admin"})
	assert.NoError(t, err)

	got, err = r.GetByUsername(ctx, "john")
	assert.NoError(t, err)
	if assert.NotNil(t, got) {
		assert.Equal(t, "hash2", got.PasswordHash)
		assert.Equal(t, "salt2", got.Salt)
		assert.Equal(t, "admin", got.Role)
	}

	// поиск несуществующего — (nil, nil)
	got, err = r.GetByUsername(ctx, "doesnotexist")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserRepository_ListAll(t *testing.T) {
	db := newTestDB(t)
	r := NewUserRepository(db)
	ctx := context.Background()

	assert.NoError(t, r.Upsert(ctx, &model.User{Username: "zoe", PasswordHash: "h", Salt: "s", Role: "user"}))
	assert.NoError(t, r.Upsert(ctx, &model.User{Username: "amy", PasswordHash: "h", Salt: "s", Role: "admin"}))

	list, err := r.ListAll(ctx)
	assert.NoError(t, err)
	if assert.Len(t, list, 2) {
		assert.Equal(t, "amy", list[0].Username)
		assert.Equal(t, "zoe", list[1].Username)
	}
}
