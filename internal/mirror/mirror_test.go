package mirror

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestStore(t *testing.T) Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	store, err := NewGormStore(db)
	assert.NoError(t, err)
	return store
}

func TestGormStore_ReadMissingKey(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Read(context.Background(), "cart:unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStore_WriteThenRead(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	err := store.Write(ctx, CartKey("sess-1"), []byte(`{"items":[]}`))
	assert.NoError(t, err)

	data, err := store.Read(ctx, CartKey("sess-1"))
	assert.NoError(t, err)
	assert.Equal(t, `{"items":[]}`, string(data))
}

func TestGormStore_WriteOverwrites(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Write(ctx, "user:1", []byte(`{"v":1}`)))
	assert.NoError(t, store.Write(ctx, "user:1", []byte(`{"v":2}`)))

	data, err := store.Read(ctx, "user:1")
	assert.NoError(t, err)
	assert.Equal(t, `{"v":2}`, string(data))
}

func TestGormStore_Delete(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	assert.NoError(t, store.Write(ctx, "cart:gone", []byte(`{}`)))
	assert.NoError(t, store.Delete(ctx, "cart:gone"))

	_, err := store.Read(ctx, "cart:gone")
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting a missing key is not an error
	assert.NoError(t, store.Delete(ctx, "cart:gone"))
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Read(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.NoError(t, store.Write(ctx, "k", []byte("v")))
	data, err := store.Read(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, "v", string(data))

	assert.NoError(t, store.Delete(ctx, "k"))
	_, err = store.Read(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ReadReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, store.Write(ctx, "k", []byte("abc")))
	data, err := store.Read(ctx, "k")
	assert.NoError(t, err)

	data[0] = 'x'
	again, err := store.Read(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

type profile struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

func TestJSONHelpers(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	in := profile{Name: "Sari", Level: "Gold"}
	assert.NoError(t, WriteJSON(ctx, store, UserKey("7"), in))

	var out profile
	assert.NoError(t, ReadJSON(ctx, store, UserKey("7"), &out))
	assert.Equal(t, in, out)

	err := ReadJSON(ctx, store, UserKey("8"), &out)
	assert.ErrorIs(t, err, ErrNotFound)
}
