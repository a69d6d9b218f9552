package token

import (
	"path/filepath"
	"testing"

	"timeline-frontend/internal/util"

	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	util.InitLogger("error")
	m.Run()
}

// TestFileStore 测试文件存储的读写与持久化
func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")

	store, err := NewFileStore(path)
	assert.NoError(t, err)

	// 缺失的键返回 ErrKeyNotFound
	_, err = store.Get(KeyIDToken)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.NoError(t, store.Set(KeyAccessToken, "access-123"))
	assert.NoError(t, store.Set(KeyIDToken, "id-456"))

	value, err := store.Get(KeyAccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "access-123", value)

	// 重新打开后仍然可读（跨重启持久化）
	reopened, err := NewFileStore(path)
	assert.NoError(t, err)
	value, err = reopened.Get(KeyIDToken)
	assert.NoError(t, err)
	assert.Equal(t, "id-456", value)

	// 删除后再读返回 ErrKeyNotFound
	assert.NoError(t, reopened.Delete(KeyIDToken))
	_, err = reopened.Get(KeyIDToken)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

// TestMemoryStore 测试内存存储
func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(KeyUser)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.NoError(t, store.Set(KeyUser, `{"id":"u1"}`))
	value, err := store.Get(KeyUser)
	assert.NoError(t, err)
	assert.Equal(t, `{"id":"u1"}`, value)

	assert.NoError(t, store.Delete(KeyUser))
	_, err = store.Get(KeyUser)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}
