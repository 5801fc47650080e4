package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("assist.provider", "gemini"))
	require.NoError(t, store.Set("mirror.path", "/tmp/crm.json"))

	assert.Equal(t, "gemini", store.GetString("assist.provider"))
	assert.Equal(t, "/tmp/crm.json", store.GetString("mirror.path"))

	_, ok := store.Get("unknown.key")
	assert.False(t, ok)
	assert.Empty(t, store.GetString("unknown.key"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("some.count", 42))
	require.NoError(t, store.Set("some.flag", true))

	assert.Equal(t, 42, store.GetInt("some.count"))
	assert.True(t, store.GetBool("some.flag"))

	// Wrong-type reads degrade to zero values.
	assert.Empty(t, store.GetString("some.count"))
	assert.Zero(t, store.GetInt("some.flag"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("assist.provider", "gemini"))
	require.NoError(t, store.Set("assist.model", "gemini-custom"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "gemini", reopened.GetString("assist.provider"))
	assert.Equal(t, "gemini-custom", reopened.GetString("assist.model"))
}

func TestConfigStore_Delete(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("mirror.path", "/tmp/crm.json"))
	require.NoError(t, store.Delete("mirror.path"))

	assert.Empty(t, store.GetString("mirror.path"))

	// Deletion is persisted too.
	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Empty(t, reopened.GetString("mirror.path"))
}

func TestConfigStore_LoadsNestedTOML(t *testing.T) {
	dir := t.TempDir()
	content := "[assist]\nprovider = \"gemini\"\nmodel = \"gemini-custom\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	// Nested tables flatten to dot-notation keys.
	assert.Equal(t, "gemini", store.GetString("assist.provider"))
	assert.Equal(t, "gemini-custom", store.GetString("assist.model"))
}
