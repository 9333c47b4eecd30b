package memory

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store := NewConfigStore()

	require.NoError(t, store.Set("fetch.profile_base_url", "http://localhost"))

	val, ok := store.Get("fetch.profile_base_url")
	assert.True(t, ok)
	assert.Equal(t, "http://localhost", val)
}

func TestConfigStore_Get_Missing(t *testing.T) {
	store := NewConfigStore()

	val, ok := store.Get("missing")
	assert.False(t, ok)
	assert.Nil(t, val)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store := NewConfigStoreWith(map[string]any{
		"str":   "value",
		"int":   7,
		"int64": int64(9),
		"float": float64(11),
		"bool":  true,
		"wrong": []string{"x"},
	})

	assert.Equal(t, "value", store.GetString("str"))
	assert.Equal(t, 7, store.GetInt("int"))
	assert.Equal(t, 9, store.GetInt("int64"))
	assert.Equal(t, 11, store.GetInt("float"))
	assert.True(t, store.GetBool("bool"))

	assert.Empty(t, store.GetString("wrong"))
	assert.Zero(t, store.GetInt("wrong"))
	assert.False(t, store.GetBool("wrong"))
	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("missing"))
	assert.False(t, store.GetBool("missing"))
}

func TestConfigStore_NewConfigStoreWith_CopiesInput(t *testing.T) {
	seed := map[string]any{"key": "a"}
	store := NewConfigStoreWith(seed)

	seed["key"] = "b"

	assert.Equal(t, "a", store.GetString("key"))
}

func TestConfigStore_Unset(t *testing.T) {
	store := NewConfigStoreWith(map[string]any{"log.console": true})

	require.NoError(t, store.Unset("log.console"))

	_, ok := store.Get("log.console")
	assert.False(t, ok)
	assert.NoError(t, store.Unset("never.set"))
}

func TestConfigStore_PersistenceNoOps(t *testing.T) {
	store := NewConfigStore()

	assert.NoError(t, store.Save())
	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_ConcurrentAccess(t *testing.T) {
	store := NewConfigStore()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			key := fmt.Sprintf("key.%d", n)
			_ = store.Set(key, n)
			_ = store.GetInt(key)
		}(i)
	}
	wg.Wait()

	for i := range 50 {
		assert.Equal(t, i, store.GetInt(fmt.Sprintf("key.%d", i)))
	}
}
