package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceStore_GetMissing(t *testing.T) {
	store := NewPreferenceStore()

	value, found, err := store.GetItem(context.Background(), "preferred_currency")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestPreferenceStore_SetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewPreferenceStore()

	require.NoError(t, store.SetItem(ctx, "preferred_currency", "EUR"))
	require.NoError(t, store.SetItem(ctx, "preferred_currency", "USD"))

	value, found, err := store.GetItem(ctx, "preferred_currency")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "USD", value)
}

func TestPreferenceStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := NewPreferenceStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.SetItem(ctx, fmt.Sprintf("client:%d:preferred_currency", i%5), "EUR"))
		}(i)
		go func(i int) {
			defer wg.Done()
			_, _, err := store.GetItem(ctx, fmt.Sprintf("client:%d:preferred_currency", i%5))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 5; i++ {
		value, found, err := store.GetItem(ctx, fmt.Sprintf("client:%d:preferred_currency", i))
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "EUR", value)
	}
}
