package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorage_SetGetDelete(t *testing.T) {
	store := NewMemorySessionStorage()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "telecheck_user", `{"id":"usr-1"}`, 0))

	value, err := store.Get(ctx, "telecheck_user")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"usr-1"}`, value)

	require.NoError(t, store.Delete(ctx, "telecheck_user", "auth_token"))

	value, err = store.Get(ctx, "telecheck_user")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestMemoryStorage_AbsentKeyIsEmptyNotError(t *testing.T) {
	store := NewMemorySessionStorage()

	value, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestMemoryStorage_ExpiredEntryReadsAsAbsent(t *testing.T) {
	store := NewMemorySessionStorage()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "ephemeral", "value", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	value, err := store.Get(ctx, "ephemeral")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestMemoryStorage_IncrementWithTTL(t *testing.T) {
	store := NewMemorySessionStorage()
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		count, err := store.IncrementWithTTL(ctx, "AUTH_LOGIN:a@b.c", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, count)
	}
}

func TestMemoryStorage_IncrementResetsAfterWindow(t *testing.T) {
	store := NewMemorySessionStorage()
	ctx := context.Background()

	_, err := store.IncrementWithTTL(ctx, "AUTH_LOGIN:a@b.c", time.Millisecond)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	count, err := store.IncrementWithTTL(ctx, "AUTH_LOGIN:a@b.c", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
