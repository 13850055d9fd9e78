package nonce_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/illiaantonenko/attendance/internal/checkin/nonce"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorePutPeekConsume(t *testing.T) {
	ctx := context.Background()
	store := nonce.NewMemoryStore()

	require.NoError(t, store.Put(ctx, "n1", 7, time.Now().Add(time.Minute)))

	eventID, ok, err := store.Peek(ctx, "n1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(7), eventID)

	// Peek does not consume.
	_, ok, err = store.Peek(ctx, "n1")
	require.NoError(t, err)
	require.True(t, ok)

	eventID, ok, err = store.Consume(ctx, "n1")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(7), eventID)

	_, ok, err = store.Consume(ctx, "n1")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = store.Peek(ctx, "n1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreUnknownNonce(t *testing.T) {
	ctx := context.Background()
	store := nonce.NewMemoryStore()

	_, ok, err := store.Peek(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = store.Consume(ctx, "missing")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	clock := now
	var mu sync.Mutex
	store := nonce.NewMemoryStoreWithClock(func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return clock
	})

	require.NoError(t, store.Put(ctx, "n1", 7, now.Add(10*time.Minute)))

	// An entry expiring exactly now is already dead.
	mu.Lock()
	clock = now.Add(10 * time.Minute)
	mu.Unlock()

	_, ok, err := store.Peek(ctx, "n1")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = store.Consume(ctx, "n1")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMemoryStoreSweep(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	store := nonce.NewMemoryStore()

	require.NoError(t, store.Put(ctx, "dead1", 1, now.Add(-time.Minute)))
	require.NoError(t, store.Put(ctx, "dead2", 2, now))
	require.NoError(t, store.Put(ctx, "live", 3, now.Add(time.Minute)))

	removed, err := store.Sweep(ctx, now)
	require.NoError(t, err)
	require.Equal(t, 2, removed)
	require.Equal(t, 1, store.Len())

	_, ok, err := store.Peek(ctx, "live")
	require.NoError(t, err)
	require.True(t, ok)
}

func TestMemoryStoreConcurrentConsume(t *testing.T) {
	ctx := context.Background()
	store := nonce.NewMemoryStore()

	require.NoError(t, store.Put(ctx, "contested", 7, time.Now().Add(time.Minute)))

	const workers = 64
	var wins atomic.Int64
	var wg sync.WaitGroup
	start := make(chan struct{})

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, ok, _ := store.Consume(ctx, "contested"); ok {
				wins.Add(1)
			}
		}()
	}

	close(start)
	wg.Wait()

	require.Equal(t, int64(1), wins.Load())
}
