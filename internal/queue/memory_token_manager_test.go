package queue

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenManager_AcquireRelease(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryTokenManager(2)

	require.NoError(t, m.AcquireToken(ctx))
	require.NoError(t, m.AcquireToken(ctx))
	assert.ErrorIs(t, m.AcquireToken(ctx), ErrNoTokenAvailable)

	require.NoError(t, m.ReleaseToken(ctx))
	assert.NoError(t, m.AcquireToken(ctx))
}

func TestMemoryTokenManager_ReleaseCapped(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryTokenManager(1)

	require.NoError(t, m.ReleaseToken(ctx))
	require.NoError(t, m.ReleaseToken(ctx))
	assert.Equal(t, 1, m.Available())
}

func TestMemoryTokenManager_Initialize(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryTokenManager(1)

	require.NoError(t, m.InitializeTokens(ctx, 3))
	assert.Equal(t, 3, m.Available())
}

func TestMemoryTokenManager_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewMemoryTokenManager(1)
	assert.ErrorIs(t, m.AcquireToken(ctx), context.Canceled)
	assert.Equal(t, 1, m.Available())
}

func TestMemoryTokenManager_Concurrent(t *testing.T) {
	const capacity = 10
	m := NewMemoryTokenManager(capacity)

	var (
		wg       sync.WaitGroup
		acquired atomic.Int32
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if m.AcquireToken(context.Background()) == nil {
				acquired.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, capacity, acquired.Load())
	assert.Equal(t, 0, m.Available())
}
