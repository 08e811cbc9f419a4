package queue

import (
	"context"
	"sync"
)

// MemoryTokenManager is the single-instance TokenManager. Releases beyond the
// initialized capacity are ignored.
type MemoryTokenManager struct {
	mu       sync.Mutex
	tokens   int
	capacity int
}

func NewMemoryTokenManager(capacity int) *MemoryTokenManager {
	return &MemoryTokenManager{tokens: capacity, capacity: capacity}
}

func (m *MemoryTokenManager) AcquireToken(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tokens <= 0 {
		return ErrNoTokenAvailable
	}
	m.tokens--
	return nil
}

func (m *MemoryTokenManager) ReleaseToken(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.tokens < m.capacity {
		m.tokens++
	}
	return nil
}

func (m *MemoryTokenManager) InitializeTokens(ctx context.Context, count int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tokens = count
	m.capacity = count
	return nil
}

func (m *MemoryTokenManager) Available() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tokens
}
