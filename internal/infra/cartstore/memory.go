package cartstore

import (
	"context"
	"sync"
	"time"

	"tienda/internal/domain/model"
)

type entry struct {
	cart      model.Cart
	expiresAt time.Time
}

// Memory is the in-process cart store: one entry per identity, refreshed to
// the full TTL on every write. Reads past the deadline behave as a miss even
// before the sweeper runs.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		entries: map[string]entry{},
		ttl:     ttl,
		now:     time.Now,
	}
}

func (m *Memory) Get(ctx context.Context, identity string) (model.Cart, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[identity]
	if !ok || m.now().After(e.expiresAt) {
		return model.NewCart(), nil
	}
	return e.cart.Clone(), nil
}

func (m *Memory) Put(ctx context.Context, identity string, cart model.Cart) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[identity] = entry{
		cart:      cart.Clone(),
		expiresAt: m.now().Add(m.ttl),
	}
	return nil
}

func (m *Memory) Delete(ctx context.Context, identity string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, identity)
	return nil
}

func (m *Memory) PurgeExpired(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	purged := 0
	for identity, e := range m.entries {
		if now.After(e.expiresAt) {
			delete(m.entries, identity)
			purged++
		}
	}
	return purged, nil
}
