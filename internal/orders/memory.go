package orders

import (
	"context"
	"sync"
)

// Memory is an in-memory Store for tests and local development.
type Memory struct {
	mu    sync.RWMutex
	items map[string]Order
}

func NewMemory() *Memory {
	return &Memory{items: make(map[string]Order)}
}

func (m *Memory) Create(ctx context.Context, o Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.items[o.OrderID]; exists {
		return ErrAlreadyExists
	}
	o.Items = append([]LineItem(nil), o.Items...)
	m.items[o.OrderID] = o
	return nil
}

func (m *Memory) GetByID(ctx context.Context, orderID string) (Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.items[orderID]
	if !ok {
		return Order{}, ErrNotFound
	}
	o.Items = append([]LineItem(nil), o.Items...)
	return o, nil
}

var _ Store = (*Memory)(nil)
