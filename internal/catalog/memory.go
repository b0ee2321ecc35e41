package catalog

import (
	"context"
	"sort"
	"sync"
)

// Memory is a mutex-guarded in-memory Store for tests and local development.
type Memory struct {
	mu    sync.RWMutex
	items map[string]Product
}

func NewMemory(products ...Product) *Memory {
	m := &Memory{items: make(map[string]Product, len(products))}
	for _, p := range products {
		m.items[p.ID] = clone(p)
	}
	return m
}

func (m *Memory) List(ctx context.Context) ([]Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Product, 0, len(m.items))
	for _, p := range m.items {
		out = append(out, clone(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (m *Memory) Get(ctx context.Context, id string) (Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.items[id]
	if !ok {
		return Product{}, ErrNotFound
	}
	return clone(p), nil
}

// DecrementInventory holds the write lock across check and apply, so the
// whole batch is all-or-nothing and concurrent calls cannot oversell.
func (m *Memory) DecrementInventory(ctx context.Context, lines []InventoryLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, ln := range lines {
		available, err := m.available(ln)
		if err != nil {
			return err
		}
		if available < ln.Qty {
			return &InsufficientInventoryError{
				ProductID: ln.ProductID, Variant: ln.Variant, Requested: ln.Qty, Available: available,
			}
		}
	}

	for _, ln := range lines {
		p := m.items[ln.ProductID]
		if ln.Variant == "" {
			p.Inventory -= ln.Qty
		} else {
			for i := range p.Variants {
				if p.Variants[i].Name == ln.Variant {
					p.Variants[i].Inventory -= ln.Qty
					break
				}
			}
		}
		m.items[ln.ProductID] = p
	}
	return nil
}

func (m *Memory) available(ln InventoryLine) (int, error) {
	p, ok := m.items[ln.ProductID]
	if !ok {
		return 0, ErrNotFound
	}
	if ln.Variant == "" {
		return p.Inventory, nil
	}
	v, ok := p.FindVariant(ln.Variant)
	if !ok {
		return 0, ErrNotFound
	}
	return v.Inventory, nil
}

func clone(p Product) Product {
	p.Variants = append([]Variant(nil), p.Variants...)
	return p
}

var _ Store = (*Memory)(nil)
