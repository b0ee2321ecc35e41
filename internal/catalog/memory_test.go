package catalog_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-storefront-checkout/internal/catalog"
)

func product(id string, inventory int) catalog.Product {
	return catalog.Product{
		ID:        id,
		Title:     "Widget " + id,
		Price:     decimal.RequireFromString("9.99"),
		Inventory: inventory,
		Variants: []catalog.Variant{
			{Name: "Red", Price: decimal.RequireFromString("9.99"), Inventory: 4},
		},
	}
}

func TestMemoryGet(t *testing.T) {
	m := catalog.NewMemory(product("p1", 10))

	p, err := m.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Widget p1", p.Title)

	_, err = m.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestMemoryListSortedCopies(t *testing.T) {
	m := catalog.NewMemory(product("b", 1), product("a", 1))

	ps, err := m.List(context.Background())
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "Widget a", ps[0].Title)

	// Mutating the returned slice must not leak into the store.
	ps[0].Variants[0].Inventory = 999
	fresh, err := m.Get(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, 4, fresh.Variants[0].Inventory)
}

func TestMemoryDecrementVariantLevel(t *testing.T) {
	m := catalog.NewMemory(product("p1", 10))

	err := m.DecrementInventory(context.Background(), []catalog.InventoryLine{
		{ProductID: "p1", Variant: "Red", Qty: 3},
	})
	require.NoError(t, err)

	p, err := m.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.Variants[0].Inventory)
	assert.Equal(t, 10, p.Inventory, "base inventory untouched")
}

func TestMemoryDecrementAllOrNothing(t *testing.T) {
	m := catalog.NewMemory(product("p1", 10))

	err := m.DecrementInventory(context.Background(), []catalog.InventoryLine{
		{ProductID: "p1", Qty: 2},
		{ProductID: "p1", Variant: "Red", Qty: 5}, // only 4 available
	})

	var short *catalog.InsufficientInventoryError
	require.ErrorAs(t, err, &short)
	assert.Equal(t, "Red", short.Variant)
	assert.Equal(t, 4, short.Available)

	p, err := m.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 10, p.Inventory, "first line must not be applied when a later line fails")
	assert.Equal(t, 4, p.Variants[0].Inventory)
}

func TestMemoryDecrementUnknownTargets(t *testing.T) {
	m := catalog.NewMemory(product("p1", 10))

	err := m.DecrementInventory(context.Background(), []catalog.InventoryLine{{ProductID: "nope", Qty: 1}})
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	err = m.DecrementInventory(context.Background(), []catalog.InventoryLine{{ProductID: "p1", Variant: "Nope", Qty: 1}})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

// Concurrent single-unit decrements against a counter of 10 must succeed
// exactly 10 times and never drive the counter negative.
func TestMemoryDecrementNoOversell(t *testing.T) {
	m := catalog.NewMemory(product("p1", 10))

	const attempts = 25
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- m.DecrementInventory(context.Background(), []catalog.InventoryLine{
				{ProductID: "p1", Qty: 1},
			})
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			var short *catalog.InsufficientInventoryError
			assert.ErrorAs(t, err, &short)
		}
	}
	assert.Equal(t, 10, succeeded)

	p, err := m.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, p.Inventory)
}
