package catalog

import (
	"context"
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("product not found")

// InventoryLine names one inventory counter to decrement: the variant-level
// counter when Variant is set, otherwise the product-level one.
type InventoryLine struct {
	ProductID string
	Variant   string
	Qty       int
}

// InsufficientInventoryError reports the first line that could not be
// satisfied. No counters are changed when it is returned.
type InsufficientInventoryError struct {
	ProductID string
	Variant   string
	Requested int
	Available int
}

func (e *InsufficientInventoryError) Error() string {
	if e.Variant != "" {
		return fmt.Sprintf("insufficient inventory for product %s (%s): requested %d, available %d",
			e.ProductID, e.Variant, e.Requested, e.Available)
	}
	return fmt.Sprintf("insufficient inventory for product %s: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}

type Store interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)

	// DecrementInventory applies all lines or none. The check and the
	// decrement happen under the same lock, so concurrent checkouts can
	// never drive a counter below zero.
	DecrementInventory(ctx context.Context, lines []InventoryLine) error
}
