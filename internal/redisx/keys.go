package redisx

import "time"

const (
	// Catalog listing cache: catalog:products -> JSON array
	KeyProducts = "catalog:products"

	// Single product cache: catalog:product:{id} -> JSON object
	KeyProduct = "catalog:product:%s"

	// Order record cache: order:{order_id} -> JSON object
	KeyOrder = "order:%s"
)

var (
	TTLCatalog = 5 * time.Minute
	TTLOrder   = 5 * time.Minute
)
