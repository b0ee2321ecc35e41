package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Variant is a purchasable configuration of a product. Its price, inventory
// and image override the product's base values when selected.
type Variant struct {
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Inventory int             `json:"inventory"`
	Image     string          `json:"image,omitempty"`
}

type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Inventory   int             `json:"inventory"`
	Image       string          `json:"image"`
	Variants    []Variant       `json:"variants"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// FindVariant returns the variant with the given name, if any. Variant names
// are unique within a product.
func (p *Product) FindVariant(name string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}
