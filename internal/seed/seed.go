// Package seed holds the sample storefront catalog and loads it into the
// database when the products table is empty.
package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ariefcatur/go-storefront-checkout/internal/catalog"
)

type sampleVariant struct {
	name      string
	price     string
	inventory int
	image     string
}

type sampleProduct struct {
	title       string
	description string
	price       string
	inventory   int
	image       string
	variants    []sampleVariant
}

var samples = []sampleProduct{
	{
		title:       "Premium Headphones",
		description: "High-quality wireless headphones with noise cancellation and premium sound quality.",
		price:       "199.99",
		inventory:   50,
		image:       "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=1000&q=80",
		variants: []sampleVariant{
			{"Black", "199.99", 20, "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=1000&q=80"},
			{"White", "199.99", 15, "https://images.unsplash.com/photo-1577174881658-0f30ed549adc?auto=format&fit=crop&w=1000&q=80"},
			{"Limited Edition Gold", "249.99", 5, "https://images.unsplash.com/photo-1583394838336-acd977736f90?auto=format&fit=crop&w=1000&q=80"},
		},
	},
	{
		title:       "Smartphone Case",
		description: "Durable and stylish smartphone case with shock absorption technology.",
		price:       "29.99",
		inventory:   100,
		image:       "https://images.unsplash.com/photo-1541877944-ac82a091518a?auto=format&fit=crop&w=1000&q=80",
		variants: []sampleVariant{
			{"iPhone 13", "29.99", 30, "https://images.unsplash.com/photo-1541877944-ac82a091518a?auto=format&fit=crop&w=1000&q=80"},
			{"iPhone 14", "34.99", 40, "https://images.unsplash.com/photo-1592899677977-9c10ca588bbd?auto=format&fit=crop&w=1000&q=80"},
			{"Samsung Galaxy S22", "29.99", 30, "https://images.unsplash.com/photo-1598327105666-5b89351aff97?auto=format&fit=crop&w=1000&q=80"},
		},
	},
	{
		title:       "Wireless Charging Pad",
		description: "Fast wireless charging pad compatible with all Qi-enabled devices.",
		price:       "49.99",
		inventory:   75,
		image:       "https://m.media-amazon.com/images/I/61oIAKY9s1L.jpg",
		variants: []sampleVariant{
			{"Standard (10W)", "49.99", 45, "https://m.media-amazon.com/images/I/61oIAKY9s1L.jpg"},
			{"Pro (15W)", "69.99", 30, "https://m.media-amazon.com/images/I/61oIAKY9s1L.jpg"},
		},
	},
	{
		title:       "Smart Watch",
		description: "Feature-rich smartwatch with health tracking and notifications.",
		price:       "249.99",
		inventory:   40,
		image:       "https://images.unsplash.com/photo-1546868871-7041f2a55e12?auto=format&fit=crop&w=1000&q=80",
		variants: []sampleVariant{
			{"Black", "249.99", 20, "https://images.unsplash.com/photo-1546868871-7041f2a55e12?auto=format&fit=crop&w=1000&q=80"},
			{"Silver", "249.99", 15, "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?auto=format&fit=crop&w=1000&q=80"},
			{"Rose Gold", "279.99", 5, "https://images.unsplash.com/photo-1508685096489-7aacd43bd3b1?auto=format&fit=crop&w=1000&q=80"},
		},
	},
	{
		title:       "Bluetooth Speaker",
		description: "Portable Bluetooth speaker with 360° sound and waterproof design.",
		price:       "79.99",
		inventory:   60,
		image:       "https://images.unsplash.com/photo-1589003077984-894e133dabab?auto=format&fit=crop&w=1000&q=80",
		variants: []sampleVariant{
			{"Black", "79.99", 25, "https://images.unsplash.com/photo-1589003077984-894e133dabab?auto=format&fit=crop&w=1000&q=80"},
			{"Blue", "79.99", 20, "https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?auto=format&fit=crop&w=1000&q=80"},
			{"Red", "79.99", 15, "https://images.unsplash.com/photo-1593078165899-c7d2ac0d6aea?auto=format&fit=crop&w=1000&q=80"},
		},
	},
	{
		title:       "Laptop Backpack",
		description: "Ergonomic backpack with padded laptop compartment and multiple pockets.",
		price:       "59.99",
		inventory:   85,
		image:       "https://images.unsplash.com/photo-1622560480605-d83c853bc5c3?auto=format&fit=crop&w=1000&q=80",
		variants: []sampleVariant{
			{"Black", "59.99", 40, "https://images.unsplash.com/photo-1622560480605-d83c853bc5c3?auto=format&fit=crop&w=1000&q=80"},
			{"Navy Blue", "59.99", 30, "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?auto=format&fit=crop&w=1000&q=80"},
			{"Gray", "59.99", 15, "https://images.unsplash.com/photo-1581605405669-fcdf81165afa?auto=format&fit=crop&w=1000&q=80"},
		},
	},
	{
		title:       "Mechanical Keyboard",
		description: "High-performance mechanical keyboard with customizable RGB lighting.",
		price:       "129.99",
		inventory:   35,
		image:       "https://images.unsplash.com/photo-1618384887929-16ec33fab9ef?auto=format&fit=crop&w=1000&q=80",
		variants: []sampleVariant{
			{"Blue Switches", "129.99", 15, "https://images.unsplash.com/photo-1618384887929-16ec33fab9ef?auto=format&fit=crop&w=1000&q=80"},
			{"Red Switches", "129.99", 10, "https://images.unsplash.com/photo-1595225476474-87563907a212?auto=format&fit=crop&w=1000&q=80"},
			{"Brown Switches", "129.99", 10, "https://images.unsplash.com/photo-1587829741301-dc798b83add3?auto=format&fit=crop&w=1000&q=80"},
		},
	},
	{
		title:       "Wireless Mouse",
		description: "Ergonomic wireless mouse with precision tracking and long battery life.",
		price:       "39.99",
		inventory:   90,
		image:       "https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7?auto=format&fit=crop&w=1000&q=80",
		variants: []sampleVariant{
			{"Black", "39.99", 40, "https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7?auto=format&fit=crop&w=1000&q=80"},
			{"White", "39.99", 30, "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?auto=format&fit=crop&w=1000&q=80"},
			{"Gaming Edition", "49.99", 20, "https://images.unsplash.com/photo-1605773527852-c546a8584ea3?auto=format&fit=crop&w=1000&q=80"},
		},
	},
}

// Products builds the sample catalog with fresh ids.
func Products() []catalog.Product {
	out := make([]catalog.Product, 0, len(samples))
	for _, s := range samples {
		p := catalog.Product{
			ID:          uuid.NewString(),
			Title:       s.title,
			Description: s.description,
			Price:       decimal.RequireFromString(s.price),
			Inventory:   s.inventory,
			Image:       s.image,
		}
		for _, v := range s.variants {
			p.Variants = append(p.Variants, catalog.Variant{
				Name:      v.name,
				Price:     decimal.RequireFromString(v.price),
				Inventory: v.inventory,
				Image:     v.image,
			})
		}
		out = append(out, p)
	}
	return out
}

// EnsureSeeded inserts the sample catalog when the store is empty, so a
// fresh database serves products on first boot.
func EnsureSeeded(ctx context.Context, repo *catalog.Repo) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("check catalog: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	products := Products()
	for _, p := range products {
		if err := repo.Insert(ctx, p); err != nil {
			return 0, fmt.Errorf("seed product %q: %w", p.Title, err)
		}
	}
	return len(products), nil
}
