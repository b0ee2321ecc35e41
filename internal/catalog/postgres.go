package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) List(ctx context.Context) ([]Product, error) {
	rows, err := r.DB.Query(ctx, `SELECT id, title, description, price, inventory, image, created_at, updated_at
	                              FROM products ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	byID := map[string]int{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Inventory, &p.Image, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		byID[p.ID] = len(out)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	vrows, err := r.DB.Query(ctx, `SELECT product_id, name, price, inventory, image
	                               FROM product_variants ORDER BY product_id, pos`)
	if err != nil {
		return nil, err
	}
	defer vrows.Close()

	for vrows.Next() {
		var pid string
		var v Variant
		if err := vrows.Scan(&pid, &v.Name, &v.Price, &v.Inventory, &v.Image); err != nil {
			return nil, err
		}
		if i, ok := byID[pid]; ok {
			out[i].Variants = append(out[i].Variants, v)
		}
	}
	return out, vrows.Err()
}

func (r *Repo) Get(ctx context.Context, id string) (Product, error) {
	var p Product
	err := r.DB.QueryRow(ctx, `SELECT id, title, description, price, inventory, image, created_at, updated_at
	                           FROM products WHERE id=$1`, id).
		Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Inventory, &p.Image, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Product{}, ErrNotFound
	}
	if err != nil {
		return Product{}, err
	}

	rows, err := r.DB.Query(ctx, `SELECT name, price, inventory, image
	                              FROM product_variants WHERE product_id=$1 ORDER BY pos`, id)
	if err != nil {
		return Product{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var v Variant
		if err := rows.Scan(&v.Name, &v.Price, &v.Inventory, &v.Image); err != nil {
			return Product{}, err
		}
		p.Variants = append(p.Variants, v)
	}
	return p, rows.Err()
}

// DecrementInventory locks each touched counter row (FOR UPDATE), re-checks
// availability under the lock and decrements. Any shortfall rolls the whole
// transaction back, so a multi-line order never leaves partial decrements.
func (r *Repo) DecrementInventory(ctx context.Context, lines []InventoryLine) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, ln := range lines {
		var available int
		if ln.Variant != "" {
			err = tx.QueryRow(ctx, `SELECT inventory FROM product_variants
			                        WHERE product_id=$1 AND name=$2 FOR UPDATE`, ln.ProductID, ln.Variant).Scan(&available)
		} else {
			err = tx.QueryRow(ctx, `SELECT inventory FROM products WHERE id=$1 FOR UPDATE`, ln.ProductID).Scan(&available)
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if available < ln.Qty {
			return &InsufficientInventoryError{
				ProductID: ln.ProductID, Variant: ln.Variant, Requested: ln.Qty, Available: available,
			}
		}

		if ln.Variant != "" {
			_, err = tx.Exec(ctx, `UPDATE product_variants SET inventory = inventory - $3
			                       WHERE product_id=$1 AND name=$2`, ln.ProductID, ln.Variant, ln.Qty)
		} else {
			_, err = tx.Exec(ctx, `UPDATE products SET inventory = inventory - $2, updated_at = now()
			                       WHERE id=$1`, ln.ProductID, ln.Qty)
		}
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// Insert writes a product and its variants. Used by seeding, not part of the
// read/decrement Store contract.
func (r *Repo) Insert(ctx context.Context, p Product) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `INSERT INTO products(id, title, description, price, inventory, image)
	                       VALUES ($1,$2,$3,$4,$5,$6)`,
		p.ID, p.Title, p.Description, p.Price, p.Inventory, p.Image)
	if err != nil {
		return err
	}
	for i, v := range p.Variants {
		_, err = tx.Exec(ctx, `INSERT INTO product_variants(product_id, pos, name, price, inventory, image)
		                       VALUES ($1,$2,$3,$4,$5,$6)`,
			p.ID, i, v.Name, v.Price, v.Inventory, v.Image)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

var _ Store = (*Repo)(nil)
