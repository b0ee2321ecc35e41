package orders

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

func (r *Repo) Create(ctx context.Context, o Order) error {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	ct, err := tx.Exec(ctx, `
		INSERT INTO orders(order_id, customer_name, customer_email, customer_address,
		                   customer_city, customer_state, customer_zip,
		                   total_amount, status, transaction_code, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		ON CONFLICT (order_id) DO NOTHING`,
		o.OrderID, o.Customer.Name, o.Customer.Email, o.Customer.Address,
		o.Customer.City, o.Customer.State, o.Customer.ZipCode,
		o.TotalAmount, string(o.Status), o.TransactionCode, o.CreatedAt,
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() != 1 {
		return ErrAlreadyExists
	}

	for i, it := range o.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items(order_id, pos, product_id, title, variant, price, qty, image)
			VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
			o.OrderID, i, it.ProductID, it.Title, it.Variant, it.Price, it.Quantity, it.Image,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *Repo) GetByID(ctx context.Context, orderID string) (Order, error) {
	var o Order
	var status string
	err := r.DB.QueryRow(ctx, `
		SELECT order_id, customer_name, customer_email, customer_address,
		       customer_city, customer_state, customer_zip,
		       total_amount, status, transaction_code, created_at
		FROM orders WHERE order_id=$1`, orderID).
		Scan(&o.OrderID, &o.Customer.Name, &o.Customer.Email, &o.Customer.Address,
			&o.Customer.City, &o.Customer.State, &o.Customer.ZipCode,
			&o.TotalAmount, &status, &o.TransactionCode, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	o.Status = Status(status)

	rows, err := r.DB.Query(ctx, `
		SELECT product_id, title, variant, price, qty, image
		FROM order_items WHERE order_id=$1 ORDER BY pos`, orderID)
	if err != nil {
		return Order{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var it LineItem
		if err := rows.Scan(&it.ProductID, &it.Title, &it.Variant, &it.Price, &it.Quantity, &it.Image); err != nil {
			return Order{}, err
		}
		o.Items = append(o.Items, it)
	}
	return o, rows.Err()
}

var _ Store = (*Repo)(nil)
