package orders

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("order not found")
	ErrAlreadyExists = errors.New("order already exists")
)

type Store interface {
	Create(ctx context.Context, o Order) error
	GetByID(ctx context.Context, orderID string) (Order, error)
}
