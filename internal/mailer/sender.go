package mailer

import (
	"context"
	"time"

	"github.com/ariefcatur/go-storefront-checkout/internal/orders"
)

type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender delivers transactional mail for checkout outcomes. Callers must
// treat failures as non-fatal: a lost email never fails an order.
type Sender interface {
	SendOrderConfirmation(ctx context.Context, o orders.Order) (SendResult, error)
	SendOrderFailure(ctx context.Context, c orders.Customer, reason string) (SendResult, error)
}
