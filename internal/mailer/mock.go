package mailer

import (
	"context"
	"time"

	"github.com/ariefcatur/go-storefront-checkout/internal/orders"
)

// Mock is a configurable Sender stub for tests.
type Mock struct {
	Err error

	Confirmations []orders.Order
	Failures      []string // recorded failure reasons
}

func (m *Mock) SendOrderConfirmation(ctx context.Context, o orders.Order) (SendResult, error) {
	m.Confirmations = append(m.Confirmations, o)
	if m.Err != nil {
		return SendResult{}, m.Err
	}
	return SendResult{MessageID: "mock-" + o.OrderID, SentAt: time.Now()}, nil
}

func (m *Mock) SendOrderFailure(ctx context.Context, c orders.Customer, reason string) (SendResult, error) {
	m.Failures = append(m.Failures, reason)
	if m.Err != nil {
		return SendResult{}, m.Err
	}
	return SendResult{MessageID: "mock-failure", SentAt: time.Now()}, nil
}

var _ Sender = (*Mock)(nil)
