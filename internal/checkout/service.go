package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-storefront-checkout/internal/catalog"
	kafkax "github.com/ariefcatur/go-storefront-checkout/internal/kafka"
	"github.com/ariefcatur/go-storefront-checkout/internal/mailer"
	"github.com/ariefcatur/go-storefront-checkout/internal/orders"
)

type ItemInput struct {
	ProductID string `json:"productId"`
	Variant   string `json:"variant,omitempty"`
	Quantity  int    `json:"quantity"`
}

type Request struct {
	Customer        orders.Customer `json:"customer"`
	Products        []ItemInput     `json:"products"`
	TransactionCode string          `json:"transactionCode"`
	TraceID         string          `json:"-"`
}

// Result is the checkout outcome for the HTTP layer. Status approved means
// success; declined/error carry the customer-facing Reason.
type Result struct {
	OrderID     string
	Status      orders.Status
	TotalAmount decimal.Decimal
	Reason      string
}

// Publisher is the fire-and-forget half of the kafka producer. Nil disables
// event dispatch.
type Publisher interface {
	Publish(key, value []byte, headers ...kafkago.Header)
}

// Processor runs the checkout workflow: validate, simulate the payment
// outcome, decrement inventory, persist the order and notify. All
// dependencies are injected once at startup.
type Processor struct {
	Catalog catalog.Store
	Orders  orders.Store
	Mailer  mailer.Sender

	ApprovedEvents Publisher
	FailedEvents   Publisher

	Service string
	Log     *zap.Logger
}

// Process returns a Result for every resolved submission, approved or not.
// Typed errors (*ValidationError, *NotFoundError) reject the request before
// any side effect; any other error is an infrastructure failure.
func (p *Processor) Process(ctx context.Context, req Request) (*Result, error) {
	if !req.Customer.Complete() {
		return nil, &ValidationError{
			Message: "Incomplete customer information",
			Details: "Name, email, address, city, state, and zip code are required",
		}
	}
	if len(req.Products) == 0 {
		return nil, &ValidationError{
			Message: "Invalid products data",
			Details: "Products must be a non-empty array",
		}
	}

	outcome := ResolveTransactionCode(req.TransactionCode)
	if outcome.Approved() {
		return p.approve(ctx, req)
	}
	return p.reject(ctx, req, outcome)
}

// resolvedLine pairs the order snapshot with the inventory counter it will
// decrement.
type resolvedLine struct {
	item orders.LineItem
	inv  catalog.InventoryLine
}

func (p *Processor) approve(ctx context.Context, req Request) (*Result, error) {
	lines, total, err := p.resolveStrict(ctx, req.Products)
	if err != nil {
		return nil, err
	}

	// Every line is validated above; the store re-checks availability under
	// row locks and applies all decrements or none, so concurrent checkouts
	// cannot oversell and a shortfall never leaves partial decrements.
	invLines := make([]catalog.InventoryLine, 0, len(lines))
	for _, ln := range lines {
		invLines = append(invLines, ln.inv)
	}
	if err := p.Catalog.DecrementInventory(ctx, invLines); err != nil {
		var short *catalog.InsufficientInventoryError
		if errors.As(err, &short) {
			return nil, &ValidationError{
				Message: "Insufficient inventory",
				Details: inventoryDetails(lines, short),
			}
		}
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, &NotFoundError{
				Message: "Product not found",
				Details: "A product in the order no longer exists",
			}
		}
		return nil, fmt.Errorf("decrement inventory: %w", err)
	}

	order := orders.Order{
		OrderID:         orders.NewOrderID(),
		Customer:        req.Customer,
		Items:           itemsOf(lines),
		TotalAmount:     total,
		Status:          orders.StatusApproved,
		TransactionCode: req.TransactionCode,
		CreatedAt:       time.Now().UTC(),
	}
	if err := p.Orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}

	if _, err := p.Mailer.SendOrderConfirmation(ctx, order); err != nil {
		p.Log.Warn("confirmation email failed but order was processed",
			zap.String("order_id", order.OrderID), zap.Error(err))
	}
	p.publishApproved(order, req.TraceID)

	return &Result{OrderID: order.OrderID, Status: order.Status, TotalAmount: total}, nil
}

func (p *Processor) reject(ctx context.Context, req Request, outcome Outcome) (*Result, error) {
	// Re-resolve purely for the audit record; items whose product no longer
	// exists are skipped without error and no inventory moves.
	items, total, err := p.resolveLenient(ctx, req.Products)
	if err != nil {
		return nil, err
	}

	order := orders.Order{
		OrderID:         orders.NewOrderID(),
		Customer:        req.Customer,
		Items:           items,
		TotalAmount:     total,
		Status:          outcome.Status,
		TransactionCode: req.TransactionCode,
		CreatedAt:       time.Now().UTC(),
	}
	if err := p.Orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("persist failed order: %w", err)
	}

	if _, err := p.Mailer.SendOrderFailure(ctx, req.Customer, outcome.Reason); err != nil {
		p.Log.Warn("failure email failed",
			zap.String("order_id", order.OrderID), zap.Error(err))
	}
	p.publishFailed(order, outcome, req.TraceID)

	return &Result{
		OrderID:     order.OrderID,
		Status:      outcome.Status,
		TotalAmount: total,
		Reason:      outcome.Reason,
	}, nil
}

// resolveStrict validates every line and builds priced snapshots before any
// mutation: unknown product/variant aborts the whole request, and requested
// quantities are checked against current effective inventory.
func (p *Processor) resolveStrict(ctx context.Context, items []ItemInput) ([]resolvedLine, decimal.Decimal, error) {
	out := make([]resolvedLine, 0, len(items))
	total := decimal.Zero

	for _, in := range items {
		if in.Quantity <= 0 {
			return nil, decimal.Zero, &ValidationError{
				Message: "Invalid products data",
				Details: fmt.Sprintf("Quantity for product %s must be a positive integer", in.ProductID),
			}
		}

		prod, err := p.Catalog.Get(ctx, in.ProductID)
		if errors.Is(err, catalog.ErrNotFound) {
			return nil, decimal.Zero, &NotFoundError{
				Message: "Product not found",
				Details: fmt.Sprintf("Product with ID %s does not exist", in.ProductID),
			}
		}
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("load product %s: %w", in.ProductID, err)
		}

		price, inventory, image := prod.Price, prod.Inventory, prod.Image
		var variantName *string
		if in.Variant != "" {
			v, ok := prod.FindVariant(in.Variant)
			if !ok {
				return nil, decimal.Zero, &NotFoundError{
					Message: "Variant not found",
					Details: fmt.Sprintf("Variant %s does not exist for product %s", in.Variant, prod.Title),
				}
			}
			price, inventory = v.Price, v.Inventory
			if v.Image != "" {
				image = v.Image
			}
			name := v.Name
			variantName = &name
		}

		if inventory < in.Quantity {
			return nil, decimal.Zero, &ValidationError{
				Message: "Insufficient inventory",
				Details: notEnough(prod.Title, in.Variant),
			}
		}

		out = append(out, resolvedLine{
			item: orders.LineItem{
				ProductID: prod.ID,
				Title:     prod.Title,
				Variant:   variantName,
				Price:     price,
				Quantity:  in.Quantity,
				Image:     image,
			},
			inv: catalog.InventoryLine{ProductID: prod.ID, Variant: in.Variant, Qty: in.Quantity},
		})
		total = total.Add(price.Mul(decimal.NewFromInt(int64(in.Quantity))))
	}

	return out, total, nil
}

// resolveLenient prices what it can for the failed-order record: missing
// products are skipped, an unknown variant falls back to the base product.
func (p *Processor) resolveLenient(ctx context.Context, items []ItemInput) ([]orders.LineItem, decimal.Decimal, error) {
	var out []orders.LineItem
	total := decimal.Zero

	for _, in := range items {
		prod, err := p.Catalog.Get(ctx, in.ProductID)
		if errors.Is(err, catalog.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, decimal.Zero, fmt.Errorf("load product %s: %w", in.ProductID, err)
		}

		price, image := prod.Price, prod.Image
		var variantName *string
		if in.Variant != "" {
			if v, ok := prod.FindVariant(in.Variant); ok {
				price = v.Price
				if v.Image != "" {
					image = v.Image
				}
				name := v.Name
				variantName = &name
			}
		}

		out = append(out, orders.LineItem{
			ProductID: prod.ID,
			Title:     prod.Title,
			Variant:   variantName,
			Price:     price,
			Quantity:  in.Quantity,
			Image:     image,
		})
		total = total.Add(price.Mul(decimal.NewFromInt(int64(in.Quantity))))
	}

	return out, total, nil
}

func (p *Processor) publishApproved(o orders.Order, traceID string) {
	if p.ApprovedEvents == nil {
		return
	}
	items := make([]orders.EventItem, 0, len(o.Items))
	for _, it := range o.Items {
		variant := ""
		if it.Variant != nil {
			variant = *it.Variant
		}
		items = append(items, orders.EventItem{ProductID: it.ProductID, Variant: variant, Qty: it.Quantity})
	}
	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     orders.EventOrderApproved,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      p.Service,
		TraceID:       traceID,
		CorrelationID: o.OrderID,
		Payload: kafkax.MustMarshal(orders.OrderApprovedPayload{
			OrderID:     o.OrderID,
			Email:       o.Customer.Email,
			Items:       items,
			TotalAmount: o.TotalAmount,
		}),
	}
	p.ApprovedEvents.Publish(orders.PartitionKey(o.OrderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventOrderApproved)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func (p *Processor) publishFailed(o orders.Order, outcome Outcome, traceID string) {
	if p.FailedEvents == nil {
		return
	}
	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     orders.EventOrderFailed,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      p.Service,
		TraceID:       traceID,
		CorrelationID: o.OrderID,
		Payload: kafkax.MustMarshal(orders.OrderFailedPayload{
			OrderID: o.OrderID,
			Status:  string(outcome.Status),
			Reason:  outcome.Reason,
		}),
	}
	p.FailedEvents.Publish(orders.PartitionKey(o.OrderID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventOrderFailed)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func itemsOf(lines []resolvedLine) []orders.LineItem {
	out := make([]orders.LineItem, 0, len(lines))
	for _, ln := range lines {
		out = append(out, ln.item)
	}
	return out
}

func notEnough(title, variant string) string {
	if variant != "" {
		return fmt.Sprintf("Not enough inventory for %s (%s)", title, variant)
	}
	return fmt.Sprintf("Not enough inventory for %s", title)
}

// inventoryDetails names the failed line with its snapshot title when a
// concurrent checkout wins the race between validation and decrement.
func inventoryDetails(lines []resolvedLine, short *catalog.InsufficientInventoryError) string {
	for _, ln := range lines {
		if ln.inv.ProductID == short.ProductID && ln.inv.Variant == short.Variant {
			return notEnough(ln.item.Title, short.Variant)
		}
	}
	return notEnough(short.ProductID, short.Variant)
}
