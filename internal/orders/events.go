package orders

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

const (
	EventOrderApproved = "OrderApproved"
	EventOrderFailed   = "OrderFailed"
)

type Envelope struct {
	EventID       string          `json:"event_id"`      // uuid
	EventType     string          `json:"event_type"`    // one of the consts above
	EventVersion  int             `json:"event_version"` // 1
	OccurredAt    time.Time       `json:"occurred_at"`   // RFC3339
	Producer      string          `json:"producer"`      // e.g., "storefront-api"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order_id
	Payload       json.RawMessage `json:"payload"`
}

// ---- Payload per event ----

type EventItem struct {
	ProductID string `json:"product_id"`
	Variant   string `json:"variant,omitempty"`
	Qty       int    `json:"qty"`
}

type OrderApprovedPayload struct {
	OrderID     string          `json:"order_id"`
	Email       string          `json:"email"`
	Items       []EventItem     `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type OrderFailedPayload struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"` // declined | error
	Reason  string `json:"reason"`
}
