package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer is the shipping/contact record submitted with a checkout. All
// fields are required.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

// Complete reports whether all six required fields are present.
func (c Customer) Complete() bool {
	return c.Name != "" && c.Email != "" && c.Address != "" &&
		c.City != "" && c.State != "" && c.ZipCode != ""
}

// LineItem snapshots one checkout line. Title, price and image are copied at
// transaction time because the catalog may change after the order is placed.
type LineItem struct {
	ProductID string          `json:"productId"`
	Title     string          `json:"title"`
	Variant   *string         `json:"variant"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Image     string          `json:"image,omitempty"`
}

// Order is created once per checkout submission and never mutated after.
type Order struct {
	OrderID         string          `json:"orderId"`
	Customer        Customer        `json:"customer"`
	Items           []LineItem      `json:"products"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          Status          `json:"status"`
	TransactionCode string          `json:"transactionCode"`
	CreatedAt       time.Time       `json:"createdAt"`
}
