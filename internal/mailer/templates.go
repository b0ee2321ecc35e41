package mailer

import (
	"bytes"
	"html/template"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ariefcatur/go-storefront-checkout/internal/orders"
)

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Order Confirmation</h2>
  <p>Dear {{.Name}},</p>
  <p>Thank you for your order! Your order has been successfully processed.</p>

  <h3>Order Details</h3>
  <p><strong>Order ID:</strong> {{.OrderID}}</p>
  <p><strong>Date:</strong> {{.Date}}</p>

  <h3>Products</h3>
  <table style="width: 100%; border-collapse: collapse;">
    <thead>
      <tr style="background-color: #f2f2f2;">
        <th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Product</th>
        <th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Quantity</th>
        <th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Price</th>
        <th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Total</th>
      </tr>
    </thead>
    <tbody>
      {{range .Rows}}<tr>
        <td>{{.Product}}</td>
        <td>{{.Quantity}}</td>
        <td>${{.Unit}}</td>
        <td>${{.Total}}</td>
      </tr>
      {{end}}<tr style="font-weight: bold;">
        <td colspan="3" style="padding: 8px; text-align: right; border: 1px solid #ddd;">Total:</td>
        <td style="padding: 8px; text-align: left; border: 1px solid #ddd;">${{.TotalAmount}}</td>
      </tr>
    </tbody>
  </table>

  <h3>Shipping Address</h3>
  <p>
    {{.Address}}<br>
    {{.City}}, {{.State}} {{.ZipCode}}
  </p>

  <p>If you have any questions about your order, please contact our customer service.</p>

  <p>Thank you for shopping with us!</p>
</div>
`))

var failureTmpl = template.Must(template.New("failure").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Order Processing Failed</h2>
  <p>Dear {{.Name}},</p>
  <p>We're sorry, but we couldn't process your order at this time.</p>

  <h3>Reason</h3>
  <p>{{.Reason}}</p>

  <h3>What to do next</h3>
  <p>Please try the following:</p>
  <ul>
    <li>Check your payment information and try again</li>
    <li>Use a different payment method</li>
    <li>Contact your bank to ensure there are no issues with your account</li>
    <li>Try again later if there was a system error</li>
  </ul>

  <p>If you continue to experience issues, please contact our customer service for assistance.</p>

  <p>We apologize for any inconvenience this may have caused.</p>
</div>
`))

type confirmationRow struct {
	Product  string
	Quantity int
	Unit     string
	Total    string
}

type confirmationData struct {
	Name        string
	OrderID     string
	Date        string
	Rows        []confirmationRow
	TotalAmount string
	Address     string
	City        string
	State       string
	ZipCode     string
}

func renderConfirmation(o orders.Order) (string, error) {
	data := confirmationData{
		Name:        o.Customer.Name,
		OrderID:     o.OrderID,
		Date:        time.Now().Format("1/2/2006"),
		TotalAmount: o.TotalAmount.StringFixed(2),
		Address:     o.Customer.Address,
		City:        o.Customer.City,
		State:       o.Customer.State,
		ZipCode:     o.Customer.ZipCode,
	}
	for _, it := range o.Items {
		name := it.Title
		if it.Variant != nil {
			name += " (" + *it.Variant + ")"
		}
		data.Rows = append(data.Rows, confirmationRow{
			Product:  name,
			Quantity: it.Quantity,
			Unit:     it.Price.StringFixed(2),
			Total:    it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))).StringFixed(2),
		})
	}

	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderFailure(c orders.Customer, reason string) (string, error) {
	var buf bytes.Buffer
	err := failureTmpl.Execute(&buf, struct {
		Name   string
		Reason string
	}{Name: c.Name, Reason: reason})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
