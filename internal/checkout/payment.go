package checkout

import "github.com/ariefcatur/go-storefront-checkout/internal/orders"

// Failure reasons surfaced to the customer and recorded on the order.
const (
	ReasonDeclined     = "Payment was declined by the payment processor."
	ReasonGatewayError = "A gateway error occurred during payment processing."
	ReasonInvalidCode  = "Invalid transaction code provided."
)

type Outcome struct {
	Status orders.Status
	Reason string // empty when approved
}

func (o Outcome) Approved() bool { return o.Status == orders.StatusApproved }

// ResolveTransactionCode maps the client-supplied code to a simulated
// payment-gateway outcome. Stands in for a real processor response.
func ResolveTransactionCode(code string) Outcome {
	switch code {
	case "1":
		return Outcome{Status: orders.StatusApproved}
	case "2":
		return Outcome{Status: orders.StatusDeclined, Reason: ReasonDeclined}
	case "3":
		return Outcome{Status: orders.StatusError, Reason: ReasonGatewayError}
	default:
		return Outcome{Status: orders.StatusError, Reason: ReasonInvalidCode}
	}
}
