package checkout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ariefcatur/go-storefront-checkout/internal/checkout"
	"github.com/ariefcatur/go-storefront-checkout/internal/orders"
)

func TestResolveTransactionCode(t *testing.T) {
	cases := []struct {
		code   string
		status orders.Status
		reason string
	}{
		{"1", orders.StatusApproved, ""},
		{"2", orders.StatusDeclined, checkout.ReasonDeclined},
		{"3", orders.StatusError, checkout.ReasonGatewayError},
		{"4", orders.StatusError, checkout.ReasonInvalidCode},
		{"", orders.StatusError, checkout.ReasonInvalidCode},
		{"abc", orders.StatusError, checkout.ReasonInvalidCode},
	}

	for _, tc := range cases {
		t.Run("code "+tc.code, func(t *testing.T) {
			out := checkout.ResolveTransactionCode(tc.code)
			assert.Equal(t, tc.status, out.Status)
			assert.Equal(t, tc.reason, out.Reason)
			assert.Equal(t, tc.status == orders.StatusApproved, out.Approved())
		})
	}
}
