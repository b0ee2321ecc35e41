package httpx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/ariefcatur/go-storefront-checkout/internal/catalog"
	"github.com/ariefcatur/go-storefront-checkout/internal/checkout"
	"github.com/ariefcatur/go-storefront-checkout/internal/httpx"
	"github.com/ariefcatur/go-storefront-checkout/internal/mailer"
	"github.com/ariefcatur/go-storefront-checkout/internal/orders"
)

func TestMain(m *testing.M) {
	// Same wire format main configures: prices as bare JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
	os.Exit(m.Run())
}

type env struct {
	router  *chi.Mux
	catalog *catalog.Memory
	orders  *orders.Memory
	mailer  *mailer.Mock
}

func newEnv(t *testing.T) *env {
	log := zaptest.NewLogger(t)

	cat := catalog.NewMemory(catalog.Product{
		ID:          "p1",
		Title:       "Premium Headphones",
		Description: "Wireless headphones.",
		Price:       decimal.RequireFromString("150"),
		Inventory:   8,
		Image:       "base.jpg",
		Variants: []catalog.Variant{
			{Name: "Black", Price: decimal.RequireFromString("10"), Inventory: 5, Image: "black.jpg"},
		},
	})
	ord := orders.NewMemory()
	mock := &mailer.Mock{}

	proc := &checkout.Processor{
		Catalog: cat,
		Orders:  ord,
		Mailer:  mock,
		Service: "storefront-test",
		Log:     log,
	}

	router := httpx.NewRouter(log)
	(&httpx.CheckoutHandler{Processor: proc, Orders: ord, Log: log}).Register(router)
	(&httpx.CatalogHandler{Catalog: cat, Log: log}).Register(router)

	return &env{router: router, catalog: cat, orders: ord, mailer: mock}
}

func (e *env) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *bytes.Reader
	if body == "" {
		rdr = bytes.NewReader(nil)
	} else {
		rdr = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, rdr)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

const validCheckout = `{
	"customer": {"name":"A","email":"a@b.com","address":"1 St","city":"X","state":"Y","zipCode":"00000"},
	"products": [{"productId":"p1","variant":"Black","quantity":2}],
	"transactionCode": "1"
}`

func TestCheckoutApproved(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/api/checkout", validCheckout)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp struct {
		Message     string  `json:"message"`
		OrderID     string  `json:"orderId"`
		Status      string  `json:"status"`
		TotalAmount float64 `json:"totalAmount"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Order processed successfully", resp.Message)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, 20.0, resp.TotalAmount)
	assert.Len(t, resp.OrderID, 8)

	p, err := e.catalog.Get(context.Background(), "p1")
	require.NoError(t, err)
	v, _ := p.FindVariant("Black")
	assert.Equal(t, 3, v.Inventory)

	require.Len(t, e.mailer.Confirmations, 1)
}

func TestCheckoutDeclined(t *testing.T) {
	e := newEnv(t)

	body := strings.Replace(validCheckout, `"transactionCode": "1"`, `"transactionCode": "2"`, 1)
	rec := e.do(t, http.MethodPost, "/api/checkout", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Message string `json:"message"`
		Reason  string `json:"reason"`
		Status  string `json:"status"`
		OrderID string `json:"orderId"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Transaction failed", resp.Message)
	assert.Equal(t, "declined", resp.Status)
	assert.Equal(t, "Payment was declined by the payment processor.", resp.Reason)
	assert.Len(t, resp.OrderID, 8)

	p, err := e.catalog.Get(context.Background(), "p1")
	require.NoError(t, err)
	v, _ := p.FindVariant("Black")
	assert.Equal(t, 5, v.Inventory, "declined checkout must not touch inventory")
}

func TestCheckoutUnknownProduct(t *testing.T) {
	e := newEnv(t)

	body := strings.Replace(validCheckout, `"productId":"p1"`, `"productId":"ghost"`, 1)
	rec := e.do(t, http.MethodPost, "/api/checkout", body)
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Product not found", resp["message"])
}

func TestCheckoutInsufficientInventory(t *testing.T) {
	e := newEnv(t)

	body := strings.Replace(validCheckout, `"quantity":2`, `"quantity":9`, 1)
	rec := e.do(t, http.MethodPost, "/api/checkout", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Insufficient inventory", resp["message"])
	assert.Contains(t, resp["details"], "Premium Headphones (Black)")
}

func TestCheckoutMalformedBody(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/api/checkout", `{"customer":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Invalid request body", resp["message"])
}

func TestCheckoutMissingSections(t *testing.T) {
	e := newEnv(t)

	cases := []string{
		`{"products":[{"productId":"p1","quantity":1}],"transactionCode":"1"}`,
		`{"customer":{"name":"A"},"transactionCode":"1"}`,
		`{"customer":{"name":"A"},"products":[{"productId":"p1","quantity":1}]}`,
	}
	for _, body := range cases {
		rec := e.do(t, http.MethodPost, "/api/checkout", body)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]string
		decodeBody(t, rec, &resp)
		assert.Equal(t, "Missing required fields", resp["message"])
	}
}

func TestOrderLookupRoundTrip(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/api/checkout", validCheckout)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		OrderID     string  `json:"orderId"`
		TotalAmount float64 `json:"totalAmount"`
	}
	decodeBody(t, rec, &created)

	rec = e.do(t, http.MethodGet, "/api/orders/"+created.OrderID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var o struct {
		OrderID     string  `json:"orderId"`
		Status      string  `json:"status"`
		TotalAmount float64 `json:"totalAmount"`
		Products    []struct {
			Title    string  `json:"title"`
			Variant  *string `json:"variant"`
			Price    float64 `json:"price"`
			Quantity int     `json:"quantity"`
		} `json:"products"`
	}
	decodeBody(t, rec, &o)
	assert.Equal(t, created.OrderID, o.OrderID)
	assert.Equal(t, "approved", o.Status)
	assert.Equal(t, created.TotalAmount, o.TotalAmount)
	require.Len(t, o.Products, 1)
	assert.Equal(t, "Premium Headphones", o.Products[0].Title)
	require.NotNil(t, o.Products[0].Variant)
	assert.Equal(t, "Black", *o.Products[0].Variant)
	assert.Equal(t, 10.0, o.Products[0].Price)
	assert.Equal(t, 2, o.Products[0].Quantity)
}

func TestOrderLookupUnknown(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodGet, "/api/orders/NOPE0000", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	decodeBody(t, rec, &resp)
	assert.Equal(t, "Order not found", resp["message"])
}

func TestFailedCheckoutIsRetrievable(t *testing.T) {
	e := newEnv(t)

	body := strings.Replace(validCheckout, `"transactionCode": "1"`, `"transactionCode": "3"`, 1)
	rec := e.do(t, http.MethodPost, "/api/checkout", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var failed struct {
		OrderID string `json:"orderId"`
	}
	decodeBody(t, rec, &failed)

	rec = e.do(t, http.MethodGet, "/api/orders/"+failed.OrderID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var o struct {
		Status string `json:"status"`
	}
	decodeBody(t, rec, &o)
	assert.Equal(t, "error", o.Status)
}

func TestHealthz(t *testing.T) {
	e := newEnv(t)
	rec := e.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
