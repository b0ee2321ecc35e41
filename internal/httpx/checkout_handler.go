package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-storefront-checkout/internal/checkout"
	"github.com/ariefcatur/go-storefront-checkout/internal/orders"
)

type CheckoutHandler struct {
	Processor *checkout.Processor
	Orders    orders.Store
	Log       *zap.Logger
}

func (h *CheckoutHandler) Register(r *chi.Mux) {
	r.Post("/api/checkout", h.checkout)
	r.Get("/api/orders/{id}", h.getOrder)
}

// checkoutReq mirrors the client submission; pointers distinguish missing
// sections from empty ones.
type checkoutReq struct {
	Customer        *orders.Customer      `json:"customer"`
	Products        []checkout.ItemInput  `json:"products"`
	TransactionCode string                `json:"transactionCode"`
}

type checkoutSuccessResp struct {
	Message     string          `json:"message"`
	OrderID     string          `json:"orderId"`
	Status      orders.Status   `json:"status"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

type checkoutFailureResp struct {
	Message string        `json:"message"`
	Reason  string        `json:"reason"`
	Status  orders.Status `json:"status"`
	OrderID string        `json:"orderId"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *CheckoutHandler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": "Invalid request body",
			"details": "Body must be a valid JSON checkout submission",
		})
		return
	}
	if req.Customer == nil || req.Products == nil || req.TransactionCode == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": "Missing required fields",
			"details": "Customer information, products, and transaction code are required",
		})
		return
	}

	result, err := h.Processor.Process(r.Context(), checkout.Request{
		Customer:        *req.Customer,
		Products:        req.Products,
		TransactionCode: req.TransactionCode,
		TraceID:         middleware.GetReqID(r.Context()),
	})
	if err != nil {
		var verr *checkout.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"message": verr.Message,
				"details": verr.Details,
			})
			return
		}
		var nferr *checkout.NotFoundError
		if errors.As(err, &nferr) {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"message": nferr.Message,
				"details": nferr.Details,
			})
			return
		}
		h.Log.Error("checkout failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Server error",
			"error":   err.Error(),
		})
		return
	}

	if result.Status == orders.StatusApproved {
		writeJSON(w, http.StatusCreated, checkoutSuccessResp{
			Message:     "Order processed successfully",
			OrderID:     result.OrderID,
			Status:      result.Status,
			TotalAmount: result.TotalAmount,
		})
		return
	}
	writeJSON(w, http.StatusBadRequest, checkoutFailureResp{
		Message: "Transaction failed",
		Reason:  result.Reason,
		Status:  result.Status,
		OrderID: result.OrderID,
	})
}

func (h *CheckoutHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	o, err := h.Orders.GetByID(r.Context(), orderID)
	if errors.Is(err, orders.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Order not found"})
		return
	}
	if err != nil {
		h.Log.Error("order lookup failed", zap.String("order_id", orderID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Server error",
			"error":   err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, o)
}
