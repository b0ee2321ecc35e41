package httpx

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-storefront-checkout/internal/catalog"
)

type CatalogHandler struct {
	Catalog catalog.Store
	Log     *zap.Logger
}

func (h *CatalogHandler) Register(r *chi.Mux) {
	r.Get("/api/products", h.listProducts)
	r.Get("/api/products/{id}", h.getProduct)
}

func (h *CatalogHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	ps, err := h.Catalog.List(r.Context())
	if err != nil {
		h.Log.Error("product listing failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Server error",
			"error":   err.Error(),
		})
		return
	}
	if ps == nil {
		ps = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, ps)
}

func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := h.Catalog.Get(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Product not found"})
		return
	}
	if err != nil {
		h.Log.Error("product lookup failed", zap.String("product_id", id), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"message": "Server error",
			"error":   err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, p)
}
