package httpadapter

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"repair-ads/internal/core/domain"
)

func (h *Handler) handleCurrencies(w http.ResponseWriter, r *http.Request) {
	currencies, err := h.svc.Currencies(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"currencies": nonNil(currencies)})
}

func (h *Handler) handleCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.svc.Cities(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"cities": nonNil(cities)})
}

func (h *Handler) handleOperatorServices(w http.ResponseWriter, r *http.Request) {
	operatorID, err := strconv.ParseInt(chi.URLParam(r, "operatorID"), 10, 64)
	if err != nil {
		h.badRequest(w, "invalid operator id")
		return
	}
	services, err := h.svc.OperatorServices(r.Context(), operatorID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"services": nonNil(services)})
}

// handlePriceQuote prices totalDays days in currency from the local base
// price table. It is the endpoint the remote quoter calls when the service
// is its own pricing backend.
func (h *Handler) handlePriceQuote(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	totalDays, err := strconv.Atoi(q.Get("totalDays"))
	if err != nil || totalDays < domain.MinTotalDays || totalDays > domain.MaxTotalDays {
		h.fieldError(w, "totalDays", fmt.Sprintf("must be a whole number between %d and %d", domain.MinTotalDays, domain.MaxTotalDays))
		return
	}
	currency := domain.NormalizeCurrency(q.Get("currency"))
	if currency == "" {
		h.fieldError(w, "currency", "is required")
		return
	}
	price, err := h.quotes.Quote(r.Context(), totalDays, currency)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{
		"totalDays":  totalDays,
		"currency":   currency,
		"totalPrice": price,
	})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
