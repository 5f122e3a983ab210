package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"repair-ads/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP: the campaign form sessions, the reference data the forms show, a
// local price quote endpoint and the checkout read-back.
type Handler struct {
	svc    port.CampaignUseCase
	quotes port.PriceQuoter
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. quotes serves
// GET /price-quote and should price from local data only. A nil metrics
// handler leaves /metrics unmounted.
func NewHandler(svc port.CampaignUseCase, quotes port.PriceQuoter, metrics http.Handler, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, quotes: quotes, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/currencies", h.handleCurrencies)
		r.Get("/cities", h.handleCities)
		r.Get("/operators/{operatorID}/services", h.handleOperatorServices)
		r.Get("/price-quote", h.handlePriceQuote)

		r.Post("/sessions", h.handleOpenSession)
		r.Route("/sessions/{sessionID}", func(r chi.Router) {
			r.Get("/", h.handleGetSession)
			r.Patch("/", h.handleUpdateSession)
			r.Delete("/", h.handleDiscardSession)
			r.Put("/services/{serviceID}", h.handleBundleService)
			r.Delete("/services/{serviceID}", h.handleUnbundleService)
			r.Post("/submit", h.handleSubmit)
		})

		r.Get("/checkout/{token}", h.handleCheckout)
	})
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics)
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
