package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"repair-ads/internal/core/domain"
	"repair-ads/internal/core/port"
)

type errorResp struct {
	Error  string             `json:"error"`
	Errors domain.FieldErrors `json:"errors,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status is already sent
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

func (h *Handler) badRequest(w http.ResponseWriter, msg string) {
	h.writeJSON(w, http.StatusBadRequest, errorResp{Error: msg})
}

func (h *Handler) fieldError(w http.ResponseWriter, field, msg string) {
	h.writeError(w, nil, &domain.ValidationError{Fields: domain.FieldErrors{field: msg}})
}

// writeError maps domain and port errors onto status codes. Anything
// unrecognised is logged and reported as a 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResp{Error: "validation failed", Errors: verr.Fields})
	case errors.Is(err, port.ErrSessionNotFound),
		errors.Is(err, port.ErrCampaignNotFound),
		errors.Is(err, port.ErrCheckoutNotFound):
		h.writeJSON(w, http.StatusNotFound, errorResp{Error: err.Error()})
	case errors.Is(err, domain.ErrCampaignLocked),
		errors.Is(err, domain.ErrTypeImmutable),
		errors.Is(err, domain.ErrPriceLoading):
		h.writeJSON(w, http.StatusConflict, errorResp{Error: err.Error()})
	case errors.Is(err, domain.ErrNoBundledServices),
		errors.Is(err, domain.ErrPriceUnavailable),
		errors.Is(err, domain.ErrNotServiceCampaign),
		errors.Is(err, domain.ErrUnknownService),
		errors.Is(err, domain.ErrUnknownCurrency):
		h.writeJSON(w, http.StatusUnprocessableEntity, errorResp{Error: err.Error()})
	default:
		attrs := []any{slog.Any("error", err)}
		if r != nil {
			attrs = append(attrs, slog.String("request_id", middleware.GetReqID(r.Context())), slog.String("path", r.URL.Path))
		}
		h.logger.Error("request failed", attrs...)
		h.writeJSON(w, http.StatusInternalServerError, errorResp{Error: "internal error"})
	}
}
