package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleCheckout returns the payload handed off by a successful
// submission. Unknown and expired tokens yield 404.
func (h *Handler) handleCheckout(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		h.badRequest(w, "missing token")
		return
	}
	sub, err := h.svc.Checkout(r.Context(), token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, sub)
}
