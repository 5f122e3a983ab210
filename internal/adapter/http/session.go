package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"repair-ads/internal/core/domain"
	"repair-ads/internal/core/port"
)

// handleOpenSession starts a form session for a new campaign, or for an
// existing one when campaignId is given.
func (h *Handler) handleOpenSession(w http.ResponseWriter, r *http.Request) {
	var req port.OpenSessionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, "invalid JSON")
		return
	}
	if req.OperatorID <= 0 {
		h.badRequest(w, "operatorId is required")
		return
	}
	view, err := h.svc.OpenSession(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/sessions/"+view.SessionID.String())
	h.writeJSON(w, http.StatusCreated, view)
}

// handleGetSession returns the session view. With ?settle=true it waits
// for an outstanding price quote first.
func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	settle := false
	if s := r.URL.Query().Get("settle"); s != "" {
		var err error
		if settle, err = strconv.ParseBool(s); err != nil {
			h.badRequest(w, "invalid settle flag")
			return
		}
	}
	view, err := h.svc.Session(r.Context(), id, settle)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

// patchReq is the wire form of a draft change. Duration and start date are
// taken loosely so malformed values come back as field errors.
type patchReq struct {
	Type        *string          `json:"type"`
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	City        *string          `json:"city"`
	Image       *string          `json:"image"`
	StartDate   *string          `json:"startDate"`
	TotalDays   *json.RawMessage `json:"totalDays"`
	Currency    *string          `json:"currency"`
}

func (p patchReq) toPatch() (port.DraftPatch, domain.FieldErrors) {
	patch := port.DraftPatch{
		Title:       p.Title,
		Description: p.Description,
		City:        p.City,
		Image:       p.Image,
		Currency:    p.Currency,
	}
	errs := domain.FieldErrors{}
	if p.Type != nil {
		t := domain.CampaignType(strings.ToLower(strings.TrimSpace(*p.Type)))
		patch.Type = &t
	}
	if p.StartDate != nil {
		var d domain.Date
		if s := strings.TrimSpace(*p.StartDate); s != "" {
			parsed, err := domain.ParseDate(s)
			if err != nil {
				errs["startDate"] = "must be a date in YYYY-MM-DD format"
			}
			d = parsed
		}
		patch.StartDate = &d
	}
	if p.TotalDays != nil {
		n, err := strconv.Atoi(strings.Trim(string(*p.TotalDays), `" `))
		if err != nil {
			errs["totalDays"] = fmt.Sprintf("must be a whole number between %d and %d", domain.MinTotalDays, domain.MaxTotalDays)
		}
		patch.TotalDays = &n
	}
	if len(errs) > 0 {
		return patch, errs
	}
	return patch, nil
}

func (h *Handler) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	var req patchReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.badRequest(w, "invalid JSON")
		return
	}
	patch, errs := req.toPatch()
	if errs != nil {
		h.writeError(w, r, &domain.ValidationError{Fields: errs})
		return
	}
	view, err := h.svc.UpdateSession(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleBundleService(w http.ResponseWriter, r *http.Request) {
	h.changeBundle(w, r, h.svc.BundleService)
}

func (h *Handler) handleUnbundleService(w http.ResponseWriter, r *http.Request) {
	h.changeBundle(w, r, h.svc.UnbundleService)
}

type bundleFunc func(ctx context.Context, id uuid.UUID, serviceID int64) (*port.CampaignView, error)

func (h *Handler) changeBundle(w http.ResponseWriter, r *http.Request, fn bundleFunc) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	serviceID, err := strconv.ParseInt(chi.URLParam(r, "serviceID"), 10, 64)
	if err != nil {
		h.badRequest(w, "invalid service id")
		return
	}
	view, err := fn(r.Context(), id, serviceID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, view)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	resp, err := h.svc.Submit(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleDiscardSession(w http.ResponseWriter, r *http.Request) {
	id, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DiscardSession(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.badRequest(w, "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}
