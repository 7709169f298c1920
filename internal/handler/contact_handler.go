package handler

import (
	"encoding/json"
	"net/http"

	"github.com/homewire/backend/internal/metrics"
	"github.com/homewire/backend/internal/model"
	"github.com/homewire/backend/internal/service"
)

// ContactHandler handles contact form submission.
type ContactHandler struct {
	contact        service.ContactService
	trustedProxies int
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contact service.ContactService, trustedProxies int) *ContactHandler {
	return &ContactHandler{contact: contact, trustedProxies: trustedProxies}
}

// Submit handles POST /api/contact.
//
// All rejection reasons — bad email, bad phone, rate limit, storage failure —
// collapse into the same generic response so the form only ever shows
// "success" or "try again"; the specific reason is in the logs.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req model.ContactSubmissionInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	ip := ClientIP(r, h.trustedProxies)
	sub, err := h.contact.Submit(r.Context(), req, ip, r.UserAgent())
	if err != nil {
		metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeRejected).Inc()
		writeError(w, http.StatusBadRequest, "submission_failed")
		return
	}

	metrics.ContactSubmissions.WithLabelValues(metrics.OutcomeAccepted).Inc()
	writeJSON(w, http.StatusCreated, map[string]any{"id": sub.ID, "status": sub.Status})
}
