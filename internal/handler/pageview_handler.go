package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/homewire/backend/internal/metrics"
	"github.com/homewire/backend/internal/model"
	"github.com/homewire/backend/internal/service"
)

// sessionCookie correlates page views from one visitor without identifying them.
const sessionCookie = "hw_session"

// PageViewHandler records analytics page views.
type PageViewHandler struct {
	pageViews      service.PageViewService
	trustedProxies int
}

// NewPageViewHandler creates a PageViewHandler with the given service.
func NewPageViewHandler(pageViews service.PageViewService, trustedProxies int) *PageViewHandler {
	return &PageViewHandler{pageViews: pageViews, trustedProxies: trustedProxies}
}

// pageViewRequest is the expected JSON body for POST /api/page-views.
type pageViewRequest struct {
	Path      string `json:"path"`
	Referrer  string `json:"referrer,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

// Log handles POST /api/page-views. It always answers 202: analytics must
// never break the page, so malformed input degrades to an empty record and
// storage failures are only logged.
func (h *PageViewHandler) Log(w http.ResponseWriter, r *http.Request) {
	var req pageViewRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = h.sessionID(w, r)
	}

	h.pageViews.Log(r.Context(), model.PageViewInput{
		Path:      req.Path,
		IP:        ClientIP(r, h.trustedProxies),
		UserAgent: r.UserAgent(),
		Referrer:  req.Referrer,
		SessionID: sessionID,
	})
	metrics.PageViews.Inc()

	w.WriteHeader(http.StatusAccepted)
}

// sessionID returns the visitor's session cookie value, minting and setting
// a fresh one when absent.
func (h *PageViewHandler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
