package handler

import (
	"net/http"

	"github.com/homewire/backend/internal/model"
	"github.com/homewire/backend/internal/service"
)

// ContentHandler serves the read-only landing page content.
type ContentHandler struct {
	landing service.LandingService
}

// NewContentHandler creates a ContentHandler with the given service.
func NewContentHandler(landing service.LandingService) *ContentHandler {
	return &ContentHandler{landing: landing}
}

// landingResponse is the aggregate payload for GET /api/landing: everything
// the page needs in one request.
type landingResponse struct {
	Hero       *model.HeroSection    `json:"hero"`
	Services   []*model.Service      `json:"services"`
	Benefits   []*model.Benefit      `json:"benefits"`
	CTAButtons []*model.CallToAction `json:"cta_buttons"`
	Footer     *model.FooterContent  `json:"footer"`
}

// Landing handles GET /api/landing. Sections that are unseeded or failed to
// load come back null/empty; the endpoint itself never fails.
func (h *ContentHandler) Landing(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	writeJSON(w, http.StatusOK, landingResponse{
		Hero:       h.landing.Hero(ctx),
		Services:   emptyIfNil(h.landing.Services(ctx)),
		Benefits:   emptyIfNil(h.landing.Benefits(ctx)),
		CTAButtons: emptyIfNil(h.landing.CTAButtons(ctx)),
		Footer:     h.landing.Footer(ctx),
	})
}

// Hero handles GET /api/landing/hero.
func (h *ContentHandler) Hero(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]*model.HeroSection{"hero": h.landing.Hero(r.Context())})
}

// Services handles GET /api/landing/services.
func (h *ContentHandler) Services(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]*model.Service{"services": emptyIfNil(h.landing.Services(r.Context()))})
}

// Benefits handles GET /api/landing/benefits.
func (h *ContentHandler) Benefits(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]*model.Benefit{"benefits": emptyIfNil(h.landing.Benefits(r.Context()))})
}

// CTAButtons handles GET /api/landing/cta.
func (h *ContentHandler) CTAButtons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]*model.CallToAction{"cta_buttons": emptyIfNil(h.landing.CTAButtons(r.Context()))})
}

// Footer handles GET /api/landing/footer.
func (h *ContentHandler) Footer(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]*model.FooterContent{"footer": h.landing.Footer(r.Context())})
}

// Config handles GET /api/config/{key}. Unknown keys return an empty value,
// not a 404 — the frontend falls back to its defaults.
func (h *ContentHandler) Config(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")
	writeJSON(w, http.StatusOK, map[string]string{
		"key":   key,
		"value": h.landing.ConfigValue(r.Context(), key),
	})
}

// emptyIfNil keeps list responses as [] instead of null.
func emptyIfNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
