package handler

import (
	"encoding/json"
	"net/http"

	"github.com/homewire/backend/internal/model"
	"github.com/homewire/backend/internal/service"
)

// AdminContentHandler exposes the content-creation operations. The site has
// no authentication layer; deployments are expected to keep /api/admin
// behind the reverse proxy.
type AdminContentHandler struct {
	landing service.LandingService
}

// NewAdminContentHandler creates an AdminContentHandler with the given service.
func NewAdminContentHandler(landing service.LandingService) *AdminContentHandler {
	return &AdminContentHandler{landing: landing}
}

// CreateHero handles POST /api/admin/hero. The new hero becomes the single
// active one; previous heroes are deactivated in the same transaction.
func (h *AdminContentHandler) CreateHero(w http.ResponseWriter, r *http.Request) {
	var req model.HeroSectionInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Headline == "" || req.Description == "" {
		writeError(w, http.StatusBadRequest, "headline_and_description_required")
		return
	}

	hero, err := h.landing.CreateHero(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, hero)
}

// CreateFooter handles POST /api/admin/footer (singleton, like the hero).
func (h *AdminContentHandler) CreateFooter(w http.ResponseWriter, r *http.Request) {
	var req model.FooterContentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.CompanyName == "" || req.CopyrightText == "" {
		writeError(w, http.StatusBadRequest, "company_name_and_copyright_required")
		return
	}

	footer, err := h.landing.CreateFooter(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, footer)
}

// CreateService handles POST /api/admin/services.
func (h *AdminContentHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req model.ServiceInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Title == "" || req.Description == "" {
		writeError(w, http.StatusBadRequest, "title_and_description_required")
		return
	}

	svc, err := h.landing.CreateService(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

// CreateBenefit handles POST /api/admin/benefits.
func (h *AdminContentHandler) CreateBenefit(w http.ResponseWriter, r *http.Request) {
	var req model.BenefitInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Title == "" || req.Description == "" {
		writeError(w, http.StatusBadRequest, "title_and_description_required")
		return
	}

	benefit, err := h.landing.CreateBenefit(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, benefit)
}

// CreateCTA handles POST /api/admin/cta.
func (h *AdminContentHandler) CreateCTA(w http.ResponseWriter, r *http.Request) {
	var req model.CallToActionInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.ButtonText == "" || req.ActionValue == "" {
		writeError(w, http.StatusBadRequest, "button_text_and_action_value_required")
		return
	}
	switch req.ActionType {
	case model.ActionTypeWhatsApp, model.ActionTypeEmail, model.ActionTypePhone:
	default:
		writeError(w, http.StatusBadRequest, "invalid_action_type")
		return
	}

	cta, err := h.landing.CreateCTA(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, cta)
}
