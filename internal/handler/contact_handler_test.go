package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/homewire/backend/internal/model"
	"github.com/homewire/backend/internal/service"
)

type mockContactService struct {
	submitErr error
	gotInput  model.ContactSubmissionInput
	gotIP     string
	gotUA     string
}

func (m *mockContactService) Submit(ctx context.Context, in model.ContactSubmissionInput, ip, userAgent string) (*model.ContactSubmission, error) {
	m.gotInput = in
	m.gotIP = ip
	m.gotUA = userAgent
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	return &model.ContactSubmission{ID: 42, Status: model.SubmissionStatusNew}, nil
}

func TestContactSubmit_Created(t *testing.T) {
	mock := &mockContactService{}
	h := NewContactHandler(mock, 1)

	body := `{"name":"John","email":"john@example.com","message":"hi"}`
	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(body))
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	req.Header.Set("User-Agent", "Mozilla/5.0")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if mock.gotIP != "203.0.113.9" {
		t.Errorf("service received ip %q, want forwarded client IP", mock.gotIP)
	}
	if mock.gotUA != "Mozilla/5.0" {
		t.Errorf("service received user agent %q", mock.gotUA)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["id"] != float64(42) || resp["status"] != "new" {
		t.Errorf("response = %v", resp)
	}
}

func TestContactSubmit_InvalidJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{}, 1)

	req := httptest.NewRequest("POST", "/api/contact", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

// All rejection reasons must produce the identical generic response: the
// form shows "success" or "try again", nothing more specific.
func TestContactSubmit_RejectionsCollapse(t *testing.T) {
	reasons := []error{service.ErrInvalidEmail, service.ErrInvalidPhone, service.ErrRateLimited}

	var bodies []string
	var codes []int
	for _, reason := range reasons {
		h := NewContactHandler(&mockContactService{submitErr: reason}, 1)

		req := httptest.NewRequest("POST", "/api/contact", strings.NewReader(`{"email":"x"}`))
		rec := httptest.NewRecorder()
		h.Submit(rec, req)

		bodies = append(bodies, rec.Body.String())
		codes = append(codes, rec.Code)
	}

	for i := 1; i < len(bodies); i++ {
		if bodies[i] != bodies[0] || codes[i] != codes[0] {
			t.Errorf("rejection %d distinguishable from %d: %q/%d vs %q/%d",
				i, 0, bodies[i], codes[i], bodies[0], codes[0])
		}
	}
	if codes[0] != http.StatusBadRequest {
		t.Errorf("rejection status = %d, want 400", codes[0])
	}
}
