package service

import (
	"context"
	"errors"

	"github.com/homewire/backend/internal/model"
)

// Rejection reasons for contact submissions. Handlers collapse all of these
// into one generic failure response; the distinction exists for logs and tests.
var (
	ErrInvalidEmail = errors.New("invalid email address")
	ErrInvalidPhone = errors.New("invalid phone number")
	ErrRateLimited  = errors.New("submission rate limit exceeded")
)

// ContactService defines the business logic for contact-form intake:
// validation, sanitization, rate limiting, IP anonymization, persistence.
type ContactService interface {
	// Submit runs the full intake pipeline on a raw form payload. ip and
	// userAgent come from the connection and may be empty. On success the
	// returned submission carries the sanitized, persisted values; on any
	// rejection nothing is written and an error is returned.
	Submit(ctx context.Context, in model.ContactSubmissionInput, ip, userAgent string) (*model.ContactSubmission, error)
}
