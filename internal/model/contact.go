package model

import "time"

// Contact submission statuses. New submissions always start as "new";
// the other states are set by back-office follow-up.
const (
	SubmissionStatusNew       = "new"
	SubmissionStatusContacted = "contacted"
	SubmissionStatusResolved  = "resolved"
)

// ContactSubmission is a persisted contact-form entry. IPAddress is only
// ever the anonymized form (see pkg/privacy); the raw client IP is never
// stored.
type ContactSubmission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactSubmissionInput is the raw, untrusted form payload. Validation and
// sanitization happen in the service layer before anything is persisted.
type ContactSubmissionInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}
