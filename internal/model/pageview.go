package model

import "time"

// PageView is a single analytics record. Like contact submissions, the IP
// is stored only in anonymized form. Rows are insert-only.
type PageView struct {
	ID        int64     `json:"id"`
	PagePath  string    `json:"page_path"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
	SessionID string    `json:"session_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PageViewInput carries the raw values for one page view. Every field except
// Path may be empty; the service only truncates, it never rejects.
type PageViewInput struct {
	Path      string
	IP        string
	UserAgent string
	Referrer  string
	SessionID string
}
