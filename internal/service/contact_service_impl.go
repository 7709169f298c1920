package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/homewire/backend/internal/model"
	"github.com/homewire/backend/internal/repository"
	"github.com/homewire/backend/pkg/privacy"
)

// Field length limits enforced during sanitization.
const (
	maxNameLength      = 100
	maxEmailLength     = 255
	maxPhoneLength     = 20
	maxMessageLength   = 2000
	maxUserAgentLength = 500
)

// Rate limit: at most 3 submissions per anonymized IP per hour. Because the
// key is the anonymized IP this is effectively per /24 (IPv4) subnet — a
// deliberate privacy-over-precision tradeoff.
const (
	rateLimitWindow = time.Hour
	rateLimitMax    = 3
)

var (
	emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^[0-9\s()+-]+$`)
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo repository.ContactRepository
}

// NewContactService creates a ContactService backed by the given repository.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactServiceImpl{repo: repo}
}

// Submit validates, sanitizes, rate-limits and persists a contact submission.
// Checks run in a fixed order — email, phone, rate limit — and short-circuit
// on the first failure, writing nothing.
func (s *contactServiceImpl) Submit(ctx context.Context, in model.ContactSubmissionInput, ip, userAgent string) (*model.ContactSubmission, error) {
	if !validEmail(in.Email) {
		slog.Warn("contact submission rejected: invalid email")
		return nil, ErrInvalidEmail
	}

	if !validPhone(in.Phone) {
		slog.Warn("contact submission rejected: invalid phone")
		return nil, ErrInvalidPhone
	}

	anonymizedIP := ""
	if ip != "" {
		anonymizedIP = privacy.AnonymizeIP(ip)
		limited, err := s.overRateLimit(ctx, anonymizedIP)
		if err != nil {
			// Availability over strictness: if the check itself fails,
			// let the submission through.
			slog.Error("rate limit check failed, allowing submission", "error", err)
		} else if limited {
			slog.Warn("contact submission rejected: rate limit", "ip", anonymizedIP)
			return nil, ErrRateLimited
		}
	}

	sub := &model.ContactSubmission{
		Name:      truncate(strings.TrimSpace(in.Name), maxNameLength),
		Email:     truncate(strings.ToLower(strings.TrimSpace(in.Email)), maxEmailLength),
		Phone:     truncate(strings.TrimSpace(in.Phone), maxPhoneLength),
		Message:   truncate(strings.TrimSpace(in.Message), maxMessageLength),
		IPAddress: anonymizedIP,
		UserAgent: truncate(userAgent, maxUserAgentLength),
		Status:    model.SubmissionStatusNew,
	}

	if err := s.repo.Save(ctx, sub); err != nil {
		slog.Error("failed to persist contact submission", "error", err)
		return nil, fmt.Errorf("save contact submission: %w", err)
	}

	slog.Info("contact submission stored", "id", sub.ID, "ip", sub.IPAddress)
	return sub, nil
}

// overRateLimit reports whether the anonymized IP has reached the
// per-window submission limit.
func (s *contactServiceImpl) overRateLimit(ctx context.Context, anonymizedIP string) (bool, error) {
	since := time.Now().UTC().Add(-rateLimitWindow)
	count, err := s.repo.CountRecentByIP(ctx, anonymizedIP, since)
	if err != nil {
		return false, err
	}
	return count >= rateLimitMax, nil
}

// validEmail checks the submitted address: non-empty, within the storage
// limit, and shaped like local@domain.tld with a 2+ letter final label.
func validEmail(email string) bool {
	if email == "" || len(email) > maxEmailLength {
		return false
	}
	return emailPattern.MatchString(email)
}

// validPhone checks an optional phone number: empty is fine; anything
// present must fit the column and contain only digits, spaces, hyphens,
// parentheses and plus signs.
func validPhone(phone string) bool {
	if phone == "" {
		return true
	}
	if len(phone) > maxPhoneLength {
		return false
	}
	return phonePattern.MatchString(phone)
}

// truncate cuts s to at most max characters, never splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
