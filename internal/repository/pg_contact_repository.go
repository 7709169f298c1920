package repository

import (
	"context"
	"time"

	"github.com/homewire/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContactRepository defines the persistence interface for contact-form
// submissions. It is defined here (in repository) to avoid an import cycle
// with service.
type ContactRepository interface {
	Save(ctx context.Context, sub *model.ContactSubmission) error

	// CountRecentByIP counts submissions stored with the given (already
	// anonymized) IP created strictly after the given time.
	CountRecentByIP(ctx context.Context, anonymizedIP string, since time.Time) (int, error)
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

var _ ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contact_submissions row and populates sub.ID and
// timestamps from the database RETURNING clause.
func (r *PgContactRepository) Save(ctx context.Context, sub *model.ContactSubmission) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, phone, message, ip_address, user_agent, status)
		 VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), NULLIF($6, ''), $7)
		 RETURNING id, created_at, updated_at`,
		sub.Name, sub.Email, sub.Phone, sub.Message, sub.IPAddress, sub.UserAgent, sub.Status,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
}

// CountRecentByIP counts submissions from one anonymized IP inside the
// rate-limit window.
func (r *PgContactRepository) CountRecentByIP(ctx context.Context, anonymizedIP string, since time.Time) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM contact_submissions WHERE ip_address = $1 AND created_at > $2`,
		anonymizedIP, since,
	).Scan(&count)
	return count, err
}
