package repository

import (
	"context"

	"github.com/homewire/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PageViewRepository defines the persistence interface for analytics
// page-view records. Rows are insert-only.
type PageViewRepository interface {
	Save(ctx context.Context, view *model.PageView) error
}

// PgPageViewRepository is the PostgreSQL implementation of PageViewRepository.
type PgPageViewRepository struct {
	pool *pgxpool.Pool
}

// NewPgPageViewRepository creates a PgPageViewRepository backed by the given pool.
func NewPgPageViewRepository(pool *pgxpool.Pool) *PgPageViewRepository {
	return &PgPageViewRepository{pool: pool}
}

var _ PageViewRepository = (*PgPageViewRepository)(nil)

// Save inserts a new page_views row and populates view.ID and CreatedAt
// from the database RETURNING clause.
func (r *PgPageViewRepository) Save(ctx context.Context, view *model.PageView) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO page_views (page_path, ip_address, user_agent, referrer, session_id)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''))
		 RETURNING id, created_at`,
		view.PagePath, view.IPAddress, view.UserAgent, view.Referrer, view.SessionID,
	).Scan(&view.ID, &view.CreatedAt)
}
