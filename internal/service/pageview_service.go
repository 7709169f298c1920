package service

import (
	"context"

	"github.com/homewire/backend/internal/model"
)

// PageViewService records page views for analytics.
type PageViewService interface {
	// Log persists a page view with the IP anonymized and all fields
	// truncated to their storage limits. It never rejects input; on storage
	// failure it logs and returns nil.
	Log(ctx context.Context, in model.PageViewInput) *model.PageView
}
