package service

import (
	"context"
	"log/slog"

	"github.com/homewire/backend/internal/model"
	"github.com/homewire/backend/internal/repository"
	"github.com/homewire/backend/pkg/privacy"
	"github.com/mssola/useragent"
)

const (
	maxPagePathLength = 200
	maxReferrerLength = 500
	maxSessionLength  = 100
)

// pageViewServiceImpl is the production implementation of PageViewService.
type pageViewServiceImpl struct {
	repo repository.PageViewRepository
}

// NewPageViewService creates a PageViewService backed by the given repository.
func NewPageViewService(repo repository.PageViewRepository) PageViewService {
	return &pageViewServiceImpl{repo: repo}
}

// Log truncates, anonymizes and persists one page view. Absent IP,
// user-agent, referrer or session are all valid.
func (s *pageViewServiceImpl) Log(ctx context.Context, in model.PageViewInput) *model.PageView {
	view := &model.PageView{
		PagePath:  truncate(in.Path, maxPagePathLength),
		UserAgent: truncate(in.UserAgent, maxUserAgentLength),
		Referrer:  truncate(in.Referrer, maxReferrerLength),
		SessionID: truncate(in.SessionID, maxSessionLength),
	}
	if in.IP != "" {
		view.IPAddress = privacy.AnonymizeIP(in.IP)
	}

	if err := s.repo.Save(ctx, view); err != nil {
		slog.Error("failed to log page view", "path", view.PagePath, "error", err)
		return nil
	}

	if in.UserAgent != "" {
		ua := useragent.New(in.UserAgent)
		browser, version := ua.Browser()
		slog.Debug("page view",
			"path", view.PagePath,
			"browser", browser,
			"browser_version", version,
			"os", ua.OS(),
			"mobile", ua.Mobile(),
			"bot", ua.Bot(),
		)
	}
	return view
}
