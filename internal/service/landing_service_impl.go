package service

import (
	"context"
	"log/slog"

	"github.com/homewire/backend/internal/model"
	"github.com/homewire/backend/internal/repository"
)

// landingServiceImpl is the production implementation of LandingService.
type landingServiceImpl struct {
	repo repository.ContentRepository
}

// NewLandingService creates a LandingService backed by the given repository.
func NewLandingService(repo repository.ContentRepository) LandingService {
	return &landingServiceImpl{repo: repo}
}

// Hero returns the active hero section, or nil if none exists or the read fails.
func (s *landingServiceImpl) Hero(ctx context.Context) *model.HeroSection {
	hero, err := s.repo.ActiveHero(ctx)
	if err != nil {
		slog.Error("failed to fetch hero section", "error", err)
		return nil
	}
	return hero
}

// Services returns active services in display order; empty on failure.
func (s *landingServiceImpl) Services(ctx context.Context) []*model.Service {
	services, err := s.repo.ListActiveServices(ctx)
	if err != nil {
		slog.Error("failed to fetch services", "error", err)
		return nil
	}
	return services
}

// Benefits returns active benefits in display order; empty on failure.
func (s *landingServiceImpl) Benefits(ctx context.Context) []*model.Benefit {
	benefits, err := s.repo.ListActiveBenefits(ctx)
	if err != nil {
		slog.Error("failed to fetch benefits", "error", err)
		return nil
	}
	return benefits
}

// CTAButtons returns active call-to-action buttons in display order; empty on failure.
func (s *landingServiceImpl) CTAButtons(ctx context.Context) []*model.CallToAction {
	buttons, err := s.repo.ListActiveCTAButtons(ctx)
	if err != nil {
		slog.Error("failed to fetch CTA buttons", "error", err)
		return nil
	}
	return buttons
}

// Footer returns the active footer content, or nil if none exists or the read fails.
func (s *landingServiceImpl) Footer(ctx context.Context) *model.FooterContent {
	footer, err := s.repo.ActiveFooter(ctx)
	if err != nil {
		slog.Error("failed to fetch footer content", "error", err)
		return nil
	}
	return footer
}

// ConfigValue returns a site configuration value, or "" if the key is
// missing or the read fails.
func (s *landingServiceImpl) ConfigValue(ctx context.Context, key string) string {
	value, err := s.repo.ConfigValue(ctx, key)
	if err != nil {
		slog.Error("failed to fetch site config", "key", key, "error", err)
		return ""
	}
	return value
}

// CreateHero replaces the active hero section.
func (s *landingServiceImpl) CreateHero(ctx context.Context, in model.HeroSectionInput) (*model.HeroSection, error) {
	return s.repo.CreateHero(ctx, in)
}

// CreateFooter replaces the active footer content.
func (s *landingServiceImpl) CreateFooter(ctx context.Context, in model.FooterContentInput) (*model.FooterContent, error) {
	return s.repo.CreateFooter(ctx, in)
}

// CreateService adds a new active service entry.
func (s *landingServiceImpl) CreateService(ctx context.Context, in model.ServiceInput) (*model.Service, error) {
	return s.repo.CreateService(ctx, in)
}

// CreateBenefit adds a new active benefit entry.
func (s *landingServiceImpl) CreateBenefit(ctx context.Context, in model.BenefitInput) (*model.Benefit, error) {
	return s.repo.CreateBenefit(ctx, in)
}

// CreateCTA adds a new active call-to-action button.
func (s *landingServiceImpl) CreateCTA(ctx context.Context, in model.CallToActionInput) (*model.CallToAction, error) {
	return s.repo.CreateCTA(ctx, in)
}
