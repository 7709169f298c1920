package service

import (
	"context"

	"github.com/homewire/backend/internal/model"
)

// LandingService defines the business logic for landing-page content.
//
// Read methods degrade to empty on storage failure: the page renders with
// whatever content is available rather than erroring, and the caller cannot
// tell "no data" from "data access failed" (the failure is logged). Create
// methods are the admin surface and do return errors.
type LandingService interface {
	Hero(ctx context.Context) *model.HeroSection
	Services(ctx context.Context) []*model.Service
	Benefits(ctx context.Context) []*model.Benefit
	CTAButtons(ctx context.Context) []*model.CallToAction
	Footer(ctx context.Context) *model.FooterContent
	ConfigValue(ctx context.Context, key string) string

	CreateHero(ctx context.Context, in model.HeroSectionInput) (*model.HeroSection, error)
	CreateFooter(ctx context.Context, in model.FooterContentInput) (*model.FooterContent, error)
	CreateService(ctx context.Context, in model.ServiceInput) (*model.Service, error)
	CreateBenefit(ctx context.Context, in model.BenefitInput) (*model.Benefit, error)
	CreateCTA(ctx context.Context, in model.CallToActionInput) (*model.CallToAction, error)
}
