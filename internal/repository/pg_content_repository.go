package repository

import (
	"context"
	"errors"

	"github.com/homewire/backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContentRepository defines the persistence interface for landing-page
// content: the singleton hero/footer rows, the ordered service/benefit/CTA
// lists, and site configuration lookups.
//
// Reads return (nil, nil) or an empty slice when no active row exists —
// "nothing there" is a normal answer, not an error.
type ContentRepository interface {
	ActiveHero(ctx context.Context) (*model.HeroSection, error)
	ActiveFooter(ctx context.Context) (*model.FooterContent, error)
	ListActiveServices(ctx context.Context) ([]*model.Service, error)
	ListActiveBenefits(ctx context.Context) ([]*model.Benefit, error)
	ListActiveCTAButtons(ctx context.Context) ([]*model.CallToAction, error)
	ConfigValue(ctx context.Context, key string) (string, error)

	CreateHero(ctx context.Context, in model.HeroSectionInput) (*model.HeroSection, error)
	CreateFooter(ctx context.Context, in model.FooterContentInput) (*model.FooterContent, error)
	CreateService(ctx context.Context, in model.ServiceInput) (*model.Service, error)
	CreateBenefit(ctx context.Context, in model.BenefitInput) (*model.Benefit, error)
	CreateCTA(ctx context.Context, in model.CallToActionInput) (*model.CallToAction, error)
}

// PgContentRepository is the PostgreSQL implementation of ContentRepository.
type PgContentRepository struct {
	pool *pgxpool.Pool
}

// NewPgContentRepository creates a PgContentRepository backed by the given pool.
func NewPgContentRepository(pool *pgxpool.Pool) *PgContentRepository {
	return &PgContentRepository{pool: pool}
}

var _ ContentRepository = (*PgContentRepository)(nil)

// ActiveHero returns the active hero section, or nil if none exists.
func (r *PgContentRepository) ActiveHero(ctx context.Context) (*model.HeroSection, error) {
	var h model.HeroSection
	err := r.pool.QueryRow(ctx,
		`SELECT id, headline, description, COALESCE(background_image_url, ''), is_active, created_at, updated_at
		 FROM hero_sections WHERE is_active LIMIT 1`,
	).Scan(&h.ID, &h.Headline, &h.Description, &h.BackgroundImageURL, &h.IsActive, &h.CreatedAt, &h.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// ActiveFooter returns the active footer content, or nil if none exists.
func (r *PgContentRepository) ActiveFooter(ctx context.Context) (*model.FooterContent, error) {
	var f model.FooterContent
	err := r.pool.QueryRow(ctx,
		`SELECT id, company_name, COALESCE(address, ''), COALESCE(phone, ''), COALESCE(email, ''),
		        copyright_text, social_links, is_active, created_at, updated_at
		 FROM footer_contents WHERE is_active LIMIT 1`,
	).Scan(&f.ID, &f.CompanyName, &f.Address, &f.Phone, &f.Email,
		&f.CopyrightText, &f.SocialLinks, &f.IsActive, &f.CreatedAt, &f.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if f.SocialLinks == nil {
		f.SocialLinks = map[string]string{}
	}
	return &f, nil
}

// ListActiveServices returns active services ordered by display_order.
// Equal display_order values keep insertion order (id ascends with inserts).
func (r *PgContentRepository) ListActiveServices(ctx context.Context) ([]*model.Service, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, COALESCE(icon_class, ''), display_order, is_active, created_at, updated_at
		 FROM services WHERE is_active ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var services []*model.Service
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.IconClass, &s.DisplayOrder, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		services = append(services, &s)
	}
	return services, rows.Err()
}

// ListActiveBenefits returns active benefits ordered by display_order.
func (r *PgContentRepository) ListActiveBenefits(ctx context.Context) ([]*model.Benefit, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, COALESCE(icon_class, ''), display_order, is_active, created_at, updated_at
		 FROM benefits WHERE is_active ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var benefits []*model.Benefit
	for rows.Next() {
		var b model.Benefit
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.IconClass, &b.DisplayOrder, &b.IsActive, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		benefits = append(benefits, &b)
	}
	return benefits, rows.Err()
}

// ListActiveCTAButtons returns active call-to-action buttons ordered by display_order.
func (r *PgContentRepository) ListActiveCTAButtons(ctx context.Context) ([]*model.CallToAction, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, button_text, action_type, action_value, button_style, display_order, is_active, created_at, updated_at
		 FROM call_to_actions WHERE is_active ORDER BY display_order, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buttons []*model.CallToAction
	for rows.Next() {
		var c model.CallToAction
		if err := rows.Scan(&c.ID, &c.ButtonText, &c.ActionType, &c.ActionValue, &c.ButtonStyle, &c.DisplayOrder, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		buttons = append(buttons, &c)
	}
	return buttons, rows.Err()
}

// ConfigValue returns the value of an active site configuration key,
// or "" if the key does not exist.
func (r *PgContentRepository) ConfigValue(ctx context.Context, key string) (string, error) {
	var value string
	err := r.pool.QueryRow(ctx,
		`SELECT config_value FROM site_configurations WHERE config_key = $1 AND is_active`,
		key,
	).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// CreateHero deactivates all active hero sections and inserts the new one as
// active, in a single transaction so readers never see zero or two active rows.
func (r *PgContentRepository) CreateHero(ctx context.Context, in model.HeroSectionInput) (*model.HeroSection, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE hero_sections SET is_active = false, updated_at = NOW() WHERE is_active`); err != nil {
		return nil, err
	}

	h := model.HeroSection{
		Headline:           in.Headline,
		Description:        in.Description,
		BackgroundImageURL: in.BackgroundImageURL,
		IsActive:           true,
	}
	if err := tx.QueryRow(ctx,
		`INSERT INTO hero_sections (headline, description, background_image_url, is_active)
		 VALUES ($1, $2, NULLIF($3, ''), true)
		 RETURNING id, created_at, updated_at`,
		in.Headline, in.Description, in.BackgroundImageURL,
	).Scan(&h.ID, &h.CreatedAt, &h.UpdatedAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &h, nil
}

// CreateFooter deactivates all active footer rows and inserts the new one as
// active, in a single transaction (same singleton contract as CreateHero).
func (r *PgContentRepository) CreateFooter(ctx context.Context, in model.FooterContentInput) (*model.FooterContent, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		`UPDATE footer_contents SET is_active = false, updated_at = NOW() WHERE is_active`); err != nil {
		return nil, err
	}

	links := in.SocialLinks
	if links == nil {
		links = map[string]string{}
	}
	f := model.FooterContent{
		CompanyName:   in.CompanyName,
		Address:       in.Address,
		Phone:         in.Phone,
		Email:         in.Email,
		CopyrightText: in.CopyrightText,
		SocialLinks:   links,
		IsActive:      true,
	}
	if err := tx.QueryRow(ctx,
		`INSERT INTO footer_contents (company_name, address, phone, email, copyright_text, social_links, is_active)
		 VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), $5, $6, true)
		 RETURNING id, created_at, updated_at`,
		in.CompanyName, in.Address, in.Phone, in.Email, in.CopyrightText, links,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &f, nil
}

// CreateService inserts a new active service. display_order is not unique;
// ties resolve by insertion order on read.
func (r *PgContentRepository) CreateService(ctx context.Context, in model.ServiceInput) (*model.Service, error) {
	s := model.Service{
		Title:        in.Title,
		Description:  in.Description,
		IconClass:    in.IconClass,
		DisplayOrder: in.DisplayOrder,
		IsActive:     true,
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO services (title, description, icon_class, display_order, is_active)
		 VALUES ($1, $2, NULLIF($3, ''), $4, true)
		 RETURNING id, created_at, updated_at`,
		in.Title, in.Description, in.IconClass, in.DisplayOrder,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateBenefit inserts a new active benefit.
func (r *PgContentRepository) CreateBenefit(ctx context.Context, in model.BenefitInput) (*model.Benefit, error) {
	b := model.Benefit{
		Title:        in.Title,
		Description:  in.Description,
		IconClass:    in.IconClass,
		DisplayOrder: in.DisplayOrder,
		IsActive:     true,
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO benefits (title, description, icon_class, display_order, is_active)
		 VALUES ($1, $2, NULLIF($3, ''), $4, true)
		 RETURNING id, created_at, updated_at`,
		in.Title, in.Description, in.IconClass, in.DisplayOrder,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// CreateCTA inserts a new active call-to-action button.
func (r *PgContentRepository) CreateCTA(ctx context.Context, in model.CallToActionInput) (*model.CallToAction, error) {
	c := model.CallToAction{
		ButtonText:   in.ButtonText,
		ActionType:   in.ActionType,
		ActionValue:  in.ActionValue,
		ButtonStyle:  in.ButtonStyle,
		DisplayOrder: in.DisplayOrder,
		IsActive:     true,
	}
	err := r.pool.QueryRow(ctx,
		`INSERT INTO call_to_actions (button_text, action_type, action_value, button_style, display_order, is_active)
		 VALUES ($1, $2, $3, $4, $5, true)
		 RETURNING id, created_at, updated_at`,
		in.ButtonText, in.ActionType, in.ActionValue, in.ButtonStyle, in.DisplayOrder,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
