package model

import "time"

// HeroSection is the banner at the top of the landing page. At most one row
// is active at a time; creating a new one deactivates the previous.
type HeroSection struct {
	ID                 int64     `json:"id"`
	Headline           string    `json:"headline"`
	Description        string    `json:"description"`
	BackgroundImageURL string    `json:"background_image_url,omitempty"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Service is one entry in the "our services" grid, ordered by DisplayOrder.
type Service struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	IconClass    string    `json:"icon_class,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Benefit is one entry in the "why choose us" list, ordered by DisplayOrder.
type Benefit struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	IconClass    string    `json:"icon_class,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CallToAction action types.
const (
	ActionTypeWhatsApp = "whatsapp"
	ActionTypeEmail    = "email"
	ActionTypePhone    = "phone"
)

// CallToAction is a contact button (whatsapp/email/phone), ordered by DisplayOrder.
type CallToAction struct {
	ID           int64     `json:"id"`
	ButtonText   string    `json:"button_text"`
	ActionType   string    `json:"action_type"`
	ActionValue  string    `json:"action_value"`
	ButtonStyle  string    `json:"button_style"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FooterContent holds company details for the page footer. Singleton like
// HeroSection: at most one active row.
type FooterContent struct {
	ID            int64             `json:"id"`
	CompanyName   string            `json:"company_name"`
	Address       string            `json:"address,omitempty"`
	Phone         string            `json:"phone,omitempty"`
	Email         string            `json:"email,omitempty"`
	CopyrightText string            `json:"copyright_text"`
	SocialLinks   map[string]string `json:"social_links"`
	IsActive      bool              `json:"is_active"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// HeroSectionInput carries the fields an admin supplies when replacing the hero.
type HeroSectionInput struct {
	Headline           string `json:"headline"`
	Description        string `json:"description"`
	BackgroundImageURL string `json:"background_image_url,omitempty"`
}

// ServiceInput carries the fields for a new service entry.
type ServiceInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	IconClass    string `json:"icon_class,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// BenefitInput carries the fields for a new benefit entry.
type BenefitInput struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	IconClass    string `json:"icon_class,omitempty"`
	DisplayOrder int    `json:"display_order"`
}

// CallToActionInput carries the fields for a new CTA button.
type CallToActionInput struct {
	ButtonText   string `json:"button_text"`
	ActionType   string `json:"action_type"`
	ActionValue  string `json:"action_value"`
	ButtonStyle  string `json:"button_style"`
	DisplayOrder int    `json:"display_order"`
}

// FooterContentInput carries the fields an admin supplies when replacing the footer.
type FooterContentInput struct {
	CompanyName   string            `json:"company_name"`
	Address       string            `json:"address,omitempty"`
	Phone         string            `json:"phone,omitempty"`
	Email         string            `json:"email,omitempty"`
	CopyrightText string            `json:"copyright_text"`
	SocialLinks   map[string]string `json:"social_links,omitempty"`
}
