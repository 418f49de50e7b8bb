package content

import (
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/content"
)

// ImageURLer resolves a stored image filename to its public URL
type ImageURLer interface {
	URL(name string) string
}

// ImageResult is returned by the image and logo update operations
type ImageResult struct {
	Image    string `json:"image"`
	ImageURL string `json:"image_url"`
}

// ListingFields are the ordering and visibility fields shared by all content
type ListingFields struct {
	DisplayOrder int
	IsActive     bool
}

func (l ListingFields) listing() content.Listing {
	return content.Listing{DisplayOrder: l.DisplayOrder, IsActive: l.IsActive}
}

// TeamMemberRequest carries the editable fields of a team member
type TeamMemberRequest struct {
	ListingFields
	Name         string
	Role         string
	Description  string
	LinkedInURL  string
	TwitterURL   string
	InstagramURL string
}

func (r TeamMemberRequest) details() content.TeamMemberDetails {
	return content.TeamMemberDetails{
		Listing:      r.listing(),
		Name:         r.Name,
		Role:         r.Role,
		Description:  r.Description,
		LinkedInURL:  r.LinkedInURL,
		TwitterURL:   r.TwitterURL,
		InstagramURL: r.InstagramURL,
	}
}

// TeamMemberResponse represents a team member in API responses
type TeamMemberResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Description  string    `json:"description"`
	Image        string    `json:"image,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	LinkedInURL  string    `json:"linkedin_url,omitempty"`
	TwitterURL   string    `json:"twitter_url,omitempty"`
	InstagramURL string    `json:"instagram_url,omitempty"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToTeamMemberResponse converts a team member to a response
func ToTeamMemberResponse(m *content.TeamMember, urls ImageURLer) TeamMemberResponse {
	return TeamMemberResponse{
		ID:           m.ID,
		Name:         m.Name,
		Role:         m.Role,
		Description:  m.Description,
		Image:        m.Image,
		ImageURL:     resolve(urls, m.Image),
		LinkedInURL:  m.LinkedInURL,
		TwitterURL:   m.TwitterURL,
		InstagramURL: m.InstagramURL,
		DisplayOrder: m.DisplayOrder,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// CollaborateTeamRequest carries the editable fields of a partner team
type CollaborateTeamRequest struct {
	ListingFields
	TeamName        string
	Description     string
	WebsiteURL      string
	ContactEmail    string
	ContactPhone    string
	PartnershipType string
}

func (r CollaborateTeamRequest) details() content.CollaborateTeamDetails {
	return content.CollaborateTeamDetails{
		Listing:         r.listing(),
		TeamName:        r.TeamName,
		Description:     r.Description,
		WebsiteURL:      r.WebsiteURL,
		ContactEmail:    r.ContactEmail,
		ContactPhone:    r.ContactPhone,
		PartnershipType: r.PartnershipType,
	}
}

// CollaborateTeamResponse represents a partner team in API responses
type CollaborateTeamResponse struct {
	ID              int64     `json:"id"`
	TeamName        string    `json:"team_name"`
	Logo            string    `json:"logo,omitempty"`
	LogoURL         string    `json:"logo_url,omitempty"`
	Description     string    `json:"description"`
	WebsiteURL      string    `json:"website_url,omitempty"`
	ContactEmail    string    `json:"contact_email,omitempty"`
	ContactPhone    string    `json:"contact_phone,omitempty"`
	PartnershipType string    `json:"partnership_type,omitempty"`
	DisplayOrder    int       `json:"display_order"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToCollaborateTeamResponse converts a partner team to a response
func ToCollaborateTeamResponse(t *content.CollaborateTeam, urls ImageURLer) CollaborateTeamResponse {
	return CollaborateTeamResponse{
		ID:              t.ID,
		TeamName:        t.TeamName,
		Logo:            t.Logo,
		LogoURL:         resolve(urls, t.Logo),
		Description:     t.Description,
		WebsiteURL:      t.WebsiteURL,
		ContactEmail:    t.ContactEmail,
		ContactPhone:    t.ContactPhone,
		PartnershipType: t.PartnershipType,
		DisplayOrder:    t.DisplayOrder,
		IsActive:        t.IsActive,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// AwardRequest carries the editable fields of an award
type AwardRequest struct {
	ListingFields
	Title       string
	Subtitle    string
	Year        int
	Category    string
	Description string
}

func (r AwardRequest) details() content.AwardDetails {
	return content.AwardDetails{
		Listing:     r.listing(),
		Title:       r.Title,
		Subtitle:    r.Subtitle,
		Year:        r.Year,
		Category:    r.Category,
		Description: r.Description,
	}
}

// AwardResponse represents an award in API responses
type AwardResponse struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle,omitempty"`
	Image        string    `json:"image,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	Year         int       `json:"year"`
	Category     string    `json:"category,omitempty"`
	Description  string    `json:"description"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToAwardResponse converts an award to a response
func ToAwardResponse(a *content.Award, urls ImageURLer) AwardResponse {
	return AwardResponse{
		ID:           a.ID,
		Title:        a.Title,
		Subtitle:     a.Subtitle,
		Image:        a.Image,
		ImageURL:     resolve(urls, a.Image),
		Year:         a.Year,
		Category:     a.Category,
		Description:  a.Description,
		DisplayOrder: a.DisplayOrder,
		IsActive:     a.IsActive,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func resolve(urls ImageURLer, name string) string {
	if urls == nil || name == "" {
		return ""
	}
	return urls.URL(name)
}
