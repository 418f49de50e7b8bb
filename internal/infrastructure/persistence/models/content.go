package models

import (
	"github.com/CRT1223/tech13-garage/internal/domain/content"
)

// ListingModel holds the ordering and visibility columns of content tables
type ListingModel struct {
	DisplayOrder int  `gorm:"not null;default:0"`
	IsActive     bool `gorm:"not null"`
}

func (m ListingModel) toDomain() content.Listing {
	return content.Listing{DisplayOrder: m.DisplayOrder, IsActive: m.IsActive}
}

func listingFromDomain(l content.Listing) ListingModel {
	return ListingModel{DisplayOrder: l.DisplayOrder, IsActive: l.IsActive}
}

// TeamMemberModel is the persistence model for a team member.
type TeamMemberModel struct {
	BaseModel
	ListingModel
	Name         string `gorm:"type:varchar(100);not null"`
	Role         string `gorm:"type:varchar(100);not null"`
	Description  string `gorm:"type:text"`
	Image        string `gorm:"type:varchar(255)"`
	LinkedInURL  string `gorm:"column:linkedin_url;type:varchar(255)"`
	TwitterURL   string `gorm:"column:twitter_url;type:varchar(255)"`
	InstagramURL string `gorm:"column:instagram_url;type:varchar(255)"`
}

// TableName returns the table name for GORM
func (TeamMemberModel) TableName() string {
	return "team_members"
}

// ToDomain converts the persistence model to a domain TeamMember.
func (m *TeamMemberModel) ToDomain() *content.TeamMember {
	return &content.TeamMember{
		BaseEntity:   m.BaseModel.ToDomain(),
		Listing:      m.ListingModel.toDomain(),
		Name:         m.Name,
		Role:         m.Role,
		Description:  m.Description,
		Image:        m.Image,
		LinkedInURL:  m.LinkedInURL,
		TwitterURL:   m.TwitterURL,
		InstagramURL: m.InstagramURL,
	}
}

// TeamMemberModelFromDomain creates a new persistence model from a domain TeamMember.
func TeamMemberModelFromDomain(t *content.TeamMember) *TeamMemberModel {
	m := &TeamMemberModel{
		ListingModel: listingFromDomain(t.Listing),
		Name:         t.Name,
		Role:         t.Role,
		Description:  t.Description,
		Image:        t.Image,
		LinkedInURL:  t.LinkedInURL,
		TwitterURL:   t.TwitterURL,
		InstagramURL: t.InstagramURL,
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}

// CollaborateTeamModel is the persistence model for a partner team.
type CollaborateTeamModel struct {
	BaseModel
	ListingModel
	TeamName        string `gorm:"type:varchar(200);not null"`
	Logo            string `gorm:"type:varchar(255)"`
	Description     string `gorm:"type:text"`
	WebsiteURL      string `gorm:"column:website_url;type:varchar(255)"`
	ContactEmail    string `gorm:"type:varchar(200)"`
	ContactPhone    string `gorm:"type:varchar(50)"`
	PartnershipType string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (CollaborateTeamModel) TableName() string {
	return "collaborate_teams"
}

// ToDomain converts the persistence model to a domain CollaborateTeam.
func (m *CollaborateTeamModel) ToDomain() *content.CollaborateTeam {
	return &content.CollaborateTeam{
		BaseEntity:      m.BaseModel.ToDomain(),
		Listing:         m.ListingModel.toDomain(),
		TeamName:        m.TeamName,
		Logo:            m.Logo,
		Description:     m.Description,
		WebsiteURL:      m.WebsiteURL,
		ContactEmail:    m.ContactEmail,
		ContactPhone:    m.ContactPhone,
		PartnershipType: m.PartnershipType,
	}
}

// CollaborateTeamModelFromDomain creates a new persistence model from a domain CollaborateTeam.
func CollaborateTeamModelFromDomain(t *content.CollaborateTeam) *CollaborateTeamModel {
	m := &CollaborateTeamModel{
		ListingModel:    listingFromDomain(t.Listing),
		TeamName:        t.TeamName,
		Logo:            t.Logo,
		Description:     t.Description,
		WebsiteURL:      t.WebsiteURL,
		ContactEmail:    t.ContactEmail,
		ContactPhone:    t.ContactPhone,
		PartnershipType: t.PartnershipType,
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m
}

// AwardModel is the persistence model for an award.
type AwardModel struct {
	BaseModel
	ListingModel
	Title       string `gorm:"type:varchar(200);not null"`
	Subtitle    string `gorm:"type:varchar(200)"`
	Image       string `gorm:"type:varchar(255)"`
	Year        int    `gorm:"not null"`
	Category    string `gorm:"type:varchar(100)"`
	Description string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (AwardModel) TableName() string {
	return "awards"
}

// ToDomain converts the persistence model to a domain Award.
func (m *AwardModel) ToDomain() *content.Award {
	return &content.Award{
		BaseEntity:  m.BaseModel.ToDomain(),
		Listing:     m.ListingModel.toDomain(),
		Title:       m.Title,
		Subtitle:    m.Subtitle,
		Image:       m.Image,
		Year:        m.Year,
		Category:    m.Category,
		Description: m.Description,
	}
}

// AwardModelFromDomain creates a new persistence model from a domain Award.
func AwardModelFromDomain(a *content.Award) *AwardModel {
	m := &AwardModel{
		ListingModel: listingFromDomain(a.Listing),
		Title:        a.Title,
		Subtitle:     a.Subtitle,
		Image:        a.Image,
		Year:         a.Year,
		Category:     a.Category,
		Description:  a.Description,
	}
	m.FromDomainBaseEntity(a.BaseEntity)
	return m
}
