// Package content holds the marketing content shown on the about and home pages:
// the workshop crew, partner teams and race awards.
package content

import (
	"strings"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
)

// Listing carries the ordering and visibility shared by all content entries
type Listing struct {
	DisplayOrder int
	IsActive     bool
}

// TeamMember is a person shown on the about page
type TeamMember struct {
	shared.BaseEntity
	Listing
	Name         string
	Role         string
	Description  string
	Image        string
	LinkedInURL  string
	TwitterURL   string
	InstagramURL string
}

// TeamMemberDetails carries the editable fields of a team member
type TeamMemberDetails struct {
	Listing
	Name         string
	Role         string
	Description  string
	LinkedInURL  string
	TwitterURL   string
	InstagramURL string
}

// NewTeamMember creates a team member
func NewTeamMember(d TeamMemberDetails) (*TeamMember, error) {
	m := &TeamMember{BaseEntity: shared.NewBaseEntity()}
	if err := m.apply(d); err != nil {
		return nil, err
	}
	return m, nil
}

// Update replaces the editable fields, keeping the image
func (m *TeamMember) Update(d TeamMemberDetails) error {
	if err := m.apply(d); err != nil {
		return err
	}
	m.Touch()
	return nil
}

func (m *TeamMember) apply(d TeamMemberDetails) error {
	name := strings.TrimSpace(d.Name)
	role := strings.TrimSpace(d.Role)
	if name == "" {
		return shared.InvalidInput("Name is required")
	}
	if role == "" {
		return shared.InvalidInput("Role is required")
	}
	m.Name = name
	m.Role = role
	m.Description = strings.TrimSpace(d.Description)
	m.LinkedInURL = strings.TrimSpace(d.LinkedInURL)
	m.TwitterURL = strings.TrimSpace(d.TwitterURL)
	m.InstagramURL = strings.TrimSpace(d.InstagramURL)
	m.Listing = d.Listing
	return nil
}

// SetImage records the stored image filename
func (m *TeamMember) SetImage(filename string) {
	m.Image = filename
	m.Touch()
}
