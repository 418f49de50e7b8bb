package content

import (
	"strings"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
)

// CollaborateTeam is a partner racing team or sponsor
type CollaborateTeam struct {
	shared.BaseEntity
	Listing
	TeamName        string
	Logo            string
	Description     string
	WebsiteURL      string
	ContactEmail    string
	ContactPhone    string
	PartnershipType string
}

// CollaborateTeamDetails carries the editable fields of a partner team
type CollaborateTeamDetails struct {
	Listing
	TeamName        string
	Description     string
	WebsiteURL      string
	ContactEmail    string
	ContactPhone    string
	PartnershipType string
}

// NewCollaborateTeam creates a partner team
func NewCollaborateTeam(d CollaborateTeamDetails) (*CollaborateTeam, error) {
	t := &CollaborateTeam{BaseEntity: shared.NewBaseEntity()}
	if err := t.apply(d); err != nil {
		return nil, err
	}
	return t, nil
}

// Update replaces the editable fields, keeping the logo
func (t *CollaborateTeam) Update(d CollaborateTeamDetails) error {
	if err := t.apply(d); err != nil {
		return err
	}
	t.Touch()
	return nil
}

func (t *CollaborateTeam) apply(d CollaborateTeamDetails) error {
	name := strings.TrimSpace(d.TeamName)
	if name == "" {
		return shared.InvalidInput("Team name is required")
	}
	t.TeamName = name
	t.Description = strings.TrimSpace(d.Description)
	t.WebsiteURL = strings.TrimSpace(d.WebsiteURL)
	t.ContactEmail = strings.TrimSpace(d.ContactEmail)
	t.ContactPhone = strings.TrimSpace(d.ContactPhone)
	t.PartnershipType = strings.TrimSpace(d.PartnershipType)
	t.Listing = d.Listing
	return nil
}

// SetLogo records the stored logo filename
func (t *CollaborateTeam) SetLogo(filename string) {
	t.Logo = filename
	t.Touch()
}
