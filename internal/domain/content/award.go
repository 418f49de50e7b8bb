package content

import (
	"strings"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
)

// Award is a trophy or recognition shown on the home page
type Award struct {
	shared.BaseEntity
	Listing
	Title       string
	Subtitle    string
	Image       string
	Year        int
	Category    string
	Description string
}

// AwardDetails carries the editable fields of an award
type AwardDetails struct {
	Listing
	Title       string
	Subtitle    string
	Year        int
	Category    string
	Description string
}

// NewAward creates an award
func NewAward(d AwardDetails) (*Award, error) {
	a := &Award{BaseEntity: shared.NewBaseEntity()}
	if err := a.apply(d); err != nil {
		return nil, err
	}
	return a, nil
}

// Update replaces the editable fields, keeping the image
func (a *Award) Update(d AwardDetails) error {
	if err := a.apply(d); err != nil {
		return err
	}
	a.Touch()
	return nil
}

func (a *Award) apply(d AwardDetails) error {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return shared.InvalidInput("Title is required")
	}
	if d.Year < 1900 || d.Year > 2100 {
		return shared.InvalidInput("Year must be between 1900 and 2100")
	}
	a.Title = title
	a.Subtitle = strings.TrimSpace(d.Subtitle)
	a.Year = d.Year
	a.Category = strings.TrimSpace(d.Category)
	a.Description = strings.TrimSpace(d.Description)
	a.Listing = d.Listing
	return nil
}

// SetImage records the stored image filename
func (a *Award) SetImage(filename string) {
	a.Image = filename
	a.Touch()
}
