package catalog

import (
	"strings"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Service is a workshop job offered by the garage (tuning, oil change, ...).
// Services can be put in the cart next to parts but carry no stock.
type Service struct {
	shared.BaseEntity
	Name          string
	Description   string
	Price         decimal.Decimal
	DurationHours int
	IsRacing      bool
	IsDaily       bool
	Image         string
}

// ServiceDetails carries the editable fields of a service
type ServiceDetails struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	DurationHours int
	IsRacing      bool
	IsDaily       bool
}

// NewService creates a new workshop service
func NewService(d ServiceDetails) (*Service, error) {
	s := &Service{BaseEntity: shared.NewBaseEntity()}
	if err := s.apply(d); err != nil {
		return nil, err
	}
	return s, nil
}

// Update replaces the editable fields. The image is left untouched.
func (s *Service) Update(d ServiceDetails) error {
	if err := s.apply(d); err != nil {
		return err
	}
	s.Touch()
	return nil
}

func (s *Service) apply(d ServiceDetails) error {
	name := strings.TrimSpace(d.Name)
	if name == "" {
		return shared.InvalidInput("Service name cannot be empty")
	}
	if !d.Price.IsPositive() {
		return shared.InvalidInput("Price must be greater than zero")
	}
	if d.DurationHours < 0 {
		return shared.InvalidInput("Duration cannot be negative")
	}
	s.Name = name
	s.Description = strings.TrimSpace(d.Description)
	s.Price = d.Price
	s.DurationHours = d.DurationHours
	s.IsRacing = d.IsRacing
	s.IsDaily = d.IsDaily
	return nil
}

// SetImage records the stored image filename
func (s *Service) SetImage(filename string) {
	s.Image = filename
	s.Touch()
}
