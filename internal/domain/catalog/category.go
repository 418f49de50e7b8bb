package catalog

import (
	"strings"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
)

// Category groups parts on the storefront (Engine Parts, Brake Systems, ...)
type Category struct {
	shared.BaseEntity
	Name        string
	Description string
	Image       string
}

// NewCategory creates a new category
func NewCategory(name, description string) (*Category, error) {
	if err := validateCategoryName(name); err != nil {
		return nil, err
	}
	return &Category{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}, nil
}

// Update changes the category name and description
func (c *Category) Update(name, description string) error {
	if err := validateCategoryName(name); err != nil {
		return err
	}
	c.Name = strings.TrimSpace(name)
	c.Description = strings.TrimSpace(description)
	c.Touch()
	return nil
}

func validateCategoryName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.InvalidInput("Category name cannot be empty")
	}
	if len(name) > 100 {
		return shared.InvalidInput("Category name cannot exceed 100 characters")
	}
	return nil
}
