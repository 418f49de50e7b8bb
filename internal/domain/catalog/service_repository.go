package catalog

import (
	"context"
)

// ServiceRepository defines the interface for workshop service persistence
type ServiceRepository interface {
	FindByID(ctx context.Context, id int64) (*Service, error)
	FindByName(ctx context.Context, name string) (*Service, error)
	// Browse lists services ordered by name; an empty usage lists all
	Browse(ctx context.Context, usage UsageType) ([]Service, error)
	Save(ctx context.Context, service *Service) error
	Delete(ctx context.Context, id int64) error
	// IsOrdered checks whether any order line references the service
	IsOrdered(ctx context.Context, id int64) (bool, error)
}
