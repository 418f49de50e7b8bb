package identity

import (
	"context"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create inserts a new user and assigns its ID
	Create(ctx context.Context, user *User) error

	// Update persists profile and password changes
	Update(ctx context.Context, user *User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByLogin finds a user whose username OR email equals identifier
	FindByLogin(ctx context.Context, identifier string) (*User, error)

	// ExistsByUsernameOrEmail reports whether either value is taken
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// FindByRole lists users with the given role, newest first
	FindByRole(ctx context.Context, role Role, filter shared.Filter) ([]User, int64, error)

	// CountByRole counts users with the given role
	CountByRole(ctx context.Context, role Role) (int64, error)

	// FindFirstByRole returns the oldest account with the role
	FindFirstByRole(ctx context.Context, role Role) (*User, error)
}
