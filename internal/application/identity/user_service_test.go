package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/CRT1223/tech13-garage/internal/domain/identity"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestUserService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates default admin when none exists", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("CountByRole", ctx, identity.RoleAdmin).Return(int64(0), nil)
		repo.On("Create", ctx, mock.MatchedBy(func(u *identity.User) bool {
			return u.Username == "admin" && u.Email == "admin@tech13garage.com" &&
				u.IsAdmin() && u.FullName() == "Admin User" && u.VerifyPassword("admin123")
		})).Return(nil)

		created, err := NewUserService(repo, zap.NewNop()).EnsureAdmin(ctx)
		require.NoError(t, err)
		assert.True(t, created)
		repo.AssertExpectations(t)
	})

	t.Run("no-op when an admin exists", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("CountByRole", ctx, identity.RoleAdmin).Return(int64(1), nil)

		created, err := NewUserService(repo, zap.NewNop()).EnsureAdmin(ctx)
		require.NoError(t, err)
		assert.False(t, created)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("count failure", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("CountByRole", ctx, identity.RoleAdmin).Return(int64(0), errors.New("db down"))

		_, err := NewUserService(repo, zap.NewNop()).EnsureAdmin(ctx)
		assert.Error(t, err)
	})
}

func TestUserService_ResetAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("resets password of existing admin", func(t *testing.T) {
		repo := new(MockUserRepository)
		existing, err := identity.NewCustomer("admin", "admin@tech13garage.com", "forgotten")
		require.NoError(t, err)
		existing.ID = 1
		repo.On("FindByLogin", ctx, "admin").Return(existing, nil)
		repo.On("Update", ctx, existing).Return(nil)

		info, err := NewUserService(repo, zap.NewNop()).ResetAdmin(ctx)
		require.NoError(t, err)
		assert.Equal(t, "admin", info.Role)
		assert.True(t, existing.VerifyPassword("admin123"))
	})

	t.Run("creates admin when missing", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByLogin", ctx, "admin").Return(nil, shared.NotFound("User not found"))
		repo.On("Create", ctx, mock.AnythingOfType("*identity.User")).Return(nil)

		info, err := NewUserService(repo, zap.NewNop()).ResetAdmin(ctx)
		require.NoError(t, err)
		assert.Equal(t, "admin", info.Username)
		repo.AssertExpectations(t)
	})
}

func TestUserService_ListCustomers(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	c1, _ := identity.NewCustomer("rider1", "r1@example.com", "secret1")
	c2, _ := identity.NewCustomer("rider2", "r2@example.com", "secret1")
	repo.On("FindByRole", ctx, identity.RoleCustomer, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Page == 2 && f.PageSize == 20 && f.Search == "rider"
	})).Return([]identity.User{*c2, *c1}, int64(22), nil)

	page, err := NewUserService(repo, zap.NewNop()).ListCustomers(ctx, CustomerListInput{Page: 2, PageSize: 500, Search: "rider"})
	require.NoError(t, err)
	assert.Equal(t, int64(22), page.Total)
	assert.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "rider2", page.Items[0].Username)
}
