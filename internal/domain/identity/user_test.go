package identity

import (
	"errors"
	"testing"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func init() {
	BcryptCost = bcrypt.MinCost
}

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with hashed password", func(t *testing.T) {
		user, err := NewCustomer("rider1", "Rider@Example.com", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "rider1", user.Username)
		assert.Equal(t, "rider@example.com", user.Email)
		assert.Equal(t, RoleCustomer, user.Role)
		assert.NotEqual(t, "secret1", user.PasswordHash)
		assert.True(t, user.VerifyPassword("secret1"))
		assert.False(t, user.VerifyPassword("wrong"))
		assert.True(t, user.IsNew())
		assert.False(t, user.IsAdmin())
	})

	t.Run("trims username whitespace", func(t *testing.T) {
		user, err := NewCustomer("  rider1  ", "rider@example.com", "secret1")

		require.NoError(t, err)
		assert.Equal(t, "rider1", user.Username)
	})

	invalid := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"empty username", "", "a@b.co", "secret1"},
		{"short username", "ab", "a@b.co", "secret1"},
		{"username with spaces", "bad name", "a@b.co", "secret1"},
		{"bad email", "rider1", "not-an-email", "secret1"},
		{"short password", "rider1", "a@b.co", "12345"},
	}
	for _, tt := range invalid {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			_, err := NewCustomer(tt.username, tt.email, tt.password)

			require.Error(t, err)
			assert.True(t, errors.Is(err, shared.ErrInvalidInput))
		})
	}
}

func TestNewAdmin(t *testing.T) {
	user, err := NewAdmin("admin", "admin@tech13garage.com", "admin123")

	require.NoError(t, err)
	assert.True(t, user.IsAdmin())
}

func TestUser_SetProfileAndFullName(t *testing.T) {
	user, err := NewCustomer("rider1", "rider@example.com", "secret1")
	require.NoError(t, err)

	assert.Equal(t, "rider1", user.FullName())

	require.NoError(t, user.SetProfile(" Valentino ", "Rossi", "555-0146", "Tavullia"))
	assert.Equal(t, "Valentino Rossi", user.FullName())
	assert.Equal(t, "555-0146", user.Phone)
}

func TestUser_SetPassword(t *testing.T) {
	user, err := NewCustomer("rider1", "rider@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, user.SetPassword("another1"))
	assert.True(t, user.VerifyPassword("another1"))
	assert.False(t, user.VerifyPassword("secret1"))

	assert.Error(t, user.SetPassword("x"))
}
