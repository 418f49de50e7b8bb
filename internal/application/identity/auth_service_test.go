package identity

import (
	"context"
	"testing"
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/identity"
	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/auth"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	identity.BcryptCost = 4
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-unit-tests",
		RefreshSecret:          "test-refresh-secret-key",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "tech13-garage-test",
	})
}

func newTestAuthService(repo *MockUserRepository) (*AuthService, *auth.JWTService, *auth.InMemoryTokenBlacklist) {
	jwtService := newTestJWTService()
	blacklist := auth.NewInMemoryTokenBlacklist()
	return NewAuthService(repo, jwtService, blacklist, zap.NewNop()), jwtService, blacklist
}

func createTestUser(t *testing.T, role identity.Role) *identity.User {
	t.Helper()
	var (
		user *identity.User
		err  error
	)
	if role == identity.RoleAdmin {
		user, err = identity.NewAdmin("admin", "admin@tech13garage.com", "admin123")
	} else {
		user, err = identity.NewCustomer("rider", "rider@example.com", "secret1")
	}
	require.NoError(t, err)
	require.NoError(t, user.SetProfile("Juan", "Dela Cruz", "0917", "Quezon City"))
	user.ID = 42
	return user
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates customer", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _, _ := newTestAuthService(repo)
		repo.On("ExistsByUsernameOrEmail", ctx, "rider", "rider@example.com").Return(false, nil)
		repo.On("Create", ctx, mock.MatchedBy(func(u *identity.User) bool {
			return u.Role == identity.RoleCustomer && u.FirstName == "Juan" && u.PasswordHash != "secret1"
		})).Return(nil)

		info, err := svc.Register(ctx, RegisterInput{
			Username: "rider", Email: "rider@example.com", Password: "secret1",
			FirstName: "Juan", LastName: "Dela Cruz",
		})
		require.NoError(t, err)
		assert.Equal(t, "customer", info.Role)
		assert.Equal(t, "rider", info.Username)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate username or email", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _, _ := newTestAuthService(repo)
		repo.On("ExistsByUsernameOrEmail", ctx, "rider", "taken@example.com").Return(true, nil)

		_, err := svc.Register(ctx, RegisterInput{Username: "rider", Email: "taken@example.com", Password: "secret1"})
		require.Error(t, err)
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		assert.Equal(t, "Username or email already exists", err.Error())
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("short password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _, _ := newTestAuthService(repo)
		repo.On("ExistsByUsernameOrEmail", ctx, "rider", "rider@example.com").Return(false, nil)

		_, err := svc.Register(ctx, RegisterInput{Username: "rider", Email: "rider@example.com", Password: "123"})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("customer lands on storefront", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, jwtService, _ := newTestAuthService(repo)
		user := createTestUser(t, identity.RoleCustomer)
		repo.On("FindByLogin", ctx, "rider@example.com").Return(user, nil)

		result, err := svc.Login(ctx, LoginInput{Identifier: "rider@example.com", Password: "secret1"})
		require.NoError(t, err)
		assert.Equal(t, CustomerLanding, result.RedirectTo)
		assert.Equal(t, "Bearer", result.TokenType)

		claims, err := jwtService.ValidateAccessToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, "rider", claims.Username)
		assert.Equal(t, "customer", claims.Role)
		assert.Equal(t, "Juan", claims.FirstName)
	})

	t.Run("admin lands on back office", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _, _ := newTestAuthService(repo)
		repo.On("FindByLogin", ctx, "admin").Return(createTestUser(t, identity.RoleAdmin), nil)

		result, err := svc.Login(ctx, LoginInput{Identifier: "admin", Password: "admin123"})
		require.NoError(t, err)
		assert.Equal(t, AdminLanding, result.RedirectTo)
	})

	t.Run("wrong password", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _, _ := newTestAuthService(repo)
		repo.On("FindByLogin", ctx, "rider").Return(createTestUser(t, identity.RoleCustomer), nil)

		_, err := svc.Login(ctx, LoginInput{Identifier: "rider", Password: "nope!!"})
		assert.Equal(t, ErrInvalidCredentials, err)
	})

	t.Run("unknown account", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc, _, _ := newTestAuthService(repo)
		repo.On("FindByLogin", ctx, "ghost").Return(nil, shared.NotFound("User not found"))

		_, err := svc.Login(ctx, LoginInput{Identifier: "ghost", Password: "whatever"})
		assert.Equal(t, ErrInvalidCredentials, err)
		assert.Equal(t, "Invalid username or password", err.Error())
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc, jwtService, _ := newTestAuthService(repo)
	user := createTestUser(t, identity.RoleCustomer)

	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{UserID: user.ID, Username: user.Username, Role: "customer"})
	require.NoError(t, err)

	// promoted since the token was issued
	user.Role = identity.RoleAdmin
	repo.On("FindByID", ctx, int64(42)).Return(user, nil)

	result, err := svc.RefreshToken(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
	require.NoError(t, err)
	claims, err := jwtService.ValidateAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)

	t.Run("access token is not a refresh token", func(t *testing.T) {
		_, err := svc.RefreshToken(ctx, RefreshTokenInput{RefreshToken: pair.AccessToken})
		require.Error(t, err)
		var de *shared.DomainError
		require.ErrorAs(t, err, &de)
		assert.Equal(t, "TOKEN_INVALID", de.Code)
	})
}

func TestAuthService_Logout(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc, jwtService, blacklist := newTestAuthService(repo)

	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{UserID: 7, Username: "rider", Role: "customer"})
	require.NoError(t, err)
	claims, err := jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, LogoutInput{UserID: 7, TokenJTI: claims.ID, ExpiresAt: claims.GetExpiresAtTime()}))
	revoked, err := blacklist.IsBlacklisted(ctx, claims.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	// an already expired token needs no entry
	require.NoError(t, svc.Logout(ctx, LogoutInput{UserID: 7, TokenJTI: "old", ExpiresAt: time.Now().Add(-time.Minute)}))
	revoked, err = blacklist.IsBlacklisted(ctx, "old")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestAuthService_LogoutRevokesRefreshToken(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc, jwtService, blacklist := newTestAuthService(repo)

	pair, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{UserID: 7, Username: "rider", Role: "customer"})
	require.NoError(t, err)
	access, err := jwtService.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	refresh, err := jwtService.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, LogoutInput{
		UserID:       7,
		TokenJTI:     access.ID,
		ExpiresAt:    access.GetExpiresAtTime(),
		RefreshToken: pair.RefreshToken,
	}))
	revoked, err := blacklist.IsBlacklisted(ctx, refresh.ID)
	require.NoError(t, err)
	assert.True(t, revoked)

	_, err = svc.RefreshToken(ctx, RefreshTokenInput{RefreshToken: pair.RefreshToken})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "TOKEN_INVALID", domainErr.Code)

	t.Run("another user's refresh token is left alone", func(t *testing.T) {
		other, err := jwtService.GenerateTokenPair(auth.GenerateTokenInput{UserID: 8, Username: "other", Role: "customer"})
		require.NoError(t, err)
		otherClaims, err := jwtService.ValidateRefreshToken(other.RefreshToken)
		require.NoError(t, err)

		require.NoError(t, svc.Logout(ctx, LogoutInput{UserID: 7, RefreshToken: other.RefreshToken}))
		revoked, err := blacklist.IsBlacklisted(ctx, otherClaims.ID)
		require.NoError(t, err)
		assert.False(t, revoked)
	})

	t.Run("garbage refresh token is ignored", func(t *testing.T) {
		assert.NoError(t, svc.Logout(ctx, LogoutInput{UserID: 7, RefreshToken: "not-a-jwt"}))
	})
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	ctx := context.Background()
	repo := new(MockUserRepository)
	svc, _, _ := newTestAuthService(repo)
	repo.On("FindByID", ctx, int64(42)).Return(createTestUser(t, identity.RoleCustomer), nil)
	repo.On("FindByID", ctx, int64(9)).Return(nil, shared.NotFound("User not found"))

	info, err := svc.GetCurrentUser(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "Quezon City", info.Address)

	_, err = svc.GetCurrentUser(ctx, 9)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
