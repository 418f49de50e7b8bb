package identity

import (
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/identity"
)

// Landing paths returned after login
const (
	AdminLanding    = "/admin"
	CustomerLanding = "/"
)

// RegisterInput contains the input for customer sign-up
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Address   string
}

// LoginInput contains the input for user login.
// Identifier matches either the username or the email.
type LoginInput struct {
	Identifier string
	Password   string
	IP         string
}

// LoginResult contains the tokens of a successful login or refresh
type LoginResult struct {
	AccessToken           string
	RefreshToken          string
	AccessTokenExpiresAt  time.Time
	RefreshTokenExpiresAt time.Time
	TokenType             string
	RedirectTo            string
	User                  UserInfo
}

// UserInfo is the public view of an account
type UserInfo struct {
	ID           int64
	Username     string
	Email        string
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	Role         string
	ProfileImage string
	CreatedAt    time.Time
}

// RefreshTokenInput contains the input for token refresh
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput identifies the access token to revoke
type LogoutInput struct {
	UserID   int64
	TokenJTI string
	// ExpiresAt is the access token's expiry; the blacklist entry lives until then
	ExpiresAt time.Time
	// RefreshToken is optional. When it belongs to the same user it is revoked too.
	RefreshToken string
}

// CustomerListInput pages through customer accounts
type CustomerListInput struct {
	Page     int
	PageSize int
	Search   string
}

// ToUserInfo converts a domain user to UserInfo
func ToUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Address:      u.Address,
		Role:         string(u.Role),
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
	}
}

func landingFor(u *identity.User) string {
	if u.IsAdmin() {
		return AdminLanding
	}
	return CustomerLanding
}
