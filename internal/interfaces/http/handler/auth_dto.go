package handler

import (
	"time"

	"github.com/CRT1223/tech13-garage/internal/application/identity"
)

// RegisterRequest represents the customer sign-up form
type RegisterRequest struct {
	Username  string `json:"username" form:"username" binding:"required,min=3,max=50"`
	Email     string `json:"email" form:"email" binding:"required,email,max=100"`
	Password  string `json:"password" form:"password" binding:"required,min=6,max=72"`
	FirstName string `json:"first_name" form:"first_name" binding:"max=100"`
	LastName  string `json:"last_name" form:"last_name" binding:"max=100"`
	Phone     string `json:"phone" form:"phone" binding:"max=50"`
	Address   string `json:"address" form:"address" binding:"max=500"`
}

// LoginRequest represents the login form; username accepts an email too
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required,max=100"`
	Password string `json:"password" form:"password" binding:"required,max=72"`
}

// RefreshTokenRequest represents the request body for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest is the optional logout body
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse represents the token data in auth responses
type TokenResponse struct {
	AccessToken           string    `json:"access_token"`
	RefreshToken          string    `json:"refresh_token"`
	AccessTokenExpiresAt  time.Time `json:"access_token_expires_at"`
	RefreshTokenExpiresAt time.Time `json:"refresh_token_expires_at"`
	TokenType             string    `json:"token_type"`
}

// UserResponse represents an account in API responses
type UserResponse struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	Role         string    `json:"role"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginResponse represents the response body for a successful login or refresh
type LoginResponse struct {
	Token      TokenResponse `json:"token"`
	User       UserResponse  `json:"user"`
	RedirectTo string        `json:"redirect_to"`
}

func toUserResponse(u identity.UserInfo) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		Address:      u.Address,
		Role:         u.Role,
		ProfileImage: u.ProfileImage,
		CreatedAt:    u.CreatedAt,
	}
}

func toLoginResponse(r *identity.LoginResult) LoginResponse {
	return LoginResponse{
		Token: TokenResponse{
			AccessToken:           r.AccessToken,
			RefreshToken:          r.RefreshToken,
			AccessTokenExpiresAt:  r.AccessTokenExpiresAt,
			RefreshTokenExpiresAt: r.RefreshTokenExpiresAt,
			TokenType:             r.TokenType,
		},
		User:       toUserResponse(r.User),
		RedirectTo: r.RedirectTo,
	}
}
