package identity

import (
	"regexp"
	"strings"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role is the coarse permission level of an account
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// IsValid reports whether the role is known
func (r Role) IsValid() bool {
	return r == RoleCustomer || r == RoleAdmin
}

// BcryptCost is the bcrypt work factor used for new password hashes
var BcryptCost = 12

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-.]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// User is a storefront account. Customers shop; admins run the back office.
type User struct {
	shared.BaseEntity
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	Address      string
	Role         Role
	ProfileImage string
}

// NewCustomer creates a customer account with a hashed password
func NewCustomer(username, email, password string) (*User, error) {
	return newUser(username, email, password, RoleCustomer)
}

// NewAdmin creates a back-office account with a hashed password
func NewAdmin(username, email, password string) (*User, error) {
	return newUser(username, email, password, RoleAdmin)
}

func newUser(username, email, password string, role Role) (*User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}, nil
}

// SetProfile updates the contact details shown at checkout
func (u *User) SetProfile(firstName, lastName, phone, address string) error {
	if len(firstName) > 100 || len(lastName) > 100 {
		return shared.InvalidInput("Name cannot exceed 100 characters")
	}
	if len(phone) > 50 {
		return shared.InvalidInput("Phone cannot exceed 50 characters")
	}
	u.FirstName = strings.TrimSpace(firstName)
	u.LastName = strings.TrimSpace(lastName)
	u.Phone = strings.TrimSpace(phone)
	u.Address = strings.TrimSpace(address)
	return nil
}

// SetPassword replaces the password hash
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	u.PasswordHash = hash
	return nil
}

// VerifyPassword checks a plaintext password against the stored hash
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// IsAdmin reports whether the account may use the back office
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName returns "First Last", falling back to the username
func (u *User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

func validateUsername(username string) error {
	if username == "" {
		return shared.InvalidInput("Username cannot be empty")
	}
	if len(username) < 3 {
		return shared.InvalidInput("Username must be at least 3 characters")
	}
	if len(username) > 50 {
		return shared.InvalidInput("Username cannot exceed 50 characters")
	}
	if !usernameRegex.MatchString(username) {
		return shared.InvalidInput("Username can only contain letters, numbers, underscores, hyphens, and dots")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.InvalidInput("Password cannot be empty")
	}
	if len(password) < 6 {
		return shared.InvalidInput("Password must be at least 6 characters")
	}
	if len(password) > 72 {
		return shared.InvalidInput("Password cannot exceed 72 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.InvalidInput("Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.InvalidInput("Invalid email format")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
