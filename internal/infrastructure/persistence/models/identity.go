package models

import (
	"github.com/CRT1223/tech13-garage/internal/domain/identity"
)

// UserModel is the persistence model for the User domain entity.
type UserModel struct {
	BaseModel
	Username     string        `gorm:"type:varchar(50);not null;uniqueIndex"`
	Email        string        `gorm:"type:varchar(200);not null;uniqueIndex"`
	Password     string        `gorm:"column:password;type:varchar(255);not null"`
	FirstName    string        `gorm:"type:varchar(100)"`
	LastName     string        `gorm:"type:varchar(100)"`
	Phone        string        `gorm:"type:varchar(50)"`
	Address      string        `gorm:"type:text"`
	Role         identity.Role `gorm:"type:varchar(20);not null;default:'customer';index"`
	ProfileImage string        `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity.
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.Password,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Phone:        m.Phone,
		Address:      m.Address,
		Role:         m.Role,
		ProfileImage: m.ProfileImage,
	}
}

// FromDomain populates the persistence model from a domain User entity.
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Username = u.Username
	m.Email = u.Email
	m.Password = u.PasswordHash
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.Phone = u.Phone
	m.Address = u.Address
	m.Role = u.Role
	m.ProfileImage = u.ProfileImage
}

// UserModelFromDomain creates a new persistence model from a domain User entity.
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}
