package entity

import (
	"gorm.io/gorm"
)

const (
	RoleAdmin    = "admin"
	RoleStaff    = "staff"
	RoleCustomer = "customer"
	RoleOwner    = "owner"
)

type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"` // bcrypt hash only, never the plaintext
	Role     string `gorm:"not null;default:customer" json:"role"`

	// preload only when needed
	Orders []Order `json:"-"`
}

// ValidRole reports whether role is one of the allowed role tags.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleStaff, RoleCustomer, RoleOwner:
		return true
	}
	return false
}
