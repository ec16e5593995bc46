package models

import (
	"strings"
	"time"
)

// Role defines allowed roles in the system
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleChef     Role = "chef"
	RoleCustomer Role = "customer"
	RoleRider    Role = "rider"
)

// ParseRole folds case once and validates against the closed role set.
func ParseRole(s string) (Role, bool) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	switch r {
	case RoleAdmin, RoleChef, RoleCustomer, RoleRider:
		return r, true
	}
	return "", false
}

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         Role      `json:"role" gorm:"not null;default:'customer'"`
	Email        string    `json:"email"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
