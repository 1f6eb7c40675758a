package domain

import (
	"errors"
	"time"
)

// Role is the closed set of access roles a user can hold. The role is fixed at
// registration; there is no role-change operation.
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleStaff    Role = "STAFF"
	RoleCustomer Role = "CUSTOMER"
)

// ParseRole converts an inbound string to a Role, rejecting anything outside
// the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleStaff, RoleCustomer:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// Password length bounds, enforced before any hashing work.
const (
	PasswordMinLen = 8
	PasswordMaxLen = 20
)

var (
	ErrInvalidRole        = errors.New("invalid role")
	ErrPasswordLength     = errors.New("password must be between 8 and 20 characters")
	ErrMissingFields      = errors.New("missing required fields")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserNotFound       = errors.New("user not found")
)

// User models an authenticated actor in the system.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
