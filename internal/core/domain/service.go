package domain

import (
	"errors"
	"time"
)

var ErrServiceNotFound = errors.New("service not found")

// Service is a bookable catalog entry (haircut, manicure, ...).
// Category is optional. Deletion is soft, as with staff.
type Service struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	Category        *string   `json:"category,omitempty"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
