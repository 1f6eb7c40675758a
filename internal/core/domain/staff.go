package domain

import (
	"errors"
	"time"
)

var ErrStaffNotFound = errors.New("staff not found")

// StaffMember is a salon employee who can be assigned to appointments.
// Role here is the job title (e.g. "stylist", "colorist"), not an access role.
// Deletion is soft: IsActive flips to false and the row stays for reporting.
type StaffMember struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
