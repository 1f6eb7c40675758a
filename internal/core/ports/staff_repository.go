package ports

import (
	"context"

	"github.com/salonhq/salon-system/internal/core/domain"
)

// StaffRepository defines persistence operations for staff members.
// Deactivate is the soft delete: it flips is_active and reports
// domain.ErrStaffNotFound when no row matched.
type StaffRepository interface {
	Create(ctx context.Context, s *domain.StaffMember) (*domain.StaffMember, error)
	FindByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	// FindActiveByID only matches rows with is_active = true; used when
	// validating appointment bookings.
	FindActiveByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	ListActive(ctx context.Context) ([]domain.StaffMember, error)
	Update(ctx context.Context, s *domain.StaffMember) error
	Deactivate(ctx context.Context, id int64) error
}
