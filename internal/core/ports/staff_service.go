package ports

import (
	"context"

	"github.com/salonhq/salon-system/internal/core/domain"
)

// PatchStaffInput carries a partial staff update; nil fields are untouched.
// At least one field must be set.
type PatchStaffInput struct {
	Name *string
	Role *string
}

// StaffService defines staff management use-cases.
type StaffService interface {
	Create(ctx context.Context, name, role string) (*domain.StaffMember, error)
	List(ctx context.Context) ([]domain.StaffMember, error)
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	Update(ctx context.Context, id int64, name, role string) error
	Patch(ctx context.Context, id int64, input PatchStaffInput) error
	Delete(ctx context.Context, id int64) error
}
