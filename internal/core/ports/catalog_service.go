package ports

import (
	"context"

	"github.com/salonhq/salon-system/internal/core/domain"
)

// CreateServiceInput carries a new catalog entry.
type CreateServiceInput struct {
	Name            string
	DurationMinutes int
	Category        *string
}

// PatchServiceInput carries a partial catalog update; nil fields are
// untouched. At least one field must be set.
type PatchServiceInput struct {
	Name            *string
	DurationMinutes *int
	Category        *string
}

// CatalogService defines service-catalog use-cases.
type CatalogService interface {
	Create(ctx context.Context, input CreateServiceInput) (*domain.Service, error)
	List(ctx context.Context) ([]domain.Service, error)
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Update(ctx context.Context, id int64, input CreateServiceInput) error
	Patch(ctx context.Context, id int64, input PatchServiceInput) error
	Delete(ctx context.Context, id int64) error
}
