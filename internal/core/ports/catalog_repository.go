package ports

import (
	"context"

	"github.com/salonhq/salon-system/internal/core/domain"
)

// CatalogRepository defines persistence operations for the service catalog.
// Deactivate soft-deletes and reports domain.ErrServiceNotFound when no row
// matched.
type CatalogRepository interface {
	Create(ctx context.Context, s *domain.Service) (*domain.Service, error)
	FindByID(ctx context.Context, id int64) (*domain.Service, error)
	// FindActiveByID only matches active catalog entries; used when validating
	// appointment bookings.
	FindActiveByID(ctx context.Context, id int64) (*domain.Service, error)
	ListActive(ctx context.Context) ([]domain.Service, error)
	Update(ctx context.Context, s *domain.Service) error
	Deactivate(ctx context.Context, id int64) error
}
