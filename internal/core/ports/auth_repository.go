package ports

import (
	"context"

	"github.com/salonhq/salon-system/internal/core/domain"
)

// AuthRepository defines the interface for user credential persistence.
// FindByEmail is an exact-match lookup. Create must surface the storage
// layer's unique-email violation as domain.ErrEmailTaken: registration is
// check-then-insert without a transaction, so the constraint is the only
// backstop against concurrent duplicates.
type AuthRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
