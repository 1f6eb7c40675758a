package ports

import (
	"context"

	"github.com/salonhq/salon-system/internal/core/domain"
)

// RegisterInput carries a new user registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService defines registration and login use-cases.
// Login returns a signed bearer token on success; any credential failure is
// reported as domain.ErrInvalidCredentials without distinguishing an unknown
// email from a wrong password.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
