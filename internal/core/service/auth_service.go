package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/salonhq/salon-system/internal/core/domain"
	"github.com/salonhq/salon-system/internal/core/ports"
)

// TokenIssuer mints the bearer token returned at login.
type TokenIssuer interface {
	Issue(userID int64, role domain.Role) (string, error)
}

type authService struct {
	repo   ports.AuthRepository
	tokens TokenIssuer
	log    zerolog.Logger
}

// NewAuthService returns an AuthService implementation.
func NewAuthService(repo ports.AuthRepository, tokens TokenIssuer, log zerolog.Logger) ports.AuthService {
	return &authService{repo: repo, tokens: tokens, log: log}
}

// Register creates a new user account. The password length bound is checked
// before any hashing work; the duplicate-email check is check-then-insert, so
// the repository's unique constraint is the backstop for concurrent
// registrations.
func (s *authService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" || input.Role == "" {
		return nil, domain.ErrMissingFields
	}
	if len(input.Password) < domain.PasswordMinLen || len(input.Password) > domain.PasswordMaxLen {
		return nil, domain.ErrPasswordLength
	}
	role, err := domain.ParseRole(input.Role)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register: lookup email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both surface as ErrInvalidCredentials so callers cannot probe for
// registered addresses.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: lookup email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("login: issue token: %w", err)
	}

	return signed, user, nil
}
