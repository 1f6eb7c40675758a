package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonhq/salon-system/internal/core/domain"
	"github.com/salonhq/salon-system/internal/core/ports"
)

type staffService struct {
	repo ports.StaffRepository
	log  zerolog.Logger
}

// NewStaffService returns a StaffService implementation.
func NewStaffService(repo ports.StaffRepository, log zerolog.Logger) ports.StaffService {
	return &staffService{repo: repo, log: log}
}

func (s *staffService) Create(ctx context.Context, name, role string) (*domain.StaffMember, error) {
	if name == "" || role == "" {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	member := &domain.StaffMember{
		Name:      name,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, member)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("staff_id", created.ID).Str("name", created.Name).Msg("staff member created")
	return created, nil
}

func (s *staffService) List(ctx context.Context) ([]domain.StaffMember, error) {
	return s.repo.ListActive(ctx)
}

func (s *staffService) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *staffService) Update(ctx context.Context, id int64, name, role string) error {
	if name == "" || role == "" {
		return domain.ErrMissingFields
	}

	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	member.Name = name
	member.Role = role
	member.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, member)
}

func (s *staffService) Patch(ctx context.Context, id int64, input ports.PatchStaffInput) error {
	if input.Name == nil && input.Role == nil {
		return domain.ErrMissingFields
	}

	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Role != nil {
		member.Role = *input.Role
	}
	member.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, member)
}

// Delete deactivates the staff member; appointment history is preserved.
func (s *staffService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("staff_id", id).Msg("staff member deactivated")
	return nil
}
