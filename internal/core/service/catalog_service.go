package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonhq/salon-system/internal/core/domain"
	"github.com/salonhq/salon-system/internal/core/ports"
)

type catalogService struct {
	repo ports.CatalogRepository
	log  zerolog.Logger
}

// NewCatalogService returns a CatalogService implementation.
func NewCatalogService(repo ports.CatalogRepository, log zerolog.Logger) ports.CatalogService {
	return &catalogService{repo: repo, log: log}
}

func (s *catalogService) Create(ctx context.Context, input ports.CreateServiceInput) (*domain.Service, error) {
	if input.Name == "" || input.DurationMinutes <= 0 {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	svc := &domain.Service{
		Name:            input.Name,
		DurationMinutes: input.DurationMinutes,
		Category:        input.Category,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, svc)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("service_id", created.ID).Str("name", created.Name).Msg("catalog service created")
	return created, nil
}

func (s *catalogService) List(ctx context.Context) ([]domain.Service, error) {
	return s.repo.ListActive(ctx)
}

func (s *catalogService) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *catalogService) Update(ctx context.Context, id int64, input ports.CreateServiceInput) error {
	if input.Name == "" || input.DurationMinutes <= 0 {
		return domain.ErrMissingFields
	}

	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	svc.Name = input.Name
	svc.DurationMinutes = input.DurationMinutes
	svc.Category = input.Category
	svc.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, svc)
}

func (s *catalogService) Patch(ctx context.Context, id int64, input ports.PatchServiceInput) error {
	if input.Name == nil && input.DurationMinutes == nil && input.Category == nil {
		return domain.ErrMissingFields
	}

	svc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if input.Name != nil {
		svc.Name = *input.Name
	}
	if input.DurationMinutes != nil {
		svc.DurationMinutes = *input.DurationMinutes
	}
	if input.Category != nil {
		svc.Category = input.Category
	}
	svc.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, svc)
}

func (s *catalogService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("service_id", id).Msg("catalog service deactivated")
	return nil
}
