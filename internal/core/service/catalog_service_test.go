package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/salonhq/salon-system/internal/core/domain"
	"github.com/salonhq/salon-system/internal/core/ports"
)

type memCatalogRepo struct {
	services map[int64]*domain.Service
	nextID   int64
}

func newMemCatalogRepo() *memCatalogRepo {
	return &memCatalogRepo{services: make(map[int64]*domain.Service)}
}

func (r *memCatalogRepo) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	r.nextID++
	clone := *s
	clone.ID = r.nextID
	r.services[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memCatalogRepo) FindByID(_ context.Context, id int64) (*domain.Service, error) {
	if s, ok := r.services[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, domain.ErrServiceNotFound
}

func (r *memCatalogRepo) FindActiveByID(ctx context.Context, id int64) (*domain.Service, error) {
	s, err := r.FindByID(ctx, id)
	if err != nil || !s.IsActive {
		return nil, domain.ErrServiceNotFound
	}
	return s, nil
}

func (r *memCatalogRepo) ListActive(_ context.Context) ([]domain.Service, error) {
	var out []domain.Service
	for _, s := range r.services {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memCatalogRepo) Update(_ context.Context, s *domain.Service) error {
	if _, ok := r.services[s.ID]; !ok {
		return domain.ErrServiceNotFound
	}
	clone := *s
	r.services[s.ID] = &clone
	return nil
}

func (r *memCatalogRepo) Deactivate(_ context.Context, id int64) error {
	s, ok := r.services[id]
	if !ok {
		return domain.ErrServiceNotFound
	}
	s.IsActive = false
	return nil
}

func TestCatalogService_Create_Validation(t *testing.T) {
	svc := NewCatalogService(newMemCatalogRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateServiceInput{Name: "Haircut"}); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields for zero duration, got %v", err)
	}
}

func TestCatalogService_Patch_RequiresField(t *testing.T) {
	svc := NewCatalogService(newMemCatalogRepo(), zerolog.Nop())

	if err := svc.Patch(context.Background(), 1, ports.PatchServiceInput{}); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestCatalogService_Patch_PartialUpdate(t *testing.T) {
	repo := newMemCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), ports.CreateServiceInput{Name: "Haircut", DurationMinutes: 30})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	duration := 45
	if err := svc.Patch(context.Background(), created.ID, ports.PatchServiceInput{DurationMinutes: &duration}); err != nil {
		t.Fatalf("patch: %v", err)
	}

	got, _ := svc.GetByID(context.Background(), created.ID)
	if got.Name != "Haircut" || got.DurationMinutes != 45 {
		t.Fatalf("unexpected service after patch: %+v", got)
	}
}

func TestCatalogService_Delete_SoftDeletes(t *testing.T) {
	repo := newMemCatalogRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), ports.CreateServiceInput{Name: "Manicure", DurationMinutes: 40})
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	services, _ := svc.List(context.Background())
	if len(services) != 0 {
		t.Fatalf("deactivated service still listed: %+v", services)
	}
	if err := svc.Delete(context.Background(), 99); err != domain.ErrServiceNotFound {
		t.Fatalf("expected ErrServiceNotFound, got %v", err)
	}
}
