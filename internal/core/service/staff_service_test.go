package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/salonhq/salon-system/internal/core/domain"
	"github.com/salonhq/salon-system/internal/core/ports"
)

type memStaffRepo struct {
	members map[int64]*domain.StaffMember
	nextID  int64
}

func newMemStaffRepo() *memStaffRepo {
	return &memStaffRepo{members: make(map[int64]*domain.StaffMember)}
}

func (r *memStaffRepo) Create(_ context.Context, s *domain.StaffMember) (*domain.StaffMember, error) {
	r.nextID++
	clone := *s
	clone.ID = r.nextID
	r.members[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *memStaffRepo) FindByID(_ context.Context, id int64) (*domain.StaffMember, error) {
	if s, ok := r.members[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, domain.ErrStaffNotFound
}

func (r *memStaffRepo) FindActiveByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	s, err := r.FindByID(ctx, id)
	if err != nil || !s.IsActive {
		return nil, domain.ErrStaffNotFound
	}
	return s, nil
}

func (r *memStaffRepo) ListActive(_ context.Context) ([]domain.StaffMember, error) {
	var out []domain.StaffMember
	for _, s := range r.members {
		if s.IsActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memStaffRepo) Update(_ context.Context, s *domain.StaffMember) error {
	if _, ok := r.members[s.ID]; !ok {
		return domain.ErrStaffNotFound
	}
	clone := *s
	r.members[s.ID] = &clone
	return nil
}

func (r *memStaffRepo) Deactivate(_ context.Context, id int64) error {
	s, ok := r.members[id]
	if !ok {
		return domain.ErrStaffNotFound
	}
	s.IsActive = false
	return nil
}

func TestStaffService_CreateAndList(t *testing.T) {
	repo := newMemStaffRepo()
	svc := NewStaffService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), "Maya", "stylist")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.IsActive {
		t.Fatalf("new staff must be active")
	}

	members, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(members) != 1 || members[0].Name != "Maya" {
		t.Fatalf("unexpected list: %+v", members)
	}
}

func TestStaffService_Patch_RequiresField(t *testing.T) {
	repo := newMemStaffRepo()
	svc := NewStaffService(repo, zerolog.Nop())

	if err := svc.Patch(context.Background(), 1, ports.PatchStaffInput{}); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestStaffService_Patch_PartialUpdate(t *testing.T) {
	repo := newMemStaffRepo()
	svc := NewStaffService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "Maya", "stylist")

	role := "colorist"
	if err := svc.Patch(context.Background(), created.ID, ports.PatchStaffInput{Role: &role}); err != nil {
		t.Fatalf("patch: %v", err)
	}

	got, _ := svc.GetByID(context.Background(), created.ID)
	if got.Name != "Maya" || got.Role != "colorist" {
		t.Fatalf("unexpected member after patch: %+v", got)
	}
}

func TestStaffService_Delete_SoftDeletes(t *testing.T) {
	repo := newMemStaffRepo()
	svc := NewStaffService(repo, zerolog.Nop())

	created, _ := svc.Create(context.Background(), "Maya", "stylist")
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	// row survives for by-id reads but drops out of the active list
	if _, err := svc.GetByID(context.Background(), created.ID); err != nil {
		t.Fatalf("soft-deleted staff must remain readable: %v", err)
	}
	members, _ := svc.List(context.Background())
	if len(members) != 0 {
		t.Fatalf("deactivated staff still listed: %+v", members)
	}
}

func TestStaffService_UpdateAndDelete_NotFound(t *testing.T) {
	svc := NewStaffService(newMemStaffRepo(), zerolog.Nop())

	if err := svc.Update(context.Background(), 9, "A", "b"); err != domain.ErrStaffNotFound {
		t.Fatalf("update: expected ErrStaffNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), 9); err != domain.ErrStaffNotFound {
		t.Fatalf("delete: expected ErrStaffNotFound, got %v", err)
	}
}
