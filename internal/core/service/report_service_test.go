package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonhq/salon-system/internal/core/ports"
)

type stubReportRepo struct {
	queries int
}

func (r *stubReportRepo) CountByDate(_ context.Context, _ time.Time) (int64, error) {
	r.queries++
	return 5, nil
}

func (r *stubReportRepo) CountByStatus(_ context.Context) ([]ports.StatusCount, error) {
	r.queries++
	return []ports.StatusCount{{Status: "BOOKED", Count: 3}, {Status: "CANCELLED", Count: 1}}, nil
}

func (r *stubReportRepo) StaffPerformance(_ context.Context) ([]ports.StaffPerformanceRow, error) {
	r.queries++
	return []ports.StaffPerformanceRow{{StaffID: 1, Name: "Maya", TotalAppointments: 4}}, nil
}

func (r *stubReportRepo) ServicePopularity(_ context.Context) ([]ports.ServicePopularityRow, error) {
	r.queries++
	return []ports.ServicePopularityRow{{ServiceID: 1, Name: "Haircut", TotalBookings: 2}}, nil
}

type memCache struct {
	entries map[string][]byte
	fail    bool
}

func newMemCache() *memCache { return &memCache{entries: make(map[string][]byte)} }

func (c *memCache) Get(_ context.Context, key string) ([]byte, error) {
	if c.fail {
		return nil, errors.New("cache down")
	}
	return c.entries[key], nil
}

func (c *memCache) Set(_ context.Context, key string, payload []byte) error {
	if c.fail {
		return errors.New("cache down")
	}
	c.entries[key] = payload
	return nil
}

func TestReportService_ReadThroughCache(t *testing.T) {
	repo := &stubReportRepo{}
	cache := newMemCache()
	svc := NewReportService(repo, cache, zerolog.Nop())

	first, err := svc.AppointmentsByStatus(context.Background())
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := svc.AppointmentsByStatus(context.Background())
	if err != nil {
		t.Fatalf("second call: %v", err)
	}

	if repo.queries != 1 {
		t.Fatalf("expected one database query, got %d", repo.queries)
	}
	if len(first) != len(second) || first[0] != second[0] {
		t.Fatalf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestReportService_CacheFailureFallsBack(t *testing.T) {
	repo := &stubReportRepo{}
	cache := newMemCache()
	cache.fail = true
	svc := NewReportService(repo, cache, zerolog.Nop())

	count, err := svc.DailyAppointments(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("cache failure must not surface: %v", err)
	}
	if count != 5 {
		t.Fatalf("expected 5, got %d", count)
	}
	if repo.queries != 1 {
		t.Fatalf("expected database fallback, queries=%d", repo.queries)
	}
}

func TestReportService_DailyAppointments_KeyPerDate(t *testing.T) {
	repo := &stubReportRepo{}
	cache := newMemCache()
	svc := NewReportService(repo, cache, zerolog.Nop())

	day1 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	if _, err := svc.DailyAppointments(context.Background(), day1); err != nil {
		t.Fatalf("day1: %v", err)
	}
	if _, err := svc.DailyAppointments(context.Background(), day2); err != nil {
		t.Fatalf("day2: %v", err)
	}
	if repo.queries != 2 {
		t.Fatalf("distinct dates must not share cache entries, queries=%d", repo.queries)
	}
}
