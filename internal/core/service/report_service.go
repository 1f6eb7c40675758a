package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonhq/salon-system/internal/core/ports"
)

type reportService struct {
	repo  ports.ReportRepository
	cache ports.ReportCache
	log   zerolog.Logger
}

// NewReportService returns a ReportService implementation. Reports are
// read-through cached; a failing or absent cache entry falls back to the
// database and is never fatal.
func NewReportService(repo ports.ReportRepository, cache ports.ReportCache, log zerolog.Logger) ports.ReportService {
	return &reportService{repo: repo, cache: cache, log: log}
}

func (s *reportService) DailyAppointments(ctx context.Context, date time.Time) (int64, error) {
	key := "reports:daily:" + date.Format("2006-01-02")

	var count int64
	if ok := s.fromCache(ctx, key, &count); ok {
		return count, nil
	}

	count, err := s.repo.CountByDate(ctx, date)
	if err != nil {
		return 0, err
	}
	s.toCache(ctx, key, count)
	return count, nil
}

func (s *reportService) AppointmentsByStatus(ctx context.Context) ([]ports.StatusCount, error) {
	var rows []ports.StatusCount
	if ok := s.fromCache(ctx, "reports:by-status", &rows); ok {
		return rows, nil
	}

	rows, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, "reports:by-status", rows)
	return rows, nil
}

func (s *reportService) StaffPerformance(ctx context.Context) ([]ports.StaffPerformanceRow, error) {
	var rows []ports.StaffPerformanceRow
	if ok := s.fromCache(ctx, "reports:staff-performance", &rows); ok {
		return rows, nil
	}

	rows, err := s.repo.StaffPerformance(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, "reports:staff-performance", rows)
	return rows, nil
}

func (s *reportService) ServicePopularity(ctx context.Context) ([]ports.ServicePopularityRow, error) {
	var rows []ports.ServicePopularityRow
	if ok := s.fromCache(ctx, "reports:service-popularity", &rows); ok {
		return rows, nil
	}

	rows, err := s.repo.ServicePopularity(ctx)
	if err != nil {
		return nil, err
	}
	s.toCache(ctx, "reports:service-popularity", rows)
	return rows, nil
}

// fromCache loads and decodes a cached payload into out. Any cache failure is
// logged and reported as a miss.
func (s *reportService) fromCache(ctx context.Context, key string, out any) bool {
	payload, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("report cache read failed, querying database")
		return false
	}
	if payload == nil {
		return false
	}
	if err := json.Unmarshal(payload, out); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("corrupt report cache entry ignored")
		return false
	}
	return true
}

func (s *reportService) toCache(ctx context.Context, key string, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		s.log.Warn().Err(fmt.Errorf("encode report: %w", err)).Str("key", key).Msg("skipping cache write")
		return
	}
	if err := s.cache.Set(ctx, key, payload); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("report cache write failed")
	}
}
