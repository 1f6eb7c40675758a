package ports

import (
	"context"
	"time"
)

// StatusCount is one row of the appointments-by-status report.
type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// StaffPerformanceRow counts appointments handled per staff member.
type StaffPerformanceRow struct {
	StaffID           int64  `json:"id"`
	Name              string `json:"name"`
	TotalAppointments int64  `json:"total_appointments"`
}

// ServicePopularityRow counts bookings per catalog service.
type ServicePopularityRow struct {
	ServiceID     int64  `json:"id"`
	Name          string `json:"name"`
	TotalBookings int64  `json:"total_bookings"`
}

// ReportRepository runs the aggregate queries backing the reports module.
type ReportRepository interface {
	CountByDate(ctx context.Context, date time.Time) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusCount, error)
	StaffPerformance(ctx context.Context) ([]StaffPerformanceRow, error)
	ServicePopularity(ctx context.Context) ([]ServicePopularityRow, error)
}

// ReportCache is a byte-level read-through cache for report payloads. Get
// returns (nil, nil) on a miss; the implementation owns the entry TTL.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, payload []byte) error
}
