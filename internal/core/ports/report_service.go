package ports

import (
	"context"
	"time"
)

// ReportService exposes the salon's reporting aggregations.
type ReportService interface {
	DailyAppointments(ctx context.Context, date time.Time) (int64, error)
	AppointmentsByStatus(ctx context.Context) ([]StatusCount, error)
	StaffPerformance(ctx context.Context) ([]StaffPerformanceRow, error)
	ServicePopularity(ctx context.Context) ([]ServicePopularityRow, error)
}
