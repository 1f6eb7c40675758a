package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/salonhq/salon-system/internal/core/ports"
)

type ReportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) CountByDate(ctx context.Context, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&appointmentRecord{}).
		Where("appointment_date = ?", date).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count by date: %w", err)
	}
	return count, nil
}

func (r *ReportRepository) CountByStatus(ctx context.Context) ([]ports.StatusCount, error) {
	var rows []ports.StatusCount
	err := r.db.WithContext(ctx).
		Model(&appointmentRecord{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Order("count DESC, status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count by status: %w", err)
	}
	return rows, nil
}

// StaffPerformance counts appointments per staff member, inactive staff
// included so historical work stays visible.
func (r *ReportRepository) StaffPerformance(ctx context.Context) ([]ports.StaffPerformanceRow, error) {
	var rows []ports.StaffPerformanceRow
	err := r.db.WithContext(ctx).
		Table("staff").
		Select("staff.id AS staff_id, staff.name, COUNT(appointments.id) AS total_appointments").
		Joins("LEFT JOIN appointments ON appointments.staff_id = staff.id").
		Group("staff.id, staff.name").
		Order("total_appointments DESC, staff.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("staff performance: %w", err)
	}
	return rows, nil
}

func (r *ReportRepository) ServicePopularity(ctx context.Context) ([]ports.ServicePopularityRow, error) {
	var rows []ports.ServicePopularityRow
	err := r.db.WithContext(ctx).
		Table("services").
		Select("services.id AS service_id, services.name, COUNT(appointments.id) AS total_bookings").
		Joins("LEFT JOIN appointments ON appointments.service_id = services.id").
		Group("services.id, services.name").
		Order("total_bookings DESC, services.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("service popularity: %w", err)
	}
	return rows, nil
}
