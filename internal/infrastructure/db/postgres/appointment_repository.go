package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/salonhq/salon-system/internal/core/domain"
	"github.com/salonhq/salon-system/internal/core/ports"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

type appointmentRecord struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	CustomerName string    `gorm:"not null"`
	StaffID      int64     `gorm:"not null;index"`
	ServiceID    int64     `gorm:"not null;index"`
	Date         time.Time `gorm:"column:appointment_date;type:date;not null;index"`
	Time         string    `gorm:"column:appointment_time;not null"`
	Status       string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (appointmentRecord) TableName() string { return "appointments" }

// appointmentViewRecord is the join row behind list queries.
type appointmentViewRecord struct {
	appointmentRecord
	StaffName   string
	ServiceName string
}

func (r *AppointmentRepository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	rec := appointmentRecord{
		CustomerName: a.CustomerName,
		StaffID:      a.StaffID,
		ServiceID:    a.ServiceID,
		Date:         a.Date,
		Time:         a.Time,
		Status:       string(a.Status),
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("insert appointment: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	var rec appointmentRecord
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("find appointment: %w", err)
	}
	return rec.toDomain(), nil
}

func (r *AppointmentRepository) List(ctx context.Context, filter ports.AppointmentFilter) ([]ports.AppointmentView, error) {
	q := r.db.WithContext(ctx).
		Table("appointments").
		Select("appointments.*, staff.name AS staff_name, services.name AS service_name").
		Joins("JOIN staff ON staff.id = appointments.staff_id").
		Joins("JOIN services ON services.id = appointments.service_id").
		Order("appointments.appointment_date, appointments.appointment_time")

	if filter.Date != nil {
		q = q.Where("appointments.appointment_date = ?", *filter.Date)
	}
	if filter.StaffID != nil {
		q = q.Where("appointments.staff_id = ?", *filter.StaffID)
	}
	if filter.Status != "" {
		q = q.Where("appointments.status = ?", string(filter.Status))
	}

	var recs []appointmentViewRecord
	if err := q.Scan(&recs).Error; err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}

	views := make([]ports.AppointmentView, 0, len(recs))
	for _, rec := range recs {
		views = append(views, ports.AppointmentView{
			Appointment: *rec.toDomain(),
			StaffName:   rec.StaffName,
			ServiceName: rec.ServiceName,
		})
	}
	return views, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *domain.Appointment) error {
	res := r.db.WithContext(ctx).
		Model(&appointmentRecord{}).
		Where("id = ?", a.ID).
		Updates(map[string]any{
			"appointment_date": a.Date,
			"appointment_time": a.Time,
			"status":           string(a.Status),
		})
	if res.Error != nil {
		return fmt.Errorf("update appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

// Delete removes the row outright. Cancelled bookings that should survive for
// reporting use a status change instead.
func (r *AppointmentRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&appointmentRecord{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete appointment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

func (rec *appointmentRecord) toDomain() *domain.Appointment {
	return &domain.Appointment{
		ID:           rec.ID,
		CustomerName: rec.CustomerName,
		StaffID:      rec.StaffID,
		ServiceID:    rec.ServiceID,
		Date:         rec.Date,
		Time:         rec.Time,
		Status:       domain.AppointmentStatus(rec.Status),
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
