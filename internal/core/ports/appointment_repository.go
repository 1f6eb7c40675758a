package ports

import (
	"context"
	"time"

	"github.com/salonhq/salon-system/internal/core/domain"
)

// AppointmentFilter narrows appointment listings. Nil/empty fields are
// ignored; the zero value lists everything.
type AppointmentFilter struct {
	Date    *time.Time
	StaffID *int64
	Status  domain.AppointmentStatus
}

// AppointmentView is an appointment joined with the staff and service names,
// as returned by list endpoints.
type AppointmentView struct {
	domain.Appointment
	StaffName   string `json:"staff_name"`
	ServiceName string `json:"service_name"`
}

// AppointmentRepository defines persistence operations for appointments.
// List orders by date then time. Delete is a hard delete and reports
// domain.ErrAppointmentNotFound when no row matched.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	FindByID(ctx context.Context, id int64) (*domain.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]AppointmentView, error)
	Update(ctx context.Context, a *domain.Appointment) error
	Delete(ctx context.Context, id int64) error
}
