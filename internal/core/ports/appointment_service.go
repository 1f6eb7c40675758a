package ports

import (
	"context"
	"time"

	"github.com/salonhq/salon-system/internal/core/domain"
)

// BookAppointmentInput carries a new booking request.
type BookAppointmentInput struct {
	CustomerName string
	StaffID      int64
	ServiceID    int64
	Date         time.Time
	Time         string
}

// UpdateAppointmentInput is the full update applied by PUT.
type UpdateAppointmentInput struct {
	Date   time.Time
	Time   string
	Status string
}

// AppointmentService defines booking use-cases. Book validates that the date
// is not in the past and that the referenced staff member and service exist
// and are active before persisting.
type AppointmentService interface {
	Book(ctx context.Context, input BookAppointmentInput) (*domain.Appointment, error)
	List(ctx context.Context, filter AppointmentFilter) ([]AppointmentView, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	Update(ctx context.Context, id int64, input UpdateAppointmentInput) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}
