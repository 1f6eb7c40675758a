package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/salonhq/salon-system/internal/core/domain"
	"github.com/salonhq/salon-system/internal/core/ports"
)

type appointmentService struct {
	repo    ports.AppointmentRepository
	staff   ports.StaffRepository
	catalog ports.CatalogRepository
	log     zerolog.Logger
}

// NewAppointmentService returns an AppointmentService implementation.
func NewAppointmentService(
	repo ports.AppointmentRepository,
	staff ports.StaffRepository,
	catalog ports.CatalogRepository,
	log zerolog.Logger,
) ports.AppointmentService {
	return &appointmentService{repo: repo, staff: staff, catalog: catalog, log: log}
}

// Book validates and persists a new appointment.
func (s *appointmentService) Book(ctx context.Context, input ports.BookAppointmentInput) (*domain.Appointment, error) {
	if input.CustomerName == "" || input.Time == "" || input.Date.IsZero() {
		return nil, domain.ErrMissingFields
	}

	// 1. Reject past dates (day granularity).
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if input.Date.Before(today) {
		return nil, domain.ErrPastAppointment
	}

	// 2. Staff member must exist and be active.
	if _, err := s.staff.FindActiveByID(ctx, input.StaffID); err != nil {
		return nil, err
	}

	// 3. Catalog service must exist and be active.
	if _, err := s.catalog.FindActiveByID(ctx, input.ServiceID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	appt := &domain.Appointment{
		CustomerName: input.CustomerName,
		StaffID:      input.StaffID,
		ServiceID:    input.ServiceID,
		Date:         input.Date,
		Time:         input.Time,
		Status:       domain.StatusBooked,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, appt)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("appointment_id", created.ID).
		Int64("staff_id", created.StaffID).
		Int64("service_id", created.ServiceID).
		Msg("appointment booked")

	return created, nil
}

func (s *appointmentService) List(ctx context.Context, filter ports.AppointmentFilter) ([]ports.AppointmentView, error) {
	if filter.Status != "" {
		if _, err := domain.ParseAppointmentStatus(string(filter.Status)); err != nil {
			return nil, err
		}
	}
	return s.repo.List(ctx, filter)
}

func (s *appointmentService) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *appointmentService) Update(ctx context.Context, id int64, input ports.UpdateAppointmentInput) error {
	status, err := domain.ParseAppointmentStatus(input.Status)
	if err != nil {
		return err
	}
	if input.Time == "" || input.Date.IsZero() {
		return domain.ErrMissingFields
	}

	appt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	appt.Date = input.Date
	appt.Time = input.Time
	appt.Status = status
	appt.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, appt)
}

func (s *appointmentService) UpdateStatus(ctx context.Context, id int64, status string) error {
	parsed, err := domain.ParseAppointmentStatus(status)
	if err != nil {
		return err
	}

	appt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	appt.Status = parsed
	appt.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, appt)
}

func (s *appointmentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("appointment_id", id).Msg("appointment deleted")
	return nil
}
