package domain

import (
	"errors"
	"time"
)

// AppointmentStatus is the lifecycle state of a booking.
type AppointmentStatus string

const (
	StatusBooked    AppointmentStatus = "BOOKED"
	StatusConfirmed AppointmentStatus = "CONFIRMED"
	StatusCompleted AppointmentStatus = "COMPLETED"
	StatusCancelled AppointmentStatus = "CANCELLED"
	StatusNoShow    AppointmentStatus = "NO_SHOW"
)

// ParseAppointmentStatus validates an inbound status string.
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusBooked, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return AppointmentStatus(s), nil
	}
	return "", ErrInvalidStatus
}

var (
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrPastAppointment     = errors.New("appointment date cannot be in the past")
	ErrAppointmentNotFound = errors.New("appointment not found")
)

// Appointment is a booking of one service with one staff member.
// Date carries the calendar day (midnight UTC); Time is the wall-clock slot
// in "HH:MM", kept separate to match how the salon schedules slots.
type Appointment struct {
	ID           int64             `json:"id"`
	CustomerName string            `json:"customer_name"`
	StaffID      int64             `json:"staff_id"`
	ServiceID    int64             `json:"service_id"`
	Date         time.Time         `json:"appointment_date"`
	Time         string            `json:"appointment_time"`
	Status       AppointmentStatus `json:"status"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}
