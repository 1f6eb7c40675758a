package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/salonhq/salon-system/internal/api/metrics"
	"github.com/salonhq/salon-system/internal/core/domain"
	"github.com/salonhq/salon-system/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for bookings.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// Create handles POST /appointments.
//
// @Summary      Book an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookAppointmentRequest  true  "Booking details"
// @Success      201   {object}  domain.Appointment
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /appointments [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid appointment_date"})
	}

	appt, err := h.service.Book(c.Request().Context(), ports.BookAppointmentInput{
		CustomerName: req.CustomerName,
		StaffID:      req.StaffID,
		ServiceID:    req.ServiceID,
		Date:         date,
		Time:         req.Time,
	})
	if err != nil {
		return err
	}

	metrics.AppointmentsBookedTotal.Inc()
	return c.JSON(http.StatusCreated, appt)
}

// List handles GET /appointments.
//
// @Summary      List all appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   ports.AppointmentView
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /appointments [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context(), ports.AppointmentFilter{})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Filter handles GET /appointments/filter with optional appointment_date,
// staff_id, and status query parameters.
//
// @Summary      Filter appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        appointment_date  query     string  false  "Filter by date (YYYY-MM-DD)"
// @Param        staff_id          query     int     false  "Filter by staff member"
// @Param        status            query     string  false  "Filter by status"
// @Success      200  {array}   ports.AppointmentView
// @Failure      400  {object}  errorResponse
// @Router       /appointments/filter [get]
func (h *AppointmentHandler) Filter(c echo.Context) error {
	var filter ports.AppointmentFilter

	if raw := c.QueryParam("appointment_date"); raw != "" {
		date, err := time.ParseInLocation(dateLayout, raw, time.UTC)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid appointment_date"})
		}
		filter.Date = &date
	}
	if raw := c.QueryParam("staff_id"); raw != "" {
		staffID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid staff_id"})
		}
		filter.StaffID = &staffID
	}
	filter.Status = domain.AppointmentStatus(c.QueryParam("status"))

	views, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, views)
}

// Get handles GET /appointments/:id.
//
// @Summary      Get an appointment by id
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Appointment id"
// @Success      200  {object}  domain.Appointment
// @Failure      404  {object}  errorResponse
// @Router       /appointments/{id} [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	appt, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, appt)
}

// Update handles PUT /appointments/:id (full update of date, time, status).
//
// @Summary      Update an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                       true  "Appointment id"
// @Param        body  body      updateAppointmentRequest  true  "New schedule and status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /appointments/{id} [put]
func (h *AppointmentHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	date, err := time.ParseInLocation(dateLayout, req.Date, time.UTC)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid appointment_date"})
	}

	if err := h.service.Update(c.Request().Context(), id, ports.UpdateAppointmentInput{
		Date:   date,
		Time:   req.Time,
		Status: req.Status,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Appointment updated successfully"})
}

// Patch handles PATCH /appointments/:id (status only).
//
// @Summary      Update appointment status
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                      true  "Appointment id"
// @Param        body  body      patchAppointmentRequest  true  "New status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /appointments/{id} [patch]
func (h *AppointmentHandler) Patch(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req patchAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	if err := h.service.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Appointment status updated"})
}

// Delete handles DELETE /appointments/:id.
//
// @Summary      Delete an appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Appointment id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Appointment deleted successfully"})
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
