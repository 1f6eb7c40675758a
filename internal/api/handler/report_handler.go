package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/salonhq/salon-system/internal/core/ports"
)

// ReportHandler handles HTTP requests for reporting aggregations.
type ReportHandler struct {
	reports ports.ReportService
}

func NewReportHandler(reports ports.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

type dailyAppointmentsResponse struct {
	Date              string `json:"date"`
	TotalAppointments int64  `json:"total_appointments"`
}

// DailyAppointments handles GET /reports/daily-appointments?date=YYYY-MM-DD.
//
// @Summary      Count appointments for a day
// @Tags         reports
// @Produce      json
// @Param        date  query     string  true  "Report date (YYYY-MM-DD)"
// @Success      200   {object}  dailyAppointmentsResponse
// @Failure      400   {object}  errorResponse
// @Router       /reports/daily-appointments [get]
func (h *ReportHandler) DailyAppointments(c echo.Context) error {
	raw := c.QueryParam("date")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "date is required"})
	}
	date, err := time.ParseInLocation(dateLayout, raw, time.UTC)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid date"})
	}

	total, err := h.reports.DailyAppointments(c.Request().Context(), date)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dailyAppointmentsResponse{
		Date:              date.Format(dateLayout),
		TotalAppointments: total,
	})
}

// AppointmentsByStatus handles GET /reports/appointments-by-status.
//
// @Summary      Count appointments grouped by status
// @Tags         reports
// @Produce      json
// @Success      200  {array}  ports.StatusCount
// @Router       /reports/appointments-by-status [get]
func (h *ReportHandler) AppointmentsByStatus(c echo.Context) error {
	rows, err := h.reports.AppointmentsByStatus(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

// StaffPerformance handles GET /reports/staff-performance.
//
// @Summary      Count appointments handled per staff member
// @Tags         reports
// @Produce      json
// @Success      200  {array}  ports.StaffPerformanceRow
// @Router       /reports/staff-performance [get]
func (h *ReportHandler) StaffPerformance(c echo.Context) error {
	rows, err := h.reports.StaffPerformance(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}

// ServicePopularity handles GET /reports/service-popularity.
//
// @Summary      Count bookings per catalog service
// @Tags         reports
// @Produce      json
// @Success      200  {array}  ports.ServicePopularityRow
// @Router       /reports/service-popularity [get]
func (h *ReportHandler) ServicePopularity(c echo.Context) error {
	rows, err := h.reports.ServicePopularity(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rows)
}
