package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// messageResponse is the confirmation envelope returned by mutating endpoints.
type messageResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type bookAppointmentRequest struct {
	CustomerName string `json:"customer_name"    validate:"required"`
	StaffID      int64  `json:"staff_id"         validate:"required,gt=0"`
	ServiceID    int64  `json:"service_id"       validate:"required,gt=0"`
	Date         string `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	Time         string `json:"appointment_time" validate:"required,datetime=15:04"`
}

type updateAppointmentRequest struct {
	Date   string `json:"appointment_date" validate:"required,datetime=2006-01-02"`
	Time   string `json:"appointment_time" validate:"required,datetime=15:04"`
	Status string `json:"status"           validate:"required"`
}

type patchAppointmentRequest struct {
	Status string `json:"status" validate:"required"`
}
