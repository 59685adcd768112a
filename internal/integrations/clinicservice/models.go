package clinicservice

import "time"

// Procedure процедура клиники
type Procedure struct {
	ID              int64  `json:"id"`
	CompanyID       int64  `json:"company_id"`
	Name            string `json:"name"`
	DurationMinutes int    `json:"duration_minutes"`
	Active          bool   `json:"active"`
}

// Professional специалист клиники
type Professional struct {
	ID        int64  `json:"id"`
	CompanyID int64  `json:"company_id"`
	Name      string `json:"name"`
	Active    bool   `json:"active"`
}

// Patient контактные данные пациента для уведомлений
type Patient struct {
	ID        int64   `json:"id"`
	CompanyID int64   `json:"company_id"`
	Name      string  `json:"name"`
	Phone     *string `json:"phone,omitempty"`
	Email     *string `json:"email,omitempty"`
}

// DeductInventoryRequest списание материалов по завершенной записи
// AppointmentID используется как ключ идемпотентности
type DeductInventoryRequest struct {
	AppointmentID int64 `json:"appointment_id"`
	ProcedureID   int64 `json:"procedure_id"`
}

// LastVisitRequest отметка последнего визита пациента
type LastVisitRequest struct {
	VisitedAt time.Time `json:"visited_at"`
}

// ErrorResponse модель ошибки от clinic service
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
