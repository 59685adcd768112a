package notifier

import "time"

// EventType тип события уведомления
type EventType string

const (
	EventAppointmentRequested EventType = "appointment.requested"
	EventAppointmentConfirmed EventType = "appointment.confirmed"
	EventAppointmentCanceled  EventType = "appointment.canceled"
)

// Audience получатель уведомления
type Audience string

const (
	AudiencePatient Audience = "patient"
	AudienceStaff   Audience = "staff"
)

// Event тело сообщения; доставку (SMS, email, мессенджеры) выполняет потребитель топика
type Event struct {
	EventID        string    `json:"event_id"`
	Type           EventType `json:"event_type"`
	Audience       Audience  `json:"audience"`
	CompanyID      int64     `json:"company_id"`
	AppointmentID  int64     `json:"appointment_id"`
	PatientID      int64     `json:"patient_id"`
	ProfessionalID int64     `json:"professional_id"`
	StartAt        time.Time `json:"start_at"`
	Status         string    `json:"status"`
	Message        string    `json:"message"`
	OccurredAt     time.Time `json:"occurred_at"`
}
