package transition_appointment

import "github.com/LeandroKolesny/Aura-System-sub000/internal/domain"

// Request модель запроса на смену статуса записи
type Request struct {
	Actor              domain.Actor
	AppointmentID      int64
	Status             domain.AppointmentStatus // Целевой статус
	CancellationReason *string                  // Причина отмены (опционально)
}

// Response модель ответа с обновленной записью
type Response struct {
	Appointment *domain.Appointment
	Previous    domain.AppointmentStatus
}
