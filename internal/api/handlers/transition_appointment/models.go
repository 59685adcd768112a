package transition_appointment

import (
	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	transitionAppointment "github.com/LeandroKolesny/Aura-System-sub000/internal/usecase/transition_appointment"
)

// TransitionRequest HTTP request model
type TransitionRequest struct {
	Status             string  `json:"status" validate:"required,oneof=pending_approval scheduled confirmed completed canceled"`
	CancellationReason *string `json:"cancellationReason,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *TransitionRequest) ToUseCaseRequest(appointmentID int64, actor domain.Actor) *transitionAppointment.Request {
	return &transitionAppointment.Request{
		Actor:              actor,
		AppointmentID:      appointmentID,
		Status:             domain.AppointmentStatus(r.Status),
		CancellationReason: r.CancellationReason,
	}
}
