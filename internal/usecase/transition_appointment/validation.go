package transition_appointment

import (
	"fmt"
	"unicode/utf8"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	if !req.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	if req.CancellationReason != nil {
		if req.Status != domain.StatusCanceled {
			return fmt.Errorf("%w: cancellationReason is allowed only when canceling", ErrInvalidInput)
		}
		if utf8.RuneCountInString(*req.CancellationReason) > domain.MaxCancellationReasonLength {
			return fmt.Errorf("%w: cancellationReason must be at most %d characters",
				ErrInvalidInput, domain.MaxCancellationReasonLength)
		}
	}

	if !req.Actor.Role.IsValid() {
		return ErrAccessDenied
	}

	return nil
}

// checkAccess персонал компании меняет любой статус, пациент только отменяет свою запись
func checkAccess(actor domain.Actor, appt *domain.Appointment, to domain.AppointmentStatus) error {
	if !actor.CanView(appt) {
		return ErrAppointmentNotFound
	}
	if actor.IsStaff() {
		return nil
	}
	if to != domain.StatusCanceled {
		return fmt.Errorf("%w: patients can only cancel appointments", ErrAccessDenied)
	}
	return nil
}
