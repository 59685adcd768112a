package scheduling

import (
	"errors"
	"fmt"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

var (
	// ErrValidation некорректные входные данные (длительность, неизвестный специалист и т.п.)
	ErrValidation = errors.New("scheduling: validation failed")

	// ErrOutOfHours запись вне рабочего времени
	ErrOutOfHours = errors.New("scheduling: outside business hours")

	// ErrUnavailabilityBlocked запись попадает в период недоступности
	ErrUnavailabilityBlocked = errors.New("scheduling: blocked by unavailability rule")

	// ErrScheduleConflict пересечение с существующей записью специалиста
	ErrScheduleConflict = errors.New("scheduling: schedule conflict")

	// ErrRoomCapacity нет свободного кабинета
	ErrRoomCapacity = errors.New("scheduling: no room available")

	// ErrInvalidTransition недопустимый переход статуса
	ErrInvalidTransition = errors.New("scheduling: invalid status transition")
)

// ConflictError carries the appointment a candidate collides with
type ConflictError struct {
	Appointment *domain.Appointment
}

func (e *ConflictError) Error() string {
	if e.Appointment == nil {
		return ErrScheduleConflict.Error()
	}
	return fmt.Sprintf("%s: overlaps appointment %d (%s - %s)",
		ErrScheduleConflict.Error(),
		e.Appointment.ID,
		e.Appointment.StartAt.Format("2006-01-02 15:04"),
		e.Appointment.EndAt().Format("15:04"),
	)
}

func (e *ConflictError) Is(target error) bool {
	return target == ErrScheduleConflict
}

// TransitionError describes a rejected status change
type TransitionError struct {
	From domain.AppointmentStatus
	To   domain.AppointmentStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition.Error(), e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
