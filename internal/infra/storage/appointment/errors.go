package appointment

import (
	"errors"

	"github.com/lib/pq"
)

const (
	exclusionViolation = "23P01"

	professionalOverlapConstraint = "ex_appointments_professional_overlap"
	roomOverlapConstraint         = "ex_appointments_room_overlap"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("appointment.repository: appointment not found")

	// ErrProfessionalOverlap нарушено ограничение на пересечение записей специалиста
	ErrProfessionalOverlap = errors.New("appointment.repository: professional time range overlaps")

	// ErrRoomOverlap нарушено ограничение на пересечение записей в кабинете
	ErrRoomOverlap = errors.New("appointment.repository: room time range overlaps")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("appointment.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("appointment.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("appointment.repository: failed to scan row")
)

// overlapError переводит нарушение exclusion constraint в доменную ошибку репозитория
func overlapError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != exclusionViolation {
		return nil
	}
	if pqErr.Constraint == roomOverlapConstraint {
		return ErrRoomOverlap
	}
	return ErrProfessionalOverlap
}
