package create_appointment

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.ProcedureID <= 0 {
		return fmt.Errorf("%w: procedureID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.RoomID != nil && *req.RoomID < 1 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// resolveActor определяет источник записи и пациента
// Пациент записывает только себя, персонал указывает пациента явно
func resolveActor(req *Request) (domain.Source, int64, error) {
	if !req.Actor.Role.IsValid() || req.Actor.CompanyID != req.CompanyID {
		return "", 0, ErrAccessDenied
	}

	if req.Actor.IsStaff() {
		if req.PatientID <= 0 {
			return "", 0, fmt.Errorf("%w: patientID must be positive", ErrInvalidInput)
		}
		return domain.SourceStaff, req.PatientID, nil
	}

	if req.PatientID != 0 && req.PatientID != req.Actor.UserID {
		return "", 0, ErrAccessDenied
	}
	return domain.SourceSelfService, req.Actor.UserID, nil
}

// validateDuration проверяет длительность процедуры из сервиса клиники
func validateDuration(minutes int) error {
	if minutes < domain.MinDurationMinutes || minutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: procedure duration %d is out of range [%d, %d]",
			scheduling.ErrValidation, minutes, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}
	return nil
}

// validateStart проверяет время начала относительно now, minAdvance и горизонта записи
func validateStart(start, now time.Time, config *domain.SchedulingConfig, loc *time.Location) error {
	if start.Before(now) {
		return ErrInvalidDate
	}

	earliest := now.Add(time.Duration(config.MinAdvanceMinutes) * time.Minute)
	if start.Before(earliest) {
		return fmt.Errorf("%w: booking requires %d minutes notice", ErrTooSoon, config.MinAdvanceMinutes)
	}

	if !config.HasBookingHorizon() {
		return nil
	}

	maxDate := scheduling.LocalDate(now, loc).AddDays(config.MaxBookingDays)
	if scheduling.LocalDate(start, loc).After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, config.MaxBookingDays)
	}

	return nil
}

// validateRoom проверяет номер кабинета по размеру пула
func validateRoom(roomID *int, roomCount int) error {
	if roomID != nil && *roomID > roomCount {
		return fmt.Errorf("%w: roomID must be between 1 and %d", ErrInvalidInput, roomCount)
	}
	return nil
}

// rejectionReason метка отказа для метрик
func rejectionReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, scheduling.ErrScheduleConflict):
		return "schedule_conflict"
	case errors.Is(err, scheduling.ErrRoomCapacity):
		return "room_capacity"
	case errors.Is(err, scheduling.ErrOutOfHours):
		return "out_of_hours"
	case errors.Is(err, scheduling.ErrUnavailabilityBlocked):
		return "unavailability_rule"
	case errors.Is(err, ErrTooSoon):
		return "too_soon"
	case errors.Is(err, ErrInvalidDate):
		return "past"
	case errors.Is(err, ErrDateTooFarInFuture):
		return "horizon"
	}
	return ""
}
