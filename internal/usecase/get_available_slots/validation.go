package get_available_slots

import (
	"fmt"
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CompanyID <= 0 {
		return fmt.Errorf("%w: companyID must be positive", ErrInvalidInput)
	}

	if req.ProcedureID <= 0 {
		return fmt.Errorf("%w: procedureID must be positive", ErrInvalidInput)
	}

	if req.ProfessionalID != nil && *req.ProfessionalID <= 0 {
		return fmt.Errorf("%w: professionalID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата не в прошлом и не дальше горизонта записи
// Сравнение идет по локальной дате клиники
func validateDate(req *Request, now time.Time, config *domain.SchedulingConfig, loc *time.Location) error {
	today := scheduling.LocalDate(now, loc)

	if req.Date.Before(today) {
		return ErrInvalidDate
	}

	if !config.HasBookingHorizon() {
		return nil
	}

	if req.Date.After(today.AddDays(config.MaxBookingDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, config.MaxBookingDays)
	}

	return nil
}
