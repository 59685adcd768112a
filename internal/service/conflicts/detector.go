// Package conflicts проверяет кандидата на запись против сохраненной занятости.
//
// Проверки выполняются над блокирующими записями (scheduled, confirmed), загруженными
// на локальные сутки клиники, в которые попадает интервал. Внутри транзакции строки
// блокируются FOR UPDATE. Любая ошибка загрузки возвращается вызывающему коду.
package conflicts

import (
	"context"
	"fmt"
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
)

// Detector проверка конфликтов специалиста и вместимости кабинетов
type Detector struct {
	appointmentRepo AppointmentRepository
	location        *time.Location
}

// NewDetector создает детектор конфликтов для часового пояса клиники
func NewDetector(appointmentRepo AppointmentRepository, location *time.Location) *Detector {
	return &Detector{
		appointmentRepo: appointmentRepo,
		location:        location,
	}
}

// CheckConflict возвращает запись специалиста, пересекающуюся с [start, start+duration), или nil
func (d *Detector) CheckConflict(
	ctx context.Context,
	companyID, professionalID int64,
	start time.Time,
	durationMinutes int,
	excludeID *int64,
) (*domain.Appointment, error) {
	end := start.Add(time.Duration(durationMinutes) * time.Minute)

	existing, err := d.load(ctx, companyID, &professionalID, start, end)
	if err != nil {
		return nil, err
	}
	return scheduling.FindConflict(professionalID, start, durationMinutes, existing, excludeID), nil
}

// IsRoomCapacityExceeded проверяет, найдется ли кабинет для [start, end)
func (d *Detector) IsRoomCapacityExceeded(
	ctx context.Context,
	companyID int64,
	start, end time.Time,
	roomID *int,
	roomCount int,
	excludeID *int64,
) (bool, error) {
	existing, err := d.load(ctx, companyID, nil, start, end)
	if err != nil {
		return false, err
	}
	return scheduling.RoomCapacityExceeded(start, end, roomID, roomCount, existing, excludeID), nil
}

// load загружает блокирующие записи на локальные сутки интервала
// Интервал, переходящий через полночь, расширяет окно
func (d *Detector) load(ctx context.Context, companyID int64, professionalID *int64, start, end time.Time) ([]*domain.Appointment, error) {
	dayStart, dayEnd := scheduling.DayBounds(scheduling.LocalDate(start, d.location), d.location)
	if end.After(dayEnd) {
		dayEnd = end
	}

	appointments, err := d.appointmentRepo.List(ctx, domain.AppointmentsFilter{
		CompanyID:      companyID,
		ProfessionalID: professionalID,
		From:           &dayStart,
		To:             &dayEnd,
		Statuses:       domain.BlockingStatuses,
		ForUpdate:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadAppointments, err)
	}
	return appointments, nil
}
