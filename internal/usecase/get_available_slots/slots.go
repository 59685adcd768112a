package get_available_slots

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
)

// dayState данные, от которых зависят слоты дня
type dayState struct {
	hours        scheduling.BusinessHours
	rules        []*domain.UnavailabilityRule
	appointments []*domain.Appointment
}

// loadDay параллельно загружает рабочие часы, правила и блокирующие записи на дату
func (uc *UseCase) loadDay(ctx context.Context, req *Request) (*dayState, error) {
	state := &dayState{}
	dayStart, dayEnd := scheduling.DayBounds(req.Date, uc.location)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		hours, err := uc.hours.BusinessHours(gctx, req.CompanyID, req.ProfessionalID)
		if err != nil {
			return fmt.Errorf("business hours: %w", err)
		}
		state.hours = hours
		return nil
	})

	g.Go(func() error {
		rules, err := uc.rules.ForDates(gctx, req.CompanyID, req.Date)
		if err != nil {
			return fmt.Errorf("unavailability rules: %w", err)
		}
		state.rules = rules
		return nil
	})

	// записи всех специалистов нужны для проверки кабинетов
	g.Go(func() error {
		appointments, err := uc.appointmentRepo.List(gctx, domain.AppointmentsFilter{
			CompanyID: req.CompanyID,
			From:      &dayStart,
			To:        &dayEnd,
			Statuses:  domain.BlockingStatuses,
		})
		if err != nil {
			return fmt.Errorf("appointments: %w", err)
		}
		state.appointments = appointments
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return state, nil
}
