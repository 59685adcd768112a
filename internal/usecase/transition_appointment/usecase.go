package transition_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	appointmentRepo "github.com/LeandroKolesny/Aura-System-sub000/internal/infra/storage/appointment"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
)

// UseCase use case для смены статуса записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	configs         ConfigProvider
	detector        ConflictDetector
	clinicClient    ClinicServiceClient
	slotCache       SlotCache
	notifier        Notifier
	metrics         MetricsCollector
	txManager       TransactionManager
	timeProvider    TimeProvider
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	configs ConfigProvider,
	detector ConflictDetector,
	clinicClient ClinicServiceClient,
	slotCache SlotCache,
	notifier Notifier,
	metrics MetricsCollector,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		configs:         configs,
		detector:        detector,
		clinicClient:    clinicClient,
		slotCache:       slotCache,
		notifier:        notifier,
		metrics:         metrics,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		location:        location,
		logger:          logger,
	}
}

// Execute выполняет переход статуса
// Запись блокируется (FOR UPDATE) до конца транзакции; списание материалов выполняется не более одного раза
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionAppointment: appointment=%d, status=%s, user=%d, role=%s",
		req.AppointmentID, req.Status, req.Actor.UserID, req.Actor.Role)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("TransitionAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var (
		result  *domain.Appointment
		from    domain.AppointmentStatus
		effects scheduling.Effects
	)

	// 3. Переход в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем запись с блокировкой
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
		}

		// 3.2. Проверка доступа
		if err := checkAccess(req.Actor, appt, req.Status); err != nil {
			return err
		}

		// 3.3. Проверка перехода
		from = appt.Status
		if err := scheduling.Transition(from, req.Status); err != nil {
			return err
		}
		effects = scheduling.EffectsOf(from, req.Status)

		// 3.4. Запись начинает занимать время: повторяем проверки пересечений
		if effects.RecheckAvailability {
			if err := uc.recheck(txCtx, appt); err != nil {
				return err
			}
		}

		// 3.5. Обновляем статус и связанные поля
		appt.Status = req.Status
		if effects.MarkCanceled {
			appt.CancelledAt = &now
			appt.CancellationReason = req.CancellationReason
		}
		if effects.MarkCompleted {
			appt.CompletedAt = &now
		}

		if err := uc.appointmentRepo.UpdateStatus(txCtx, appt); err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrProfessionalOverlap):
				return &scheduling.ConflictError{}
			case errors.Is(err, appointmentRepo.ErrRoomOverlap):
				return scheduling.ErrRoomCapacity
			case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
				return ErrAppointmentNotFound
			}
			return fmt.Errorf("%w: failed to update status: %w", ErrInternal, err)
		}

		// 3.6. Списание материалов: флаг выставляется атомарно, повторное списание невозможно
		if effects.DeductInventory {
			marked, err := uc.appointmentRepo.MarkInventoryDeducted(txCtx, appt.ID)
			if err != nil {
				return fmt.Errorf("%w: failed to mark inventory: %w", ErrInternal, err)
			}
			if marked {
				if err := uc.clinicClient.DeductInventory(txCtx, appt.CompanyID, appt.ID, appt.ProcedureID); err != nil {
					return fmt.Errorf("%w: %v", ErrInventoryDeduction, err)
				}
				appt.InventoryDeducted = true
			} else {
				uc.logger.Warn("TransitionAppointment: inventory for appointment id=%d already deducted", appt.ID)
			}
		}

		result = appt
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) || errors.Is(err, ErrInventoryDeduction) {
			uc.logger.Error("TransitionAppointment: appointment id=%d: %v", req.AppointmentID, err)
		} else {
			uc.logger.Warn("TransitionAppointment: appointment id=%d rejected: %v", req.AppointmentID, err)
		}
		return nil, err
	}

	uc.logger.Info("TransitionAppointment: appointment id=%d %s -> %s", result.ID, from, result.Status)

	// 4. Побочные эффекты после фиксации транзакции
	uc.metrics.IncTransition(string(from), string(result.Status))

	if effects.UpdateLastVisit {
		if err := uc.clinicClient.UpdatePatientLastVisit(ctx, result.CompanyID, result.PatientID, now); err != nil {
			uc.logger.Warn("TransitionAppointment: failed to update last visit of patient id=%d: %v", result.PatientID, err)
		}
	}

	if effects.ReleasesSlot || effects.RecheckAvailability {
		date := scheduling.LocalDate(result.StartAt, uc.location)
		if err := uc.slotCache.Invalidate(ctx, result.CompanyID, date); err != nil {
			uc.logger.Warn("TransitionAppointment: failed to invalidate slot cache: %v", err)
		}
	}

	if effects.NotifyPatient {
		switch result.Status {
		case domain.StatusConfirmed:
			uc.notifier.AppointmentConfirmed(ctx, result)
		case domain.StatusCanceled:
			uc.notifier.AppointmentCanceled(ctx, result)
		}
	}

	return &Response{Appointment: result, Previous: from}, nil
}

// recheck проверяет специалиста и кабинеты без учета самой записи
func (uc *UseCase) recheck(ctx context.Context, appt *domain.Appointment) error {
	config, err := uc.configs.Effective(ctx, appt.CompanyID)
	if err != nil {
		return fmt.Errorf("%w: failed to get config: %w", ErrInternal, err)
	}

	conflict, err := uc.detector.CheckConflict(ctx, appt.CompanyID, appt.ProfessionalID, appt.StartAt, appt.DurationMinutes, &appt.ID)
	if err != nil {
		return fmt.Errorf("%w: failed to check conflicts: %w", ErrInternal, err)
	}
	if conflict != nil {
		return &scheduling.ConflictError{Appointment: conflict}
	}

	exceeded, err := uc.detector.IsRoomCapacityExceeded(ctx, appt.CompanyID, appt.StartAt, appt.EndAt(), appt.RoomID, config.RoomCount, &appt.ID)
	if err != nil {
		return fmt.Errorf("%w: failed to check room capacity: %w", ErrInternal, err)
	}
	if exceeded {
		return scheduling.ErrRoomCapacity
	}
	return nil
}
