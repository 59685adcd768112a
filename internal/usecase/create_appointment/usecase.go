package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	appointmentRepo "github.com/LeandroKolesny/Aura-System-sub000/internal/infra/storage/appointment"
	clinicClient "github.com/LeandroKolesny/Aura-System-sub000/internal/integrations/clinicservice"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// UseCase use case для создания записи на прием
type UseCase struct {
	appointmentRepo AppointmentRepository
	configs         ConfigProvider
	hours           HoursProvider
	rules           RulesProvider
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
	hours HoursProvider,
	rules RulesProvider,
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
		hours:           hours,
		rules:           rules,
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

// Execute выполняет use case создания записи
// Проверки доступности повторяются в сериализуемой транзакции, перед вставкой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: company=%d, professional=%d, procedure=%d, date=%s, time=%s, role=%s",
		req.CompanyID, req.ProfessionalID, req.ProcedureID, req.Date, req.StartTime, req.Actor.Role)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Источник записи и пациент
	source, patientID, err := resolveActor(req)
	if err != nil {
		uc.logger.Warn("CreateAppointment: actor user=%d role=%s rejected: %v", req.Actor.UserID, req.Actor.Role, err)
		return nil, err
	}

	initialStatus, err := scheduling.InitialStatus(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Получаем процедуру (длительность)
	procedure, err := uc.clinicClient.GetProcedure(ctx, req.CompanyID, req.ProcedureID)
	if err != nil {
		if errors.Is(err, clinicClient.ErrProcedureNotFound) {
			uc.logger.Warn("CreateAppointment: procedure id=%d not found", req.ProcedureID)
			return nil, ErrProcedureNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get procedure id=%d: %v", req.ProcedureID, err)
		return nil, fmt.Errorf("%w: failed to get procedure: %v", ErrInternal, err)
	}
	if !procedure.Active {
		uc.logger.Warn("CreateAppointment: procedure id=%d is inactive", req.ProcedureID)
		return nil, ErrProcedureNotFound
	}
	if err := validateDuration(procedure.DurationMinutes); err != nil {
		uc.logger.Warn("CreateAppointment: %v", err)
		return nil, err
	}

	// 5. Проверяем специалиста
	professional, err := uc.clinicClient.GetProfessional(ctx, req.CompanyID, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, clinicClient.ErrProfessionalNotFound) {
			uc.logger.Warn("CreateAppointment: professional id=%d not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get professional id=%d: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}
	if !professional.Active {
		uc.logger.Warn("CreateAppointment: professional id=%d is inactive", req.ProfessionalID)
		return nil, ErrProfessionalNotFound
	}

	start := req.Date.At(req.StartTime.Minutes(), uc.location)
	end := start.Add(time.Duration(procedure.DurationMinutes) * time.Minute)

	var result *domain.Appointment

	// 6. Проверки и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Конфигурация компании
		config, err := uc.configs.Effective(txCtx, req.CompanyID)
		if err != nil {
			return fmt.Errorf("%w: failed to get config: %w", ErrInternal, err)
		}

		// 6.2. Время начала, minAdvance и горизонт записи
		if err := validateStart(start, now, config, uc.location); err != nil {
			return err
		}
		if err := validateRoom(req.RoomID, config.RoomCount); err != nil {
			return err
		}

		// 6.3. Рабочие часы
		hours, err := uc.hours.BusinessHours(txCtx, req.CompanyID, &req.ProfessionalID)
		if err != nil {
			return fmt.Errorf("%w: failed to get business hours: %w", ErrInternal, err)
		}
		if !scheduling.WithinHours(hours, start, end, uc.location) {
			return fmt.Errorf("%w: %s %s (%d min)", scheduling.ErrOutOfHours, req.Date, req.StartTime, procedure.DurationMinutes)
		}

		// 6.4. Правила недоступности
		rules, err := uc.rules.ForDates(txCtx, req.CompanyID, coveredDates(start, end, uc.location)...)
		if err != nil {
			return fmt.Errorf("%w: failed to get unavailability rules: %w", ErrInternal, err)
		}
		if rule := scheduling.BlockingRule(start, end, rules, &req.ProfessionalID, uc.location); rule != nil {
			return fmt.Errorf("%w: rule id=%d", scheduling.ErrUnavailabilityBlocked, rule.ID)
		}

		// 6.5. Пересечение с записями специалиста
		conflict, err := uc.detector.CheckConflict(txCtx, req.CompanyID, req.ProfessionalID, start, procedure.DurationMinutes, nil)
		if err != nil {
			return fmt.Errorf("%w: failed to check conflicts: %w", ErrInternal, err)
		}
		if conflict != nil {
			return &scheduling.ConflictError{Appointment: conflict}
		}

		// 6.6. Свободный кабинет
		exceeded, err := uc.detector.IsRoomCapacityExceeded(txCtx, req.CompanyID, start, end, req.RoomID, config.RoomCount, nil)
		if err != nil {
			return fmt.Errorf("%w: failed to check room capacity: %w", ErrInternal, err)
		}
		if exceeded {
			return scheduling.ErrRoomCapacity
		}

		// 6.7. Создаем запись
		appt := &domain.Appointment{
			CompanyID:       req.CompanyID,
			PatientID:       patientID,
			ProfessionalID:  req.ProfessionalID,
			ProcedureID:     req.ProcedureID,
			StartAt:         start,
			DurationMinutes: procedure.DurationMinutes,
			Status:          initialStatus,
			RoomID:          req.RoomID,
			Source:          source,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			switch {
			case errors.Is(err, appointmentRepo.ErrProfessionalOverlap):
				return &scheduling.ConflictError{}
			case errors.Is(err, appointmentRepo.ErrRoomOverlap):
				return scheduling.ErrRoomCapacity
			}
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if reason := rejectionReason(err); reason != "" {
			uc.metrics.IncBookingRejection(reason)
			uc.logger.Warn("CreateAppointment: rejected (%s): %v", reason, err)
		} else if errors.Is(err, ErrInternal) {
			uc.logger.Error("CreateAppointment: transaction failed: %v", err)
		} else {
			uc.logger.Warn("CreateAppointment: %v", err)
		}
		return nil, err
	}

	uc.logger.Info("CreateAppointment: appointment id=%d created, status=%s, source=%s",
		result.ID, result.Status, result.Source)

	// 7. Метрики, кэш и уведомления после фиксации транзакции
	uc.metrics.IncAppointmentCreated(string(source))

	if err := uc.slotCache.Invalidate(ctx, req.CompanyID, coveredDates(start, end, uc.location)...); err != nil {
		uc.logger.Warn("CreateAppointment: failed to invalidate slot cache: %v", err)
	}

	if result.Status == domain.StatusPendingApproval {
		uc.notifier.AppointmentRequested(ctx, result)
	}

	return &Response{Appointment: result}, nil
}

// coveredDates локальные даты клиники, которые затрагивает интервал [start, end)
func coveredDates(start, end time.Time, loc *time.Location) []types.Date {
	first := scheduling.LocalDate(start, loc)
	last := scheduling.LocalDate(end.Add(-time.Nanosecond), loc)

	dates := []types.Date{first}
	for d := first.AddDays(1); !d.After(last); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates
}
