package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	slotcache "github.com/LeandroKolesny/Aura-System-sub000/internal/infra/cache/slots"
	clinicClient "github.com/LeandroKolesny/Aura-System-sub000/internal/integrations/clinicservice"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
)

// UseCase use case для получения слотов на дату
type UseCase struct {
	appointmentRepo AppointmentRepository
	configs         ConfigProvider
	hours           HoursProvider
	rules           RulesProvider
	clinicClient    ClinicServiceClient
	slotCache       SlotCache
	metrics         MetricsCollector
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
	clinicClient ClinicServiceClient,
	slotCache SlotCache,
	metrics MetricsCollector,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		configs:         configs,
		hours:           hours,
		rules:           rules,
		clinicClient:    clinicClient,
		slotCache:       slotCache,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		location:        location,
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
// Ошибки кэша не прерывают запрос, слоты считаются заново
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: company=%d, procedure=%d, professional=%v, date=%s",
		req.CompanyID, req.ProcedureID, professionalLabel(req.ProfessionalID), req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем процедуру (длительность)
	procedure, err := uc.clinicClient.GetProcedure(ctx, req.CompanyID, req.ProcedureID)
	if err != nil {
		if errors.Is(err, clinicClient.ErrProcedureNotFound) {
			uc.logger.Warn("GetAvailableSlots: procedure id=%d not found", req.ProcedureID)
			return nil, ErrProcedureNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get procedure id=%d: %v", req.ProcedureID, err)
		return nil, fmt.Errorf("%w: failed to get procedure: %v", ErrInternal, err)
	}
	if !procedure.Active || procedure.DurationMinutes <= 0 {
		uc.logger.Warn("GetAvailableSlots: procedure id=%d is not bookable", req.ProcedureID)
		return nil, ErrProcedureNotFound
	}

	// 4. Проверяем специалиста, если он указан
	if req.ProfessionalID != nil {
		professional, err := uc.clinicClient.GetProfessional(ctx, req.CompanyID, *req.ProfessionalID)
		if err != nil {
			if errors.Is(err, clinicClient.ErrProfessionalNotFound) {
				uc.logger.Warn("GetAvailableSlots: professional id=%d not found", *req.ProfessionalID)
				return nil, ErrProfessionalNotFound
			}
			uc.logger.Error("GetAvailableSlots: failed to get professional id=%d: %v", *req.ProfessionalID, err)
			return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
		}
		if !professional.Active {
			return nil, ErrProfessionalNotFound
		}
	}

	// 5. Конфигурация компании и проверка даты
	config, err := uc.configs.Effective(ctx, req.CompanyID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get config: %v", err)
		return nil, fmt.Errorf("%w: failed to get config: %v", ErrInternal, err)
	}

	if err := validateDate(req, now, config, uc.location); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	response := &Response{
		Date:            req.Date,
		CompanyID:       req.CompanyID,
		ProcedureID:     req.ProcedureID,
		ProfessionalID:  req.ProfessionalID,
		DurationMinutes: procedure.DurationMinutes,
	}

	// 6. Кэш
	key := slotcache.Key{
		CompanyID:       req.CompanyID,
		Date:            req.Date,
		ProfessionalID:  req.ProfessionalID,
		DurationMinutes: procedure.DurationMinutes,
	}

	cached, ok, err := uc.slotCache.Get(ctx, key)
	switch {
	case err != nil:
		uc.metrics.IncSlotCache("error")
		uc.logger.Warn("GetAvailableSlots: slot cache read failed: %v", err)
	case ok:
		uc.metrics.IncSlotCache("hit")
		response.Slots = uc.filter(req, cached)
		return response, nil
	default:
		uc.metrics.IncSlotCache("miss")
	}

	// 7. Загружаем данные дня
	state, err := uc.loadDay(ctx, req)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load day state: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 8. Генерируем слоты
	slots := scheduling.GenerateSlots(scheduling.SlotParams{
		Date:            req.Date,
		ProfessionalID:  req.ProfessionalID,
		DurationMinutes: procedure.DurationMinutes,
		Hours:           state.hours,
		Rules:           state.rules,
		Appointments:    state.appointments,
		Config:          *config,
		Now:             now,
		Location:        uc.location,
	})

	if err := uc.slotCache.Set(ctx, key, slots); err != nil {
		uc.logger.Warn("GetAvailableSlots: slot cache write failed: %v", err)
	}

	response.Slots = uc.filter(req, slots)

	uc.logger.Info("GetAvailableSlots: generated %d slots for company=%d, date=%s",
		len(slots), req.CompanyID, req.Date)

	return response, nil
}

func (uc *UseCase) filter(req *Request, slots []domain.Slot) []domain.Slot {
	if req.AvailableOnly {
		return scheduling.AvailableOnly(slots)
	}
	return slots
}

func professionalLabel(id *int64) string {
	if id == nil {
		return "any"
	}
	return fmt.Sprint(*id)
}
