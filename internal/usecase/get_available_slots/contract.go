package get_available_slots

import (
	"context"
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	slotcache "github.com/LeandroKolesny/Aura-System-sub000/internal/infra/cache/slots"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/integrations/clinicservice"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ConfigProvider возвращает действующую конфигурацию компании
type ConfigProvider interface {
	Effective(ctx context.Context, companyID int64) (*domain.SchedulingConfig, error)
}

// HoursProvider возвращает рабочие часы компании и специалиста
type HoursProvider interface {
	BusinessHours(ctx context.Context, companyID int64, professionalID *int64) (scheduling.BusinessHours, error)
}

// RulesProvider возвращает правила недоступности на даты
type RulesProvider interface {
	ForDates(ctx context.Context, companyID int64, dates ...types.Date) ([]*domain.UnavailabilityRule, error)
}

// ClinicServiceClient интерфейс клиента сервиса клиники
type ClinicServiceClient interface {
	GetProcedure(ctx context.Context, companyID, procedureID int64) (*clinicservice.Procedure, error)
	GetProfessional(ctx context.Context, companyID, professionalID int64) (*clinicservice.Professional, error)
}

// SlotCache кэш рассчитанных слотов
type SlotCache interface {
	Get(ctx context.Context, key slotcache.Key) ([]domain.Slot, bool, error)
	Set(ctx context.Context, key slotcache.Key, slots []domain.Slot) error
}

// MetricsCollector счетчики обращений к кэшу
type MetricsCollector interface {
	IncSlotCache(result string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
