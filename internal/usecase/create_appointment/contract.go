package create_appointment

import (
	"context"
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/integrations/clinicservice"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// ConfigProvider возвращает действующую конфигурацию компании (с дефолтами)
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

// ConflictDetector проверки пересечений по специалисту и кабинетам
type ConflictDetector interface {
	CheckConflict(ctx context.Context, companyID, professionalID int64, start time.Time, durationMinutes int, excludeID *int64) (*domain.Appointment, error)
	IsRoomCapacityExceeded(ctx context.Context, companyID int64, start, end time.Time, roomID *int, roomCount int, excludeID *int64) (bool, error)
}

// ClinicServiceClient интерфейс клиента сервиса клиники
type ClinicServiceClient interface {
	GetProcedure(ctx context.Context, companyID, procedureID int64) (*clinicservice.Procedure, error)
	GetProfessional(ctx context.Context, companyID, professionalID int64) (*clinicservice.Professional, error)
}

// SlotCache инвалидация кэша слотов
type SlotCache interface {
	Invalidate(ctx context.Context, companyID int64, dates ...types.Date) error
}

// Notifier уведомления о записях
type Notifier interface {
	AppointmentRequested(ctx context.Context, appt *domain.Appointment)
}

// MetricsCollector доменные счетчики
type MetricsCollector interface {
	IncAppointmentCreated(source string)
	IncBookingRejection(reason string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
