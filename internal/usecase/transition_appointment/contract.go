package transition_appointment

import (
	"context"
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, appt *domain.Appointment) error
	MarkInventoryDeducted(ctx context.Context, id int64) (bool, error)
}

// ConfigProvider возвращает действующую конфигурацию компании
type ConfigProvider interface {
	Effective(ctx context.Context, companyID int64) (*domain.SchedulingConfig, error)
}

// ConflictDetector проверки пересечений по специалисту и кабинетам
type ConflictDetector interface {
	CheckConflict(ctx context.Context, companyID, professionalID int64, start time.Time, durationMinutes int, excludeID *int64) (*domain.Appointment, error)
	IsRoomCapacityExceeded(ctx context.Context, companyID int64, start, end time.Time, roomID *int, roomCount int, excludeID *int64) (bool, error)
}

// ClinicServiceClient списание материалов и отметка визита
type ClinicServiceClient interface {
	DeductInventory(ctx context.Context, companyID, appointmentID, procedureID int64) error
	UpdatePatientLastVisit(ctx context.Context, companyID, patientID int64, visitedAt time.Time) error
}

// SlotCache инвалидация кэша слотов
type SlotCache interface {
	Invalidate(ctx context.Context, companyID int64, dates ...types.Date) error
}

// Notifier уведомления пациенту
type Notifier interface {
	AppointmentConfirmed(ctx context.Context, appt *domain.Appointment)
	AppointmentCanceled(ctx context.Context, appt *domain.Appointment)
}

// MetricsCollector счетчик переходов статусов
type MetricsCollector interface {
	IncTransition(from, to string)
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
