package schedules

import (
	"context"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

// ScheduleRepository интерфейс репозитория рабочих часов
type ScheduleRepository interface {
	Get(ctx context.Context, owner domain.ScheduleOwner) (domain.WeeklySchedule, error)
	Replace(ctx context.Context, owner domain.ScheduleOwner, week domain.WeeklySchedule) error
	Delete(ctx context.Context, owner domain.ScheduleOwner) error
}

// SlotCache сброс кэша слотов после изменения рабочих часов
type SlotCache interface {
	InvalidateCompany(ctx context.Context, companyID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
