package unavailability

import (
	"context"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// RuleRepository интерфейс репозитория правил недоступности
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.UnavailabilityRule) (*domain.UnavailabilityRule, error)
	ListByCompany(ctx context.Context, companyID int64) ([]*domain.UnavailabilityRule, error)
	ListForDates(ctx context.Context, companyID int64, dates ...types.Date) ([]*domain.UnavailabilityRule, error)
	Delete(ctx context.Context, companyID, id int64) error
}

// SlotCache сброс кэша слотов после изменения правил
type SlotCache interface {
	Invalidate(ctx context.Context, companyID int64, dates ...types.Date) error
	InvalidateCompany(ctx context.Context, companyID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
