package config

import (
	"context"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

// ConfigRepository интерфейс репозитория настроек расписания
type ConfigRepository interface {
	GetByCompany(ctx context.Context, companyID int64) (*domain.SchedulingConfig, error)
	Upsert(ctx context.Context, cfg *domain.SchedulingConfig) (*domain.SchedulingConfig, error)
}

// SlotCache сброс кэша слотов после изменения настроек
type SlotCache interface {
	InvalidateCompany(ctx context.Context, companyID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
