package config

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/dbmetrics"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/psqlbuilder"
)

const table = "scheduling_configs"

// Repository репозиторий настроек расписания компании
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCompany получает настройки компании
// Если строки нет, возвращает ErrConfigNotFound - вызывающий код подставляет значения по умолчанию
func (r *Repository) GetByCompany(ctx context.Context, companyID int64) (*domain.SchedulingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"company_id",
		"slot_interval_minutes",
		"min_advance_minutes",
		"max_booking_days",
		"room_count",
		"created_at",
		"updated_at",
	).
		From(table).
		Where(squirrel.Eq{"company_id": companyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompany - build select query: %v", ErrBuildQuery, err)
	}

	var cfg domain.SchedulingConfig
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cfg.CompanyID,
		&cfg.SlotIntervalMinutes,
		&cfg.MinAdvanceMinutes,
		&cfg.MaxBookingDays,
		&cfg.RoomCount,
		&cfg.CreatedAt,
		&cfg.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCompany - scan config: %w", ErrScanRow, err)
	}
	return &cfg, nil
}

// Upsert создает или полностью заменяет настройки компании
func (r *Repository) Upsert(ctx context.Context, cfg *domain.SchedulingConfig) (*domain.SchedulingConfig, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"company_id",
			"slot_interval_minutes",
			"min_advance_minutes",
			"max_booking_days",
			"room_count",
		).
		Values(
			cfg.CompanyID,
			cfg.SlotIntervalMinutes,
			cfg.MinAdvanceMinutes,
			cfg.MaxBookingDays,
			cfg.RoomCount,
		).
		Suffix(`ON CONFLICT (company_id) DO UPDATE SET
			slot_interval_minutes = EXCLUDED.slot_interval_minutes,
			min_advance_minutes = EXCLUDED.min_advance_minutes,
			max_booking_days = EXCLUDED.max_booking_days,
			room_count = EXCLUDED.room_count,
			updated_at = NOW()
		RETURNING created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&cfg.CreatedAt, &cfg.UpdatedAt); err != nil {
		if rangeErr := checkError(err); rangeErr != nil {
			return nil, rangeErr
		}
		return nil, fmt.Errorf("%w: Upsert - execute insert: %w", ErrExecQuery, err)
	}
	return cfg, nil
}
