package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/dbmetrics"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/psqlbuilder"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

const table = "weekly_schedules"

// Repository репозиторий рабочих часов (компании и специалистов)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get получает недельное расписание владельца
// Возвращает nil, если расписание не настроено
func (r *Repository) Get(ctx context.Context, owner domain.ScheduleOwner) (domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "is_open", "start_time", "end_time").
		From(table).
		Where(ownerCondition(owner)).
		OrderBy("weekday ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	var week domain.WeeklySchedule
	for rows.Next() {
		var (
			weekday int
			day     domain.DaySchedule
		)
		if err := rows.Scan(&weekday, &day.IsOpen, &day.Start, &day.End); err != nil {
			return nil, fmt.Errorf("%w: Get - scan row: %w", ErrScanRow, err)
		}
		if week == nil {
			week = make(domain.WeeklySchedule, 7)
		}
		week[time.Weekday(weekday)] = day
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Get - rows error: %w", ErrScanRow, err)
	}

	return week, nil
}

// Replace заменяет недельное расписание владельца целиком
// Вызывается внутри транзакции: удаление и вставка должны быть атомарны
func (r *Repository) Replace(ctx context.Context, owner domain.ScheduleOwner, week domain.WeeklySchedule) error {
	if err := r.Delete(ctx, owner); err != nil {
		return err
	}
	if len(week) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert(table).
		Columns("company_id", "professional_id", "weekday", "is_open", "start_time", "end_time")
	for weekday := time.Sunday; weekday <= time.Saturday; weekday++ {
		day, ok := week[weekday]
		if !ok {
			continue
		}
		start, end := day.Start, day.End
		if start.IsZero() {
			start = types.TimeString("00:00")
		}
		if end.IsZero() {
			end = types.TimeString("00:00")
		}
		builder = builder.Values(owner.CompanyID, owner.ProfessionalID, int(weekday), day.IsOpen, start, end)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Replace - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Replace - execute insert: %w", ErrExecQuery, err)
	}
	return nil
}

// Delete удаляет расписание владельца
// Для специалиста это означает возврат к расписанию компании
func (r *Repository) Delete(ctx context.Context, owner domain.ScheduleOwner) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(ownerCondition(owner)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}
	return nil
}

// ownerCondition professional_id IS NULL для расписания компании
func ownerCondition(owner domain.ScheduleOwner) squirrel.Eq {
	if owner.ProfessionalID == nil {
		return squirrel.Eq{"company_id": owner.CompanyID, "professional_id": nil}
	}
	return squirrel.Eq{"company_id": owner.CompanyID, "professional_id": *owner.ProfessionalID}
}
