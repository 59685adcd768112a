package appointment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/dbmetrics"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/psqlbuilder"
)

const table = "appointments"

var columns = []string{
	"id",
	"company_id",
	"patient_id",
	"professional_id",
	"procedure_id",
	"start_at",
	"duration_minutes",
	"status",
	"room_id",
	"source",
	"inventory_deducted",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"completed_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий записей на прием
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись. end_at хранится явно, по нему работают exclusion constraints.
// Если пересечение обнаружила БД, возвращается ErrProfessionalOverlap или ErrRoomOverlap.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"company_id",
			"patient_id",
			"professional_id",
			"procedure_id",
			"start_at",
			"end_at",
			"duration_minutes",
			"status",
			"room_id",
			"source",
			"notes",
		).
		Values(
			appt.CompanyID,
			appt.PatientID,
			appt.ProfessionalID,
			appt.ProcedureID,
			appt.StartAt,
			appt.EndAt(),
			appt.DurationMinutes,
			appt.Status,
			appt.RoomID,
			appt.Source,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &appt.CreatedAt, &appt.UpdatedAt)
	if err != nil {
		if overlap := overlapError(err); overlap != nil {
			return nil, overlap
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return appt, nil
}

// GetByID получает запись по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %w", ErrScanRow, err)
	}
	return appt, nil
}

// List получает записи компании с фильтрацией
//
// Примеры:
//
//  1. Занятость специалиста на день (для проверки конфликтов):
//     filter := domain.AppointmentsFilter{CompanyID: 1, ProfessionalID: &p, From: &dayStart, To: &dayEnd,
//     Statuses: domain.BlockingStatuses}
//
//  2. Все записи компании за период, включая отмененные:
//     filter := domain.AppointmentsFilter{CompanyID: 1, From: &from, To: &to, IncludeCanceled: true}
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"company_id": filter.CompanyID})

	if filter.ProfessionalID != nil {
		builder = builder.Where(squirrel.Eq{"professional_id": *filter.ProfessionalID})
	}
	if filter.PatientID != nil {
		builder = builder.Where(squirrel.Eq{"patient_id": *filter.PatientID})
	}
	// Пересечение с [From, To): записи, начавшиеся до From, но еще идущие, тоже попадают
	if filter.From != nil {
		builder = builder.Where(squirrel.Gt{"end_at": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{"start_at": *filter.To})
	}

	switch {
	case len(filter.Statuses) > 0:
		builder = builder.Where(squirrel.Eq{"status": statusStrings(filter.Statuses)})
	case !filter.IncludeCanceled:
		builder = builder.Where(squirrel.NotEq{"status": string(domain.StatusCanceled)})
	}

	builder = builder.OrderBy("start_at ASC", "id ASC")

	if filter.ForUpdate && dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// UpdateStatus сохраняет статус и связанные с ним поля (причина и время отмены, время завершения)
// Перевод в блокирующий статус может нарушить exclusion constraint
func (r *Repository) UpdateStatus(ctx context.Context, appt *domain.Appointment) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("status", appt.Status).
		Set("cancellation_reason", appt.CancellationReason).
		Set("cancelled_at", appt.CancelledAt).
		Set("completed_at", appt.CompletedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": appt.ID, "company_id": appt.CompanyID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.UpdatedAt)
	if err == sql.ErrNoRows {
		return ErrAppointmentNotFound
	}
	if err != nil {
		if overlap := overlapError(err); overlap != nil {
			return overlap
		}
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}
	return nil
}

// MarkInventoryDeducted атомарно выставляет флаг списания
// Возвращает false, если флаг уже был выставлен
func (r *Repository) MarkInventoryDeducted(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("inventory_deducted", true).
		Where(squirrel.Eq{"id": id, "inventory_deducted": false}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: MarkInventoryDeducted - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: MarkInventoryDeducted - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: MarkInventoryDeducted - get rows affected: %w", ErrExecQuery, err)
	}
	return rowsAffected == 1, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		appt   domain.Appointment
		roomID sql.NullInt32
	)

	err := row.Scan(
		&appt.ID,
		&appt.CompanyID,
		&appt.PatientID,
		&appt.ProfessionalID,
		&appt.ProcedureID,
		&appt.StartAt,
		&appt.DurationMinutes,
		&appt.Status,
		&roomID,
		&appt.Source,
		&appt.InventoryDeducted,
		&appt.Notes,
		&appt.CancellationReason,
		&appt.CancelledAt,
		&appt.CompletedAt,
		&appt.CreatedAt,
		&appt.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if roomID.Valid {
		room := int(roomID.Int32)
		appt.RoomID = &room
	}
	return &appt, nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %w", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %w", ErrScanRow, err)
	}

	return appointments, nil
}

func statusStrings(statuses []domain.AppointmentStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
