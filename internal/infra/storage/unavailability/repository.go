package unavailability

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/dbmetrics"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/psqlbuilder"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

const table = "unavailability_rules"

var columns = []string{
	"id",
	"company_id",
	"description",
	"start_time",
	"end_time",
	"dates",
	"all_professionals",
	"professional_ids",
	"created_at",
}

// Repository репозиторий правил недоступности
// Правила не редактируются: замена = удаление + создание
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория правил
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает правило
func (r *Repository) Create(ctx context.Context, rule *domain.UnavailabilityRule) (*domain.UnavailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	professionalIDs := rule.ProfessionalIDs
	if professionalIDs == nil {
		professionalIDs = []int64{}
	}

	query, args, err := psqlbuilder.Insert(table).
		Columns("company_id", "description", "start_time", "end_time", "dates", "all_professionals", "professional_ids").
		Values(
			rule.CompanyID,
			rule.Description,
			rule.StartTime,
			rule.EndTime,
			pq.Array(dateStrings(rule.Dates)),
			rule.AllProfessionals,
			pq.Int64Array(professionalIDs),
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rule.ID, &rule.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}
	return rule, nil
}

// ListByCompany получает все правила компании
func (r *Repository) ListByCompany(ctx context.Context, companyID int64) ([]*domain.UnavailabilityRule, error) {
	return r.list(ctx, "ListByCompany", squirrel.Eq{"company_id": companyID})
}

// ListForDates получает правила компании, затрагивающие хотя бы одну из дат
func (r *Repository) ListForDates(ctx context.Context, companyID int64, dates ...types.Date) ([]*domain.UnavailabilityRule, error) {
	return r.list(ctx, "ListForDates", squirrel.And{
		squirrel.Eq{"company_id": companyID},
		squirrel.Expr("dates && ?::date[]", pq.Array(dateStrings(dates))),
	})
}

// Delete удаляет правило компании
func (r *Repository) Delete(ctx context.Context, companyID, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(table).
		Where(squirrel.Eq{"id": id, "company_id": companyID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrRuleNotFound
	}
	return nil
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.UnavailabilityRule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(where).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	rules, err := scanRules(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rules, nil
}

func scanRules(rows *sql.Rows) ([]*domain.UnavailabilityRule, error) {
	rules := make([]*domain.UnavailabilityRule, 0)

	for rows.Next() {
		var (
			rule            domain.UnavailabilityRule
			dates           pq.StringArray
			professionalIDs pq.Int64Array
		)
		err := rows.Scan(
			&rule.ID,
			&rule.CompanyID,
			&rule.Description,
			&rule.StartTime,
			&rule.EndTime,
			&dates,
			&rule.AllProfessionals,
			&professionalIDs,
			&rule.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scan row: %w", ErrScanRow, err)
		}

		rule.Dates = make([]types.Date, 0, len(dates))
		for _, s := range dates {
			date, err := types.ParseDate(s)
			if err != nil {
				return nil, fmt.Errorf("%w: parse rule date: %w", ErrScanRow, err)
			}
			rule.Dates = append(rule.Dates, date)
		}
		rule.ProfessionalIDs = []int64(professionalIDs)

		rules = append(rules, &rule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: rows error: %w", ErrScanRow, err)
	}
	return rules, nil
}

func dateStrings(dates []types.Date) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.String()
	}
	return out
}
