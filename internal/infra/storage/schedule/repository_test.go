package schedule

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/ptr"
)

func TestRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM weekly_schedules WHERE company_id = $1 AND professional_id IS NULL")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"weekday", "is_open", "start_time", "end_time"}).
			AddRow(1, true, "09:00:00", "18:00:00").
			AddRow(6, false, "00:00:00", "00:00:00"))

	week, err := repo.Get(context.Background(), domain.ScheduleOwner{CompanyID: 1})

	require.NoError(t, err)
	require.Len(t, week, 2)
	assert.Equal(t, domain.DaySchedule{IsOpen: true, Start: "09:00", End: "18:00"}, week[time.Monday])
	assert.False(t, week[time.Saturday].IsOpen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Get_NotConfigured(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("professional_id = $2")).
		WithArgs(int64(1), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"weekday", "is_open", "start_time", "end_time"}))

	week, err := repo.Get(context.Background(), domain.ScheduleOwner{CompanyID: 1, ProfessionalID: ptr.Ptr(int64(7))})

	require.NoError(t, err)
	assert.Nil(t, week)
}

func TestRepository_Replace(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewRepository(db)
	owner := domain.ScheduleOwner{CompanyID: 1, ProfessionalID: ptr.Ptr(int64(7))}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM weekly_schedules")).
		WithArgs(int64(1), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO weekly_schedules")).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err = repo.Replace(context.Background(), owner, domain.WeeklySchedule{
		time.Monday:  {IsOpen: true, Start: "08:00", End: "12:00"},
		time.Tuesday: {IsOpen: false},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
