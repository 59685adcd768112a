package conflicts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/ptr"
)

type fakeRepo struct {
	appointments []*domain.Appointment
	err          error
	filters      []domain.AppointmentsFilter
}

func (f *fakeRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Appointment, 0)
	for _, a := range f.appointments {
		if filter.ProfessionalID != nil && a.ProfessionalID != *filter.ProfessionalID {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func clinic(t *testing.T) *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func TestDetector_CheckConflict(t *testing.T) {
	loc := clinic(t)
	existing := &domain.Appointment{
		ID: 1, CompanyID: 1, ProfessionalID: 7,
		StartAt: time.Date(2024, 6, 10, 10, 0, 0, 0, loc), DurationMinutes: 60,
		Status: domain.StatusScheduled,
	}
	repo := &fakeRepo{appointments: []*domain.Appointment{existing}}
	d := NewDetector(repo, loc)

	conflict, err := d.CheckConflict(context.Background(), 1, 7, time.Date(2024, 6, 10, 10, 30, 0, 0, loc), 30, nil)
	require.NoError(t, err)
	assert.Equal(t, existing, conflict)

	// стык по границе - не конфликт
	conflict, err = d.CheckConflict(context.Background(), 1, 7, time.Date(2024, 6, 10, 11, 0, 0, 0, loc), 30, nil)
	require.NoError(t, err)
	assert.Nil(t, conflict)

	// сама запись при перепроверке исключается
	conflict, err = d.CheckConflict(context.Background(), 1, 7, existing.StartAt, 60, ptr.Ptr(int64(1)))
	require.NoError(t, err)
	assert.Nil(t, conflict)

	last := repo.filters[len(repo.filters)-1]
	assert.True(t, last.ForUpdate)
	assert.Equal(t, domain.BlockingStatuses, last.Statuses)
	assert.True(t, last.From.Equal(time.Date(2024, 6, 10, 0, 0, 0, 0, loc)))
	assert.True(t, last.To.Equal(time.Date(2024, 6, 11, 0, 0, 0, 0, loc)))
}

func TestDetector_WindowCoversOvernightRange(t *testing.T) {
	loc := clinic(t)
	repo := &fakeRepo{}
	d := NewDetector(repo, loc)

	start := time.Date(2024, 6, 10, 23, 30, 0, 0, loc)
	_, err := d.CheckConflict(context.Background(), 1, 7, start, 90, nil)

	require.NoError(t, err)
	assert.True(t, repo.filters[0].To.Equal(start.Add(90*time.Minute)))
}

func TestDetector_FailsClosed(t *testing.T) {
	loc := clinic(t)
	d := NewDetector(&fakeRepo{err: errors.New("connection reset")}, loc)
	start := time.Date(2024, 6, 10, 10, 0, 0, 0, loc)

	conflict, err := d.CheckConflict(context.Background(), 1, 7, start, 30, nil)
	assert.ErrorIs(t, err, ErrLoadAppointments)
	assert.Nil(t, conflict)

	_, err = d.IsRoomCapacityExceeded(context.Background(), 1, start, start.Add(time.Hour), nil, 3, nil)
	assert.ErrorIs(t, err, ErrLoadAppointments)
}

func TestDetector_IsRoomCapacityExceeded(t *testing.T) {
	loc := clinic(t)
	start := time.Date(2024, 6, 10, 14, 0, 0, 0, loc)
	busy := func(id, professional int64, room *int) *domain.Appointment {
		return &domain.Appointment{
			ID: id, CompanyID: 1, ProfessionalID: professional, StartAt: start, DurationMinutes: 60,
			Status: domain.StatusConfirmed, RoomID: room,
		}
	}
	repo := &fakeRepo{appointments: []*domain.Appointment{
		busy(1, 7, ptr.Ptr(1)),
		busy(2, 8, nil),
	}}
	d := NewDetector(repo, loc)

	exceeded, err := d.IsRoomCapacityExceeded(context.Background(), 1, start, start.Add(time.Hour), nil, 2, nil)
	require.NoError(t, err)
	assert.True(t, exceeded)

	exceeded, err = d.IsRoomCapacityExceeded(context.Background(), 1, start, start.Add(time.Hour), nil, 3, nil)
	require.NoError(t, err)
	assert.False(t, exceeded)

	exceeded, err = d.IsRoomCapacityExceeded(context.Background(), 1, start, start.Add(time.Hour), ptr.Ptr(1), 3, nil)
	require.NoError(t, err)
	assert.True(t, exceeded)

	exceeded, err = d.IsRoomCapacityExceeded(context.Background(), 1, start, start.Add(time.Hour), ptr.Ptr(2), 3, nil)
	require.NoError(t, err)
	assert.False(t, exceeded)
}
