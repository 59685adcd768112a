package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/ptr"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

func clinicLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func mustDate(t *testing.T, s string) types.Date {
	t.Helper()
	d, err := types.ParseDate(s)
	require.NoError(t, err)
	return d
}

// at returns the instant hh:mm of date in loc
func at(t *testing.T, date string, hhmm string, loc *time.Location) time.Time {
	t.Helper()
	return mustDate(t, date).At(types.TimeString(hhmm).Minutes(), loc)
}

func weekdayHours(day time.Weekday, start, end string) domain.WeeklySchedule {
	return domain.WeeklySchedule{
		day: {IsOpen: true, Start: types.TimeString(start), End: types.TimeString(end)},
	}
}

func appointment(id, professionalID int64, start time.Time, duration int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		CompanyID:       1,
		ProfessionalID:  professionalID,
		StartAt:         start,
		DurationMinutes: duration,
		Status:          status,
	}
}

func inRoom(a *domain.Appointment, room int) *domain.Appointment {
	a.RoomID = ptr.Ptr(room)
	return a
}

func slotMap(slots []domain.Slot) map[types.TimeString]domain.Slot {
	out := make(map[types.TimeString]domain.Slot, len(slots))
	for _, s := range slots {
		out[s.Time] = s
	}
	return out
}
