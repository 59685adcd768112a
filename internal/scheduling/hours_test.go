package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

func TestResolveDaySchedule(t *testing.T) {
	company := weekdayHours(time.Monday, "08:00", "18:00")
	company[time.Tuesday] = domain.DaySchedule{IsOpen: false, Start: "08:00", End: "18:00"}
	professional := weekdayHours(time.Wednesday, "13:00", "20:00")

	t.Run("nothing configured is open all day", func(t *testing.T) {
		day := ResolveDaySchedule(BusinessHours{}, time.Sunday)
		assert.Equal(t, domain.FullDay, day)
		openAt, closeAt := day.OpenMinutes()
		assert.Equal(t, 0, openAt)
		assert.Equal(t, 1440, closeAt)
	})

	t.Run("company default", func(t *testing.T) {
		day := ResolveDaySchedule(BusinessHours{Company: company}, time.Monday)
		assert.True(t, day.IsOpen)
		assert.Equal(t, "08:00", day.Start.String())
	})

	t.Run("explicitly closed day", func(t *testing.T) {
		assert.False(t, ResolveDaySchedule(BusinessHours{Company: company}, time.Tuesday).IsOpen)
	})

	t.Run("missing weekday is closed", func(t *testing.T) {
		assert.False(t, ResolveDaySchedule(BusinessHours{Company: company}, time.Friday).IsOpen)
	})

	t.Run("professional override replaces whole week", func(t *testing.T) {
		hours := BusinessHours{Company: company, Professional: professional}
		assert.False(t, ResolveDaySchedule(hours, time.Monday).IsOpen)
		day := ResolveDaySchedule(hours, time.Wednesday)
		assert.True(t, day.IsOpen)
		assert.Equal(t, "13:00", day.Start.String())
	})
}

func TestWithinHours(t *testing.T) {
	loc := clinicLocation(t)
	hours := BusinessHours{Company: weekdayHours(time.Monday, "08:00", "18:00")}

	assert.True(t, WithinHours(hours, at(t, "2024-06-10", "08:00", loc), at(t, "2024-06-10", "09:00", loc), loc))
	assert.True(t, WithinHours(hours, at(t, "2024-06-10", "17:30", loc), at(t, "2024-06-10", "18:00", loc), loc))
	assert.False(t, WithinHours(hours, at(t, "2024-06-10", "07:30", loc), at(t, "2024-06-10", "08:30", loc), loc))
	assert.False(t, WithinHours(hours, at(t, "2024-06-10", "17:30", loc), at(t, "2024-06-10", "18:30", loc), loc))
	assert.False(t, WithinHours(hours, at(t, "2024-06-11", "10:00", loc), at(t, "2024-06-11", "11:00", loc), loc))
}

func TestWithinHours_MidnightClose(t *testing.T) {
	loc := clinicLocation(t)
	hours := BusinessHours{Company: weekdayHours(time.Monday, "18:00", "00:00")}

	assert.True(t, WithinHours(hours, at(t, "2024-06-10", "23:00", loc), at(t, "2024-06-11", "00:00", loc), loc))
	assert.False(t, WithinHours(hours, at(t, "2024-06-10", "23:30", loc), at(t, "2024-06-11", "00:30", loc), loc))
}
