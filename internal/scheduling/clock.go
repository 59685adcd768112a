package scheduling

import (
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// LocalDate returns the clinic-local calendar date of t
func LocalDate(t time.Time, loc *time.Location) types.Date {
	return types.DateOf(t.In(loc))
}

// MinuteOfDay returns the clinic-local minute of day of t
func MinuteOfDay(t time.Time, loc *time.Location) int {
	local := t.In(loc)
	return local.Hour()*60 + local.Minute()
}

// DayBounds returns the clinic-local [midnight, next midnight) of a date
func DayBounds(date types.Date, loc *time.Location) (time.Time, time.Time) {
	return date.In(loc), date.AddDays(1).In(loc)
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
