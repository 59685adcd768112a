package scheduling

import (
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

// BusinessHours schedules that may apply to a professional.
// A nil schedule means "not configured".
type BusinessHours struct {
	Company      domain.WeeklySchedule
	Professional domain.WeeklySchedule
}

// ResolveDaySchedule returns the effective opening window for a weekday.
// A professional override replaces the whole company week; with neither
// configured the day is open around the clock. A weekday missing from the
// chosen schedule is closed.
func ResolveDaySchedule(hours BusinessHours, weekday time.Weekday) domain.DaySchedule {
	week := hours.Professional
	if week == nil {
		week = hours.Company
	}
	if week == nil {
		return domain.FullDay
	}

	day, ok := week[weekday]
	if !ok || !day.IsOpen {
		return domain.DaySchedule{}
	}
	return day
}

// WithinHours reports whether [start, end) fits the resolved window of its clinic-local day
func WithinHours(hours BusinessHours, start, end time.Time, loc *time.Location) bool {
	date := LocalDate(start, loc)
	day := ResolveDaySchedule(hours, date.Weekday())
	if !day.IsOpen {
		return false
	}
	openAt, closeAt := day.OpenMinutes()
	if openAt >= closeAt {
		return false
	}
	return !start.Before(date.At(openAt, loc)) && !end.After(date.At(closeAt, loc))
}
