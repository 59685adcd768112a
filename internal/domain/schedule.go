package domain

import (
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// DaySchedule opening window of a single weekday
// End "00:00" means midnight at the end of the day
type DaySchedule struct {
	IsOpen bool
	Start  types.TimeString
	End    types.TimeString
}

// OpenMinutes returns the window as minutes of day [open, close)
func (d DaySchedule) OpenMinutes() (openAt, closeAt int) {
	openAt = d.Start.Minutes()
	closeAt = d.End.Minutes()
	if closeAt == 0 {
		closeAt = types.MinutesPerDay
	}
	return openAt, closeAt
}

// FullDay is the schedule used when no business hours are configured
var FullDay = DaySchedule{IsOpen: true, Start: "00:00", End: "00:00"}

// WeeklySchedule maps weekdays to opening windows; a missing weekday is closed
type WeeklySchedule map[time.Weekday]DaySchedule

// ScheduleOwner identifies whose business hours a schedule holds
type ScheduleOwner struct {
	CompanyID      int64
	ProfessionalID *int64 // nil = company default
}
