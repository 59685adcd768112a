package scheduling

import (
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// SlotParams inputs of GenerateSlots
type SlotParams struct {
	Date            types.Date
	ProfessionalID  *int64 // nil = any professional
	DurationMinutes int    // procedure duration, not the listing step
	Hours           BusinessHours
	Rules           []*domain.UnavailabilityRule
	// Appointments of the company on Date, all professionals and rooms
	Appointments []*domain.Appointment
	Config       domain.SchedulingConfig
	Now          time.Time
	Location     *time.Location
}

// GenerateSlots lists the start times of a day stepping by the configured interval,
// marking each one unavailable when the procedure starting there cannot be booked.
// The result is ordered by time and depends only on the params.
func GenerateSlots(p SlotParams) []domain.Slot {
	slots := make([]domain.Slot, 0)

	day := ResolveDaySchedule(p.Hours, p.Date.Weekday())
	if !day.IsOpen {
		return slots
	}
	openAt, closeAt := day.OpenMinutes()

	interval := p.Config.SlotIntervalMinutes
	if interval <= 0 {
		interval = domain.DefaultSlotIntervalMinutes
	}
	earliest := p.Now.Add(minutes(p.Config.MinAdvanceMinutes))

	for m := openAt; m < closeAt; m += interval {
		label, err := types.NewTimeStringFromMinutes(m)
		if err != nil {
			break
		}
		start := p.Date.At(m, p.Location)
		end := start.Add(minutes(p.DurationMinutes))

		reason := slotBlockReason(p, m+p.DurationMinutes > closeAt, start, end, earliest)
		slots = append(slots, domain.Slot{
			Time:      label,
			Available: reason == domain.ReasonNone,
			Reason:    reason,
		})
	}
	return slots
}

func slotBlockReason(p SlotParams, pastClosing bool, start, end, earliest time.Time) domain.SlotBlockReason {
	switch {
	case start.Before(earliest):
		return domain.ReasonTooSoon
	case pastClosing:
		return domain.ReasonPastClosing
	case BlockingRule(start, end, p.Rules, p.ProfessionalID, p.Location) != nil:
		return domain.ReasonUnavailability
	case p.ProfessionalID != nil && FindConflict(*p.ProfessionalID, start, p.DurationMinutes, p.Appointments, nil) != nil:
		return domain.ReasonConflict
	case RoomCapacityExceeded(start, end, nil, p.Config.RoomCount, p.Appointments, nil):
		return domain.ReasonRoomCapacity
	}
	return domain.ReasonNone
}

// AvailableOnly filters the bookable slots
func AvailableOnly(slots []domain.Slot) []domain.Slot {
	out := make([]domain.Slot, 0, len(slots))
	for _, s := range slots {
		if s.Available {
			out = append(out, s)
		}
	}
	return out
}
