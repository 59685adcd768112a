package scheduling

import (
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

// RoomCapacityExceeded reports whether [start, end) cannot get a room.
//
// The range is rejected once the number of overlapping blocking appointments
// across all rooms reaches roomCount, pinned or not. A pinned range is also
// rejected when another blocking appointment in the same room overlaps it.
func RoomCapacityExceeded(start, end time.Time, roomID *int, roomCount int, existing []*domain.Appointment, excludeID *int64) bool {
	if roomCount <= 0 {
		roomCount = domain.DefaultRoomCount
	}

	occupied := 0
	for _, appt := range existing {
		if !appt.IsBlocking() || isExcluded(appt, excludeID) {
			continue
		}
		if !Overlaps(start, end, appt.StartAt, appt.EndAt()) {
			continue
		}
		if roomID != nil && appt.RoomID != nil && *appt.RoomID == *roomID {
			return true
		}
		occupied++
		if occupied >= roomCount {
			return true
		}
	}
	return false
}
