package scheduling

import (
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

// FindConflict returns the first blocking appointment of the professional that
// overlaps [start, start+duration), skipping excludeID. Pending, completed and
// canceled appointments never conflict.
func FindConflict(professionalID int64, start time.Time, durationMinutes int, existing []*domain.Appointment, excludeID *int64) *domain.Appointment {
	end := start.Add(minutes(durationMinutes))
	for _, appt := range existing {
		if appt.ProfessionalID != professionalID || !appt.IsBlocking() || isExcluded(appt, excludeID) {
			continue
		}
		if Overlaps(start, end, appt.StartAt, appt.EndAt()) {
			return appt
		}
	}
	return nil
}

func isExcluded(appt *domain.Appointment, excludeID *int64) bool {
	return excludeID != nil && appt.ID == *excludeID
}
