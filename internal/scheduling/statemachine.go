package scheduling

import (
	"fmt"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

var transitions = map[domain.AppointmentStatus][]domain.AppointmentStatus{
	domain.StatusPendingApproval: {domain.StatusConfirmed, domain.StatusCanceled},
	domain.StatusScheduled:       {domain.StatusCompleted, domain.StatusCanceled},
	domain.StatusConfirmed:       {domain.StatusCompleted, domain.StatusCanceled},
}

// InitialStatus returns the status a new appointment starts in
func InitialStatus(source domain.Source) (domain.AppointmentStatus, error) {
	switch source {
	case domain.SourceStaff:
		return domain.StatusScheduled, nil
	case domain.SourceSelfService:
		return domain.StatusPendingApproval, nil
	}
	return "", fmt.Errorf("%w: unknown appointment source %q", ErrValidation, source)
}

// Transition validates a status change. Terminal statuses reject everything.
func Transition(from, to domain.AppointmentStatus) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &TransitionError{From: from, To: to}
}

// Effects side effects a caller must perform for an accepted transition
type Effects struct {
	// RecheckAvailability the appointment starts blocking its range
	RecheckAvailability bool
	NotifyPatient       bool
	DeductInventory     bool
	UpdateLastVisit     bool
	MarkCanceled        bool
	MarkCompleted       bool
	// ReleasesSlot the range stops blocking and cached listings must be refreshed
	ReleasesSlot bool
}

// EffectsOf returns the side effects of moving from one status to another.
// The transition must already be validated.
func EffectsOf(from, to domain.AppointmentStatus) Effects {
	switch to {
	case domain.StatusConfirmed:
		return Effects{
			RecheckAvailability: !from.Blocks(),
			NotifyPatient:       true,
		}
	case domain.StatusCompleted:
		return Effects{
			DeductInventory: true,
			UpdateLastVisit: true,
			MarkCompleted:   true,
			ReleasesSlot:    true,
		}
	case domain.StatusCanceled:
		return Effects{
			NotifyPatient: true,
			MarkCanceled:  true,
			ReleasesSlot:  from.Blocks(),
		}
	}
	return Effects{}
}
