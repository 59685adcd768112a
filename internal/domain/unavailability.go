package domain

import (
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// UnavailabilityRule represents a blackout window on a set of dates
type UnavailabilityRule struct {
	ID          int64
	CompanyID   int64
	Description *string
	StartTime   types.TimeString
	EndTime     types.TimeString
	Dates       []types.Date

	// AllProfessionals makes the rule apply to everyone; otherwise ProfessionalIDs
	AllProfessionals bool
	ProfessionalIDs  []int64

	CreatedAt time.Time
}

// AppliesTo returns true if the rule covers the professional.
// A nil professional (any professional listing) is covered only by "all" rules.
func (r *UnavailabilityRule) AppliesTo(professionalID *int64) bool {
	if r.AllProfessionals {
		return true
	}
	if professionalID == nil {
		return false
	}
	for _, id := range r.ProfessionalIDs {
		if id == *professionalID {
			return true
		}
	}
	return false
}

// CoversDate returns true if the date is in the rule's date set
func (r *UnavailabilityRule) CoversDate(date types.Date) bool {
	for _, d := range r.Dates {
		if d == date {
			return true
		}
	}
	return false
}
