package domain

import "github.com/LeandroKolesny/Aura-System-sub000/pkg/types"

// SlotBlockReason explains why a slot is not bookable
type SlotBlockReason string

const (
	ReasonNone           SlotBlockReason = ""
	ReasonTooSoon        SlotBlockReason = "too_soon"
	ReasonUnavailability SlotBlockReason = "unavailability_rule"
	ReasonConflict       SlotBlockReason = "schedule_conflict"
	ReasonRoomCapacity   SlotBlockReason = "room_capacity"
	ReasonPastClosing    SlotBlockReason = "past_closing"
)

// Slot represents an offered start time of a day
type Slot struct {
	Time      types.TimeString
	Available bool
	Reason    SlotBlockReason
}
