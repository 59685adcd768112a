package domain

// Default configuration values
const (
	DefaultSlotIntervalMinutes = 60
	DefaultMinAdvanceMinutes   = 0
	DefaultMaxBookingDays      = 60
	DefaultRoomCount           = 3
)

// Business validation constants
const (
	MinDurationMinutes          = 5
	MaxDurationMinutes          = 720 // 12 hours
	MinRoomCount                = 1
	MaxRoomCount                = 50
	MaxMinAdvanceMinutes        = 10080 // 1 week
	MaxBookingDaysLimit         = 365
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxRuleDescriptionLength    = 255
	MaxRuleDates                = 366
)

// AllowedSlotIntervals listing steps supported by the slot generator
var AllowedSlotIntervals = []int{10, 15, 30, 60}

// BlockingStatuses statuses that occupy a time range
var BlockingStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
}
