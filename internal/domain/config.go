package domain

import "time"

// SchedulingConfig represents per-company scheduling settings
type SchedulingConfig struct {
	CompanyID           int64
	SlotIntervalMinutes int // one of AllowedSlotIntervals
	MinAdvanceMinutes   int // minimum notice before a slot can be booked
	MaxBookingDays      int // 0 = unlimited
	RoomCount           int // size of the shared room pool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultSchedulingConfig returns the settings used when a company has no stored row
func DefaultSchedulingConfig(companyID int64) *SchedulingConfig {
	return &SchedulingConfig{
		CompanyID:           companyID,
		SlotIntervalMinutes: DefaultSlotIntervalMinutes,
		MinAdvanceMinutes:   DefaultMinAdvanceMinutes,
		MaxBookingDays:      DefaultMaxBookingDays,
		RoomCount:           DefaultRoomCount,
	}
}

// HasBookingHorizon returns true if there's a limit on how far ahead bookings can be made
func (c *SchedulingConfig) HasBookingHorizon() bool {
	return c.MaxBookingDays > 0
}

// IsAllowedSlotInterval reports whether the listing step is supported
func IsAllowedSlotInterval(minutes int) bool {
	for _, allowed := range AllowedSlotIntervals {
		if minutes == allowed {
			return true
		}
	}
	return false
}
