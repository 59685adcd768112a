package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/ptr"
)

func TestRoomCapacityExceeded_Pool(t *testing.T) {
	loc := clinicLocation(t)
	day := "2024-06-10"
	nine := at(t, day, "09:00", loc)
	existing := []*domain.Appointment{
		appointment(1, 1, nine, 30, domain.StatusConfirmed),
		appointment(2, 2, nine, 30, domain.StatusConfirmed),
		appointment(3, 3, nine, 30, domain.StatusConfirmed),
	}

	start := at(t, day, "09:15", loc)
	end := at(t, day, "09:45", loc)
	assert.True(t, RoomCapacityExceeded(start, end, nil, 3, existing, nil), "three rooms taken")
	assert.False(t, RoomCapacityExceeded(start, end, nil, 4, existing, nil), "a fourth room is free")

	later := at(t, day, "09:30", loc)
	assert.False(t, RoomCapacityExceeded(later, later.Add(30*time.Minute), nil, 3, existing, nil), "touching ranges free the rooms")

	existing[0].Status = domain.StatusCanceled
	assert.False(t, RoomCapacityExceeded(start, end, nil, 3, existing, nil))
}

func TestRoomCapacityExceeded_PinnedRoom(t *testing.T) {
	loc := clinicLocation(t)
	day := "2024-06-10"
	nine := at(t, day, "09:00", loc)
	existing := []*domain.Appointment{
		inRoom(appointment(1, 1, nine, 60, domain.StatusScheduled), 1),
		inRoom(appointment(2, 2, nine, 60, domain.StatusPendingApproval), 2),
	}
	start := at(t, day, "09:30", loc)
	end := at(t, day, "10:00", loc)

	assert.True(t, RoomCapacityExceeded(start, end, ptr.Ptr(1), 3, existing, nil))
	assert.False(t, RoomCapacityExceeded(start, end, ptr.Ptr(2), 3, existing, nil), "pending does not hold a room")
	assert.False(t, RoomCapacityExceeded(start, end, ptr.Ptr(1), 3, existing, ptr.Ptr(int64(1))), "editing the occupant")
}

func TestRoomCapacityExceeded_PinnedRoomCountsPool(t *testing.T) {
	loc := clinicLocation(t)
	day := "2024-06-10"
	nine := at(t, day, "09:00", loc)
	existing := []*domain.Appointment{
		appointment(1, 1, nine, 30, domain.StatusConfirmed),
		appointment(2, 2, nine, 30, domain.StatusConfirmed),
		appointment(3, 3, nine, 30, domain.StatusConfirmed),
	}
	start := at(t, day, "09:15", loc)
	end := at(t, day, "09:45", loc)

	assert.True(t, RoomCapacityExceeded(start, end, nil, 3, existing, nil))
	assert.True(t, RoomCapacityExceeded(start, end, ptr.Ptr(1), 3, existing, nil), "every room is already in use")
	assert.False(t, RoomCapacityExceeded(start, end, ptr.Ptr(1), 4, existing, nil))
}
