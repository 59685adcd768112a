package domain

import "time"

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPendingApproval AppointmentStatus = "pending_approval"
	StatusScheduled       AppointmentStatus = "scheduled"
	StatusConfirmed       AppointmentStatus = "confirmed"
	StatusCompleted       AppointmentStatus = "completed"
	StatusCanceled        AppointmentStatus = "canceled"
)

// IsValid returns true for a known status
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPendingApproval, StatusScheduled, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// IsTerminal returns true if no transition may leave the status
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// Blocks returns true if an appointment in this status occupies its time range
// for conflict and room capacity checks
func (s AppointmentStatus) Blocks() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

// Source tells who created an appointment
type Source string

const (
	SourceStaff       Source = "staff"
	SourceSelfService Source = "self_service"
)

func (s Source) IsValid() bool {
	return s == SourceStaff || s == SourceSelfService
}

// Appointment represents a booked visit of a patient to a professional
type Appointment struct {
	ID              int64
	CompanyID       int64
	PatientID       int64
	ProfessionalID  int64
	ProcedureID     int64
	StartAt         time.Time
	DurationMinutes int
	Status          AppointmentStatus
	RoomID          *int // 1..RoomCount, nil = any room
	Source          Source

	// InventoryDeducted guards the exactly-once stock deduction on completion
	InventoryDeducted bool

	Notes              *string
	CancellationReason *string
	CancelledAt        *time.Time
	CompletedAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndAt returns the exclusive end of the appointment
func (a *Appointment) EndAt() time.Time {
	return a.StartAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// IsBlocking returns true if the appointment participates in conflict checks
func (a *Appointment) IsBlocking() bool {
	return a.Status.Blocks()
}

// AppointmentsFilter filter for listing appointments of a company
type AppointmentsFilter struct {
	CompanyID       int64               // required
	ProfessionalID  *int64              // nil = all professionals
	PatientID       *int64              // nil = all patients
	From            *time.Time          // appointments ending after From
	To              *time.Time          // appointments starting before To
	Statuses        []AppointmentStatus // empty = see IncludeCanceled
	IncludeCanceled bool
	// ForUpdate locks the selected rows when run inside a transaction
	ForUpdate bool
}
