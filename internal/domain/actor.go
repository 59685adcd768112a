package domain

// Role of the caller as reported by the upstream gateway
type Role string

const (
	RoleStaff   Role = "staff"
	RolePatient Role = "patient"
)

func (r Role) IsValid() bool {
	return r == RoleStaff || r == RolePatient
}

// Actor identifies who performs a request.
// For a patient UserID is the patient id.
type Actor struct {
	UserID    int64
	Role      Role
	CompanyID int64
}

func (a Actor) IsStaff() bool {
	return a.Role == RoleStaff
}

// CanManage returns true if the actor is staff of the company
func (a Actor) CanManage(companyID int64) bool {
	return a.IsStaff() && a.CompanyID == companyID
}

// CanView returns true if the actor may read the appointment
func (a Actor) CanView(appt *Appointment) bool {
	if a.CompanyID != appt.CompanyID {
		return false
	}
	return a.IsStaff() || a.UserID == appt.PatientID
}
