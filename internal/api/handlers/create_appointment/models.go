package create_appointment

import (
	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	createAppointment "github.com/LeandroKolesny/Aura-System-sub000/internal/usecase/create_appointment"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// CreateAppointmentRequest HTTP request model
// Компания берется из данных пользователя
type CreateAppointmentRequest struct {
	PatientID      int64   `json:"patientId" validate:"gte=0"` // для пациента можно не передавать
	ProfessionalID int64   `json:"professionalId" validate:"required,gt=0"`
	ProcedureID    int64   `json:"procedureId" validate:"required,gt=0"`
	Date           string  `json:"date" validate:"required"`      // "2024-06-10"
	StartTime      string  `json:"startTime" validate:"required"` // "10:00"
	RoomID         *int    `json:"roomId,omitempty" validate:"omitempty,gt=0"`
	Notes          *string `json:"notes,omitempty" validate:"omitempty,max=500"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(actor domain.Actor) (*createAppointment.Request, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, errInvalidDate
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, errInvalidTime
	}

	return &createAppointment.Request{
		Actor:          actor,
		CompanyID:      actor.CompanyID,
		PatientID:      r.PatientID,
		ProfessionalID: r.ProfessionalID,
		ProcedureID:    r.ProcedureID,
		Date:           date,
		StartTime:      startTime,
		RoomID:         r.RoomID,
		Notes:          r.Notes,
	}, nil
}
