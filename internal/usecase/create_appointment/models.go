package create_appointment

import (
	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Actor          domain.Actor
	CompanyID      int64
	PatientID      int64            // для пациента подставляется его ID
	ProfessionalID int64            // ID специалиста
	ProcedureID    int64            // ID процедуры, задает длительность
	Date           types.Date       // Локальная дата клиники
	StartTime      types.TimeString // Время начала, например "10:30"
	RoomID         *int             // Кабинет (опционально)
	Notes          *string          // Заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
}
