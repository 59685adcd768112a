package get_available_slots

import (
	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// Request модель запроса на получение слотов
type Request struct {
	CompanyID      int64      // ID компании
	Date           types.Date // Локальная дата клиники
	ProcedureID    int64      // ID процедуры, задает длительность
	ProfessionalID *int64     // nil = любой специалист
	AvailableOnly  bool       // вернуть только свободные слоты
}

// Response модель ответа со списком слотов
type Response struct {
	Date            types.Date
	CompanyID       int64
	ProcedureID     int64
	ProfessionalID  *int64
	DurationMinutes int           // Длительность процедуры
	Slots           []domain.Slot // Слоты по возрастанию времени
}
