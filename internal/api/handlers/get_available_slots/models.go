package get_available_slots

import (
	"net/url"

	getAvailableSlots "github.com/LeandroKolesny/Aura-System-sub000/internal/usecase/get_available_slots"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string `json:"date"`
	CompanyID       int64  `json:"companyId"`
	ProcedureID     int64  `json:"procedureId"`
	ProfessionalID  *int64 `json:"professionalId"`
	DurationMinutes int    `json:"durationMinutes"`
	Slots           []Slot `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Time:      slot.Time.String(),
			Available: slot.Available,
			Reason:    string(slot.Reason),
		}
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.String(),
		CompanyID:       resp.CompanyID,
		ProcedureID:     resp.ProcedureID,
		ProfessionalID:  resp.ProfessionalID,
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(companyID, procedureID int64, professionalID *int64, dateStr string, query url.Values) (*getAvailableSlots.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		CompanyID:      companyID,
		Date:           date,
		ProcedureID:    procedureID,
		ProfessionalID: professionalID,
		AvailableOnly:  query.Get("available") == "true",
	}, nil
}
