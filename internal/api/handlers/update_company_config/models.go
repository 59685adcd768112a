package update_company_config

import (
	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/config/models"
)

// UpdateCompanyConfigRequest HTTP request model
// Все поля опциональны
type UpdateCompanyConfigRequest struct {
	SlotIntervalMinutes *int `json:"slotIntervalMinutes,omitempty" validate:"omitempty,oneof=10 15 30 60"`
	MinAdvanceMinutes   *int `json:"minAdvanceMinutes,omitempty" validate:"omitempty,gte=0"`
	MaxBookingDays      *int `json:"maxBookingDays,omitempty" validate:"omitempty,gte=0"`
	RoomCount           *int `json:"roomCount,omitempty" validate:"omitempty,gte=1"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateCompanyConfigRequest) ToServiceRequest(actor domain.Actor) *models.UpdateConfigRequest {
	return &models.UpdateConfigRequest{
		Actor:               actor,
		SlotIntervalMinutes: r.SlotIntervalMinutes,
		MinAdvanceMinutes:   r.MinAdvanceMinutes,
		MaxBookingDays:      r.MaxBookingDays,
		RoomCount:           r.RoomCount,
	}
}
