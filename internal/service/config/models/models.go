package models

import (
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

// Request модели

// UpdateConfigRequest запрос на обновление настроек расписания
// Все поля опциональны - обновляются только переданные значения
type UpdateConfigRequest struct {
	Actor domain.Actor `json:"-"`

	SlotIntervalMinutes *int `json:"slotIntervalMinutes,omitempty"` // 10, 15, 30, 60
	MinAdvanceMinutes   *int `json:"minAdvanceMinutes,omitempty"`
	MaxBookingDays      *int `json:"maxBookingDays,omitempty"` // 0 = без ограничений
	RoomCount           *int `json:"roomCount,omitempty"`
}

// ApplyToConfig применяет обновления к существующей конфигурации
// Обновляются только непустые (not nil) поля из request
func (r *UpdateConfigRequest) ApplyToConfig(cfg *domain.SchedulingConfig) {
	if r.SlotIntervalMinutes != nil {
		cfg.SlotIntervalMinutes = *r.SlotIntervalMinutes
	}
	if r.MinAdvanceMinutes != nil {
		cfg.MinAdvanceMinutes = *r.MinAdvanceMinutes
	}
	if r.MaxBookingDays != nil {
		cfg.MaxBookingDays = *r.MaxBookingDays
	}
	if r.RoomCount != nil {
		cfg.RoomCount = *r.RoomCount
	}
}

// Response модели

// ConfigResponse ответ с настройками расписания компании
type ConfigResponse struct {
	CompanyID           int64      `json:"companyId"`
	SlotIntervalMinutes int        `json:"slotIntervalMinutes"`
	MinAdvanceMinutes   int        `json:"minAdvanceMinutes"`
	MaxBookingDays      int        `json:"maxBookingDays"`
	RoomCount           int        `json:"roomCount"`
	IsDefault           bool       `json:"isDefault"` // настройки не сохранялись, действуют значения по умолчанию
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(c *domain.SchedulingConfig) *ConfigResponse {
	if c == nil {
		return nil
	}

	resp := &ConfigResponse{
		CompanyID:           c.CompanyID,
		SlotIntervalMinutes: c.SlotIntervalMinutes,
		MinAdvanceMinutes:   c.MinAdvanceMinutes,
		MaxBookingDays:      c.MaxBookingDays,
		RoomCount:           c.RoomCount,
		IsDefault:           c.UpdatedAt.IsZero(),
	}
	if !c.UpdatedAt.IsZero() {
		updatedAt := c.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}
	return resp
}
