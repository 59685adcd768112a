package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Порядок дней в ответе
var weekOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

// ParseWeekday разбирает название дня недели ("monday")
func ParseWeekday(name string) (time.Weekday, error) {
	weekday, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
	return weekday, nil
}

// Request модели

// DayRequest рабочие часы одного дня
type DayRequest struct {
	Weekday string `json:"weekday" validate:"required"`
	IsOpen  bool   `json:"isOpen"`
	Start   string `json:"start,omitempty"` // "09:00"
	End     string `json:"end,omitempty"`   // "18:00", "00:00" = до полуночи
}

// ReplaceScheduleRequest запрос на замену недельного расписания
// Дни, не переданные в запросе, сохраняются как выходные
type ReplaceScheduleRequest struct {
	Actor domain.Actor `json:"-"`
	Days  []DayRequest `json:"days" validate:"required,max=7,dive"`
}

// Response модели

// DayResponse рабочие часы одного дня
type DayResponse struct {
	Weekday string `json:"weekday"`
	IsOpen  bool   `json:"isOpen"`
	Start   string `json:"start,omitempty"`
	End     string `json:"end,omitempty"`
}

// ScheduleResponse недельное расписание
type ScheduleResponse struct {
	CompanyID      int64         `json:"companyId"`
	ProfessionalID *int64        `json:"professionalId,omitempty"`
	Configured     bool          `json:"configured"` // false: действует расписание уровнем выше
	Days           []DayResponse `json:"days"`
}

// FromDomainSchedule конвертирует domain модель в DTO
func FromDomainSchedule(owner domain.ScheduleOwner, week domain.WeeklySchedule) *ScheduleResponse {
	resp := &ScheduleResponse{
		CompanyID:      owner.CompanyID,
		ProfessionalID: owner.ProfessionalID,
		Configured:     week != nil,
		Days:           make([]DayResponse, 0, len(week)),
	}

	for _, weekday := range weekOrder {
		day, ok := week[weekday]
		if !ok {
			continue
		}
		dayResp := DayResponse{
			Weekday: strings.ToLower(weekday.String()),
			IsOpen:  day.IsOpen,
		}
		if day.IsOpen {
			dayResp.Start = day.Start.String()
			dayResp.End = day.End.String()
		}
		resp.Days = append(resp.Days, dayResp)
	}

	return resp
}
