package models

import (
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

// Request модели

// CreateRuleRequest запрос на создание правила недоступности
type CreateRuleRequest struct {
	Actor domain.Actor `json:"-"`

	Description      *string  `json:"description,omitempty" validate:"omitempty,max=255"`
	StartTime        string   `json:"startTime" validate:"required"` // "12:00"
	EndTime          string   `json:"endTime" validate:"required"`   // "13:00", "00:00" = до полуночи
	Dates            []string `json:"dates" validate:"required,min=1,max=366"`
	AllProfessionals bool     `json:"allProfessionals"`
	ProfessionalIDs  []int64  `json:"professionalIds,omitempty"`
}

// Response модели

// RuleResponse ответ с данными правила
type RuleResponse struct {
	ID               int64     `json:"id"`
	CompanyID        int64     `json:"companyId"`
	Description      *string   `json:"description,omitempty"`
	StartTime        string    `json:"startTime"`
	EndTime          string    `json:"endTime"`
	Dates            []string  `json:"dates"`
	AllProfessionals bool      `json:"allProfessionals"`
	ProfessionalIDs  []int64   `json:"professionalIds"`
	CreatedAt        time.Time `json:"createdAt"`
}

// RuleListResponse ответ со списком правил
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.UnavailabilityRule) *RuleResponse {
	if r == nil {
		return nil
	}

	resp := &RuleResponse{
		ID:               r.ID,
		CompanyID:        r.CompanyID,
		Description:      r.Description,
		StartTime:        r.StartTime.String(),
		EndTime:          r.EndTime.String(),
		Dates:            make([]string, len(r.Dates)),
		AllProfessionals: r.AllProfessionals,
		ProfessionalIDs:  r.ProfessionalIDs,
		CreatedAt:        r.CreatedAt,
	}
	for i, d := range r.Dates {
		resp.Dates[i] = d.String()
	}
	if resp.ProfessionalIDs == nil {
		resp.ProfessionalIDs = []int64{}
	}
	return resp
}

// FromDomainRuleList конвертирует список domain моделей в DTO
func FromDomainRuleList(rules []*domain.UnavailabilityRule) *RuleListResponse {
	resp := &RuleListResponse{Rules: make([]RuleResponse, 0, len(rules))}
	for _, rule := range rules {
		if ruleResp := FromDomainRule(rule); ruleResp != nil {
			resp.Rules = append(resp.Rules, *ruleResp)
		}
	}
	return resp
}
