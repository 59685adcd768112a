package create_unavailability_rule

import (
	"context"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/unavailability/models"
)

type RuleService interface {
	Create(ctx context.Context, companyID int64, req *models.CreateRuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
