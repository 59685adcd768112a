package list_unavailability_rules

import (
	"context"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/unavailability/models"
)

type RuleService interface {
	List(ctx context.Context, companyID int64, actor domain.Actor) (*models.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
