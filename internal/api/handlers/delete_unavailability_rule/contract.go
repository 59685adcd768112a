package delete_unavailability_rule

import (
	"context"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

type RuleService interface {
	Delete(ctx context.Context, companyID, id int64, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
