package get_company_config

import (
	"context"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/config/models"
)

// SchedulingConfigService отдает действующие настройки (или значения по умолчанию)
type SchedulingConfigService interface {
	Get(ctx context.Context, companyID int64) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
