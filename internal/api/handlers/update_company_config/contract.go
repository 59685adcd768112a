package update_company_config

import (
	"context"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/config/models"
)

// SchedulingConfigService частично обновляет настройки компании и сбрасывает кэш слотов
type SchedulingConfigService interface {
	Update(ctx context.Context, companyID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
