package get_business_hours

import (
	"context"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/schedules/models"
)

type ScheduleService interface {
	Get(ctx context.Context, owner domain.ScheduleOwner) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
