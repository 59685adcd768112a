package delete_business_hours

import (
	"context"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

type ScheduleService interface {
	Delete(ctx context.Context, owner domain.ScheduleOwner, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
