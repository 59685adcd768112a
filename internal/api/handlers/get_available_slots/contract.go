package get_available_slots

import (
	"context"

	getAvailableSlots "github.com/LeandroKolesny/Aura-System-sub000/internal/usecase/get_available_slots"
)

// SlotListingUseCase строит сетку слотов на дату с учетом часов, правил и занятости
type SlotListingUseCase interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
