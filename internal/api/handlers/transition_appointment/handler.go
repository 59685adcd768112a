package transition_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/middleware"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/appointments/models"
	transitionAppointment "github.com/LeandroKolesny/Aura-System-sub000/internal/usecase/transition_appointment"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidID          = "некорректный ID записи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "запись не найдена"
	msgForbidden          = "доступ запрещен"
	msgInvalidTransition  = "недопустимая смена статуса записи"
	msgScheduleConflict   = "специалист занят в это время"
	msgRoomCapacity       = "нет свободного кабинета на это время"
	msgInventory          = "не удалось списать материалы, запись не завершена"
	msgInvalidParams      = "некорректные параметры запроса"
)

type Handler struct {
	useCase  TransitionAppointmentUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase TransitionAppointmentUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathID(r, "appointmentId")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req TransitionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondErrorDetails(w, http.StatusBadRequest, msgInvalidRequestBody, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(appointmentID, actor))
	if err != nil {
		switch {
		case errors.Is(err, transitionAppointment.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/status - Appointment not found: appointment_id=%d", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, transitionAppointment.ErrAccessDenied):
			h.logger.Warn("PATCH /appointments/{id}/status - Access denied: appointment_id=%d, user_id=%d",
				appointmentID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, scheduling.ErrInvalidTransition):
			handlers.RespondErrorDetails(w, http.StatusUnprocessableEntity, msgInvalidTransition, err.Error())

		case errors.Is(err, scheduling.ErrScheduleConflict):
			h.logger.Warn("PATCH /appointments/{id}/status - Schedule conflict: appointment_id=%d, %v", appointmentID, err)
			handlers.RespondScheduleConflict(w, msgScheduleConflict, err, h.location)

		case errors.Is(err, scheduling.ErrRoomCapacity):
			handlers.RespondConflict(w, msgRoomCapacity)

		case errors.Is(err, transitionAppointment.ErrInventoryDeduction):
			h.logger.Error("PATCH /appointments/{id}/status - Inventory deduction failed: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgInventory)

		case errors.Is(err, transitionAppointment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("PATCH /appointments/{id}/status - Failed to change status: appointment_id=%d, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status changed: appointment_id=%d, %s -> %s, user_id=%d",
		appointmentID, result.Previous, result.Appointment.Status, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainAppointment(result.Appointment, h.location))
}
