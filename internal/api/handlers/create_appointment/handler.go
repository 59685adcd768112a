package create_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/middleware"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/appointments/models"
	createAppointment "github.com/LeandroKolesny/Aura-System-sub000/internal/usecase/create_appointment"
)

const (
	msgUnauthorized         = "требуется авторизация"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime          = "некорректный формат времени начала, ожидается HH:MM"
	msgScheduleConflict     = "специалист занят в выбранное время"
	msgRoomCapacity         = "нет свободного кабинета на выбранное время"
	msgOutOfHours           = "выбранное время вне рабочего графика"
	msgUnavailability       = "выбранное время недоступно для записи"
	msgTooSoon              = "слишком поздно для записи на это время"
	msgDateInPast           = "время записи уже прошло"
	msgDateTooFar           = "дата записи слишком далеко в будущем"
	msgProcedureNotFound    = "процедура не найдена"
	msgProfessionalNotFound = "специалист не найден"
	msgForbidden            = "доступ запрещен"
	msgInvalidParams        = "некорректные параметры записи"
)

var (
	errInvalidDate = errors.New("invalid date")
	errInvalidTime = errors.New("invalid start time")
)

type Handler struct {
	useCase  CreateAppointmentUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateAppointmentUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondErrorDetails(w, http.StatusBadRequest, msgInvalidRequestBody, err.Error())
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondUseCaseError(w, err, actor.UserID, actor.CompanyID)
		return
	}

	response := models.FromDomainAppointment(result.Appointment, h.location)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, company_id=%d, status=%s",
		result.Appointment.ID, result.Appointment.CompanyID, result.Appointment.Status)
	handlers.RespondJSON(w, http.StatusCreated, response)
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, err error, userID, companyID int64) {
	switch {
	case errors.Is(err, scheduling.ErrScheduleConflict):
		h.logger.Warn("POST /appointments - Schedule conflict: user_id=%d, company_id=%d, %v", userID, companyID, err)
		handlers.RespondScheduleConflict(w, msgScheduleConflict, err, h.location)

	case errors.Is(err, scheduling.ErrRoomCapacity):
		h.logger.Warn("POST /appointments - Room capacity exceeded: user_id=%d, company_id=%d", userID, companyID)
		handlers.RespondConflict(w, msgRoomCapacity)

	case errors.Is(err, scheduling.ErrOutOfHours):
		handlers.RespondUnprocessable(w, msgOutOfHours)

	case errors.Is(err, scheduling.ErrUnavailabilityBlocked):
		handlers.RespondUnprocessable(w, msgUnavailability)

	case errors.Is(err, createAppointment.ErrTooSoon):
		handlers.RespondUnprocessable(w, msgTooSoon)

	case errors.Is(err, createAppointment.ErrInvalidDate):
		handlers.RespondBadRequest(w, msgDateInPast)

	case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
		handlers.RespondBadRequest(w, msgDateTooFar)

	case errors.Is(err, createAppointment.ErrProcedureNotFound):
		h.logger.Warn("POST /appointments - Procedure not found: company_id=%d", companyID)
		handlers.RespondNotFound(w, msgProcedureNotFound)

	case errors.Is(err, createAppointment.ErrProfessionalNotFound):
		h.logger.Warn("POST /appointments - Professional not found: company_id=%d", companyID)
		handlers.RespondNotFound(w, msgProfessionalNotFound)

	case errors.Is(err, createAppointment.ErrAccessDenied):
		h.logger.Warn("POST /appointments - Access denied: user_id=%d, company_id=%d", userID, companyID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, createAppointment.ErrInvalidInput), errors.Is(err, scheduling.ErrValidation):
		handlers.RespondErrorDetails(w, http.StatusBadRequest, msgInvalidParams, err.Error())

	default:
		h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, company_id=%d, error=%v",
			userID, companyID, err)
		handlers.RespondInternalError(w)
	}
}
