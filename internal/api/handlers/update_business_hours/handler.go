package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/middleware"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/schedules"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/schedules/models"
)

const (
	msgInvalidCompanyID      = "некорректный ID компании"
	msgInvalidProfessionalID = "некорректный ID специалиста"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgUnauthorized          = "требуется авторизация"
	msgForbidden             = "доступ запрещен"
	msgInvalidSchedule       = "некорректное расписание"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/companies/{companyId}/business-hours
// и PUT /api/v1/companies/{companyId}/professionals/{professionalId}/business-hours
// Расписание заменяется целиком, непереданные дни становятся выходными
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathID(r, "companyId")
	if err != nil {
		h.logger.Warn("PUT business-hours - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	professionalID, err := handlers.OptionalPathID(r, "professionalId")
	if err != nil {
		h.logger.Warn("PUT business-hours - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.ReplaceScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT business-hours - Invalid request body: %v", err)
		handlers.RespondErrorDetails(w, http.StatusBadRequest, msgInvalidRequestBody, err.Error())
		return
	}
	req.Actor = actor

	owner := domain.ScheduleOwner{CompanyID: companyID, ProfessionalID: professionalID}
	result, err := h.service.Replace(r.Context(), owner, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedules.ErrAccessDenied):
			h.logger.Warn("PUT business-hours - Access denied: company_id=%d, user_id=%d", companyID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedules.ErrInvalidInput):
			handlers.RespondErrorDetails(w, http.StatusBadRequest, msgInvalidSchedule, err.Error())

		default:
			h.logger.Error("PUT business-hours - Failed to replace schedule: company_id=%d, error=%v", companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT business-hours - Schedule replaced: company_id=%d, professional_id=%v, days=%d",
		companyID, professionalID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
