package delete_business_hours

import (
	"errors"
	"net/http"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/middleware"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/schedules"
)

const (
	msgInvalidCompanyID      = "некорректный ID компании"
	msgInvalidProfessionalID = "некорректный ID специалиста"
	msgUnauthorized          = "требуется авторизация"
	msgForbidden             = "доступ запрещен"
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

// Handle DELETE /api/v1/companies/{companyId}/professionals/{professionalId}/business-hours
// Специалист возвращается к расписанию компании
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathID(r, "companyId")
	if err != nil {
		h.logger.Warn("DELETE business-hours - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	professionalID, err := handlers.PathID(r, "professionalId")
	if err != nil {
		h.logger.Warn("DELETE business-hours - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	owner := domain.ScheduleOwner{CompanyID: companyID, ProfessionalID: &professionalID}
	if err := h.service.Delete(r.Context(), owner, actor); err != nil {
		switch {
		case errors.Is(err, schedules.ErrAccessDenied):
			h.logger.Warn("DELETE business-hours - Access denied: company_id=%d, user_id=%d", companyID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE business-hours - Failed to delete schedule: company_id=%d, professional_id=%d, error=%v",
				companyID, professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE business-hours - Schedule deleted: company_id=%d, professional_id=%d", companyID, professionalID)
	w.WriteHeader(http.StatusNoContent)
}
