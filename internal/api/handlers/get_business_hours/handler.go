package get_business_hours

import (
	"net/http"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/middleware"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
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

// Handle GET /api/v1/companies/{companyId}/business-hours
// и GET /api/v1/companies/{companyId}/professionals/{professionalId}/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathID(r, "companyId")
	if err != nil {
		h.logger.Warn("GET business-hours - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	professionalID, err := handlers.OptionalPathID(r, "professionalId")
	if err != nil {
		h.logger.Warn("GET business-hours - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	if actor.CompanyID != companyID {
		h.logger.Warn("GET business-hours - Access denied: company_id=%d, user_id=%d", companyID, actor.UserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	owner := domain.ScheduleOwner{CompanyID: companyID, ProfessionalID: professionalID}
	result, err := h.service.Get(r.Context(), owner)
	if err != nil {
		h.logger.Error("GET business-hours - Failed to get schedule: company_id=%d, professional_id=%v, error=%v",
			companyID, professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET business-hours - Schedule retrieved: company_id=%d, configured=%t", companyID, result.Configured)
	handlers.RespondJSON(w, http.StatusOK, result)
}
