package get_company_config

import (
	"net/http"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/middleware"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgUnauthorized     = "требуется авторизация"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service SchedulingConfigService
	logger  Logger
}

func NewHandler(service SchedulingConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/config
// Если настройки не сохранялись, возвращаются значения по умолчанию (isDefault=true)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathID(r, "companyId")
	if err != nil {
		h.logger.Warn("GET /companies/{id}/config - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	if actor.CompanyID != companyID {
		h.logger.Warn("GET /companies/{id}/config - Access denied: company_id=%d, user_id=%d", companyID, actor.UserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	result, err := h.service.Get(r.Context(), companyID)
	if err != nil {
		h.logger.Error("GET /companies/{id}/config - Failed to get config: company_id=%d, error=%v",
			companyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /companies/{id}/config - Config retrieved successfully: company_id=%d, is_default=%t",
		companyID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
