package list_unavailability_rules

import (
	"errors"
	"net/http"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/middleware"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/unavailability"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgUnauthorized     = "требуется авторизация"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service RuleService
	logger  Logger
}

func NewHandler(service RuleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/unavailability-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathID(r, "companyId")
	if err != nil {
		h.logger.Warn("GET /companies/{id}/unavailability-rules - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.List(r.Context(), companyID, actor)
	if err != nil {
		if errors.Is(err, unavailability.ErrAccessDenied) {
			h.logger.Warn("GET /companies/{id}/unavailability-rules - Access denied: company_id=%d, user_id=%d",
				companyID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /companies/{id}/unavailability-rules - Failed to list rules: company_id=%d, error=%v",
			companyID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /companies/{id}/unavailability-rules - Rules retrieved: company_id=%d, count=%d",
		companyID, len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result.Rules)
}
