package delete_unavailability_rule

import (
	"errors"
	"net/http"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/middleware"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/unavailability"
)

const (
	msgInvalidCompanyID = "некорректный ID компании"
	msgInvalidRuleID    = "некорректный ID правила"
	msgUnauthorized     = "требуется авторизация"
	msgForbidden        = "доступ запрещен"
	msgNotFound         = "правило не найдено"
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

// Handle DELETE /api/v1/companies/{companyId}/unavailability-rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathID(r, "companyId")
	if err != nil {
		h.logger.Warn("DELETE /unavailability-rules/{id} - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	ruleID, err := handlers.PathID(r, "ruleId")
	if err != nil {
		h.logger.Warn("DELETE /unavailability-rules/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.Delete(r.Context(), companyID, ruleID, actor); err != nil {
		switch {
		case errors.Is(err, unavailability.ErrAccessDenied):
			h.logger.Warn("DELETE /unavailability-rules/{id} - Access denied: company_id=%d, user_id=%d",
				companyID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, unavailability.ErrRuleNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /unavailability-rules/{id} - Failed to delete rule: rule_id=%d, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /unavailability-rules/{id} - Rule deleted: company_id=%d, rule_id=%d", companyID, ruleID)
	w.WriteHeader(http.StatusNoContent)
}
