package create_unavailability_rule

import (
	"errors"
	"net/http"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/middleware"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/unavailability"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/unavailability/models"
)

const (
	msgInvalidCompanyID   = "некорректный ID компании"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "требуется авторизация"
	msgForbidden          = "доступ запрещен"
	msgInvalidRule        = "некорректное правило недоступности"
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

// Handle POST /api/v1/companies/{companyId}/unavailability-rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathID(r, "companyId")
	if err != nil {
		h.logger.Warn("POST /companies/{id}/unavailability-rules - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req models.CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /companies/{id}/unavailability-rules - Invalid request body: %v", err)
		handlers.RespondErrorDetails(w, http.StatusBadRequest, msgInvalidRequestBody, err.Error())
		return
	}
	req.Actor = actor

	result, err := h.service.Create(r.Context(), companyID, &req)
	if err != nil {
		switch {
		case errors.Is(err, unavailability.ErrAccessDenied):
			h.logger.Warn("POST /companies/{id}/unavailability-rules - Access denied: company_id=%d, user_id=%d",
				companyID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, unavailability.ErrInvalidInput):
			handlers.RespondErrorDetails(w, http.StatusBadRequest, msgInvalidRule, err.Error())

		default:
			h.logger.Error("POST /companies/{id}/unavailability-rules - Failed to create rule: company_id=%d, error=%v",
				companyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /companies/{id}/unavailability-rules - Rule created: company_id=%d, rule_id=%d",
		companyID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
