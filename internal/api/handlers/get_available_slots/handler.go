package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers"
	getAvailableSlots "github.com/LeandroKolesny/Aura-System-sub000/internal/usecase/get_available_slots"
)

const (
	msgInvalidCompanyID      = "некорректный ID компании"
	msgInvalidProcedureID    = "некорректный ID процедуры"
	msgInvalidProfessionalID = "некорректный ID специалиста"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateInPast            = "дата уже прошла"
	msgDateTooFar            = "дата слишком далеко в будущем"
	msgProcedureNotFound     = "процедура не найдена"
	msgProfessionalNotFound  = "специалист не найден"
	msgInvalidParams         = "некорректные параметры запроса"
)

type Handler struct {
	useCase SlotListingUseCase
	logger  Logger
}

func NewHandler(useCase SlotListingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/companies/{companyId}/available-slots
// Query params: date (required, YYYY-MM-DD), procedureId (required), professionalId, available=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	companyID, err := handlers.PathID(r, "companyId")
	if err != nil {
		h.logger.Warn("GET /companies/{id}/available-slots - Invalid company ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCompanyID)
		return
	}

	procedureID, err := handlers.QueryID(r, "procedureId")
	if err != nil || procedureID == nil {
		h.logger.Warn("GET /companies/{id}/available-slots - Invalid procedure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProcedureID)
		return
	}

	professionalID, err := handlers.QueryID(r, "professionalId")
	if err != nil {
		h.logger.Warn("GET /companies/{id}/available-slots - Invalid professional ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProfessionalID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /companies/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(companyID, *procedureID, professionalID, dateStr, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /companies/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrProcedureNotFound):
			h.logger.Warn("GET /companies/{id}/available-slots - Procedure not found: company_id=%d, procedure_id=%d",
				companyID, *procedureID)
			handlers.RespondNotFound(w, msgProcedureNotFound)

		case errors.Is(err, getAvailableSlots.ErrProfessionalNotFound):
			h.logger.Warn("GET /companies/{id}/available-slots - Professional not found: company_id=%d", companyID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /companies/{id}/available-slots - Failed to get slots: company_id=%d, procedure_id=%d, error=%v",
				companyID, *procedureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /companies/{id}/available-slots - Slots retrieved successfully: company_id=%d, date=%s, slots_count=%d",
		companyID, result.Date, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
