package get_company_appointments

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/appointments/models"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// Поддерживаются professionalId, startDate, endDate, date, status, includeCanceled
func ToServiceRequest(companyID int64, actor domain.Actor, query url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{
		Actor:     actor,
		CompanyID: companyID,
	}

	if raw := query.Get("professionalId"); raw != "" {
		professionalID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || professionalID <= 0 {
			return nil, fmt.Errorf("invalid professionalId %q", raw)
		}
		req.ProfessionalID = &professionalID
	}

	// date - сокращение для startDate = endDate
	if raw := query.Get("date"); raw != "" {
		date, err := types.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
		req.EndDate = &date
	}

	if raw := query.Get("startDate"); raw != "" {
		date, err := types.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		req.StartDate = &date
	}

	if raw := query.Get("endDate"); raw != "" {
		date, err := types.ParseDate(raw)
		if err != nil {
			return nil, err
		}
		req.EndDate = &date
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("includeCanceled"); raw != "" {
		includeCanceled, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCanceled value: %w", err)
		}
		req.IncludeCanceled = includeCanceled
	}

	return req, nil
}
