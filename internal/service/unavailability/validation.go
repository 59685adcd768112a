package unavailability

import (
	"fmt"
	"sort"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/unavailability/models"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// toDomainRule валидирует запрос и строит правило
// Даты сортируются и дедуплицируются
func toDomainRule(companyID int64, req *models.CreateRuleRequest) (*domain.UnavailabilityRule, error) {
	if req.Description != nil && len(*req.Description) > domain.MaxRuleDescriptionLength {
		return nil, fmt.Errorf("%w: description is longer than %d", ErrInvalidInput, domain.MaxRuleDescriptionLength)
	}

	startTime, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}
	endTime, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: endTime: %v", ErrInvalidInput, err)
	}
	endMinutes := endTime.Minutes()
	if endMinutes == 0 {
		endMinutes = types.MinutesPerDay
	}
	if startTime.Minutes() >= endMinutes {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	dates, err := parseDates(req.Dates)
	if err != nil {
		return nil, err
	}

	rule := &domain.UnavailabilityRule{
		CompanyID:        companyID,
		Description:      req.Description,
		StartTime:        startTime,
		EndTime:          endTime,
		Dates:            dates,
		AllProfessionals: req.AllProfessionals,
	}

	if !req.AllProfessionals {
		ids, err := uniqueIDs(req.ProfessionalIDs)
		if err != nil {
			return nil, err
		}
		rule.ProfessionalIDs = ids
	}

	return rule, nil
}

func parseDates(raw []string) ([]types.Date, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: at least one date is required", ErrInvalidInput)
	}
	if len(raw) > domain.MaxRuleDates {
		return nil, fmt.Errorf("%w: at most %d dates are allowed", ErrInvalidInput, domain.MaxRuleDates)
	}

	seen := make(map[types.Date]struct{}, len(raw))
	dates := make([]types.Date, 0, len(raw))
	for _, s := range raw {
		date, err := types.ParseDate(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		if _, dup := seen[date]; dup {
			continue
		}
		seen[date] = struct{}{}
		dates = append(dates, date)
	}

	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates, nil
}

func uniqueIDs(raw []int64) ([]int64, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: professionalIds are required unless allProfessionals is set", ErrInvalidInput)
	}

	seen := make(map[int64]struct{}, len(raw))
	ids := make([]int64, 0, len(raw))
	for _, id := range raw {
		if id <= 0 {
			return nil, fmt.Errorf("%w: invalid professional id %d", ErrInvalidInput, id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
