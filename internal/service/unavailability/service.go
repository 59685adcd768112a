package unavailability

import (
	"context"
	"errors"
	"fmt"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	ruleRepo "github.com/LeandroKolesny/Aura-System-sub000/internal/infra/storage/unavailability"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/unavailability/models"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// Service сервис правил недоступности (праздники, перерывы, обучение)
type Service struct {
	ruleRepo  RuleRepository
	slotCache SlotCache
	logger    Logger
}

// NewService создает новый экземпляр сервиса правил
func NewService(ruleRepo RuleRepository, slotCache SlotCache, logger Logger) *Service {
	return &Service{
		ruleRepo:  ruleRepo,
		slotCache: slotCache,
		logger:    logger,
	}
}

// Create создает правило недоступности
// Доступно только сотрудникам компании
func (s *Service) Create(ctx context.Context, companyID int64, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Create: creating unavailability rule for company=%d by user=%d", companyID, req.Actor.UserID)

	if !req.Actor.CanManage(companyID) {
		s.logger.Warn("Create: user=%d is not staff of company=%d", req.Actor.UserID, companyID)
		return nil, ErrAccessDenied
	}

	rule, err := toDomainRule(companyID, req)
	if err != nil {
		s.logger.Warn("Create: validation failed for company=%d: %v", companyID, err)
		return nil, err
	}

	created, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		s.logger.Error("Create: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %w", ErrInternal, err)
	}

	if err := s.slotCache.Invalidate(ctx, companyID, created.Dates...); err != nil {
		s.logger.Warn("Create: failed to invalidate slot cache for company=%d: %v", companyID, err)
	}

	s.logger.Info("Create: successfully created rule id=%d for company=%d (%d dates)",
		created.ID, companyID, len(created.Dates))
	return models.FromDomainRule(created), nil
}

// List получает все правила компании
// Доступно только сотрудникам компании
func (s *Service) List(ctx context.Context, companyID int64, actor domain.Actor) (*models.RuleListResponse, error) {
	if !actor.CanManage(companyID) {
		s.logger.Warn("List: user=%d is not staff of company=%d", actor.UserID, companyID)
		return nil, ErrAccessDenied
	}

	rules, err := s.ruleRepo.ListByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("List: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}
	return models.FromDomainRuleList(rules), nil
}

// ForDates получает правила, затрагивающие указанные даты
func (s *Service) ForDates(ctx context.Context, companyID int64, dates ...types.Date) ([]*domain.UnavailabilityRule, error) {
	rules, err := s.ruleRepo.ListForDates(ctx, companyID, dates...)
	if err != nil {
		return nil, fmt.Errorf("%w: ForDates - repository error: %w", ErrInternal, err)
	}
	return rules, nil
}

// Delete удаляет правило
// Доступно только сотрудникам компании. Замена правила = удаление + создание.
func (s *Service) Delete(ctx context.Context, companyID, id int64, actor domain.Actor) error {
	s.logger.Info("Delete: deleting rule id=%d for company=%d by user=%d", id, companyID, actor.UserID)

	if !actor.CanManage(companyID) {
		s.logger.Warn("Delete: user=%d is not staff of company=%d", actor.UserID, companyID)
		return ErrAccessDenied
	}

	if err := s.ruleRepo.Delete(ctx, companyID, id); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("Delete: rule id=%d not found in company=%d", id, companyID)
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: repository error for rule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	// даты удаленного правила неизвестны без лишнего запроса
	if err := s.slotCache.InvalidateCompany(ctx, companyID); err != nil {
		s.logger.Warn("Delete: failed to invalidate slot cache for company=%d: %v", companyID, err)
	}

	s.logger.Info("Delete: successfully deleted rule id=%d", id)
	return nil
}
