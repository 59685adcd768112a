package schedules

import (
	"context"
	"fmt"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/schedules/models"
)

// Service сервис рабочих часов компании и специалистов
type Service struct {
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	slotCache    SlotCache
	logger       Logger
}

// NewService создает новый экземпляр сервиса рабочих часов
func NewService(
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	slotCache SlotCache,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		slotCache:    slotCache,
		logger:       logger,
	}
}

// Get получает недельное расписание владельца (компании или специалиста)
// Публичный метод
func (s *Service) Get(ctx context.Context, owner domain.ScheduleOwner) (*models.ScheduleResponse, error) {
	week, err := s.scheduleRepo.Get(ctx, owner)
	if err != nil {
		s.logger.Error("Get: repository error for company=%d, professional=%v: %v",
			owner.CompanyID, owner.ProfessionalID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %w", ErrInternal, err)
	}
	return models.FromDomainSchedule(owner, week), nil
}

// BusinessHours загружает расписание компании и, если указан специалист, его собственное
func (s *Service) BusinessHours(ctx context.Context, companyID int64, professionalID *int64) (scheduling.BusinessHours, error) {
	var hours scheduling.BusinessHours

	company, err := s.scheduleRepo.Get(ctx, domain.ScheduleOwner{CompanyID: companyID})
	if err != nil {
		return hours, fmt.Errorf("%w: BusinessHours - company schedule: %w", ErrInternal, err)
	}
	hours.Company = company

	if professionalID != nil {
		professional, err := s.scheduleRepo.Get(ctx, domain.ScheduleOwner{CompanyID: companyID, ProfessionalID: professionalID})
		if err != nil {
			return hours, fmt.Errorf("%w: BusinessHours - professional schedule: %w", ErrInternal, err)
		}
		hours.Professional = professional
	}

	return hours, nil
}

// Replace заменяет недельное расписание владельца
// Доступно только сотрудникам компании
func (s *Service) Replace(ctx context.Context, owner domain.ScheduleOwner, req *models.ReplaceScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Replace: replacing schedule for company=%d, professional=%v by user=%d",
		owner.CompanyID, owner.ProfessionalID, req.Actor.UserID)

	if !req.Actor.CanManage(owner.CompanyID) {
		s.logger.Warn("Replace: user=%d is not staff of company=%d", req.Actor.UserID, owner.CompanyID)
		return nil, ErrAccessDenied
	}

	week, err := toWeeklySchedule(req.Days)
	if err != nil {
		s.logger.Warn("Replace: validation failed for company=%d: %v", owner.CompanyID, err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.scheduleRepo.Replace(ctx, owner, week)
	})
	if err != nil {
		s.logger.Error("Replace: repository error for company=%d: %v", owner.CompanyID, err)
		return nil, fmt.Errorf("%w: Replace - repository error: %w", ErrInternal, err)
	}

	s.invalidate(ctx, owner.CompanyID)

	s.logger.Info("Replace: successfully replaced schedule for company=%d, professional=%v",
		owner.CompanyID, owner.ProfessionalID)
	return models.FromDomainSchedule(owner, week), nil
}

// Delete удаляет расписание специалиста - он возвращается к расписанию компании
// Расписание компании удалить нельзя, только заменить
func (s *Service) Delete(ctx context.Context, owner domain.ScheduleOwner, actor domain.Actor) error {
	s.logger.Info("Delete: deleting schedule for company=%d, professional=%v by user=%d",
		owner.CompanyID, owner.ProfessionalID, actor.UserID)

	if !actor.CanManage(owner.CompanyID) {
		s.logger.Warn("Delete: user=%d is not staff of company=%d", actor.UserID, owner.CompanyID)
		return ErrAccessDenied
	}
	if owner.ProfessionalID == nil {
		return fmt.Errorf("%w: company schedule can only be replaced", ErrInvalidInput)
	}

	if err := s.scheduleRepo.Delete(ctx, owner); err != nil {
		s.logger.Error("Delete: repository error for company=%d: %v", owner.CompanyID, err)
		return fmt.Errorf("%w: Delete - repository error: %w", ErrInternal, err)
	}

	s.invalidate(ctx, owner.CompanyID)
	return nil
}

func (s *Service) invalidate(ctx context.Context, companyID int64) {
	if err := s.slotCache.InvalidateCompany(ctx, companyID); err != nil {
		s.logger.Warn("failed to invalidate slot cache for company=%d: %v", companyID, err)
	}
}
