package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	configRepo "github.com/LeandroKolesny/Aura-System-sub000/internal/infra/storage/config"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/config/models"
)

// Defaults значения по умолчанию из конфигурации сервиса
type Defaults struct {
	SlotIntervalMinutes int
	RoomCount           int
}

// Service сервис настроек расписания компании
type Service struct {
	configRepo ConfigRepository
	slotCache  SlotCache
	defaults   Defaults
	logger     Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	configRepo ConfigRepository,
	slotCache SlotCache,
	defaults Defaults,
	logger Logger,
) *Service {
	return &Service{
		configRepo: configRepo,
		slotCache:  slotCache,
		defaults:   defaults,
		logger:     logger,
	}
}

// Get получает действующие настройки компании
// Публичный метод - если настройки не сохранены, возвращаются значения по умолчанию
func (s *Service) Get(ctx context.Context, companyID int64) (*models.ConfigResponse, error) {
	cfg, err := s.Effective(ctx, companyID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainConfig(cfg), nil
}

// Effective возвращает настройки компании для движка расписания
func (s *Service) Effective(ctx context.Context, companyID int64) (*domain.SchedulingConfig, error) {
	cfg, err := s.configRepo.GetByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, configRepo.ErrConfigNotFound) {
			return s.defaultConfig(companyID), nil
		}
		s.logger.Error("Effective: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: Effective - repository error: %w", ErrInternal, err)
	}
	return cfg, nil
}

// Update обновляет настройки компании
// Доступно только сотрудникам компании
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, companyID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.logger.Info("Update: updating config for company=%d by user=%d", companyID, req.Actor.UserID)

	// 1. Проверяем права доступа
	if !req.Actor.CanManage(companyID) {
		s.logger.Warn("Update: user=%d is not staff of company=%d", req.Actor.UserID, companyID)
		return nil, ErrAccessDenied
	}

	// 2. Применяем обновления к действующим настройкам
	cfg, err := s.Effective(ctx, companyID)
	if err != nil {
		return nil, err
	}
	req.ApplyToConfig(cfg)

	// 3. Валидируем результат
	if err := validateConfig(cfg); err != nil {
		s.logger.Warn("Update: validation failed for company=%d: %v", companyID, err)
		return nil, err
	}

	// 4. Сохраняем
	updated, err := s.configRepo.Upsert(ctx, cfg)
	if errors.Is(err, configRepo.ErrOutOfRange) {
		s.logger.Warn("Update: rejected by storage for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err != nil {
		s.logger.Error("Update: repository error for company=%d: %v", companyID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %w", ErrInternal, err)
	}

	// 5. Шаг сетки, запас времени и число кабинетов влияют на слоты всех дат
	if err := s.slotCache.InvalidateCompany(ctx, companyID); err != nil {
		s.logger.Warn("Update: failed to invalidate slot cache for company=%d: %v", companyID, err)
	}

	s.logger.Info("Update: successfully updated config for company=%d", companyID)
	return models.FromDomainConfig(updated), nil
}

func (s *Service) defaultConfig(companyID int64) *domain.SchedulingConfig {
	cfg := domain.DefaultSchedulingConfig(companyID)
	if s.defaults.SlotIntervalMinutes > 0 {
		cfg.SlotIntervalMinutes = s.defaults.SlotIntervalMinutes
	}
	if s.defaults.RoomCount > 0 {
		cfg.RoomCount = s.defaults.RoomCount
	}
	return cfg
}

// validateConfig валидирует параметры настроек
func validateConfig(cfg *domain.SchedulingConfig) error {
	if !domain.IsAllowedSlotInterval(cfg.SlotIntervalMinutes) {
		return fmt.Errorf("%w: slotIntervalMinutes must be one of %v", ErrInvalidInput, domain.AllowedSlotIntervals)
	}

	if cfg.MinAdvanceMinutes < 0 || cfg.MinAdvanceMinutes > domain.MaxMinAdvanceMinutes {
		return fmt.Errorf("%w: minAdvanceMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxMinAdvanceMinutes)
	}

	if cfg.MaxBookingDays < 0 || cfg.MaxBookingDays > domain.MaxBookingDaysLimit {
		return fmt.Errorf("%w: maxBookingDays must be between 0 and %d", ErrInvalidInput, domain.MaxBookingDaysLimit)
	}

	if cfg.RoomCount < domain.MinRoomCount || cfg.RoomCount > domain.MaxRoomCount {
		return fmt.Errorf("%w: roomCount must be between %d and %d", ErrInvalidInput, domain.MinRoomCount, domain.MaxRoomCount)
	}

	return nil
}
