package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	appointmentRepo "github.com/LeandroKolesny/Aura-System-sub000/internal/infra/storage/appointment"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/appointments/models"
)

// Service сервис чтения записей на прием
type Service struct {
	appointmentRepo AppointmentRepository
	location        *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, location *time.Location, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		location:        location,
		logger:          logger,
	}
}

// GetByID получает запись по ID
// Сотрудник видит записи своей компании, пациент - только свои
func (s *Service) GetByID(ctx context.Context, id int64, actor domain.Actor) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d role=%s", id, actor.UserID, actor.Role)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %w", ErrInternal, err)
	}

	if !actor.CanView(appt) {
		s.logger.Warn("GetByID: access denied for user=%d to appointment id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainAppointment(appt, s.location), nil
}

// List получает записи компании с фильтрацией
//
// Примеры использования:
// - Все активные записи: List(ctx, &ListAppointmentsRequest{CompanyID: 1, Actor: staff})
// - Записи специалиста на дату: ProfessionalID и StartDate = EndDate
// - Только подтвержденные: Status = "confirmed"
// - Включая отмененные: IncludeCanceled = true
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for company=%d, user=%d, professional=%v, status=%v",
		req.CompanyID, req.Actor.UserID, req.ProfessionalID, req.Status)

	if req.Actor.CompanyID != req.CompanyID {
		s.logger.Warn("List: user=%d has no access to company=%d", req.Actor.UserID, req.CompanyID)
		return nil, ErrAccessDenied
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter(s.location)
	if err != nil {
		s.logger.Warn("List: invalid filter for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for company=%d: %v", req.CompanyID, err)
		return nil, fmt.Errorf("%w: List - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments for company=%d", len(appointments), req.CompanyID)
	return models.FromDomainAppointmentList(appointments, s.location), nil
}
