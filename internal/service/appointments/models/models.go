package models

import (
	"errors"
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение записей компании
type ListAppointmentsRequest struct {
	Actor           domain.Actor
	CompanyID       int64
	ProfessionalID  *int64
	StartDate       *types.Date // Начало периода по локальной дате клиники (опционально)
	EndDate         *types.Date // Конец периода включительно (опционально)
	Status          *string
	IncludeCanceled bool
}

// ToDomainFilter конвертирует request в domain фильтр
// Пациент видит только свои записи
func (r *ListAppointmentsRequest) ToDomainFilter(loc *time.Location) (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		CompanyID:       r.CompanyID,
		ProfessionalID:  r.ProfessionalID,
		IncludeCanceled: r.IncludeCanceled,
	}

	if !r.Actor.IsStaff() {
		patientID := r.Actor.UserID
		filter.PatientID = &patientID
	}

	if r.StartDate != nil {
		from := r.StartDate.In(loc)
		filter.From = &from
	}
	if r.EndDate != nil {
		to := r.EndDate.AddDays(1).In(loc)
		filter.To = &to
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Statuses = []domain.AppointmentStatus{status}
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	CompanyID       int64     `json:"companyId"`
	PatientID       int64     `json:"patientId"`
	ProfessionalID  int64     `json:"professionalId"`
	ProcedureID     int64     `json:"procedureId"`
	Date            string    `json:"date"`      // "2024-06-10" в часовом поясе клиники
	StartTime       string    `json:"startTime"` // "10:00"
	StartAt         time.Time `json:"startAt"`
	EndAt           time.Time `json:"endAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Status          string    `json:"status"`
	RoomID          *int      `json:"roomId,omitempty"`
	Source          string    `json:"source"`
	Notes           *string   `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601
	CompletedAt        *string `json:"completedAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment, loc *time.Location) *AppointmentResponse {
	if a == nil {
		return nil
	}

	local := a.StartAt.In(loc)
	resp := &AppointmentResponse{
		ID:                 a.ID,
		CompanyID:          a.CompanyID,
		PatientID:          a.PatientID,
		ProfessionalID:     a.ProfessionalID,
		ProcedureID:        a.ProcedureID,
		Date:               types.DateOf(local).String(),
		StartTime:          types.NewTimeString(local).String(),
		StartAt:            local,
		EndAt:              a.EndAt().In(loc),
		DurationMinutes:    a.DurationMinutes,
		Status:             string(a.Status),
		RoomID:             a.RoomID,
		Source:             string(a.Source),
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	resp.CancelledAt = formatTime(a.CancelledAt)
	resp.CompletedAt = formatTime(a.CompletedAt)

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment, loc *time.Location) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, appt := range appointments {
		if apptResp := FromDomainAppointment(appt, loc); apptResp != nil {
			resp.Appointments = append(resp.Appointments, *apptResp)
		}
	}

	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
