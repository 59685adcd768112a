// Package testutil in-memory implementations of storage and integration contracts for use case tests.
package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	appointmentRepo "github.com/LeandroKolesny/Aura-System-sub000/internal/infra/storage/appointment"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
)

// Appointments хранилище записей в памяти
// Повторяет exclusion constraints БД: блокирующие записи специалиста и кабинета не пересекаются
type Appointments struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]*domain.Appointment

	// Err возвращается всеми методами, если задан
	Err error
}

func NewAppointments(seed ...*domain.Appointment) *Appointments {
	s := &Appointments{items: make(map[int64]*domain.Appointment)}
	for _, a := range seed {
		s.put(a)
	}
	return s
}

func (s *Appointments) put(a *domain.Appointment) {
	if a.ID == 0 {
		s.nextID++
		a.ID = s.nextID
	} else if a.ID > s.nextID {
		s.nextID = a.ID
	}
	s.items[a.ID] = a
}

func (s *Appointments) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	if err := s.guard(appt); err != nil {
		return nil, err
	}

	stored := *appt
	s.put(&stored)
	out := stored
	return &out, nil
}

func (s *Appointments) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	a, ok := s.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	out := *a
	return &out, nil
}

func (s *Appointments) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}

	out := make([]*domain.Appointment, 0)
	for _, a := range s.items {
		if matches(a, filter) {
			c := *a
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartAt.Before(out[j].StartAt) })
	return out, nil
}

func (s *Appointments) UpdateStatus(_ context.Context, appt *domain.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	stored, ok := s.items[appt.ID]
	if !ok || stored.CompanyID != appt.CompanyID {
		return appointmentRepo.ErrAppointmentNotFound
	}
	if err := s.guard(appt); err != nil {
		return err
	}

	stored.Status = appt.Status
	stored.CancellationReason = appt.CancellationReason
	stored.CancelledAt = appt.CancelledAt
	stored.CompletedAt = appt.CompletedAt
	return nil
}

func (s *Appointments) MarkInventoryDeducted(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return false, s.Err
	}
	a, ok := s.items[id]
	if !ok || a.InventoryDeducted {
		return false, nil
	}
	a.InventoryDeducted = true
	return true, nil
}

// Snapshot запоминает состояние хранилища и возвращает функцию отката
func (s *Appointments) Snapshot() func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	saved := make(map[int64]domain.Appointment, len(s.items))
	for id, a := range s.items {
		saved[id] = *a
	}
	nextID := s.nextID

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.items = make(map[int64]*domain.Appointment, len(saved))
		for id, a := range saved {
			a := a
			s.items[id] = &a
		}
		s.nextID = nextID
	}
}

// Get возвращает сохраненную запись без копирования
func (s *Appointments) Get(id int64) *domain.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items[id]
}

func (s *Appointments) guard(appt *domain.Appointment) error {
	if !appt.IsBlocking() {
		return nil
	}
	for _, other := range s.items {
		if other.ID == appt.ID || other.CompanyID != appt.CompanyID || !other.IsBlocking() {
			continue
		}
		if !scheduling.Overlaps(appt.StartAt, appt.EndAt(), other.StartAt, other.EndAt()) {
			continue
		}
		if other.ProfessionalID == appt.ProfessionalID {
			return appointmentRepo.ErrProfessionalOverlap
		}
		if appt.RoomID != nil && other.RoomID != nil && *appt.RoomID == *other.RoomID {
			return appointmentRepo.ErrRoomOverlap
		}
	}
	return nil
}

func matches(a *domain.Appointment, f domain.AppointmentsFilter) bool {
	if a.CompanyID != f.CompanyID {
		return false
	}
	if f.ProfessionalID != nil && a.ProfessionalID != *f.ProfessionalID {
		return false
	}
	if f.PatientID != nil && a.PatientID != *f.PatientID {
		return false
	}
	if f.From != nil && !a.EndAt().After(*f.From) {
		return false
	}
	if f.To != nil && !a.StartAt.Before(*f.To) {
		return false
	}
	if len(f.Statuses) > 0 {
		for _, st := range f.Statuses {
			if a.Status == st {
				return true
			}
		}
		return false
	}
	return f.IncludeCanceled || a.Status != domain.StatusCanceled
}
