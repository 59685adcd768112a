package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	slotcache "github.com/LeandroKolesny/Aura-System-sub000/internal/infra/cache/slots"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/integrations/clinicservice"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

// Configs отдает одну конфигурацию для любой компании
type Configs struct {
	Config domain.SchedulingConfig
	Err    error
}

func (c *Configs) Effective(_ context.Context, companyID int64) (*domain.SchedulingConfig, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	cfg := c.Config
	cfg.CompanyID = companyID
	return &cfg, nil
}

// Hours рабочие часы компании и переопределения специалистов
type Hours struct {
	Company       domain.WeeklySchedule
	Professionals map[int64]domain.WeeklySchedule
	Err           error
}

func (h *Hours) BusinessHours(_ context.Context, _ int64, professionalID *int64) (scheduling.BusinessHours, error) {
	if h.Err != nil {
		return scheduling.BusinessHours{}, h.Err
	}
	hours := scheduling.BusinessHours{Company: h.Company}
	if professionalID != nil {
		hours.Professional = h.Professionals[*professionalID]
	}
	return hours, nil
}

// Rules правила недоступности с фильтром по датам
type Rules struct {
	Rules []*domain.UnavailabilityRule
	Err   error
}

func (r *Rules) ForDates(_ context.Context, companyID int64, dates ...types.Date) ([]*domain.UnavailabilityRule, error) {
	if r.Err != nil {
		return nil, r.Err
	}
	out := make([]*domain.UnavailabilityRule, 0)
	for _, rule := range r.Rules {
		if rule.CompanyID != 0 && rule.CompanyID != companyID {
			continue
		}
		for _, d := range dates {
			if rule.CoversDate(d) {
				out = append(out, rule)
				break
			}
		}
	}
	return out, nil
}

// Clinic сервис клиники в памяти
type Clinic struct {
	mu            sync.Mutex
	Procedures    map[int64]*clinicservice.Procedure
	Professionals map[int64]*clinicservice.Professional

	DeductErr    error
	LastVisitErr error
	Err          error

	Deductions []int64 // ID записей, по которым списаны материалы
	LastVisits map[int64]time.Time
}

func NewClinic() *Clinic {
	return &Clinic{
		Procedures:    make(map[int64]*clinicservice.Procedure),
		Professionals: make(map[int64]*clinicservice.Professional),
		LastVisits:    make(map[int64]time.Time),
	}
}

// WithProcedure добавляет активную процедуру
func (c *Clinic) WithProcedure(id int64, durationMinutes int) *Clinic {
	c.Procedures[id] = &clinicservice.Procedure{ID: id, Name: fmt.Sprintf("procedure %d", id), DurationMinutes: durationMinutes, Active: true}
	return c
}

// WithProfessionals добавляет активных специалистов
func (c *Clinic) WithProfessionals(ids ...int64) *Clinic {
	for _, id := range ids {
		c.Professionals[id] = &clinicservice.Professional{ID: id, Name: fmt.Sprintf("professional %d", id), Active: true}
	}
	return c
}

func (c *Clinic) GetProcedure(_ context.Context, companyID, procedureID int64) (*clinicservice.Procedure, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	p, ok := c.Procedures[procedureID]
	if !ok {
		return nil, clinicservice.ErrProcedureNotFound
	}
	out := *p
	out.CompanyID = companyID
	return &out, nil
}

func (c *Clinic) GetProfessional(_ context.Context, companyID, professionalID int64) (*clinicservice.Professional, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	p, ok := c.Professionals[professionalID]
	if !ok {
		return nil, clinicservice.ErrProfessionalNotFound
	}
	out := *p
	out.CompanyID = companyID
	return &out, nil
}

func (c *Clinic) DeductInventory(_ context.Context, _, appointmentID, _ int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.DeductErr != nil {
		return c.DeductErr
	}
	c.Deductions = append(c.Deductions, appointmentID)
	return nil
}

func (c *Clinic) UpdatePatientLastVisit(_ context.Context, _, patientID int64, visitedAt time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.LastVisitErr != nil {
		return c.LastVisitErr
	}
	c.LastVisits[patientID] = visitedAt
	return nil
}

// SlotCache запоминает инвалидации и хранит слоты по ключу
type SlotCache struct {
	mu          sync.Mutex
	Entries     map[string][]domain.Slot
	Invalidated []types.Date
	GetErr      error
	SetCalls    int
}

func NewSlotCache() *SlotCache {
	return &SlotCache{Entries: make(map[string][]domain.Slot)}
}

// KeyString ключ кэша в строковом виде
func KeyString(key slotcache.Key) string {
	prof := "any"
	if key.ProfessionalID != nil {
		prof = fmt.Sprint(*key.ProfessionalID)
	}
	return fmt.Sprintf("%d:%s:%s:%d", key.CompanyID, key.Date, prof, key.DurationMinutes)
}

func (c *SlotCache) Get(_ context.Context, key slotcache.Key) ([]domain.Slot, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.GetErr != nil {
		return nil, false, c.GetErr
	}
	s, ok := c.Entries[KeyString(key)]
	return s, ok, nil
}

func (c *SlotCache) Set(_ context.Context, key slotcache.Key, s []domain.Slot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.SetCalls++
	c.Entries[KeyString(key)] = s
	return nil
}

func (c *SlotCache) Invalidate(_ context.Context, _ int64, dates ...types.Date) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Invalidated = append(c.Invalidated, dates...)
	return nil
}

// Notifications отправленные уведомления по типу
type Notifications struct {
	mu        sync.Mutex
	Requested []int64
	Confirmed []int64
	Canceled  []int64
}

func (n *Notifications) AppointmentRequested(_ context.Context, appt *domain.Appointment) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Requested = append(n.Requested, appt.ID)
}

func (n *Notifications) AppointmentConfirmed(_ context.Context, appt *domain.Appointment) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Confirmed = append(n.Confirmed, appt.ID)
}

func (n *Notifications) AppointmentCanceled(_ context.Context, appt *domain.Appointment) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Canceled = append(n.Canceled, appt.ID)
}

// Metrics счетчики доменных метрик
type Metrics struct {
	mu          sync.Mutex
	Created     map[string]int
	Rejections  map[string]int
	Transitions map[string]int
	SlotCache   map[string]int
}

func NewMetrics() *Metrics {
	return &Metrics{
		Created:     make(map[string]int),
		Rejections:  make(map[string]int),
		Transitions: make(map[string]int),
		SlotCache:   make(map[string]int),
	}
}

func (m *Metrics) IncAppointmentCreated(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Created[source]++
}

func (m *Metrics) IncBookingRejection(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Rejections[reason]++
}

func (m *Metrics) IncTransition(from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Transitions[from+"->"+to]++
}

func (m *Metrics) IncSlotCache(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SlotCache[result]++
}

// Snapshotter хранилище, поддерживающее откат
type Snapshotter interface {
	Snapshot() func()
}

// Tx выполняет функцию в памяти; при ошибке хранилища откатываются
type Tx struct {
	Stores []Snapshotter
	Calls  int
}

func (t *Tx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++

	rollbacks := make([]func(), 0, len(t.Stores))
	for _, s := range t.Stores {
		rollbacks = append(rollbacks, s.Snapshot())
	}

	if err := fn(ctx); err != nil {
		for _, rollback := range rollbacks {
			rollback()
		}
		return err
	}
	return nil
}

func (t *Tx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return t.DoSerializable(ctx, fn)
}

// Clock фиксированное текущее время
type Clock struct {
	At time.Time
}

func (c *Clock) Now() time.Time {
	return c.At
}

// Logger логгер без вывода
type Logger struct{}

func (Logger) Info(string, ...interface{})  {}
func (Logger) Warn(string, ...interface{})  {}
func (Logger) Error(string, ...interface{}) {}
