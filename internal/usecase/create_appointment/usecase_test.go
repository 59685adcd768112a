package create_appointment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/conflicts"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/testutil"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/ptr"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

const (
	companyID   = int64(1)
	procedure30 = int64(10)
	procedure45 = int64(11)
	staffUserID = int64(500)
	patientID   = int64(900)
)

var monday = types.Date{Year: 2024, Month: time.June, Day: 10}

type fixture struct {
	uc            *UseCase
	appointments  *testutil.Appointments
	configs       *testutil.Configs
	hours         *testutil.Hours
	rules         *testutil.Rules
	clinic        *testutil.Clinic
	cache         *testutil.SlotCache
	notifications *testutil.Notifications
	metrics       *testutil.Metrics
	loc           *time.Location
}

func newFixture(t *testing.T, seed ...*domain.Appointment) *fixture {
	t.Helper()
	loc := time.FixedZone("BRT", -3*60*60)

	f := &fixture{
		appointments: testutil.NewAppointments(seed...),
		configs: &testutil.Configs{Config: domain.SchedulingConfig{
			SlotIntervalMinutes: 30,
			MaxBookingDays:      60,
			RoomCount:           3,
		}},
		hours: &testutil.Hours{Company: domain.WeeklySchedule{
			time.Monday: {IsOpen: true, Start: "08:00", End: "18:00"},
		}},
		rules:         &testutil.Rules{},
		clinic:        testutil.NewClinic().WithProcedure(procedure30, 30).WithProcedure(procedure45, 45).WithProfessionals(1, 2, 3, 4),
		cache:         testutil.NewSlotCache(),
		notifications: &testutil.Notifications{},
		metrics:       testutil.NewMetrics(),
		loc:           loc,
	}

	f.uc = NewUseCase(
		f.appointments,
		f.configs,
		f.hours,
		f.rules,
		conflicts.NewDetector(f.appointments, loc),
		f.clinic,
		f.cache,
		f.notifications,
		f.metrics,
		&testutil.Tx{},
		loc,
		testutil.Logger{},
	)
	f.uc.timeProvider = &testutil.Clock{At: monday.At(7*60, loc)}
	return f
}

func (f *fixture) at(hhmm string) time.Time {
	return monday.At(types.TimeString(hhmm).Minutes(), f.loc)
}

func staffRequest(professionalID int64, start types.TimeString) *Request {
	return &Request{
		Actor:          domain.Actor{UserID: staffUserID, Role: domain.RoleStaff, CompanyID: companyID},
		CompanyID:      companyID,
		PatientID:      patientID,
		ProfessionalID: professionalID,
		ProcedureID:    procedure30,
		Date:           monday,
		StartTime:      start,
	}
}

func confirmed(id, professionalID int64, start time.Time, duration int) *domain.Appointment {
	return &domain.Appointment{
		ID:              id,
		CompanyID:       companyID,
		PatientID:       patientID + id,
		ProfessionalID:  professionalID,
		ProcedureID:     procedure30,
		StartAt:         start,
		DurationMinutes: duration,
		Status:          domain.StatusConfirmed,
		Source:          domain.SourceStaff,
	}
}

func TestExecute_StaffCreatesScheduled(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), staffRequest(1, "10:00"))
	require.NoError(t, err)

	appt := resp.Appointment
	assert.NotZero(t, appt.ID)
	assert.Equal(t, domain.StatusScheduled, appt.Status)
	assert.Equal(t, domain.SourceStaff, appt.Source)
	assert.Equal(t, patientID, appt.PatientID)
	assert.Equal(t, 30, appt.DurationMinutes)
	assert.True(t, appt.StartAt.Equal(f.at("10:00")))

	assert.Equal(t, 1, f.metrics.Created["staff"])
	assert.Equal(t, []types.Date{monday}, f.cache.Invalidated)
	assert.Empty(t, f.notifications.Requested)
}

func TestExecute_PatientCreatesPendingForSelf(t *testing.T) {
	f := newFixture(t)
	req := staffRequest(1, "10:00")
	req.Actor = domain.Actor{UserID: 77, Role: domain.RolePatient, CompanyID: companyID}
	req.PatientID = 0

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPendingApproval, resp.Appointment.Status)
	assert.Equal(t, domain.SourceSelfService, resp.Appointment.Source)
	assert.Equal(t, int64(77), resp.Appointment.PatientID)
	assert.Equal(t, []int64{resp.Appointment.ID}, f.notifications.Requested)
	assert.Equal(t, 1, f.metrics.Created["self_service"])
}

func TestExecute_PatientCannotBookForOthers(t *testing.T) {
	f := newFixture(t)
	req := staffRequest(1, "10:00")
	req.Actor = domain.Actor{UserID: 77, Role: domain.RolePatient, CompanyID: companyID}

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_OtherCompanyDenied(t *testing.T) {
	f := newFixture(t)
	req := staffRequest(1, "10:00")
	req.Actor.CompanyID = 2

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_ProfessionalConflict(t *testing.T) {
	// существующая запись 10:00-10:45, кандидат 10:30-11:00
	f := newFixture(t)
	existing := confirmed(0, 1, f.at("10:00"), 45)
	f.appointments = testutil.NewAppointments(existing)
	f.uc.appointmentRepo = f.appointments
	f.uc.detector = conflicts.NewDetector(f.appointments, f.loc)

	_, err := f.uc.Execute(context.Background(), staffRequest(1, "10:30"))

	require.ErrorIs(t, err, scheduling.ErrScheduleConflict)
	var conflictErr *scheduling.ConflictError
	require.True(t, errors.As(err, &conflictErr))
	require.NotNil(t, conflictErr.Appointment)
	assert.Equal(t, existing.ID, conflictErr.Appointment.ID)
	assert.Equal(t, 1, f.metrics.Rejections["schedule_conflict"])
	assert.Empty(t, f.cache.Invalidated)
}

func TestExecute_BackToBackIsAllowed(t *testing.T) {
	f := newFixture(t)
	existing := confirmed(0, 1, f.at("10:00"), 45)
	f.appointments = testutil.NewAppointments(existing)
	f.uc.appointmentRepo = f.appointments
	f.uc.detector = conflicts.NewDetector(f.appointments, f.loc)

	_, err := f.uc.Execute(context.Background(), staffRequest(1, "10:45"))
	assert.NoError(t, err)
}

func TestExecute_RoomCapacity(t *testing.T) {
	f := newFixture(t)
	seed := []*domain.Appointment{
		confirmed(0, 1, f.at("09:00"), 30),
		confirmed(0, 2, f.at("09:00"), 30),
		confirmed(0, 3, f.at("09:00"), 30),
	}
	f.appointments = testutil.NewAppointments(seed...)
	f.uc.appointmentRepo = f.appointments
	f.uc.detector = conflicts.NewDetector(f.appointments, f.loc)

	_, err := f.uc.Execute(context.Background(), staffRequest(4, "09:15"))

	assert.ErrorIs(t, err, scheduling.ErrRoomCapacity)
	assert.Equal(t, 1, f.metrics.Rejections["room_capacity"])
}

func TestExecute_PendingDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	pending := confirmed(0, 1, f.at("14:00"), 30)
	pending.Status = domain.StatusPendingApproval
	f.appointments = testutil.NewAppointments(pending)
	f.uc.appointmentRepo = f.appointments
	f.uc.detector = conflicts.NewDetector(f.appointments, f.loc)

	_, err := f.uc.Execute(context.Background(), staffRequest(1, "14:00"))
	assert.NoError(t, err)
}

func TestExecute_OutOfHours(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name  string
		start types.TimeString
	}{
		{"before opening", "07:30"},
		{"ends after closing", "17:45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), staffRequest(1, tt.start))
			assert.ErrorIs(t, err, scheduling.ErrOutOfHours)
		})
	}
}

func TestExecute_LastSlotEndingAtClosing(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), staffRequest(1, "17:30"))
	assert.NoError(t, err)
}

func TestExecute_ProfessionalOverrideHours(t *testing.T) {
	f := newFixture(t)
	f.hours.Professionals = map[int64]domain.WeeklySchedule{
		1: {time.Monday: {IsOpen: true, Start: "13:00", End: "17:00"}},
	}

	_, err := f.uc.Execute(context.Background(), staffRequest(1, "10:00"))
	assert.ErrorIs(t, err, scheduling.ErrOutOfHours)

	_, err = f.uc.Execute(context.Background(), staffRequest(2, "10:00"))
	assert.NoError(t, err)
}

func TestExecute_UnavailabilityRule(t *testing.T) {
	f := newFixture(t)
	f.rules.Rules = []*domain.UnavailabilityRule{{
		ID:               3,
		CompanyID:        companyID,
		StartTime:        "12:00",
		EndTime:          "13:00",
		Dates:            []types.Date{monday},
		AllProfessionals: true,
	}}

	_, err := f.uc.Execute(context.Background(), staffRequest(1, "11:45"))
	assert.ErrorIs(t, err, scheduling.ErrUnavailabilityBlocked)

	// граница правила полуоткрытая
	_, err = f.uc.Execute(context.Background(), staffRequest(1, "13:00"))
	assert.NoError(t, err)
	_, err = f.uc.Execute(context.Background(), staffRequest(2, "11:30"))
	assert.NoError(t, err)
}

func TestExecute_TimeValidation(t *testing.T) {
	f := newFixture(t)
	f.uc.timeProvider = &testutil.Clock{At: f.at("09:10")}
	f.configs.Config.MinAdvanceMinutes = 60

	_, err := f.uc.Execute(context.Background(), staffRequest(1, "09:00"))
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = f.uc.Execute(context.Background(), staffRequest(1, "10:00"))
	assert.ErrorIs(t, err, ErrTooSoon)

	_, err = f.uc.Execute(context.Background(), staffRequest(1, "10:30"))
	assert.NoError(t, err)

	far := staffRequest(1, "10:00")
	far.Date = monday.AddDays(63)
	_, err = f.uc.Execute(context.Background(), far)
	assert.ErrorIs(t, err, ErrDateTooFarInFuture)
}

func TestExecute_DatabaseGuardReportsConflict(t *testing.T) {
	f := newFixture(t)
	// детектор не видит записей, пересечение ловит хранилище
	f.uc.detector = conflicts.NewDetector(testutil.NewAppointments(), f.loc)
	_, err := f.appointments.Create(context.Background(), confirmed(0, 1, f.at("10:00"), 30))
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), staffRequest(1, "10:00"))
	assert.ErrorIs(t, err, scheduling.ErrScheduleConflict)
}

func TestExecute_ClinicLookups(t *testing.T) {
	f := newFixture(t)

	req := staffRequest(1, "10:00")
	req.ProcedureID = 999
	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrProcedureNotFound)

	f.clinic.Procedures[procedure30].Active = false
	_, err = f.uc.Execute(context.Background(), staffRequest(1, "10:00"))
	assert.ErrorIs(t, err, ErrProcedureNotFound)
	f.clinic.Procedures[procedure30].Active = true

	_, err = f.uc.Execute(context.Background(), staffRequest(42, "10:00"))
	assert.ErrorIs(t, err, ErrProfessionalNotFound)

	f.clinic.Err = errors.New("connection refused")
	_, err = f.uc.Execute(context.Background(), staffRequest(1, "10:00"))
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_StorageFailureIsNotAvailability(t *testing.T) {
	f := newFixture(t)
	f.uc.detector = conflicts.NewDetector(&testutil.Appointments{Err: errors.New("db down")}, f.loc)

	_, err := f.uc.Execute(context.Background(), staffRequest(1, "10:00"))
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.metrics.Created)
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"no professional", func(r *Request) { r.ProfessionalID = 0 }},
		{"no procedure", func(r *Request) { r.ProcedureID = 0 }},
		{"no date", func(r *Request) { r.Date = types.Date{} }},
		{"bad time", func(r *Request) { r.StartTime = "25:00" }},
		{"room zero", func(r *Request) { r.RoomID = ptr.Ptr(0) }},
		{"room above pool", func(r *Request) { r.RoomID = ptr.Ptr(4) }},
		{"staff without patient", func(r *Request) { r.PatientID = 0 }},
		{"notes too long", func(r *Request) { r.Notes = ptr.Ptr(strings.Repeat("a", domain.MaxNotesLength+1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := staffRequest(1, "10:00")
			tt.mutate(req)
			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_NotesLimitCountsCharacters(t *testing.T) {
	f := newFixture(t)
	req := staffRequest(1, "10:00")
	req.Notes = ptr.Ptr(strings.Repeat("ã", domain.MaxNotesLength))

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, *req.Notes, *resp.Appointment.Notes)
}
