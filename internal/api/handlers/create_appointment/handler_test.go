package create_appointment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/handlers"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/middleware"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/appointments/models"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/testutil"
	createAppointment "github.com/LeandroKolesny/Aura-System-sub000/internal/usecase/create_appointment"
)

var loc = time.FixedZone("BRT", -3*60*60)

type stubUseCase struct {
	got *createAppointment.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &createAppointment.Response{Appointment: &domain.Appointment{
		ID:              42,
		CompanyID:       req.CompanyID,
		PatientID:       req.PatientID,
		ProfessionalID:  req.ProfessionalID,
		ProcedureID:     req.ProcedureID,
		StartAt:         req.Date.At(req.StartTime.Minutes(), loc),
		DurationMinutes: 30,
		Status:          domain.StatusScheduled,
		Source:          domain.SourceStaff,
	}}, nil
}

func post(h *Handler, actor *domain.Actor, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	if actor != nil {
		r = r.WithContext(middleware.WithActor(r.Context(), *actor))
	}
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

var staff = &domain.Actor{UserID: 7, Role: domain.RoleStaff, CompanyID: 1}

const validBody = `{"patientId":100,"professionalId":1,"procedureId":10,"date":"2024-06-10","startTime":"10:00","roomId":2}`

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{}
	w := post(NewHandler(uc, loc, testutil.Logger{}), staff, validBody)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(1), uc.got.CompanyID)
	assert.Equal(t, *staff, uc.got.Actor)
	assert.Equal(t, "10:00", uc.got.StartTime.String())
	require.NotNil(t, uc.got.RoomID)
	assert.Equal(t, 2, *uc.got.RoomID)

	var body models.AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(42), body.ID)
	assert.Equal(t, "2024-06-10", body.Date)
	assert.Equal(t, "10:00", body.StartTime)
	assert.Equal(t, "scheduled", body.Status)
}

func TestHandle_Unauthorized(t *testing.T) {
	w := post(NewHandler(&stubUseCase{}, loc, testutil.Logger{}), nil, validBody)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandle_BadBody(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `{`},
		{"unknown field", `{"professionalId":1,"procedureId":10,"date":"2024-06-10","startTime":"10:00","companyId":9}`},
		{"missing professional", `{"procedureId":10,"date":"2024-06-10","startTime":"10:00"}`},
		{"bad date", `{"professionalId":1,"procedureId":10,"date":"10.06.2024","startTime":"10:00"}`},
		{"bad time", `{"professionalId":1,"procedureId":10,"date":"2024-06-10","startTime":"25:00"}`},
		{"bad room", `{"professionalId":1,"procedureId":10,"date":"2024-06-10","startTime":"10:00","roomId":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{}
			w := post(NewHandler(uc, loc, testutil.Logger{}), staff, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, uc.got)
		})
	}
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{&scheduling.ConflictError{Appointment: &domain.Appointment{ID: 3, StartAt: time.Now()}}, http.StatusConflict},
		{scheduling.ErrRoomCapacity, http.StatusConflict},
		{scheduling.ErrOutOfHours, http.StatusUnprocessableEntity},
		{scheduling.ErrUnavailabilityBlocked, http.StatusUnprocessableEntity},
		{createAppointment.ErrTooSoon, http.StatusUnprocessableEntity},
		{createAppointment.ErrInvalidDate, http.StatusBadRequest},
		{createAppointment.ErrDateTooFarInFuture, http.StatusBadRequest},
		{fmt.Errorf("%w: duration", scheduling.ErrValidation), http.StatusBadRequest},
		{createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{createAppointment.ErrProcedureNotFound, http.StatusNotFound},
		{createAppointment.ErrProfessionalNotFound, http.StatusNotFound},
		{createAppointment.ErrAccessDenied, http.StatusForbidden},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := post(NewHandler(&stubUseCase{err: tt.err}, loc, testutil.Logger{}), staff, validBody)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestHandle_ConflictShowsOccupiedAppointment(t *testing.T) {
	existing := &domain.Appointment{
		ID:              99,
		ProfessionalID:  1,
		StartAt:         time.Date(2024, 6, 10, 13, 0, 0, 0, time.UTC),
		DurationMinutes: 45,
		Status:          domain.StatusScheduled,
	}
	uc := &stubUseCase{err: fmt.Errorf("create: %w", &scheduling.ConflictError{Appointment: existing})}

	w := post(NewHandler(uc, loc, testutil.Logger{}), staff, validBody)

	require.Equal(t, http.StatusConflict, w.Code)
	var body handlers.ConflictResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, msgScheduleConflict, body.Error)
	require.NotNil(t, body.Conflict)
	assert.Equal(t, handlers.ConflictingAppointment{
		ID:              99,
		ProfessionalID:  1,
		Date:            "2024-06-10",
		StartTime:       "10:00",
		EndTime:         "10:45",
		DurationMinutes: 45,
	}, *body.Conflict)
}

func TestHandle_NotesLimit(t *testing.T) {
	withNotes := func(notes string) string {
		return fmt.Sprintf(`{"patientId":100,"professionalId":1,"procedureId":10,"date":"2024-06-10","startTime":"10:00","notes":%q}`, notes)
	}

	uc := &stubUseCase{}
	w := post(NewHandler(uc, loc, testutil.Logger{}), staff, withNotes(strings.Repeat("a", domain.MaxNotesLength+1)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, uc.got)

	w = post(NewHandler(uc, loc, testutil.Logger{}), staff, withNotes(strings.Repeat("ã", domain.MaxNotesLength)))
	assert.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, uc.got)
	require.NotNil(t, uc.got.Notes)
}
