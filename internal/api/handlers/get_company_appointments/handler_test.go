package get_company_appointments

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/middleware"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/appointments"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/appointments/models"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/testutil"
)

type stubService struct {
	got *models.ListAppointmentsRequest
	err error
}

func (s *stubService) List(_ context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.AppointmentListResponse{Appointments: []models.AppointmentResponse{{ID: 1}, {ID: 2}}}, nil
}

func get(svc *stubService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/companies/{companyId}/appointments", NewHandler(svc, testutil.Logger{}).Handle)

	r := httptest.NewRequest(http.MethodGet, target, nil)
	r = r.WithContext(middleware.WithActor(r.Context(), domain.Actor{UserID: 7, Role: domain.RoleStaff, CompanyID: 1}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle_ParsesFilters(t *testing.T) {
	svc := &stubService{}
	w := get(svc, "/companies/1/appointments?professionalId=3&startDate=2024-06-10&endDate=2024-06-14&status=confirmed&includeCanceled=true")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, int64(1), svc.got.CompanyID)
	require.NotNil(t, svc.got.ProfessionalID)
	assert.Equal(t, int64(3), *svc.got.ProfessionalID)
	assert.Equal(t, "2024-06-10", svc.got.StartDate.String())
	assert.Equal(t, "2024-06-14", svc.got.EndDate.String())
	assert.Equal(t, "confirmed", *svc.got.Status)
	assert.True(t, svc.got.IncludeCanceled)

	var body []models.AppointmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body, 2)
	assert.Equal(t, int64(2), body[1].ID)
}

func TestHandle_SingleDate(t *testing.T) {
	svc := &stubService{}
	w := get(svc, "/companies/1/appointments?date=2024-06-10")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2024-06-10", svc.got.StartDate.String())
	assert.Equal(t, "2024-06-10", svc.got.EndDate.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"bad company", "/companies/x/appointments", nil, http.StatusBadRequest},
		{"bad professional", "/companies/1/appointments?professionalId=abc", nil, http.StatusBadRequest},
		{"bad date", "/companies/1/appointments?startDate=june", nil, http.StatusBadRequest},
		{"bad flag", "/companies/1/appointments?includeCanceled=maybe", nil, http.StatusBadRequest},
		{"other company", "/companies/2/appointments", appointments.ErrAccessDenied, http.StatusForbidden},
		{"invalid status", "/companies/1/appointments?status=archived", appointments.ErrInvalidInput, http.StatusBadRequest},
		{"storage", "/companies/1/appointments", appointments.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(&stubService{err: tt.err}, tt.target)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
