package update_company_config

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/middleware"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/config"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/config/models"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/testutil"
)

type stubService struct {
	got *models.UpdateConfigRequest
	err error
}

func (s *stubService) Update(_ context.Context, companyID int64, req *models.UpdateConfigRequest) (*models.ConfigResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.ConfigResponse{CompanyID: companyID, SlotIntervalMinutes: *req.SlotIntervalMinutes}, nil
}

func put(svc *stubService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/companies/{companyId}/config", NewHandler(svc, testutil.Logger{}).Handle)

	r := httptest.NewRequest(http.MethodPut, "/companies/1/config", strings.NewReader(body))
	r = r.WithContext(middleware.WithActor(r.Context(), domain.Actor{UserID: 7, Role: domain.RoleStaff, CompanyID: 1}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle_Updates(t *testing.T) {
	svc := &stubService{}
	w := put(svc, `{"slotIntervalMinutes":15,"roomCount":4}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, 15, *svc.got.SlotIntervalMinutes)
	assert.Equal(t, 4, *svc.got.RoomCount)
	assert.Nil(t, svc.got.MaxBookingDays)
	assert.Equal(t, domain.RoleStaff, svc.got.Actor.Role)
	assert.Contains(t, w.Body.String(), `"slotIntervalMinutes":15`)
}

func TestHandle_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"interval not allowed", `{"slotIntervalMinutes":20}`, nil, http.StatusBadRequest},
		{"zero rooms", `{"roomCount":0}`, nil, http.StatusBadRequest},
		{"unknown field", `{"slotDuration":30}`, nil, http.StatusBadRequest},
		{"patient", `{"slotIntervalMinutes":30}`, config.ErrAccessDenied, http.StatusForbidden},
		{"service validation", `{"slotIntervalMinutes":30}`, fmt.Errorf("%w: min advance", config.ErrInvalidInput), http.StatusBadRequest},
		{"storage", `{"slotIntervalMinutes":30}`, config.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := put(&stubService{err: tt.err}, tt.body)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
