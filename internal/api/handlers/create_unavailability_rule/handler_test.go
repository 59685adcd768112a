package create_unavailability_rule

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
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/unavailability"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/unavailability/models"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/testutil"
)

type stubService struct {
	got *models.CreateRuleRequest
	err error
}

func (s *stubService) Create(_ context.Context, companyID int64, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.RuleResponse{ID: 9, CompanyID: companyID, StartTime: req.StartTime, EndTime: req.EndTime, Dates: req.Dates}, nil
}

func post(svc *stubService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/companies/{companyId}/unavailability-rules", NewHandler(svc, testutil.Logger{}).Handle)

	r := httptest.NewRequest(http.MethodPost, "/companies/1/unavailability-rules", strings.NewReader(body))
	r = r.WithContext(middleware.WithActor(r.Context(), domain.Actor{UserID: 7, Role: domain.RoleStaff, CompanyID: 1}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

const lunch = `{"description":"almoço","startTime":"12:00","endTime":"13:00","dates":["2024-06-10","2024-06-11"],"allProfessionals":true}`

func TestHandle_Created(t *testing.T) {
	svc := &stubService{}
	w := post(svc, lunch)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.got)
	assert.True(t, svc.got.AllProfessionals)
	assert.Len(t, svc.got.Dates, 2)
	assert.Equal(t, int64(7), svc.got.Actor.UserID)
	assert.Contains(t, w.Body.String(), `"id":9`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"no dates", `{"startTime":"12:00","endTime":"13:00","dates":[]}`, nil, http.StatusBadRequest},
		{"missing start", `{"endTime":"13:00","dates":["2024-06-10"]}`, nil, http.StatusBadRequest},
		{"patient", lunch, unavailability.ErrAccessDenied, http.StatusForbidden},
		{"bad window", lunch, fmt.Errorf("%w: start after end", unavailability.ErrInvalidInput), http.StatusBadRequest},
		{"storage", lunch, unavailability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(&stubService{err: tt.err}, tt.body)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
