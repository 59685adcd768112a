package get_company_config

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/middleware"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/config/models"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/testutil"
)

type stubService struct {
	err error
}

func (s stubService) Get(_ context.Context, companyID int64) (*models.ConfigResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.ConfigResponse{CompanyID: companyID, SlotIntervalMinutes: 60, RoomCount: 3, IsDefault: true}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"defaults", "/companies/1/config", nil, http.StatusOK},
		{"bad id", "/companies/-1/config", nil, http.StatusBadRequest},
		{"other company", "/companies/2/config", nil, http.StatusForbidden},
		{"storage", "/companies/1/config", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := mux.NewRouter()
			router.HandleFunc("/companies/{companyId}/config", NewHandler(stubService{err: tt.err}, testutil.Logger{}).Handle)

			r := httptest.NewRequest(http.MethodGet, tt.target, nil)
			r = r.WithContext(middleware.WithActor(r.Context(), domain.Actor{UserID: 100, Role: domain.RolePatient, CompanyID: 1}))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, w.Body.String(), `"isDefault":true`)
			}
		})
	}
}
