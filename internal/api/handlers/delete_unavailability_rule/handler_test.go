package delete_unavailability_rule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/api/middleware"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/service/unavailability"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/testutil"
)

type stubService struct {
	err error
}

func (s stubService) Delete(context.Context, int64, int64, domain.Actor) error {
	return s.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"deleted", "/companies/1/unavailability-rules/9", nil, http.StatusNoContent},
		{"bad rule id", "/companies/1/unavailability-rules/nine", nil, http.StatusBadRequest},
		{"not found", "/companies/1/unavailability-rules/9", unavailability.ErrRuleNotFound, http.StatusNotFound},
		{"patient", "/companies/1/unavailability-rules/9", unavailability.ErrAccessDenied, http.StatusForbidden},
		{"storage", "/companies/1/unavailability-rules/9", unavailability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := mux.NewRouter()
			router.HandleFunc("/companies/{companyId}/unavailability-rules/{ruleId}",
				NewHandler(stubService{err: tt.err}, testutil.Logger{}).Handle)

			r := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			r = r.WithContext(middleware.WithActor(r.Context(), domain.Actor{UserID: 7, Role: domain.RoleStaff, CompanyID: 1}))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, r)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
