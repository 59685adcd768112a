package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
)

func TestAuth(t *testing.T) {
	var got domain.Actor
	handler := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := GetActor(r.Context())
		require.True(t, ok)
		got = actor
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name    string
		headers map[string]string
		status  int
	}{
		{"staff", map[string]string{HeaderUserID: "5", HeaderUserRole: "staff", HeaderCompanyID: "1"}, http.StatusNoContent},
		{"missing role", map[string]string{HeaderUserID: "5", HeaderCompanyID: "1"}, http.StatusUnauthorized},
		{"unknown role", map[string]string{HeaderUserID: "5", HeaderUserRole: "admin", HeaderCompanyID: "1"}, http.StatusUnauthorized},
		{"bad user id", map[string]string{HeaderUserID: "x", HeaderUserRole: "patient", HeaderCompanyID: "1"}, http.StatusUnauthorized},
		{"bad company id", map[string]string{HeaderUserID: "5", HeaderUserRole: "patient", HeaderCompanyID: "0"}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				r.Header.Set(k, v)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			assert.Equal(t, tt.status, w.Code)
		})
	}

	assert.Equal(t, domain.Actor{UserID: 5, Role: domain.RoleStaff, CompanyID: 1}, got)
}

type observation struct {
	method, path, status string
}

type recordingObserver struct {
	seen []observation
}

func (o *recordingObserver) ObserveHTTP(method, path, status string, _ float64) {
	o.seen = append(o.seen, observation{method, path, status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	observer := &recordingObserver{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(observer))
	r.HandleFunc("/appointments/{appointmentId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/appointments/42", nil))

	require.Len(t, observer.seen, 1)
	assert.Equal(t, observation{"GET", "/appointments/{appointmentId}", "404"}, observer.seen[0])
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

func TestRequestID(t *testing.T) {
	var fromCtx string
	handler := RequestID(nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromCtx = GetRequestID(r.Context())
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := w.Header().Get(HeaderRequestID)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, fromCtx)

	incoming := uuid.NewString()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(HeaderRequestID, incoming)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, incoming, w.Header().Get(HeaderRequestID))
}
