package clinicservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, nopLogger{})
}

func TestClient_GetProcedure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/companies/1/procedures/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Procedure{ID: 7, CompanyID: 1, Name: "Cleaning", DurationMinutes: 45, Active: true})
	})

	procedure, err := client.GetProcedure(context.Background(), 1, 7)

	require.NoError(t, err)
	assert.Equal(t, 45, procedure.DurationMinutes)
}

func TestClient_GetProfessional_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetProfessional(context.Background(), 1, 99)

	assert.ErrorIs(t, err, ErrProfessionalNotFound)
}

func TestClient_UnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	})

	_, err := client.GetProcedure(context.Background(), 1, 7)

	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestClient_DeductInventory_SendsIdempotencyKey(t *testing.T) {
	var got DeductInventoryRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/internal/companies/1/inventory/deductions", r.URL.Path)
		assert.Equal(t, "42", r.Header.Get(idempotencyHeader))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	})

	err := client.DeductInventory(context.Background(), 1, 42, 7)

	require.NoError(t, err)
	assert.Equal(t, DeductInventoryRequest{AppointmentID: 42, ProcedureID: 7}, got)
}

func TestClient_DeductInventory_AlreadyDone(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
	})

	assert.NoError(t, client.DeductInventory(context.Background(), 1, 42, 7))
}

func TestClient_UpdatePatientLastVisit(t *testing.T) {
	visitedAt := time.Date(2024, 6, 10, 13, 0, 0, 0, time.UTC)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/companies/1/patients/5/last-visit", r.URL.Path)
		assert.Empty(t, r.Header.Get(idempotencyHeader))
		var body LastVisitRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, visitedAt.Equal(body.VisitedAt))
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.UpdatePatientLastVisit(context.Background(), 1, 5, visitedAt))
}
