package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/domain"
	"github.com/LeandroKolesny/Aura-System-sub000/internal/testutil"
	getAvailableSlots "github.com/LeandroKolesny/Aura-System-sub000/internal/usecase/get_available_slots"
	"github.com/LeandroKolesny/Aura-System-sub000/pkg/types"
)

type stubUseCase struct {
	got  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/companies/{companyId}/available-slots", h.Handle).Methods(http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle_ReturnsSlots(t *testing.T) {
	date, _ := types.ParseDate("2024-06-10")
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		Date:            date,
		CompanyID:       1,
		ProcedureID:     10,
		DurationMinutes: 30,
		Slots: []domain.Slot{
			{Time: "08:00", Available: true},
			{Time: "08:30", Available: false, Reason: domain.ReasonConflict},
		},
	}}
	h := NewHandler(uc, testutil.Logger{})

	w := serve(h, "/companies/1/available-slots?date=2024-06-10&procedureId=10&professionalId=2&available=true")

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, int64(1), uc.got.CompanyID)
	assert.Equal(t, int64(10), uc.got.ProcedureID)
	require.NotNil(t, uc.got.ProfessionalID)
	assert.Equal(t, int64(2), *uc.got.ProfessionalID)
	assert.True(t, uc.got.AvailableOnly)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2024-06-10", body.Date)
	assert.Equal(t, 30, body.DurationMinutes)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, Slot{Time: "08:00", Available: true}, body.Slots[0])
	assert.Equal(t, "schedule_conflict", body.Slots[1].Reason)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"bad company", "/companies/abc/available-slots?date=2024-06-10&procedureId=10"},
		{"missing procedure", "/companies/1/available-slots?date=2024-06-10"},
		{"bad professional", "/companies/1/available-slots?date=2024-06-10&procedureId=10&professionalId=-1"},
		{"missing date", "/companies/1/available-slots?procedureId=10"},
		{"bad date", "/companies/1/available-slots?date=10/06/2024&procedureId=10"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{}
			w := serve(NewHandler(uc, testutil.Logger{}), tt.target)
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
		{getAvailableSlots.ErrProcedureNotFound, http.StatusNotFound},
		{getAvailableSlots.ErrProfessionalNotFound, http.StatusNotFound},
		{getAvailableSlots.ErrInvalidDate, http.StatusBadRequest},
		{getAvailableSlots.ErrDateTooFarInFuture, http.StatusBadRequest},
		{getAvailableSlots.ErrInvalidInput, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &stubUseCase{err: tt.err}
			w := serve(NewHandler(uc, testutil.Logger{}), "/companies/1/available-slots?date=2024-06-10&procedureId=10")
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
