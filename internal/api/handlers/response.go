package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/LeandroKolesny/Aura-System-sub000/internal/scheduling"
)

const maxBodyBytes = 1 << 20

const msgInternalError = "внутренняя ошибка сервера"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondError отправляет ошибку с указанным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondErrorDetails отправляет ошибку с пояснением
func RespondErrorDetails(w http.ResponseWriter, status int, message, details string) {
	RespondJSON(w, status, ErrorResponse{Error: message, Details: details})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

func RespondConflict(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusConflict, message)
}

// ConflictingAppointment запись специалиста, с которой пересекается запрошенное время
type ConflictingAppointment struct {
	ID              int64  `json:"id"`
	ProfessionalID  int64  `json:"professionalId"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// ConflictResponse тело 409 при занятости специалиста
// Conflict пуст, если пересечение обнаружило ограничение БД, а не проверка в транзакции
type ConflictResponse struct {
	Error    string                  `json:"error"`
	Conflict *ConflictingAppointment `json:"conflict,omitempty"`
}

// RespondScheduleConflict отвечает 409 и добавляет пересекающуюся запись, если err ее содержит
func RespondScheduleConflict(w http.ResponseWriter, message string, err error, location *time.Location) {
	if location == nil {
		location = time.UTC
	}

	resp := ConflictResponse{Error: message}
	var conflict *scheduling.ConflictError
	if errors.As(err, &conflict) && conflict.Appointment != nil {
		appt := conflict.Appointment
		start := appt.StartAt.In(location)
		resp.Conflict = &ConflictingAppointment{
			ID:              appt.ID,
			ProfessionalID:  appt.ProfessionalID,
			Date:            start.Format("2006-01-02"),
			StartTime:       start.Format("15:04"),
			EndTime:         appt.EndAt().In(location).Format("15:04"),
			DurationMinutes: appt.DurationMinutes,
		}
	}
	RespondJSON(w, http.StatusConflict, resp)
}

func RespondUnprocessable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnprocessableEntity, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON декодирует тело запроса и проверяет теги validate
// Неизвестные поля запрещены
func DecodeJSON(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	return Validate(dst)
}

// Validate проверяет структуру по тегам validate
func Validate(v interface{}) error {
	if err := validate.Struct(v); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("field %s failed on %q", verrs[0].Field(), verrs[0].Tag())
		}
		return err
	}
	return nil
}

// PathID читает положительный int64 из переменной маршрута
func PathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return id, nil
}

// QueryID читает необязательный положительный int64 из query
func QueryID(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, fmt.Errorf("invalid %s %q", name, raw)
	}
	return &id, nil
}

// OptionalPathID читает переменную маршрута, если она есть в шаблоне
func OptionalPathID(r *http.Request, name string) (*int64, error) {
	if _, ok := mux.Vars(r)[name]; !ok {
		return nil, nil
	}
	id, err := PathID(r, name)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
