package clinicservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// idempotencyHeader заголовок, по которому clinic service отбрасывает повторные списания
const idempotencyHeader = "Idempotency-Key"

// Client клиент для работы с clinic service (процедуры, специалисты, склад, пациенты)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента clinic service
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetProcedure получает процедуру компании (нужна длительность)
func (c *Client) GetProcedure(ctx context.Context, companyID, procedureID int64) (*Procedure, error) {
	url := fmt.Sprintf("%s/internal/companies/%d/procedures/%d", c.baseURL, companyID, procedureID)

	var procedure Procedure
	if err := c.getJSON(ctx, url, ErrProcedureNotFound, &procedure); err != nil {
		return nil, err
	}
	return &procedure, nil
}

// GetProfessional получает специалиста компании
func (c *Client) GetProfessional(ctx context.Context, companyID, professionalID int64) (*Professional, error) {
	url := fmt.Sprintf("%s/internal/companies/%d/professionals/%d", c.baseURL, companyID, professionalID)

	var professional Professional
	if err := c.getJSON(ctx, url, ErrProfessionalNotFound, &professional); err != nil {
		return nil, err
	}
	return &professional, nil
}

// GetPatient получает контакты пациента
func (c *Client) GetPatient(ctx context.Context, companyID, patientID int64) (*Patient, error) {
	url := fmt.Sprintf("%s/internal/companies/%d/patients/%d", c.baseURL, companyID, patientID)

	var patient Patient
	if err := c.getJSON(ctx, url, ErrPatientNotFound, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

// DeductInventory списывает материалы процедуры
// Повторный вызов с тем же appointmentID не списывает повторно
func (c *Client) DeductInventory(ctx context.Context, companyID, appointmentID, procedureID int64) error {
	url := fmt.Sprintf("%s/internal/companies/%d/inventory/deductions", c.baseURL, companyID)
	body := DeductInventoryRequest{AppointmentID: appointmentID, ProcedureID: procedureID}

	c.log.Info("ClinicService: deducting inventory for appointment=%d procedure=%d", appointmentID, procedureID)
	return c.postJSON(ctx, url, strconv.FormatInt(appointmentID, 10), body, ErrProcedureNotFound)
}

// UpdatePatientLastVisit обновляет дату последнего визита пациента
func (c *Client) UpdatePatientLastVisit(ctx context.Context, companyID, patientID int64, visitedAt time.Time) error {
	url := fmt.Sprintf("%s/internal/companies/%d/patients/%d/last-visit", c.baseURL, companyID, patientID)
	return c.postJSON(ctx, url, "", LastVisitRequest{VisitedAt: visitedAt}, ErrPatientNotFound)
}

func (c *Client) getJSON(ctx context.Context, url string, notFound error, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp, notFound); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func (c *Client) postJSON(ctx context.Context, url, idempotencyKey string, body interface{}, notFound error) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if idempotencyKey != "" {
		req.Header.Set(idempotencyHeader, idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// 409 означает, что операция с этим ключом уже выполнена
	if idempotencyKey != "" && resp.StatusCode == http.StatusConflict {
		return nil
	}
	return checkStatus(resp, notFound)
}

func checkStatus(resp *http.Response, notFound error) error {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil
	case http.StatusBadRequest:
		return fmt.Errorf("%w: bad request", ErrInvalidResponse)
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}
}
