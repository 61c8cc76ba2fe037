package update_settings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/service/schedule/models"
)

type stubScheduleService struct {
	resp *models.SettingsResponse
	err  error
	got  *models.UpdateSettingsRequest
}

func (s *stubScheduleService) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.got = req
	return s.resp, s.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/settings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &stubScheduleService{resp: &models.SettingsResponse{
		BusinessStart:              10,
		BusinessEnd:                20,
		SlotIntervalMinutes:        30,
		ReservationIntervalMinutes: 15,
		MaxAdvanceBookingDays:      30,
		MinAdvanceBookingHours:     2,
		SundayClosed:               true,
	}}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, `{
		"businessStart": 10,
		"businessEnd": 20,
		"slotIntervalMinutes": 30,
		"reservationIntervalMinutes": 15,
		"maxAdvanceBookingDays": 30,
		"minAdvanceBookingHours": 2,
		"sundayClosed": true
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, 10, svc.got.BusinessStart)

	var resp models.SettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 20, resp.BusinessEnd)
	assert.True(t, resp.SundayClosed)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&stubScheduleService{}, nopLogger{})

	rec := doRequest(h, `{"businessStart": "not a number"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_UnknownField(t *testing.T) {
	h := NewHandler(&stubScheduleService{}, nopLogger{})

	rec := doRequest(h, `{"businessStart": 10, "unexpected": true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ValidationErrors(t *testing.T) {
	svc := &stubScheduleService{err: models.ValidationErrors{
		{Field: "businessEnd", Message: "must be greater than businessStart"},
	}}
	h := NewHandler(svc, nopLogger{})

	rec := doRequest(h, `{"businessStart": 20, "businessEnd": 10}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Error  string `json:"error"`
		Fields []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "businessEnd", resp.Fields[0].Field)
}

func TestHandle_ServiceError(t *testing.T) {
	h := NewHandler(&stubScheduleService{err: assert.AnError}, nopLogger{})

	rec := doRequest(h, `{"businessStart": 10, "businessEnd": 20}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
