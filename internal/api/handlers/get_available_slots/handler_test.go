package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_MissingParams(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	tests := []struct {
		name string
		url  string
	}{
		{name: "no params", url: "/api/reservations/available"},
		{name: "missing storeId", url: "/api/reservations/available?reservationTypeId=1"},
		{name: "missing reservationTypeId", url: "/api/reservations/available?storeId=1"},
		{name: "non-numeric storeId", url: "/api/reservations/available?storeId=abc&reservationTypeId=1"},
		{name: "non-numeric reservationTypeId", url: "/api/reservations/available?storeId=1&reservationTypeId=abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, tt.url)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestHandle_Success(t *testing.T) {
	day := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	h := NewHandler(&fakeUseCase{resp: &getAvailableSlots.Response{
		Days: []getAvailableSlots.DaySlots{
			{Date: day, Slots: []types.TimeString{"10:00", "10:30"}},
			{Date: day.AddDate(0, 0, 1), Slots: []types.TimeString{}},
		},
	}}, nopLogger{})

	rec := doRequest(t, h, "/api/reservations/available?storeId=1&reservationTypeId=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.AvailableSlots, 2)
	assert.Equal(t, "2026-09-08", body.AvailableSlots[0].Date)
	assert.Equal(t, []string{"10:00", "10:30"}, body.AvailableSlots[0].Slots)
	assert.Empty(t, body.AvailableSlots[1].Slots)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "store not found", err: getAvailableSlots.ErrStoreNotFound, wantStatus: http.StatusNotFound},
		{name: "type not found", err: getAvailableSlots.ErrReservationTypeNotFound, wantStatus: http.StatusNotFound},
		{name: "no qualified staff", err: getAvailableSlots.ErrNoQualifiedStaff, wantStatus: http.StatusBadRequest},
		{name: "internal", err: getAvailableSlots.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})
			rec := doRequest(t, h, "/api/reservations/available?storeId=1&reservationTypeId=1")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
