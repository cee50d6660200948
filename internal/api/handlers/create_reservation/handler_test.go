package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	resp *createReservation.Response
	err  error
	got  *createReservation.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

const validBody = `{"storeId":1,"reservationTypeId":1,"userEmail":"user@example.com","date":"2026-09-08","startTime":"10:00"}`

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createReservation.Response{
		ID:                7,
		StoreID:           1,
		ReservationTypeID: 1,
		StaffID:           2,
		UserEmail:         "user@example.com",
		Date:              time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		StartTime:         time.Date(2026, 9, 8, 10, 0, 0, 0, time.UTC),
		EndTime:           time.Date(2026, 9, 8, 10, 30, 0, 0, time.UTC),
		Status:            "confirmed",
		CreatedAt:         time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC),
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(t, h, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var body ReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.ID)
	assert.Equal(t, int64(2), body.StaffID)
	assert.Equal(t, "2026-09-08", body.Date)
	assert.Equal(t, "10:00", body.StartTime)
	assert.Equal(t, "10:30", body.EndTime)
	assert.Equal(t, "confirmed", body.Status)

	require.NotNil(t, uc.got)
	assert.Equal(t, "10:00", uc.got.StartTime.String())
}

func TestHandle_MalformedBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: "{"},
		{name: "unknown field", body: `{"storeId":1,"bogus":true}`},
		{name: "missing email", body: `{"storeId":1,"reservationTypeId":1,"date":"2026-09-08","startTime":"10:00"}`},
		{name: "bad email", body: `{"storeId":1,"reservationTypeId":1,"userEmail":"nope","date":"2026-09-08","startTime":"10:00"}`},
		{name: "zero storeId", body: `{"storeId":0,"reservationTypeId":1,"userEmail":"user@example.com","date":"2026-09-08","startTime":"10:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandle_BadDateAndTimeFormats(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(t, h, `{"storeId":1,"reservationTypeId":1,"userEmail":"user@example.com","date":"08.09.2026","startTime":"10:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, h, `{"storeId":1,"reservationTypeId":1,"userEmail":"user@example.com","date":"2026-09-08","startTime":"10am"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "store not found", err: createReservation.ErrStoreNotFound, wantStatus: http.StatusNotFound},
		{name: "type not found", err: createReservation.ErrReservationTypeNotFound, wantStatus: http.StatusNotFound},
		{name: "store closed", err: createReservation.ErrStoreClosed, wantStatus: http.StatusBadRequest},
		{name: "invalid slot", err: createReservation.ErrInvalidSlot, wantStatus: http.StatusBadRequest},
		{name: "no qualified staff", err: createReservation.ErrNoQualifiedStaff, wantStatus: http.StatusBadRequest},
		{name: "past date", err: createReservation.ErrValidation, wantStatus: http.StatusBadRequest},
		{name: "slot taken", err: createReservation.ErrDuplicateReservation, wantStatus: http.StatusConflict},
		{name: "internal", err: createReservation.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeUseCase{err: tt.err}, nopLogger{})
			rec := doRequest(t, h, validBody)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}
