package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-AppointmentService/internal/usecase/get_available_slots"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error

	gotReq *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(uc *fakeUseCase) *mux.Router {
	r := mux.NewRouter()
	h := NewHandler(uc, nopLogger{})
	r.HandleFunc("/api/v1/businesses/{businessId}/available-slots", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		BusinessID: 3,
		Slots: []domain.Slot{
			{Time: "09:00", Available: true},
			{Time: "09:30", Available: false},
		},
		Hours: &getAvailableSlots.HoursInfo{Open: "09:00", Close: "10:00", SlotDuration: 30},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/3/available-slots?date=2025-06-02", nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	require.Len(t, body.AvailableSlots, 2)
	assert.Equal(t, "09:00", body.AvailableSlots[0].Time)
	assert.True(t, body.AvailableSlots[0].Available)
	assert.False(t, body.AvailableSlots[1].Available)
	require.NotNil(t, body.BusinessHours)
	assert.Equal(t, 30, body.BusinessHours.SlotDuration)
	assert.Empty(t, body.Message)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(3), uc.gotReq.BusinessID)
	assert.Equal(t, "2025-06-02", uc.gotReq.Date.Format(domain.DateFormat))
}

func TestHandle_ClosedDay(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		BusinessID: 3,
		Closed:     true,
		Slots:      []domain.Slot{},
	}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/3/available-slots?date=2025-06-01", nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	assert.Empty(t, body.AvailableSlots)
	assert.Nil(t, body.BusinessHours)
	assert.Equal(t, "closed", body.Message)
}

func TestHandle_BadDate(t *testing.T) {
	uc := &fakeUseCase{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/3/available-slots?date=02.06.2025", nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_BusinessNotFound(t *testing.T) {
	uc := &fakeUseCase{err: getAvailableSlots.ErrBusinessNotFound}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/businesses/404/available-slots?date=2025-06-02", nil)
	rec := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
