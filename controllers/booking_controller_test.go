package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Rachana0206/dream-frame-studio/applications/booking"
	"github.com/Rachana0206/dream-frame-studio/applications/notify"
	"github.com/Rachana0206/dream-frame-studio/controllers"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu         sync.Mutex
	nextID     int64
	rows       []booking.Booking
	failInsert bool
}

func (f *fakeStore) Insert(_ context.Context, bk *booking.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInsert {
		return errors.New("insert failed")
	}
	f.nextID++
	bk.ID = f.nextID
	bk.CreatedAt = time.Now()
	bk.Status = booking.StatusPending
	f.rows = append(f.rows, *bk)
	return nil
}

func (f *fakeStore) ListAll(_ context.Context) ([]booking.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]booking.Booking, 0, len(f.rows))
	for i := len(f.rows) - 1; i >= 0; i-- {
		out = append(out, f.rows[i])
	}
	return out, nil
}

func (f *fakeStore) UpdateStatus(_ context.Context, id int64, status booking.Status) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows[i].Status = status
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) Delete(_ context.Context, id int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.rows)
}

type failingMailer struct{}

func (failingMailer) Send(notify.Job) error { return errors.New("transport down") }

func newBookingController(store booking.Storer) *controllers.BookingController {
	d := notify.NewDispatcher(failingMailer{})
	svc := booking.NewService(store, d, "owner@studio.test", "http://localhost:3000")
	return controllers.NewBookingController(svc)
}

func jsonRequest(method, target, body string) (*http.Request, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req, httptest.NewRecorder()
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateBookingHandler(t *testing.T) {
	e := echo.New()
	store := &fakeStore{}
	bc := newBookingController(store)

	req, rec := jsonRequest(http.MethodPost, "/api/bookings",
		`{"name":"Ana","email":"a@x.com","phone":"555","service_type":"wedding"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, bc.Create(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 1, body["bookingId"])
	assert.Equal(t, "Booking submitted successfully!", body["message"])
	assert.Equal(t, 1, store.count())
}

func TestCreateBookingHandlerMissingPhone(t *testing.T) {
	e := echo.New()
	store := &fakeStore{}
	bc := newBookingController(store)

	req, rec := jsonRequest(http.MethodPost, "/api/bookings",
		`{"name":"Ana","email":"a@x.com","service_type":"wedding"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, bc.Create(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Contains(t, body, "error")
	assert.Zero(t, store.count(), "no row may be persisted on validation failure")
}

func TestCreateBookingHandlerStorageError(t *testing.T) {
	e := echo.New()
	bc := newBookingController(&fakeStore{failInsert: true})

	req, rec := jsonRequest(http.MethodPost, "/api/bookings",
		`{"name":"Ana","email":"a@x.com","phone":"555","service_type":"wedding"}`)
	c := e.NewContext(req, rec)

	require.NoError(t, bc.Create(c))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to save booking", decodeBody(t, rec)["error"])
}

func TestListBookingsHandler(t *testing.T) {
	e := echo.New()
	store := &fakeStore{}
	bc := newBookingController(store)

	for _, name := range []string{"Ana", "Bo"} {
		req, rec := jsonRequest(http.MethodPost, "/api/bookings",
			`{"name":"`+name+`","email":"x@x.com","phone":"555","service_type":"wedding"}`)
		require.NoError(t, bc.Create(e.NewContext(req, rec)))
	}

	req, rec := jsonRequest(http.MethodGet, "/api/bookings", "")
	c := e.NewContext(req, rec)
	require.NoError(t, bc.List(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var list []booking.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	assert.Equal(t, "Bo", list[0].Name, "newest booking first")
}

func TestUpdateStatusHandler(t *testing.T) {
	e := echo.New()
	store := &fakeStore{}
	bc := newBookingController(store)

	req, rec := jsonRequest(http.MethodPost, "/api/bookings",
		`{"name":"Ana","email":"a@x.com","phone":"555","service_type":"wedding"}`)
	require.NoError(t, bc.Create(e.NewContext(req, rec)))

	t.Run("valid status", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPut, "/api/bookings/1", `{"status":"confirmed"}`)
		c := e.NewContext(req, rec)
		c.SetPath("/api/bookings/:id")
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, bc.UpdateStatus(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decodeBody(t, rec)["success"])
		assert.Equal(t, booking.StatusConfirmed, store.rows[0].Status)
	})

	t.Run("missing status", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPut, "/api/bookings/1", `{}`)
		c := e.NewContext(req, rec)
		c.SetPath("/api/bookings/:id")
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, bc.UpdateStatus(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Status is required", decodeBody(t, rec)["error"])
	})

	t.Run("unrecognized status", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPut, "/api/bookings/1", `{"status":"archived"}`)
		c := e.NewContext(req, rec)
		c.SetPath("/api/bookings/:id")
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, bc.UpdateStatus(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid status value", decodeBody(t, rec)["error"])
	})

	t.Run("non-numeric id", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPut, "/api/bookings/abc", `{"status":"confirmed"}`)
		c := e.NewContext(req, rec)
		c.SetPath("/api/bookings/:id")
		c.SetParamNames("id")
		c.SetParamValues("abc")

		require.NoError(t, bc.UpdateStatus(c))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no matching row still succeeds", func(t *testing.T) {
		req, rec := jsonRequest(http.MethodPut, "/api/bookings/42", `{"status":"cancelled"}`)
		c := e.NewContext(req, rec)
		c.SetPath("/api/bookings/:id")
		c.SetParamNames("id")
		c.SetParamValues("42")

		require.NoError(t, bc.UpdateStatus(c))
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestDeleteBookingHandlerIsIdempotent(t *testing.T) {
	e := echo.New()
	store := &fakeStore{}
	bc := newBookingController(store)

	req, rec := jsonRequest(http.MethodPost, "/api/bookings",
		`{"name":"Ana","email":"a@x.com","phone":"555","service_type":"wedding"}`)
	require.NoError(t, bc.Create(e.NewContext(req, rec)))

	for i := 0; i < 2; i++ {
		req, rec := jsonRequest(http.MethodDelete, "/api/bookings/1", "")
		c := e.NewContext(req, rec)
		c.SetPath("/api/bookings/:id")
		c.SetParamNames("id")
		c.SetParamValues("1")

		require.NoError(t, bc.Delete(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, true, decodeBody(t, rec)["success"])
	}
	assert.Zero(t, store.count())
}
