package aladhan

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/miqat-dev/miqat/internal/model"
)

func testClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient()
	c.BaseURL = srv.URL
	return c, srv
}

func TestFetchByCitySuccess(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"code": 200,
			"status": "OK",
			"data": {"timings": {
				"Fajr": "04:12 (+03)",
				"Dhuhr": "12:15 (+03)",
				"Asr": "15:30 (+03)",
				"Maghrib": "18:45 (+03)",
				"Isha": "20:00 (+03)"
			}}
		}`))
	})
	defer srv.Close()

	date := time.Date(2026, time.August, 31, 9, 0, 0, 0, time.UTC)
	snap, err := c.FetchByCity(context.Background(), date, "Makkah", "SA")
	assert.NoError(t, err)

	assert.Equal(t, "/timingsByCity/31-08-2026", gotPath)
	assert.Equal(t, []string{"Makkah"}, gotQuery["city"])
	assert.Equal(t, []string{"SA"}, gotQuery["country"])
	assert.Equal(t, []string{"4"}, gotQuery["method"])

	assert.Equal(t, "31-08-2026", snap.Date)
	assert.Equal(t, "15:30 (+03)", snap.Timings[model.Asr])
	assert.Len(t, snap.Timings, 5)
}

func TestFetchByCityDefaultCountry(t *testing.T) {
	var gotCountry string
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		gotCountry = r.URL.Query().Get("country")
		w.Write([]byte(`{"code": 200, "status": "OK", "data": {"timings": {}}}`))
	})
	defer srv.Close()

	_, err := c.FetchByCity(context.Background(), time.Now(), "Makkah", "")
	assert.NoError(t, err)
	assert.Equal(t, model.DefaultCountry, gotCountry)
}

func TestFetchByCityEmptyCity(t *testing.T) {
	c := NewClient()
	_, err := c.FetchByCity(context.Background(), time.Now(), "", "SA")
	assert.Error(t, err)
}

func TestFetchByCityTransportError(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	defer srv.Close()

	_, err := c.FetchByCity(context.Background(), time.Now(), "Makkah", "SA")

	var te *TransportError
	assert.True(t, errors.As(err, &te), "expected TransportError, got %v", err)
	assert.Equal(t, http.StatusBadGateway, te.StatusCode)
}

func TestFetchByCityUnreachableServer(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {})
	srv.Close() // shut it down before the call

	_, err := c.FetchByCity(context.Background(), time.Now(), "Makkah", "SA")

	var te *TransportError
	assert.True(t, errors.As(err, &te), "expected TransportError, got %v", err)
	assert.Error(t, te.Unwrap())
}

func TestFetchByCityApplicationError(t *testing.T) {
	c, srv := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"code": 400, "status": "Invalid city", "data": {"timings": {}}}`))
	})
	defer srv.Close()

	_, err := c.FetchByCity(context.Background(), time.Now(), "Atlantis", "SA")

	var ae *ApplicationError
	assert.True(t, errors.As(err, &ae), "expected ApplicationError, got %v", err)
	assert.Equal(t, 400, ae.Code)
	assert.Equal(t, "Invalid city", ae.Status)
}
