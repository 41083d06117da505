// Package aladhan fetches daily prayer timetables from the Al Adhan API.
package aladhan

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/miqat-dev/miqat/internal/model"
)

const (
	defaultBaseURL = "https://api.aladhan.com/v1"

	// Umm al-Qura calculation method.
	calculationMethod = 4
)

// Client talks to the Al Adhan timings API. The zero value is not usable;
// construct with NewClient.
type Client struct {
	httpClient *http.Client
	// BaseURL is exported so tests can point the client at an httptest server.
	BaseURL string
}

func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		BaseURL:    defaultBaseURL,
	}
}

// response is the relevant slice of the API envelope.
type response struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Data    struct {
		Timings map[model.PrayerKey]string `json:"timings"`
	} `json:"data"`
}

// FetchByCity fetches the timetable for the given date, city, and country.
// The country defaults to model.DefaultCountry when empty. It performs no
// retries; transport and application failures are returned as
// *TransportError and *ApplicationError respectively.
func (c *Client) FetchByCity(ctx context.Context, date time.Time, city, country string) (model.TimingsSnapshot, error) {
	var snap model.TimingsSnapshot

	if city == "" {
		return snap, fmt.Errorf("city must not be empty")
	}
	if country == "" {
		country = model.DefaultCountry
	}

	dateStr := model.APIDate(date)

	params := url.Values{}
	params.Set("city", city)
	params.Set("country", country)
	params.Set("method", fmt.Sprintf("%d", calculationMethod))

	reqURL := fmt.Sprintf("%s/timingsByCity/%s?%s", c.BaseURL, dateStr, params.Encode())

	log.Debug().Str("city", city).Str("country", country).Str("date", dateStr).
		Msg("fetching prayer times")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return snap, fmt.Errorf("build timings request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return snap, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return snap, &TransportError{StatusCode: resp.StatusCode}
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return snap, fmt.Errorf("decode timings response: %w", err)
	}

	if body.Code != http.StatusOK {
		return snap, &ApplicationError{Code: body.Code, Status: body.Status}
	}

	snap.Date = dateStr
	snap.Timings = body.Data.Timings
	return snap, nil
}
