// Package store persists the user's city selection and the last fetched
// timetable in a key-value store.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/miqat-dev/miqat/internal/model"
)

// Persisted keys.
const (
	KeyCity        = "city"
	KeyCountry     = "country"
	KeyCityLabel   = "cityLabel"
	KeyTimings     = "timings"
	KeyLastUpdated = "lastUpdated"
)

// ErrNoSelection is returned while no city has been chosen yet. It marks a
// valid quiescent state, not a failure.
var ErrNoSelection = errors.New("no city selected")

// Store is the persistence capability handed to the scheduling engine and the
// API handlers.
type Store interface {
	// Selection returns the saved city, or ErrNoSelection.
	Selection(ctx context.Context) (model.UserSelection, error)
	SaveSelection(ctx context.Context, sel model.UserSelection) error

	// Timings returns the last persisted snapshot and when it was written.
	Timings(ctx context.Context) (model.TimingsSnapshot, time.Time, error)
	SaveTimings(ctx context.Context, snap model.TimingsSnapshot, updatedAt time.Time) error
}
