// Package scheduler turns a day's prayer timetable into armed alarms and maps
// alarm fires back to notifications.
package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/miqat-dev/miqat/internal/db"
	"github.com/miqat-dev/miqat/internal/model"
	"github.com/miqat-dev/miqat/internal/notify"
	"github.com/miqat-dev/miqat/internal/store"
)

// refreshPeriod is how often the sentinel alarm re-runs the refresh cycle.
const refreshPeriod = 24 * time.Hour

// Fetcher is the timetable source, satisfied by aladhan.Client.
type Fetcher interface {
	FetchByCity(ctx context.Context, date time.Time, city, country string) (model.TimingsSnapshot, error)
}

// Engine owns the refresh cycle: fetch today's timetable, re-arm the alarm
// table, persist what was fetched, and answer alarm fires.
type Engine struct {
	fetcher  Fetcher
	store    store.Store
	notifier notify.Notifier
	timers   Timers

	now        func() time.Time
	refreshing atomic.Bool
}

func New(fetcher Fetcher, st store.Store, notifier notify.Notifier, timers Timers) *Engine {
	return &Engine{
		fetcher:  fetcher,
		store:    st,
		notifier: notifier,
		timers:   timers,
		now:      time.Now,
	}
}

// Reschedule replaces the whole alarm table from snap: one one-shot alarm per
// prayer still ahead of the clock today, plus the recurring daily-refresh
// sentinel. Clearing everything first keeps repeated refreshes from
// accumulating duplicate or stale alarms.
func (e *Engine) Reschedule(snap model.TimingsSnapshot) {
	e.timers.ClearAll()

	now := e.now()

	for _, key := range model.CanonicalPrayers {
		raw, ok := snap.Timings[key]
		if !ok || raw == "" {
			log.Warn().Str("prayer", string(key)).Msg("no timing in snapshot")
			continue
		}

		hour, minute, err := model.ParseClock(raw)
		if err != nil {
			log.Warn().Err(err).Str("prayer", string(key)).Msg("unparseable timing")
			continue
		}

		fireAt := model.ClockOn(now, hour, minute)
		if !fireAt.After(now) {
			log.Debug().Str("prayer", string(key)).Str("time", raw).
				Msg("already passed today, skipping")
			continue
		}

		e.timers.CreateOnce(EventID(key), fireAt)
		log.Info().Str("prayer", string(key)).Time("at", fireAt).Msg("alarm set")
	}

	e.timers.CreateRecurring(SentinelID(), refreshPeriod, refreshPeriod)
}

// OnFire handles one alarm fire. The sentinel re-runs the refresh cycle; an
// event alarm becomes a notification. Anything else is ignored.
func (e *Engine) OnFire(ctx context.Context, id AlarmID) {
	if id.IsSentinel() {
		log.Info().Msg("daily refresh alarm fired")
		_ = e.Refresh(ctx)
		return
	}

	key, ok := id.Event()
	if !ok || !key.Known() {
		return
	}

	label := key.Label()
	title := "🕌 وقت صلاة " + label
	body := "حان الآن موعد صلاة " + label

	if err := e.notifier.Show(id.String(), title, body); err != nil {
		log.Error().Err(err).Str("prayer", string(key)).Msg("failed to show notification")
	}

	if db.DB != nil {
		if _, err := db.RecordNotification(string(key), title, body, e.now()); err != nil {
			log.Error().Err(err).Str("prayer", string(key)).Msg("failed to record notification")
		}
	}
}

// Refresh runs one full cycle: read the selection, fetch today's timetable,
// re-arm the alarms, persist the snapshot. Without a selection it is a
// quiescent no-op. A cycle racing an in-flight one is dropped. On failure the
// previously armed alarms and persisted timings are left untouched.
func (e *Engine) Refresh(ctx context.Context) error {
	if !e.refreshing.CompareAndSwap(false, true) {
		log.Debug().Msg("refresh already in flight, dropping trigger")
		return nil
	}
	defer e.refreshing.Store(false)

	sel, err := e.store.Selection(ctx)
	if errors.Is(err, store.ErrNoSelection) {
		log.Info().Msg("no city selected yet, waiting for user input")
		return nil
	} else if err != nil {
		log.Error().Err(err).Msg("failed to read selection")
		return err
	}

	snap, err := e.fetcher.FetchByCity(ctx, e.now(), sel.City, sel.Country)
	if err != nil {
		log.Error().Err(err).Str("city", sel.City).Msg("failed to fetch prayer times")
		return err
	}

	e.Reschedule(snap)

	if err = e.store.SaveTimings(ctx, snap, e.now()); err != nil {
		log.Error().Err(err).Msg("failed to persist timings")
		return err
	}

	log.Info().Str("city", sel.City).Msg("prayer times refreshed and alarms scheduled")
	return nil
}

// Run refreshes once at startup, then consumes alarm fires until ctx is
// cancelled. Fires are dispatched one at a time.
func (e *Engine) Run(ctx context.Context, fires <-chan AlarmID) {
	_ = e.Refresh(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case id := <-fires:
			log.Debug().Stringer("alarm", id).Msg("alarm fired")
			e.OnFire(ctx, id)
		}
	}
}
