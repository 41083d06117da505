package scheduler

import (
	"sync"
	"time"
)

// Timers is the alarm-table capability the engine schedules against. There is
// at most one live alarm per AlarmID; creating an id again replaces it.
type Timers interface {
	ClearAll()
	CreateOnce(id AlarmID, fireAt time.Time)
	CreateRecurring(id AlarmID, delay, period time.Duration)
}

// TimerSet is the real Timers implementation. Fires are delivered on a single
// channel so the engine can consume them sequentially.
type TimerSet struct {
	mu    sync.Mutex
	stops map[string]func()
	fires chan AlarmID
}

var _ Timers = (*TimerSet)(nil)

func NewTimerSet() *TimerSet {
	return &TimerSet{
		stops: make(map[string]func()),
		fires: make(chan AlarmID, 16),
	}
}

// Fires is the channel alarm fires arrive on.
func (t *TimerSet) Fires() <-chan AlarmID {
	return t.fires
}

func (t *TimerSet) ClearAll() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, stop := range t.stops {
		stop()
	}
	t.stops = make(map[string]func())
}

func (t *TimerSet) CreateOnce(id AlarmID, fireAt time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.replaceLocked(id)

	timer := time.AfterFunc(time.Until(fireAt), func() {
		t.fires <- id
	})
	t.stops[id.String()] = func() { timer.Stop() }
}

func (t *TimerSet) CreateRecurring(id AlarmID, delay, period time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.replaceLocked(id)

	done := make(chan struct{})
	go func() {
		first := time.NewTimer(delay)
		defer first.Stop()
		select {
		case <-done:
			return
		case <-first.C:
			t.fires <- id
		}

		tick := time.NewTicker(period)
		defer tick.Stop()
		for {
			select {
			case <-done:
				return
			case <-tick.C:
				t.fires <- id
			}
		}
	}()

	var once sync.Once
	t.stops[id.String()] = func() { once.Do(func() { close(done) }) }
}

// replaceLocked stops any live alarm with the same id. Caller holds t.mu.
func (t *TimerSet) replaceLocked(id AlarmID) {
	if stop, ok := t.stops[id.String()]; ok {
		stop()
		delete(t.stops, id.String())
	}
}
