package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/miqat-dev/miqat/internal/model"
)

func waitForFire(t *testing.T, fires <-chan AlarmID) AlarmID {
	t.Helper()
	select {
	case id := <-fires:
		return id
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for alarm fire")
		return AlarmID{}
	}
}

func assertNoFire(t *testing.T, fires <-chan AlarmID, within time.Duration) {
	t.Helper()
	select {
	case id := <-fires:
		t.Fatalf("unexpected fire: %s", id)
	case <-time.After(within):
	}
}

func TestTimerSetOneShotFires(t *testing.T) {
	ts := NewTimerSet()
	defer ts.ClearAll()

	ts.CreateOnce(EventID(model.Asr), time.Now().Add(20*time.Millisecond))

	id := waitForFire(t, ts.Fires())
	assert.Equal(t, EventID(model.Asr), id)
}

func TestTimerSetClearAllStopsPending(t *testing.T) {
	ts := NewTimerSet()

	ts.CreateOnce(EventID(model.Asr), time.Now().Add(50*time.Millisecond))
	ts.CreateRecurring(SentinelID(), 50*time.Millisecond, 50*time.Millisecond)
	ts.ClearAll()

	assertNoFire(t, ts.Fires(), 150*time.Millisecond)
}

func TestTimerSetRecurringFiresRepeatedly(t *testing.T) {
	ts := NewTimerSet()
	defer ts.ClearAll()

	ts.CreateRecurring(SentinelID(), 10*time.Millisecond, 20*time.Millisecond)

	assert.Equal(t, SentinelID(), waitForFire(t, ts.Fires()))
	assert.Equal(t, SentinelID(), waitForFire(t, ts.Fires()))
}

func TestTimerSetReplaceSameID(t *testing.T) {
	ts := NewTimerSet()
	defer ts.ClearAll()

	// the second CreateOnce supersedes the first
	ts.CreateOnce(EventID(model.Isha), time.Now().Add(30*time.Millisecond))
	ts.CreateOnce(EventID(model.Isha), time.Now().Add(60*time.Millisecond))

	waitForFire(t, ts.Fires())
	assertNoFire(t, ts.Fires(), 100*time.Millisecond)
}
