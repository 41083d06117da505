package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/miqat-dev/miqat/internal/model"
)

func TestAlarmIDSentinel(t *testing.T) {
	id := SentinelID()
	assert.True(t, id.IsSentinel())
	assert.Equal(t, "dailyUpdate", id.String())

	_, ok := id.Event()
	assert.False(t, ok)
}

func TestAlarmIDEvent(t *testing.T) {
	id := EventID(model.Asr)
	assert.False(t, id.IsSentinel())
	assert.Equal(t, "prayer_Asr", id.String())

	key, ok := id.Event()
	assert.True(t, ok)
	assert.Equal(t, model.Asr, key)
}

func TestAlarmIDComparable(t *testing.T) {
	assert.Equal(t, EventID(model.Fajr), EventID(model.Fajr))
	assert.NotEqual(t, EventID(model.Fajr), EventID(model.Isha))
	assert.NotEqual(t, SentinelID(), EventID(model.Fajr))
}
