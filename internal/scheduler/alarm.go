package scheduler

import "github.com/miqat-dev/miqat/internal/model"

type alarmKind uint8

const (
	kindSentinel alarmKind = iota
	kindEvent
)

// AlarmID identifies a scheduled alarm. It is either the daily-refresh
// sentinel or one prayer event, decided at creation time so fires never have
// to be parsed back out of a string.
type AlarmID struct {
	kind  alarmKind
	event model.PrayerKey
}

// SentinelID is the single recurring alarm that drives the daily refresh.
func SentinelID() AlarmID {
	return AlarmID{kind: kindSentinel}
}

// EventID is the one-shot alarm for a prayer event.
func EventID(key model.PrayerKey) AlarmID {
	return AlarmID{kind: kindEvent, event: key}
}

func (id AlarmID) IsSentinel() bool {
	return id.kind == kindSentinel
}

// Event returns the prayer key for event alarms.
func (id AlarmID) Event() (model.PrayerKey, bool) {
	if id.kind != kindEvent {
		return "", false
	}
	return id.event, true
}

// String is the stable wire/log name of the alarm.
func (id AlarmID) String() string {
	if id.kind == kindSentinel {
		return "dailyUpdate"
	}
	return "prayer_" + string(id.event)
}
