package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// PrayerKey names one of the daily prayer events as the timetable API spells it.
type PrayerKey string

const (
	Fajr    PrayerKey = "Fajr"
	Sunrise PrayerKey = "Sunrise"
	Dhuhr   PrayerKey = "Dhuhr"
	Asr     PrayerKey = "Asr"
	Maghrib PrayerKey = "Maghrib"
	Isha    PrayerKey = "Isha"
)

// CanonicalPrayers are the five events that get alarms, in scheduling order.
var CanonicalPrayers = []PrayerKey{Fajr, Dhuhr, Asr, Maghrib, Isha}

// DisplayPrayers is the order the timings table shows. Sunrise is shown but
// never scheduled.
var DisplayPrayers = []PrayerKey{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}

var prayerLabels = map[PrayerKey]string{
	Fajr:    "الفجر",
	Sunrise: "الشروق",
	Dhuhr:   "الظهر",
	Asr:     "العصر",
	Maghrib: "المغرب",
	Isha:    "العشاء",
}

// Label returns the Arabic display name, or the key itself for unknown events.
func (k PrayerKey) Label() string {
	if l, ok := prayerLabels[k]; ok {
		return l
	}
	return string(k)
}

// Known reports whether k is one of the five schedulable prayers.
func (k PrayerKey) Known() bool {
	for _, p := range CanonicalPrayers {
		if p == k {
			return true
		}
	}
	return false
}

// TimingsSnapshot holds the raw timetable for one day, keyed by prayer.
// Values are "HH:MM" strings, possibly with a timezone annotation appended.
type TimingsSnapshot struct {
	Date    string               `json:"date"` // DD-MM-YYYY, the day fetched for
	Timings map[PrayerKey]string `json:"timings"`
}

// UserSelection is the city the user picked in the settings UI.
type UserSelection struct {
	City    string `json:"city"`
	Country string `json:"country"`
	Label   string `json:"label"`
}

// DefaultCountry is assumed when a selection carries no country code.
const DefaultCountry = "SA"

// ParseClock parses a timetable value like "05:17" or "05:17 (+03)" into
// hour and minute. Anything after the first space is a timezone annotation
// and is ignored.
func ParseClock(raw string) (hour, minute int, err error) {
	clean, _, _ := strings.Cut(strings.TrimSpace(raw), " ")
	hh, mm, ok := strings.Cut(clean, ":")
	if !ok {
		return 0, 0, fmt.Errorf("malformed clock value %q", raw)
	}
	if hour, err = strconv.Atoi(hh); err != nil {
		return 0, 0, fmt.Errorf("malformed hour in %q: %w", raw, err)
	}
	if minute, err = strconv.Atoi(mm); err != nil {
		return 0, 0, fmt.Errorf("malformed minute in %q: %w", raw, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("clock value %q out of range", raw)
	}
	return hour, minute, nil
}

// ClockOn places hour:minute on day's calendar date, in day's location,
// with seconds zeroed.
func ClockOn(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

// APIDate formats t the way the timetable API expects dates.
func APIDate(t time.Time) string {
	return t.Format("02-01-2006")
}
