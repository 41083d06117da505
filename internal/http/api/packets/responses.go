package packets

import "github.com/miqat-dev/miqat/internal/model"

// ActionResponse acknowledges citySelected / refreshNow actions.
type ActionResponse struct {
	Success bool `json:"success"`
}

// TimingRow is one line of the timings table, timezone suffix stripped.
type TimingRow struct {
	Key   model.PrayerKey `json:"key"`
	Label string          `json:"label"`
	Time  string          `json:"time"`
}

// TimingsResponse is what the settings UI renders.
type TimingsResponse struct {
	CityLabel   string      `json:"city_label"`
	Date        string      `json:"date"`
	LastUpdated string      `json:"last_updated"`
	Rows        []TimingRow `json:"rows"`
}

// HistoryResponse lists recently delivered alerts.
type HistoryResponse struct {
	Notifications []model.NotificationRecord `json:"notifications"`
}
