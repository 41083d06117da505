package model

import "time"

// NotificationRecord is one delivered prayer alert, as kept in the log.
type NotificationRecord struct {
	ID      int       `db:"id"       json:"id"`
	Prayer  string    `db:"prayer"   json:"prayer"`
	Title   string    `db:"title"    json:"title"`
	Body    string    `db:"body"     json:"body"`
	FiredAt time.Time `db:"fired_at" json:"fired_at"`
}
