// internal/db/notifications.go
package db

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/miqat-dev/miqat/internal/model"
)

func RecordNotification(prayer, title, body string, firedAt time.Time) (model.NotificationRecord, error) {
	var n model.NotificationRecord
	const q = `
	INSERT INTO notification_log (prayer, title, body, fired_at)
	VALUES ($1, $2, $3, $4)
	RETURNING id, prayer, title, body, fired_at;`
	if err := DB.Get(&n, q, prayer, title, body, firedAt); err != nil {
		log.Error().Err(err).Msg("RecordNotification failed")
		return model.NotificationRecord{}, err
	}
	return n, nil
}

func ListNotifications(limit int) ([]model.NotificationRecord, error) {
	var out []model.NotificationRecord
	const q = `
	SELECT id, prayer, title, body, fired_at
	  FROM notification_log
	 ORDER BY fired_at DESC
	 LIMIT $1;`
	if err := DB.Select(&out, q, limit); err != nil {
		log.Error().Err(err).Msg("ListNotifications failed")
		return nil, err
	}
	return out, nil
}
