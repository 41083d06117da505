// Package notify delivers prayer alerts to whatever is listening.
package notify

import "github.com/rs/zerolog/log"

// Notifier displays a message with a title and body. The id is stable per
// alert so receivers can de-duplicate.
type Notifier interface {
	Show(id, title, body string) error
}

// LogNotifier writes alerts to the service log only. Used when no MQTT
// broker is configured.
type LogNotifier struct{}

var _ Notifier = LogNotifier{}

func (LogNotifier) Show(id, title, body string) error {
	log.Info().Str("id", id).Str("title", title).Str("body", body).Msg("notification")
	return nil
}
