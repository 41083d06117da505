package notify

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

// Topic every alert is published on. Subscribers (desktop tray app, signage
// screen) render the payload however they like.
const alertTopic = "miqat/alerts"

// MQTT connection handler
var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

// MQTT connection lost handler
var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Error().Err(err).Msg("MQTT connection lost")
}

// MQTTNotifier publishes alerts as JSON messages on a fixed topic.
type MQTTNotifier struct {
	client mqtt.Client
}

var _ Notifier = (*MQTTNotifier)(nil)

type alertMessage struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NewMQTTNotifier connects to the broker at brokerURL.
func NewMQTTNotifier(brokerURL, clientID string) (*MQTTNotifier, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler
	opts.SetAutoReconnect(true)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %v", token.Error())
	}

	return &MQTTNotifier{client: client}, nil
}

func (n *MQTTNotifier) Show(id, title, body string) error {
	payload, err := json.Marshal(alertMessage{ID: id, Title: title, Body: body})
	if err != nil {
		return fmt.Errorf("encode alert: %w", err)
	}

	token := n.client.Publish(alertTopic, 1, false, payload)
	token.Wait()
	if token.Error() != nil {
		return fmt.Errorf("failed to publish alert %s: %v", id, token.Error())
	}

	log.Debug().Str("id", id).Msg("alert published")
	return nil
}

// Close disconnects from the broker.
func (n *MQTTNotifier) Close() {
	n.client.Disconnect(250)
}
