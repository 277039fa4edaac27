// internal/publish/mqtt.go
package publish

import (
	"context"
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/Lumen-Media-LLC/dayline/internal/model"
	"github.com/Lumen-Media-LLC/dayline/internal/timeline"
)

// MQTT connection handler
var connectHandler mqtt.OnConnectHandler = func(client mqtt.Client) {
	log.Info().Msg("connected to MQTT broker")
}

// MQTT connection lost handler
var connectLostHandler mqtt.ConnectionLostHandler = func(client mqtt.Client, err error) {
	log.Error().Err(err).Msg("MQTT connection lost")
}

// MQTTPublisher announces assigned day sequences on timeline/<dayKey> so
// player devices showing that day can refresh without polling.
type MQTTPublisher struct {
	client mqtt.Client
}

var _ timeline.Publisher = (*MQTTPublisher)(nil)

// NewMQTTPublisher connects to the broker and returns a publisher. The
// broker URL uses paho's scheme form, e.g. "tcp://broker:1883".
func NewMQTTPublisher(brokerURL, clientID string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = connectHandler
	opts.OnConnectionLost = connectLostHandler

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &MQTTPublisher{client: client}, nil
}

type slotPayload struct {
	Start       string            `json:"start"`
	End         string            `json:"end"`
	ContentType model.ContentType `json:"content_type"`
	ContentID   int               `json:"content_id"`
	ContentName string            `json:"content_name"`
}

type sequencePayload struct {
	Day   string        `json:"day"`
	Name  string        `json:"name"`
	Slots []slotPayload `json:"slots"`
}

// SequenceAssigned publishes the day's new timeline. Publish failures are
// logged and swallowed; the store write has already succeeded and players
// fall back to fetching the feed.
func (p *MQTTPublisher) SequenceAssigned(_ context.Context, dayKey string, seq model.DaySequence) {
	payload := sequencePayload{Day: dayKey, Name: seq.Name, Slots: make([]slotPayload, 0, len(seq.Slots))}
	for _, s := range seq.Slots {
		start, err := timeline.ToText(s.Start)
		if err != nil {
			log.Error().Err(err).Str("slot", s.ID).Msg("skipping slot with bad start")
			continue
		}
		end, err := timeline.ToBoundaryText(s.End)
		if err != nil {
			log.Error().Err(err).Str("slot", s.ID).Msg("skipping slot with bad end")
			continue
		}
		payload.Slots = append(payload.Slots, slotPayload{
			Start:       start,
			End:         end,
			ContentType: s.ContentType,
			ContentID:   s.ContentID,
			ContentName: s.ContentName,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("day", dayKey).Msg("failed to encode sequence payload")
		return
	}

	topic := fmt.Sprintf("timeline/%s", dayKey)
	if token := p.client.Publish(topic, 1, true, body); token.Wait() && token.Error() != nil {
		log.Error().Err(token.Error()).Str("topic", topic).Msg("failed to publish sequence update")
	}
}
