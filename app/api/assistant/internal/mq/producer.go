package mq

import (
	"context"
	"encoding/json"
	"time"

	"drip/app/api/assistant/internal/config"

	"github.com/segmentio/kafka-go"
)

// PublishTurnEvent sends a turn event to Kafka. It is a no-op when no broker
// is configured; callers fire and forget, logging any error themselves.
func PublishTurnEvent(c config.KafkaConf, evt TurnEvent) error {
	if len(c.Broker) == 0 || c.TurnTopic == "" {
		return nil
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(c.Broker...),
		Topic:        c.TurnTopic,
		RequiredAcks: kafka.RequireOne,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
	}
	defer w.Close()
	msg := kafka.Message{Key: []byte(evt.SessionId), Value: body}
	return w.WriteMessages(context.Background(), msg)
}
