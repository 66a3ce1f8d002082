// internal/infra/kafka/producer.go
package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"
)

// Producer publishes audit events to a Kafka topic so downstream
// consumers (reporting, notifications) see every state change without
// polling the database.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer initializes a writer against a single broker.
// LeastBytes keeps partitions evenly loaded; the event target id is
// used as the message key so changes to one record stay ordered.
func NewProducer(brokerURL, topic string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokerURL),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Producer) Publish(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
