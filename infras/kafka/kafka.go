// Package kafka is the producer behind the kafka notification driver.
package kafka

import (
	"context"
	"encoding/json"
	"estate/config"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const batchTimeout = 10 * time.Millisecond

// Message is JSON encoded on the wire. Messages sharing a key land on the same
// partition, so one recipient's events stay ordered.
type Message struct {
	Key     string
	Value   any
	Headers map[string]string
}

func (m *Message) ToKafkaMessage(topic string) (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to marshal message value to JSON: %w", err)
	}

	headers := make([]kafkaGo.Header, 0, len(m.Headers))
	for key, val := range m.Headers {
		headers = append(headers, kafkaGo.Header{Key: key, Value: []byte(val)})
	}

	return kafkaGo.Message{
		Topic:   topic,
		Key:     []byte(m.Key),
		Value:   value,
		Headers: headers,
	}, nil
}

type Client interface {
	SendMessages(ctx context.Context, topic string, messages ...Message) error
	Close() error
}

type kafkaClientImpl struct {
	writer *kafkaGo.Writer
}

// New builds a producer for the configured brokers. Connections open lazily on the first
// write.
func New(cfg *config.Config) Client {
	transport := &kafkaGo.Transport{}

	if cfg.Kafka.SASL.Username != "" {
		transport.SASL = plain.Mechanism{
			Username: cfg.Kafka.SASL.Username,
			Password: cfg.Kafka.SASL.Password,
		}
	}

	return &kafkaClientImpl{
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
			Transport:              transport,
			Balancer:               &kafkaGo.Hash{},
			RequiredAcks:           kafkaGo.RequireOne,
			BatchTimeout:           batchTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

func (k *kafkaClientImpl) SendMessages(ctx context.Context, topic string, messages ...Message) error {
	msgs := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.ToKafkaMessage(topic)
		if err != nil {
			log.Error().Err(err).Str("topic", topic).Str("key", message.Key).Msg("Failed to encode Kafka message.")

			return err
		}

		msgs = append(msgs, msg)
	}

	if err := k.writer.WriteMessages(ctx, msgs...); err != nil {
		log.Error().Err(err).Str("topic", topic).Msg("Failed to send message to Kafka.")

		return fmt.Errorf("failed to send message to Kafka: %w", err)
	}

	log.Debug().Str("topic", topic).Int("count", len(msgs)).Msg("Sent message successfully.")

	return nil
}

func (k *kafkaClientImpl) Close() error {
	if err := k.writer.Close(); err != nil {
		return fmt.Errorf("failed to close Kafka writer: %w", err)
	}

	return nil
}
