package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"staysync/config"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

var ErrEmptyTopic = errors.New("kafka topic cannot be empty")

// Handler processes one message. The offset is committed once it returns, whatever the result,
// so a poison message never blocks the partition.
type Handler func(ctx context.Context, message kafkaGo.Message) error

// Decode unmarshals a JSON message value into T.
func Decode[T any](msg kafkaGo.Message) (T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return value, fmt.Errorf("failed to unmarshal Kafka message value from JSON: %w", err)
	}

	return value, nil
}

type Client interface {
	Consume(ctx context.Context, topic string, handler Handler) error
}

type kafkaClientImpl struct {
	config *config.Config
	dialer *kafkaGo.Dialer
}

func New(config *config.Config) Client {
	dialer := &kafkaGo.Dialer{
		DualStack: true,
	}

	if config.Kafka.SASL.Username != "" {
		dialer.SASLMechanism = plain.Mechanism{
			Username: config.Kafka.SASL.Username,
			Password: config.Kafka.SASL.Password,
		}
	}

	log.Info().Strs("brokers", config.Kafka.Brokers).Msg("Kafka client initialized")

	return &kafkaClientImpl{
		config: config,
		dialer: dialer,
	}
}

func (k *kafkaClientImpl) reader(topic string) *kafkaGo.Reader {
	return kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     k.config.Kafka.Brokers,
		Topic:       topic,
		GroupID:     k.config.Kafka.ConsumerGroup,
		Dialer:      k.dialer,
		StartOffset: kafkaGo.LastOffset,
	})
}

// Consume reads the topic until ctx is cancelled, handling messages one at a time in offset order.
func (k *kafkaClientImpl) Consume(ctx context.Context, topic string, handler Handler) error {
	if topic == "" {
		return ErrEmptyTopic
	}

	return consume(ctx, k.reader(topic), topic, handler, fetchBackoff{min: fetchRetryMin, max: fetchRetryMax})
}
