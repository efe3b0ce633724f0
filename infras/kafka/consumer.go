package kafka

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	fetchRetryMin = 100 * time.Millisecond
	fetchRetryMax = 5 * time.Second
)

type messageReader interface {
	FetchMessage(ctx context.Context) (kafkaGo.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkaGo.Message) error
	Close() error
}

// fetchBackoff spaces out fetches while the broker keeps failing. The delay doubles per failure
// up to max and drops back to min after a successful fetch.
type fetchBackoff struct {
	min, max time.Duration
	failures int
}

func (b *fetchBackoff) next() time.Duration {
	delay := b.min << min(b.failures, 16)
	if delay <= 0 || delay > b.max {
		delay = b.max
	}

	b.failures++

	return delay
}

func (b *fetchBackoff) reset() {
	b.failures = 0
}

func consume(ctx context.Context, reader messageReader, topic string, handler Handler, backoff fetchBackoff) error {
	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("Failed to close Kafka reader")
		}
	}()

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info().Str("topic", topic).Msg("Consumer context done")

				return nil
			}

			delay := backoff.next()
			log.Error().Err(err).Str("topic", topic).Dur("retryIn", delay).Msg("Failed to read message from Kafka")

			select {
			case <-ctx.Done():
				log.Info().Str("topic", topic).Msg("Consumer context done")

				return nil
			case <-time.After(delay):
			}

			continue
		}

		backoff.reset()

		if err := handler(ctx, msg); err != nil {
			log.Error().
				Err(err).
				Str("topic", topic).
				Str("key", string(msg.Key)).
				Int64("offset", msg.Offset).
				Msg("Failed to handle Kafka message")
		}

		if err := reader.CommitMessages(ctx, msg); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Str("topic", topic).Int64("offset", msg.Offset).Msg("Failed to commit Kafka offset")
		}
	}
}
