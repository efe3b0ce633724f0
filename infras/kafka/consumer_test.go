package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedReader fails the first failures fetches, then serves messages until they run out and
// blocks until ctx is done.
type scriptedReader struct {
	failures  int
	messages  []kafkaGo.Message
	fetches   int
	committed []int64
	closed    bool
}

func (r *scriptedReader) FetchMessage(ctx context.Context) (kafkaGo.Message, error) {
	r.fetches++

	if r.fetches <= r.failures {
		return kafkaGo.Message{}, errors.New("broker unreachable")
	}

	if len(r.messages) > 0 {
		msg := r.messages[0]
		r.messages = r.messages[1:]

		return msg, nil
	}

	<-ctx.Done()

	return kafkaGo.Message{}, ctx.Err()
}

func (r *scriptedReader) CommitMessages(_ context.Context, msgs ...kafkaGo.Message) error {
	for _, msg := range msgs {
		r.committed = append(r.committed, msg.Offset)
	}

	return nil
}

func (r *scriptedReader) Close() error {
	r.closed = true

	return nil
}

func TestFetchBackoff(t *testing.T) {
	backoff := fetchBackoff{min: 100 * time.Millisecond, max: time.Second}

	assert.Equal(t, 100*time.Millisecond, backoff.next())
	assert.Equal(t, 200*time.Millisecond, backoff.next())
	assert.Equal(t, 400*time.Millisecond, backoff.next())
	assert.Equal(t, 800*time.Millisecond, backoff.next())
	assert.Equal(t, time.Second, backoff.next())

	for range 100 {
		backoff.next()
	}
	assert.Equal(t, time.Second, backoff.next())

	backoff.reset()
	assert.Equal(t, 100*time.Millisecond, backoff.next())
}

func TestConsumeWaitsBetweenFailedFetches(t *testing.T) {
	reader := &scriptedReader{failures: 1 << 30}

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()

	err := consume(ctx, reader, "bookings", func(context.Context, kafkaGo.Message) error { return nil },
		fetchBackoff{min: 20 * time.Millisecond, max: 40 * time.Millisecond})

	require.NoError(t, err)
	assert.True(t, reader.closed)
	assert.LessOrEqual(t, reader.fetches, 8)
	assert.GreaterOrEqual(t, reader.fetches, 2)
}

func TestConsumeRecoversAfterFailedFetches(t *testing.T) {
	reader := &scriptedReader{
		failures: 2,
		messages: []kafkaGo.Message{{Offset: 7}, {Offset: 8}},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var handled []int64

	err := consume(ctx, reader, "bookings", func(_ context.Context, msg kafkaGo.Message) error {
		handled = append(handled, msg.Offset)
		if len(handled) == 2 {
			cancel()
		}

		return errors.New("handler failed")
	}, fetchBackoff{min: time.Millisecond, max: 5 * time.Millisecond})

	require.NoError(t, err)
	assert.Equal(t, []int64{7, 8}, handled)
	assert.Equal(t, []int64{7, 8}, reader.committed)
	assert.True(t, reader.closed)
}
