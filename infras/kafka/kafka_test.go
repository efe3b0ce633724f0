package kafka_test

import (
	"context"
	"testing"

	"staysync/config"
	"staysync/infras/kafka"

	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changeRecord struct {
	Table string `json:"table"`
	ID    string `json:"id"`
}

func TestDecode(t *testing.T) {
	value, err := kafka.Decode[changeRecord](kafkaGo.Message{Value: []byte(`{"table":"bookings","id":"b-1"}`)})
	require.NoError(t, err)
	assert.Equal(t, changeRecord{Table: "bookings", ID: "b-1"}, value)

	_, err = kafka.Decode[changeRecord](kafkaGo.Message{Value: []byte(`{`)})
	assert.Error(t, err)
}

func TestConsumeRequiresTopic(t *testing.T) {
	client := kafka.New(&config.Config{})

	err := client.Consume(context.Background(), "", func(context.Context, kafkaGo.Message) error { return nil })
	assert.ErrorIs(t, err, kafka.ErrEmptyTopic)
}
