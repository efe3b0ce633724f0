package event

import (
	"context"
	"fmt"

	"staysync/config"
	"staysync/infras/kafka"
	"staysync/infras/otel"
	bookingModel "staysync/internal/domains/booking/model"
	bookingService "staysync/internal/domains/booking/service"
	"staysync/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
)

const (
	OperationInsert = "insert"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// Change is one row-level notification of the record store change feed.
type Change struct {
	Table     string `json:"table"`
	Operation string `json:"operation"`
	ID        string `json:"id"`
	Record    struct {
		ID         string `json:"id"`
		SyncStatus string `json:"sync_status"`
		Source     string `json:"source"`
	} `json:"record"`
}

func (c Change) BookingID() string {
	if c.Record.ID != constant.Empty {
		return c.Record.ID
	}

	return c.ID
}

// Pushable reports whether the change is a PMS-originated booking waiting to be pushed.
func (c Change) Pushable() bool {
	return c.Table == bookingModel.TableName &&
		c.Operation != OperationDelete &&
		c.Record.SyncStatus == bookingModel.SyncStatusPending &&
		bookingModel.IsDirectSource(c.Record.Source) &&
		c.BookingID() != constant.Empty
}

type Consumer struct {
	client  kafka.Client
	booking bookingService.Booking
	config  *config.Config
	otel    otel.Otel
}

func New(client kafka.Client, booking bookingService.Booking, config *config.Config, otel otel.Otel) *Consumer {
	return &Consumer{
		client:  client,
		booking: booking,
		config:  config,
		otel:    otel,
	}
}

// Run consumes the change feed until ctx is cancelled. It returns at once when no feed is configured.
func (c *Consumer) Run(ctx context.Context) error {
	topic := c.config.Kafka.ChangeFeedTopic

	if topic == constant.Empty || len(c.config.Kafka.Brokers) == 0 {
		log.Info().Msg("Change feed not configured, bookings are pushed on operator request only")

		return nil
	}

	log.Info().Str("topic", topic).Msg("Consuming booking change feed")

	if err := c.client.Consume(ctx, topic, c.Handle); err != nil {
		return fmt.Errorf("failed to consume change feed: %w", err)
	}

	return nil
}

// Handle pushes the booking a change refers to when it matches the push predicate.
func (c *Consumer) Handle(ctx context.Context, msg kafkaGo.Message) (err error) {
	change, err := kafka.Decode[Change](msg)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if !change.Pushable() {
		return nil
	}

	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingChanged")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	bookingID := change.BookingID()

	booking, err := c.booking.Push(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to push booking %s: %w", bookingID, err)
	}

	log.Info().Str("booking", booking.ID).Str("externalID", booking.ExternalID.String).Msg("booking pushed from change feed")

	return nil
}
