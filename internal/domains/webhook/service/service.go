package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"

	"staysync/config"
	"staysync/infras/channel"
	"staysync/infras/metrics"
	"staysync/infras/otel"
	"staysync/infras/postgres"
	"staysync/infras/s3"
	bookingService "staysync/internal/domains/booking/service"
	"staysync/internal/domains/webhook/model"
	"staysync/internal/domains/webhook/repository"
	"staysync/shared"
	"staysync/shared/constant"
	"staysync/shared/failure"
	gModel "staysync/shared/model"
	"staysync/shared/timezone"
	"staysync/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const archiveDirectory = "webhooks"

type Webhook interface {
	// Receive records an inbound notification and hands its booking to the upsert path. A
	// notification that was recorded but could not be processed is not an error: the receipt
	// carries the failed status and the event can be replayed with Reprocess.
	Receive(ctx context.Context, body []byte, signature string) (model.Receipt, error)
	Reprocess(ctx context.Context, id string) (model.Receipt, error)
}

type serviceImpl struct {
	repo    repository.Event
	booking bookingService.Booking
	api     channel.API
	s3      s3.S3
	cfg     *config.Config
	otel    otel.Otel
}

func New(repo repository.Event, booking bookingService.Booking, api channel.API, s3 s3.S3, cfg *config.Config, otel otel.Otel) Webhook {
	return &serviceImpl{
		repo:    repo,
		booking: booking,
		api:     api,
		s3:      s3,
		cfg:     cfg,
		otel:    otel,
	}
}

func decode(body []byte) (model.Notification, error) {
	var notification model.Notification

	if err := json.Unmarshal(body, &notification); err != nil {
		return notification, failure.NewValidationError("body", "malformed notification") //nolint:wrapcheck
	}

	if err := validator.ValidateStruct(&notification); err != nil {
		return notification, err //nolint:wrapcheck
	}

	if !notification.Recognized() {
		return notification, failure.NewValidationError("type", fmt.Sprintf("unsupported event %q for object %q", notification.Type, notification.ObjectType)) //nolint:wrapcheck
	}

	return notification, nil
}

func (s *serviceImpl) Receive(ctx context.Context, body []byte, signature string) (receipt model.Receipt, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Receive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if secret := s.cfg.Channel.WebhookSecret; secret != constant.Empty && !VerifySignature(secret, body, signature) {
		metrics.IncWebhookEvent(constant.Empty, metrics.OutcomeFailed)

		return receipt, failure.Unauthorized("invalid webhook signature") //nolint:wrapcheck
	}

	notification, err := decode(body)
	if err != nil {
		log.Warn().Err(err).Msg("rejected webhook notification")
		metrics.IncWebhookEvent(notification.Type, metrics.OutcomeFailed)

		return receipt, err
	}

	event, err := s.record(ctx, notification, body)
	if err != nil {
		return receipt, err
	}

	if event.Processed() {
		log.Info().Str("eventID", event.EventID).Msg("duplicate webhook notification")
		metrics.IncWebhookEvent(notification.Type, metrics.OutcomeDuplicate)

		return model.Receipt{
			ID:        event.ID,
			EventID:   event.EventID,
			Status:    event.Status,
			Duplicate: true,
			BookingID: event.BookingID.String,
		}, nil
	}

	return s.process(ctx, event, notification), nil
}

// record stores the event before anything else happens to it. A redelivered event id returns
// the stored record.
func (s *serviceImpl) record(ctx context.Context, notification model.Notification, body []byte) (model.Event, error) {
	event := model.Event{
		ID:         uuid.NewString(),
		EventID:    notification.ID,
		EventType:  notification.Type,
		ObjectType: notification.ObjectType,
		ObjectID:   notification.ObjectID,
		Payload:    string(body),
		Status:     model.StatusReceived,
		Metadata:   gModel.NewMetadata(timezone.Now(), constant.SystemUser),
	}

	err := s.repo.Insert(ctx, event)
	if err == nil {
		s.archive(ctx, &event, body)

		return event, nil
	}

	if !postgres.IsUniqueViolation(err) {
		log.Error().Err(err).Str("eventID", notification.ID).Msg("failed to record webhook event")

		return event, fmt.Errorf("failed to record webhook event: %w", err)
	}

	stored, err := s.repo.Get(ctx, shared.FilterByField(model.FieldEventID, notification.ID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("eventID", notification.ID).Msg("failed to get webhook event")

		return stored, fmt.Errorf("failed to get webhook event: %w", err)
	}

	return stored, nil
}

func (s *serviceImpl) archive(ctx context.Context, event *model.Event, body []byte) {
	if s.s3 == nil || !s.s3.Enabled() {
		return
	}

	directory := archiveDirectory + "/" + event.CreatedAt.Format(constant.DateOnly)

	key, err := s.s3.PutObject(ctx, directory, event.EventID+".json", constant.ContentTypeJSON, body)
	if err != nil {
		log.Warn().Err(err).Str("eventID", event.EventID).Msg("failed to archive webhook payload")

		return
	}

	event.ArchiveKey = key

	update := map[string]any{model.FieldArchiveKey: key}
	if err = s.repo.Update(ctx, update, shared.FilterByID(event.ID, model.FieldID, model.TableName)); err != nil {
		log.Warn().Err(err).Str("eventID", event.EventID).Msg("failed to store archive key")
	}
}

// process runs the event through the booking upsert path and stores the outcome on the record.
func (s *serviceImpl) process(ctx context.Context, event model.Event, notification model.Notification) model.Receipt {
	receipt := model.Receipt{ID: event.ID, EventID: event.EventID}
	now := timezone.Now()

	update := map[string]any{
		model.FieldAttempts:   event.Attempts + 1,
		model.FieldModifiedAt: now,
		model.FieldModifiedBy: constant.SystemUser,
	}

	bookingID, err := s.apply(ctx, notification)
	if err != nil {
		log.Error().Err(err).Str("eventID", event.EventID).Msg("failed to process webhook event")
		metrics.IncWebhookEvent(notification.Type, metrics.OutcomeFailed)

		update[model.FieldStatus] = model.StatusFailed
		update[model.FieldError] = err.Error()
		receipt.Status = model.StatusFailed
		receipt.Error = err.Error()
	} else {
		log.Info().Str("eventID", event.EventID).Str("booking", bookingID).Msg("webhook event processed")
		metrics.IncWebhookEvent(notification.Type, metrics.OutcomeSuccess)

		update[model.FieldStatus] = model.StatusProcessed
		update[model.FieldError] = constant.Empty
		update[model.FieldBookingID] = bookingID
		update[model.FieldProcessedAt] = now
		receipt.Status = model.StatusProcessed
		receipt.BookingID = bookingID
	}

	if err = s.repo.Update(ctx, update, shared.FilterByID(event.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Str("eventID", event.EventID).Msg("failed to update webhook event")
	}

	return receipt
}

func (s *serviceImpl) apply(ctx context.Context, notification model.Notification) (string, error) {
	booking, ok := notification.Embedded()
	if !ok {
		fetched, err := s.api.GetBooking(ctx, notification.ObjectID)
		if err != nil {
			return constant.Empty, fmt.Errorf("failed to fetch booking %s: %w", notification.ObjectID, err)
		}

		booking = fetched
	}

	id, _, err := s.booking.UpsertExternal(ctx, booking)
	if err != nil {
		return constant.Empty, err //nolint:wrapcheck
	}

	return id, nil
}

func (s *serviceImpl) Reprocess(ctx context.Context, id string) (receipt model.Receipt, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reprocess")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	event, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get webhook event")

		return receipt, fmt.Errorf("failed to get webhook event: %w", err)
	}

	if event.ID == constant.Empty {
		return receipt, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	var notification model.Notification
	if err = json.Unmarshal([]byte(event.Payload), &notification); err != nil {
		return receipt, failure.NewValidationError("payload", "stored notification is malformed") //nolint:wrapcheck
	}

	log.Info().Str("eventID", event.EventID).Int("attempts", event.Attempts).Msg("reprocessing webhook event")

	return s.process(ctx, event, notification), nil
}
