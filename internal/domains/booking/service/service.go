package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"staysync/config"
	"staysync/infras/channel"
	"staysync/infras/metrics"
	"staysync/infras/otel"
	"staysync/infras/postgres"
	"staysync/internal/domains/booking/model"
	"staysync/internal/domains/booking/model/dto"
	"staysync/internal/domains/booking/repository"
	"staysync/internal/domains/channel/mapper"
	channelModel "staysync/internal/domains/channel/model"
	inventory "staysync/internal/domains/inventory/service"
	"staysync/shared"
	"staysync/shared/cache"
	"staysync/shared/constant"
	gDto "staysync/shared/dto"
	"staysync/shared/failure"
	gModel "staysync/shared/model"
	"staysync/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
	cacheSyncLock      = "booking:sync"

	componentSync = "booking_sync"

	operationPush   = "push"
	operationCancel = "cancel"
	operationUpsert = "upsert"

	defaultLockTTL = time.Minute
)

// Sync steps recorded with a failure.
const (
	stepMap  = "map"
	stepPush = "push"
	stepLink = "link"
)

type Booking interface {
	// Push sends a canonical booking to the channel: created when it has no external id yet,
	// updated otherwise. The booking is always read fresh from the store.
	Push(ctx context.Context, id string) (model.Booking, error)
	Cancel(ctx context.Context, id string) (model.Booking, error)
	// Upsert is the single write path of external-origin bookings, keyed by external id.
	Upsert(ctx context.Context, booking model.Booking) (id string, inserted bool, err error)
	UpsertExternal(ctx context.Context, ext channelModel.Booking) (id string, inserted bool, err error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	SyncErrors(ctx context.Context, id string, params gDto.QueryParams) (dto.GetSyncErrorsResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	inventory inventory.Inventory
	api       channel.API
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(repo repository.Booking, inventory inventory.Inventory, api channel.API, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		inventory: inventory,
		api:       api,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) lockTTL() time.Duration {
	if s.cfg.Sync.LockTTLSeconds > 0 {
		return time.Duration(s.cfg.Sync.LockTTLSeconds) * time.Second
	}

	return defaultLockTTL
}

// lock serializes sync attempts of one booking across workers.
func (s *serviceImpl) lock(ctx context.Context, id string) (func(), error) {
	unlock, err := s.cache.Lock(ctx, shared.BuildCacheKey(cacheSyncLock, id), s.lockTTL())
	if errors.Is(err, cache.ErrLockHeld) {
		return nil, &failure.ConflictError{Message: fmt.Sprintf("booking %s is already being synchronized", id)}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}

	return unlock, nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetBooking)
		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}

func (s *serviceImpl) load(ctx context.Context, id string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(model.EntityName) //nolint:wrapcheck
	}

	return booking, nil
}

// fail records a failed step against the booking before the error is returned to the caller.
func (s *serviceImpl) fail(ctx context.Context, operation, step string, bookingID string, cause error) error {
	outcome := metrics.OutcomeFailed

	var conflict *failure.ConflictError
	if errors.As(cause, &conflict) {
		outcome = metrics.OutcomeConflict
	}

	metrics.IncBookingSync(operation, outcome)

	syncErr := model.SyncError{
		ID:        uuid.NewString(),
		BookingID: sql.NullString{String: bookingID, Valid: bookingID != constant.Empty},
		Component: componentSync,
		Message:   cause.Error(),
		Detail:    operation + ":" + step,
		CreatedAt: timezone.Now(),
	}

	if err := s.repo.RecordFailure(ctx, syncErr); err != nil {
		log.Error().Err(err).Str("booking", bookingID).Msg("failed to record sync error")

		cause = errors.Join(cause, fmt.Errorf("failed to record sync error: %w", err))
	}

	s.invalidate(ctx)

	log.Error().Err(cause).Str("booking", bookingID).Str("operation", operation).Str("step", step).Msg("booking sync failed")

	return cause
}

func (s *serviceImpl) Push(ctx context.Context, id string) (booking model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Push")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock, err := s.lock(ctx, id)
	if err != nil {
		return booking, err
	}
	defer unlock()

	booking, err = s.load(ctx, id)
	if err != nil {
		return booking, err
	}

	mapping, plan, err := s.inventory.Resolve(ctx, booking.RoomID)
	if err != nil {
		return booking, s.fail(ctx, operationPush, stepMap, booking.ID, err)
	}

	payload, err := mapper.ToExternalBookingPayload(booking, mapping, plan, s.cfg.Channel.PropertyID)
	if err != nil {
		return booking, s.fail(ctx, operationPush, stepMap, booking.ID, err)
	}

	var pushed channelModel.Booking

	if booking.HasExternalID() {
		pushed, err = s.api.UpdateBooking(ctx, booking.ExternalID.String, payload)
	} else {
		pushed, err = s.api.CreateBooking(ctx, payload)
	}

	if err != nil {
		return booking, s.fail(ctx, operationPush, stepPush, booking.ID, err)
	}

	linked, err := s.link(ctx, booking, pushed.ID)
	if err != nil {
		return booking, s.fail(ctx, operationPush, stepLink, booking.ID, err)
	}

	metrics.IncBookingSync(operationPush, metrics.OutcomeSuccess)
	s.invalidate(ctx)

	scope.AddEvent("booking.linked", map[string]any{
		"booking.id":          linked.ID,
		"booking.external_id": linked.ExternalID.String,
	})

	log.Info().Str("booking", linked.ID).Str("externalID", linked.ExternalID.String).Msg("booking pushed")

	return linked, nil
}

// link stores the external id on the booking. When another booking already holds it, a holder
// with the same content is the same stay and is marked synced in its place, anything else is a
// conflict.
func (s *serviceImpl) link(ctx context.Context, booking model.Booking, externalID string) (model.Booking, error) {
	now := timezone.Now()

	update := map[string]any{
		model.FieldExternalID:   externalID,
		model.FieldSyncStatus:   model.SyncStatusSynced,
		model.FieldLastSyncedAt: now,
		model.FieldModifiedAt:   now,
		model.FieldModifiedBy:   constant.SystemUser,
	}

	err := s.repo.Update(ctx, update, shared.FilterByID(booking.ID, model.FieldID, model.TableName))
	if err == nil {
		booking.ExternalID = sql.NullString{String: externalID, Valid: true}
		booking.SyncStatus = model.SyncStatusSynced
		booking.LastSyncedAt = sql.NullTime{Time: now, Valid: true}
		booking.ModifiedAt = now
		booking.ModifiedBy = constant.SystemUser

		return booking, nil
	}

	if !postgres.IsUniqueViolation(err) {
		return booking, fmt.Errorf("failed to link booking: %w", err)
	}

	holder, err := s.repo.Get(ctx, shared.FilterByField(model.FieldExternalID, externalID, model.TableName))
	if err != nil {
		return booking, fmt.Errorf("failed to get external id holder: %w", err)
	}

	if holder.ID == constant.Empty || !holder.SameContent(booking) {
		return booking, failure.NewConflictError(externalID, holder.ID) //nolint:wrapcheck
	}

	delete(update, model.FieldExternalID)

	if err = s.repo.Update(ctx, update, shared.FilterByID(holder.ID, model.FieldID, model.TableName)); err != nil {
		return booking, fmt.Errorf("failed to update external id holder: %w", err)
	}

	log.Warn().Str("booking", booking.ID).Str("holder", holder.ID).Str("externalID", externalID).Msg("external id already linked to an identical booking")

	holder.SyncStatus = model.SyncStatusSynced
	holder.LastSyncedAt = sql.NullTime{Time: now, Valid: true}

	return holder, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (booking model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	unlock, err := s.lock(ctx, id)
	if err != nil {
		return booking, err
	}
	defer unlock()

	booking, err = s.load(ctx, id)
	if err != nil {
		return booking, err
	}

	if !booking.HasExternalID() {
		return booking, failure.NewValidationError(model.FieldExternalID, "booking has never been synchronized") //nolint:wrapcheck
	}

	if _, err = s.api.CancelBooking(ctx, booking.ExternalID.String); err != nil {
		return booking, s.fail(ctx, operationCancel, stepPush, booking.ID, err)
	}

	now := timezone.Now()
	update := map[string]any{
		model.FieldStatus:       model.StatusCancelled,
		model.FieldSyncStatus:   model.SyncStatusSynced,
		model.FieldLastSyncedAt: now,
		model.FieldModifiedAt:   now,
		model.FieldModifiedBy:   constant.SystemUser,
	}

	if err = s.repo.Update(ctx, update, shared.FilterByID(booking.ID, model.FieldID, model.TableName)); err != nil {
		return booking, s.fail(ctx, operationCancel, stepLink, booking.ID, fmt.Errorf("failed to store cancellation: %w", err))
	}

	booking.Status = model.StatusCancelled
	booking.SyncStatus = model.SyncStatusSynced
	booking.LastSyncedAt = sql.NullTime{Time: now, Valid: true}

	metrics.IncBookingSync(operationCancel, metrics.OutcomeSuccess)
	s.invalidate(ctx)

	log.Info().Str("booking", booking.ID).Msg("booking cancelled on channel")

	return booking, nil
}

func (s *serviceImpl) Upsert(ctx context.Context, booking model.Booking) (id string, inserted bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upsert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !booking.HasExternalID() {
		return constant.Empty, false, failure.NewValidationError(model.FieldExternalID, "is required") //nolint:wrapcheck
	}

	now := timezone.Now()

	if booking.ID == constant.Empty {
		booking.ID = uuid.NewString()
	}

	booking.Metadata = gModel.NewMetadata(now, constant.SystemUser)
	booking.SyncStatus = model.SyncStatusSynced
	booking.LastSyncedAt = sql.NullTime{Time: now, Valid: true}

	id, inserted, err = s.repo.UpsertByExternalID(ctx, booking)
	if err != nil {
		log.Error().Err(err).Str("externalID", booking.ExternalID.String).Msg("failed to upsert booking")
		metrics.IncBookingSync(operationUpsert, metrics.OutcomeFailed)

		return constant.Empty, false, fmt.Errorf("failed to upsert booking: %w", err)
	}

	outcome := metrics.OutcomeSuccess
	if inserted {
		outcome = metrics.OutcomeImported
	}

	metrics.IncBookingSync(operationUpsert, outcome)
	s.invalidate(ctx)

	return id, inserted, nil
}

func (s *serviceImpl) UpsertExternal(ctx context.Context, ext channelModel.Booking) (id string, inserted bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertExternal")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	holder, err := s.repo.Get(ctx, shared.FilterByField(model.FieldExternalID, ext.ID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("externalID", ext.ID).Msg("failed to get booking by external id")

		return constant.Empty, false, fmt.Errorf("failed to get booking by external id: %w", err)
	}

	roomID, err := s.inventory.RoomFor(ctx, mapper.RoomTypeOf(ext), holder.RoomID)
	if err != nil {
		log.Error().Err(err).Str("externalID", ext.ID).Msg("failed to resolve room of external booking")

		return constant.Empty, false, err //nolint:wrapcheck
	}

	booking, err := mapper.FromExternalBooking(ext, roomID)
	if err != nil {
		log.Error().Err(err).Str("externalID", ext.ID).Msg("invalid external booking")

		return constant.Empty, false, err //nolint:wrapcheck
	}

	return s.Upsert(ctx, booking)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, params, filter)
	if err != nil {
		return res, err
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, params, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) SyncErrors(ctx context.Context, id string, params gDto.QueryParams) (res dto.GetSyncErrorsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SyncErrors")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.load(ctx, id); err != nil {
		return res, err
	}

	models, err := s.repo.SyncErrors(ctx, params, id)
	if err != nil {
		log.Error().Err(err).Str("booking", id).Msg("failed to get sync errors")

		return res, fmt.Errorf("failed to get sync errors: %w", err)
	}

	res.FromModels(models)

	return res, nil
}
