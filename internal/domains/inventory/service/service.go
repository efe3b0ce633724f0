package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"staysync/config"
	"staysync/infras/channel"
	"staysync/infras/metrics"
	"staysync/infras/otel"
	"staysync/infras/postgres"
	bookingRepo "staysync/internal/domains/booking/repository"
	"staysync/internal/domains/channel/mapper"
	channelModel "staysync/internal/domains/channel/model"
	"staysync/internal/domains/inventory/model"
	"staysync/internal/domains/inventory/repository"
	roomModel "staysync/internal/domains/room/model"
	roomRepo "staysync/internal/domains/room/repository"
	"staysync/shared"
	"staysync/shared/cache"
	"staysync/shared/constant"
	gDto "staysync/shared/dto"
	"staysync/shared/failure"
	gModel "staysync/shared/model"
	"staysync/shared/timezone"
	"staysync/shared/validator"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheMapping  = "inventory:mapping"
	cacheCurrency = "inventory:currency"

	kindRoomType     = "room_type"
	kindRatePlan     = "rate_plan"
	kindRates        = "rates"
	kindAvailability = "availability"
	kindCurrency     = "currency"

	defaultHorizonDays = 365
)

type Inventory interface {
	EnsureRoomType(ctx context.Context, room roomModel.Room) (string, error)
	EnsureRatePlan(ctx context.Context, externalRoomTypeID string, basePrice int64) (string, error)
	PushRates(ctx context.Context, ratePlanID string, from, to time.Time, nightlyPrice int64) error
	PushAvailability(ctx context.Context, roomTypeID string, dates []time.Time, count int) error
	SyncRooms(ctx context.Context, rooms []roomModel.Room) model.SyncResult
	ActiveRooms(ctx context.Context, ids []string) ([]roomModel.Room, error)
	MigratePropertyCurrency(ctx context.Context, currency string) error
	RecreateRatePlans(ctx context.Context, currency string) (model.SyncResult, error)
	RecomputeAvailability(ctx context.Context, category string, dates []time.Time) error
	// Resolve returns the room type and rate plan a booking of roomID is pushed under.
	Resolve(ctx context.Context, roomID string) (model.RoomMapping, model.RatePlan, error)
	// RoomFor returns the PMS room an inbound booking of an external room type is assigned to.
	// currentRoomID, the room the booking already holds, is kept while it still sells the room type.
	RoomFor(ctx context.Context, externalRoomTypeID, currentRoomID string) (string, error)
}

type serviceImpl struct {
	api         channel.API
	mappingRepo repository.RoomMapping
	planRepo    repository.RatePlan
	roomRepo    roomRepo.Room
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	api channel.API,
	mappingRepo repository.RoomMapping,
	planRepo repository.RatePlan,
	roomRepo roomRepo.Room,
	bookingRepo bookingRepo.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Inventory {
	return &serviceImpl{
		api:         api,
		mappingRepo: mappingRepo,
		planRepo:    planRepo,
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func systemFilter(table, system string, filters ...gDto.Filter) gDto.FilterGroup {
	group := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldSystem, Value: system, Operator: gDto.FilterOperatorEq, Table: table},
		},
	}

	for _, filter := range filters {
		filter.Table = table
		group.Filters = append(group.Filters, filter)
	}

	return group
}

func eq(field string, value any) gDto.Filter {
	return gDto.Filter{Field: field, Value: value, Operator: gDto.FilterOperatorEq}
}

func (s *serviceImpl) mappingFilter(filters ...gDto.Filter) gDto.FilterGroup {
	return systemFilter(model.MappingTableName, s.cfg.Channel.System, filters...)
}

func (s *serviceImpl) planFilter(filters ...gDto.Filter) gDto.FilterGroup {
	return systemFilter(model.PlanTableName, s.cfg.Channel.System, filters...)
}

func (s *serviceImpl) horizon() int {
	if s.cfg.Sync.RateHorizonDays > 0 {
		return s.cfg.Sync.RateHorizonDays
	}

	return defaultHorizonDays
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to save inventory cache")
		}
	}()
}

// mappingFor looks up the room-level mapping of a room, then the mapping of its category.
// The zero mapping means the room has none yet.
func (s *serviceImpl) mappingFor(ctx context.Context, room roomModel.Room) (model.RoomMapping, error) {
	cacheKey := shared.BuildCacheKey(cacheMapping, s.cfg.Channel.System, room.ID)

	mapping := model.RoomMapping{}
	if err := s.cache.Get(ctx, cacheKey, &mapping); err == nil && mapping.ExternalRoomTypeID != constant.Empty {
		return mapping, nil
	}

	mapping, err := s.mappingRepo.Get(ctx, s.mappingFilter(eq(model.FieldRoomID, room.ID)))
	if err != nil {
		return mapping, fmt.Errorf("failed to get room mapping: %w", err)
	}

	if mapping.ID == constant.Empty {
		mapping, err = s.categoryMapping(ctx, mapper.CategoryOf(room))
		if err != nil {
			return mapping, err
		}
	}

	if mapping.ID != constant.Empty {
		s.saveCache(ctx, cacheKey, mapping)
	}

	return mapping, nil
}

func (s *serviceImpl) categoryMapping(ctx context.Context, category string) (model.RoomMapping, error) {
	filter := s.mappingFilter(
		eq(model.FieldCategory, category),
		gDto.Filter{Field: model.FieldRoomID, Operator: gDto.FilterIsNull},
	)

	mapping, err := s.mappingRepo.Get(ctx, filter)
	if err != nil {
		return mapping, fmt.Errorf("failed to get category mapping: %w", err)
	}

	return mapping, nil
}

// categoryRooms lists the sellable rooms of a category. A room without a stored category only
// sells itself.
func (s *serviceImpl) categoryRooms(ctx context.Context, category string, room roomModel.Room) ([]roomModel.Room, error) {
	if room.ID != constant.Empty && room.Category == constant.Empty {
		return []roomModel.Room{room}, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: roomModel.FieldCategory, Value: category, Operator: gDto.FilterOperatorEq, Table: roomModel.TableName},
			gDto.Filter{Field: roomModel.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: roomModel.TableName},
		},
	}

	params := gDto.QueryParams{SortBy: roomModel.FieldNumber, SortDir: gDto.SortDirAsc}

	rooms, err := s.roomRepo.GetAll(ctx, params, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms of category %s: %w", category, err)
	}

	return rooms, nil
}

func (s *serviceImpl) EnsureRoomType(ctx context.Context, room roomModel.Room) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureRoomType")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	mapping, err := s.mappingFor(ctx, room)
	if err != nil {
		log.Error().Err(err).Str("room", room.ID).Msg("failed to look up room mapping")

		return constant.Empty, err
	}

	if mapping.ExternalRoomTypeID != constant.Empty {
		return mapping.ExternalRoomTypeID, nil
	}

	category := mapper.CategoryOf(room)

	rooms, err := s.categoryRooms(ctx, category, room)
	if err != nil {
		log.Error().Err(err).Str("category", category).Msg("failed to list category rooms")

		return constant.Empty, err
	}

	mapping, err = s.createRoomType(ctx, category, rooms)
	if err != nil {
		return constant.Empty, err
	}

	return mapping.ExternalRoomTypeID, nil
}

// createRoomType publishes the room type of a category unless the external system already lists
// one under the same normalized title, then stores the category mapping.
func (s *serviceImpl) createRoomType(ctx context.Context, category string, rooms []roomModel.Room) (model.RoomMapping, error) {
	roomType := mapper.RoomTypeFor(category, rooms, s.cfg.Channel.PropertyID)

	existing, err := s.api.ListRoomTypes(ctx, s.cfg.Channel.PropertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list external room types")
		metrics.IncInventorySync(kindRoomType, metrics.OutcomeFailed)

		return model.RoomMapping{}, fmt.Errorf("failed to list room types: %w", err)
	}

	idx := slices.IndexFunc(existing, func(candidate channelModel.RoomType) bool {
		return mapper.SameTitle(candidate.Title, roomType.Title)
	})

	if idx >= 0 {
		roomType.ID = existing[idx].ID

		log.Info().Str("category", category).Str("roomType", roomType.ID).Msg("reusing external room type")
	} else {
		created, err := s.api.CreateRoomType(ctx, roomType)
		if err != nil {
			log.Error().Err(err).Str("category", category).Msg("failed to create external room type")
			metrics.IncInventorySync(kindRoomType, metrics.OutcomeFailed)

			return model.RoomMapping{}, fmt.Errorf("failed to create room type: %w", err)
		}

		roomType.ID = created.ID
	}

	mapping := model.RoomMapping{
		ID:                 uuid.NewString(),
		System:             s.cfg.Channel.System,
		Category:           category,
		ExternalRoomTypeID: roomType.ID,
		Title:              roomType.Title,
		Occupancy:          roomType.DefaultOccupancy,
		Metadata:           gModel.NewMetadata(timezone.Now(), constant.SystemUser),
	}

	if err = s.mappingRepo.Insert(ctx, mapping); err != nil {
		if postgres.IsUniqueViolation(err) {
			return s.categoryMapping(ctx, category)
		}

		log.Error().Err(err).Str("category", category).Msg("failed to store room mapping")

		return model.RoomMapping{}, fmt.Errorf("failed to store room mapping: %w", err)
	}

	metrics.IncInventorySync(kindRoomType, metrics.OutcomeSuccess)

	return mapping, nil
}

// propertyCurrency returns the currency rate plans must be created in.
func (s *serviceImpl) propertyCurrency(ctx context.Context, fresh bool) (string, error) {
	cacheKey := shared.BuildCacheKey(cacheCurrency, s.cfg.Channel.PropertyID)

	currency := constant.Empty
	if !fresh {
		if err := s.cache.Get(ctx, cacheKey, &currency); err == nil && currency != constant.Empty {
			return currency, nil
		}
	}

	property, err := s.api.GetProperty(ctx, s.cfg.Channel.PropertyID)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to get property: %w", err)
	}

	s.saveCache(ctx, cacheKey, property.Currency)

	return property.Currency, nil
}

func (s *serviceImpl) EnsureRatePlan(ctx context.Context, externalRoomTypeID string, basePrice int64) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".EnsureRatePlan")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	plan, err := s.ensurePlan(ctx, externalRoomTypeID, basePrice)
	if err != nil {
		return constant.Empty, err
	}

	return plan.ExternalRatePlanID, nil
}

func (s *serviceImpl) ensurePlan(ctx context.Context, externalRoomTypeID string, basePrice int64) (model.RatePlan, error) {
	currency, err := s.propertyCurrency(ctx, false)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve property currency")

		return model.RatePlan{}, err
	}

	ref, err := s.planRepo.Get(ctx, s.planFilter(eq(model.FieldExternalRoomTypeID, externalRoomTypeID)))
	if err != nil {
		log.Error().Err(err).Str("roomType", externalRoomTypeID).Msg("failed to get rate plan reference")

		return model.RatePlan{}, fmt.Errorf("failed to get rate plan reference: %w", err)
	}

	if ref.ID != constant.Empty {
		repriced := basePrice > 0 && ref.NightlyRate != basePrice
		if repriced {
			ref.NightlyRate = basePrice
		}

		if ref.Stale(currency) {
			log.Warn().
				Str("roomType", externalRoomTypeID).
				Str("planCurrency", ref.Currency).
				Str("propertyCurrency", currency).
				Msg("rate plan reference is stale, recreating")

			return s.recreate(ctx, ref, currency)
		}

		if repriced {
			return s.reprice(ctx, ref)
		}

		return ref, nil
	}

	created, err := s.findOrCreatePlan(ctx, externalRoomTypeID, currency, basePrice)
	if err != nil {
		return model.RatePlan{}, err
	}

	ref = model.RatePlan{
		ID:                 uuid.NewString(),
		System:             s.cfg.Channel.System,
		ExternalRoomTypeID: externalRoomTypeID,
		ExternalRatePlanID: created.ID,
		Currency:           created.Currency,
		PricingMode:        model.PricingModePerRoom,
		NightlyRate:        basePrice,
		Metadata:           gModel.NewMetadata(timezone.Now(), constant.SystemUser),
	}

	if err = s.planRepo.Insert(ctx, ref); err != nil {
		log.Error().Err(err).Str("roomType", externalRoomTypeID).Msg("failed to store rate plan reference")

		return model.RatePlan{}, fmt.Errorf("failed to store rate plan reference: %w", err)
	}

	metrics.IncInventorySync(kindRatePlan, metrics.OutcomeSuccess)

	return ref, nil
}

// reprice stores the room's current base price as the nightly rate bookings are priced at.
func (s *serviceImpl) reprice(ctx context.Context, ref model.RatePlan) (model.RatePlan, error) {
	now := timezone.Now()
	update := map[string]any{
		model.FieldNightlyRate: ref.NightlyRate,
		model.FieldModifiedAt:  now,
		model.FieldModifiedBy:  constant.SystemUser,
	}

	if err := s.planRepo.Update(ctx, update, shared.FilterByID(ref.ID, model.FieldID, model.PlanTableName)); err != nil {
		log.Error().Err(err).Str("ratePlan", ref.ExternalRatePlanID).Msg("failed to update nightly rate")

		return model.RatePlan{}, fmt.Errorf("failed to update nightly rate: %w", err)
	}

	ref.ModifiedAt = now
	ref.ModifiedBy = constant.SystemUser

	log.Info().Str("ratePlan", ref.ExternalRatePlanID).Int64("nightlyRate", ref.NightlyRate).Msg("rate plan repriced")

	return ref, nil
}

// findOrCreatePlan reuses the external plan of a room type in currency, creating it when absent.
func (s *serviceImpl) findOrCreatePlan(ctx context.Context, externalRoomTypeID, currency string, nightlyRate int64) (channelModel.RatePlan, error) {
	plans, err := s.api.ListRatePlans(ctx, s.cfg.Channel.PropertyID)
	if err != nil {
		log.Error().Err(err).Msg("failed to list external rate plans")
		metrics.IncInventorySync(kindRatePlan, metrics.OutcomeFailed)

		return channelModel.RatePlan{}, fmt.Errorf("failed to list rate plans: %w", err)
	}

	idx := slices.IndexFunc(plans, func(plan channelModel.RatePlan) bool {
		return plan.RoomTypeID == externalRoomTypeID && plan.Currency == currency
	})
	if idx >= 0 {
		return plans[idx], nil
	}

	mapping, err := s.mappingRepo.Get(ctx, s.mappingFilter(eq(model.FieldExternalRoomTypeID, externalRoomTypeID)))
	if err != nil {
		return channelModel.RatePlan{}, fmt.Errorf("failed to get room mapping: %w", err)
	}

	title := mapping.Title
	if title == constant.Empty {
		title = mapper.FallbackTitle
	}

	plan := mapper.RatePlanFor(s.cfg.Channel.PropertyID, externalRoomTypeID, title, currency, nightlyRate, mapping.Occupancy)

	created, err := s.api.CreateRatePlan(ctx, plan)
	if err != nil {
		log.Error().Err(err).Str("roomType", externalRoomTypeID).Msg("failed to create external rate plan")
		metrics.IncInventorySync(kindRatePlan, metrics.OutcomeFailed)

		return channelModel.RatePlan{}, fmt.Errorf("failed to create rate plan: %w", err)
	}

	if created.Currency == constant.Empty {
		created.Currency = currency
	}

	return created, nil
}

// recreate replaces a stale plan. The old external plan is deleted first, a plan that is already
// gone counts as deleted, so a failed run can be repeated.
func (s *serviceImpl) recreate(ctx context.Context, ref model.RatePlan, currency string) (model.RatePlan, error) {
	var apiErr *channel.ExternalAPIError

	err := s.api.DeleteRatePlan(ctx, ref.ExternalRatePlanID)
	if err != nil && (!errors.As(err, &apiErr) || !apiErr.NotFound()) {
		log.Error().Err(err).Str("ratePlan", ref.ExternalRatePlanID).Msg("failed to delete stale rate plan")
		metrics.IncInventorySync(kindRatePlan, metrics.OutcomeFailed)

		return model.RatePlan{}, fmt.Errorf("failed to delete rate plan: %w", err)
	}

	created, err := s.findOrCreatePlan(ctx, ref.ExternalRoomTypeID, currency, ref.NightlyRate)
	if err != nil {
		return model.RatePlan{}, err
	}

	now := timezone.Now()
	update := map[string]any{
		model.FieldExternalRatePlanID: created.ID,
		model.FieldCurrency:           created.Currency,
		model.FieldNightlyRate:        ref.NightlyRate,
		model.FieldModifiedAt:         now,
		model.FieldModifiedBy:         constant.SystemUser,
	}

	if err = s.planRepo.Update(ctx, update, shared.FilterByID(ref.ID, model.FieldID, model.PlanTableName)); err != nil {
		log.Error().Err(err).Str("ratePlan", created.ID).Msg("failed to update rate plan reference")

		return model.RatePlan{}, fmt.Errorf("failed to update rate plan reference: %w", err)
	}

	ref.ExternalRatePlanID = created.ID
	ref.Currency = created.Currency
	ref.ModifiedAt = now
	ref.ModifiedBy = constant.SystemUser

	metrics.IncInventorySync(kindRatePlan, metrics.OutcomeSuccess)

	return ref, nil
}

func (s *serviceImpl) PushRates(ctx context.Context, ratePlanID string, from, to time.Time, nightlyPrice int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PushRates")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if ratePlanID == constant.Empty {
		return failure.NewValidationError("rate_plan_id", "is required")
	}

	if to.Before(from) {
		return failure.NewValidationError("date_to", "must not be before date_from")
	}

	if nightlyPrice < 0 {
		return failure.NewValidationError("rate", "must not be negative")
	}

	value := channelModel.RateValue{
		PropertyID: s.cfg.Channel.PropertyID,
		RatePlanID: ratePlanID,
		DateFrom:   timezone.Date(from).Format(constant.DateOnly),
		DateTo:     timezone.Date(to).Format(constant.DateOnly),
		Rate:       channelModel.Money(nightlyPrice),
	}

	if err = s.api.UpdateRates(ctx, []channelModel.RateValue{value}); err != nil {
		log.Error().Err(err).Str("ratePlan", ratePlanID).Msg("failed to push rates")
		metrics.IncInventorySync(kindRates, metrics.OutcomeFailed)

		return fmt.Errorf("failed to push rates: %w", err)
	}

	metrics.IncInventorySync(kindRates, metrics.OutcomeSuccess)

	return nil
}

func (s *serviceImpl) PushAvailability(ctx context.Context, roomTypeID string, dates []time.Time, count int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PushAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if roomTypeID == constant.Empty {
		return failure.NewValidationError("room_type_id", "is required")
	}

	if count < 0 {
		return failure.NewValidationError("availability", "must not be negative")
	}

	ranges := model.Coalesce(dates)
	if len(ranges) == 0 {
		return nil
	}

	values := make([]channelModel.AvailabilityValue, 0, len(ranges))

	for _, dateRange := range ranges {
		values = append(values, channelModel.AvailabilityValue{
			PropertyID:   s.cfg.Channel.PropertyID,
			RoomTypeID:   roomTypeID,
			DateFrom:     dateRange.From.Format(constant.DateOnly),
			DateTo:       dateRange.To.Format(constant.DateOnly),
			Availability: count,
		})
	}

	if err = s.api.UpdateAvailability(ctx, values); err != nil {
		log.Error().Err(err).Str("roomType", roomTypeID).Msg("failed to push availability")
		metrics.IncInventorySync(kindAvailability, metrics.OutcomeFailed)

		return fmt.Errorf("failed to push availability: %w", err)
	}

	metrics.IncInventorySync(kindAvailability, metrics.OutcomeSuccess)

	return nil
}

func (s *serviceImpl) SyncRooms(ctx context.Context, rooms []roomModel.Room) model.SyncResult {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SyncRooms")
	defer scope.End()

	result := model.SyncResult{Errors: []string{}}

	for _, room := range rooms {
		if err := s.syncRoom(ctx, room); err != nil {
			log.Error().Err(err).Str("room", room.Number).Msg("failed to sync room")
			result.Fail("room "+room.Number, err)

			continue
		}

		result.Synced++
	}

	log.Info().Int("synced", result.Synced).Int("failed", result.Failed).Msg("room sync finished")

	return result
}

func (s *serviceImpl) syncRoom(ctx context.Context, room roomModel.Room) error {
	roomTypeID, err := s.EnsureRoomType(ctx, room)
	if err != nil {
		return err
	}

	ratePlanID, err := s.EnsureRatePlan(ctx, roomTypeID, room.BasePrice)
	if err != nil {
		return err
	}

	from := timezone.Today()

	return s.PushRates(ctx, ratePlanID, from, from.AddDate(0, 0, s.horizon()-1), room.BasePrice)
}

func (s *serviceImpl) ActiveRooms(ctx context.Context, ids []string) (rooms []roomModel.Room, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ActiveRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: roomModel.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: roomModel.TableName},
		},
	}

	if len(ids) > 0 {
		filter.Filters = append(filter.Filters, gDto.Filter{Field: roomModel.FieldID, Value: ids, Operator: gDto.FilterOperatorIn, Table: roomModel.TableName})
	}

	rooms, err = s.roomRepo.GetAll(ctx, gDto.QueryParams{SortBy: roomModel.FieldNumber, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active rooms")

		return nil, fmt.Errorf("failed to get active rooms: %w", err)
	}

	return rooms, nil
}

func (s *serviceImpl) MigratePropertyCurrency(ctx context.Context, currency string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MigratePropertyCurrency")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateVar(currency, "required,iso_currency"); err != nil {
		return err //nolint:wrapcheck
	}

	property, err := s.api.UpdatePropertyCurrency(ctx, s.cfg.Channel.PropertyID, currency)
	if err != nil {
		log.Error().Err(err).Str("currency", currency).Msg("failed to migrate property currency")
		metrics.IncInventorySync(kindCurrency, metrics.OutcomeFailed)

		return fmt.Errorf("failed to migrate property currency: %w", err)
	}

	if err = s.cache.Delete(ctx, shared.BuildCacheKey(cacheCurrency, s.cfg.Channel.PropertyID)); err != nil {
		log.Warn().Err(err).Msg("failed to drop cached property currency")
	}

	metrics.IncInventorySync(kindCurrency, metrics.OutcomeSuccess)
	log.Info().Str("property", property.ID).Str("currency", currency).Msg("property currency migrated, rate plans must be recreated")

	return nil
}

func (s *serviceImpl) RecreateRatePlans(ctx context.Context, currency string) (result model.SyncResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecreateRatePlans")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	result.Errors = []string{}

	if err = validator.ValidateVar(currency, "required,iso_currency"); err != nil {
		return result, err //nolint:wrapcheck
	}

	propertyCurrency, err := s.propertyCurrency(ctx, true)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve property currency")

		return result, err
	}

	if propertyCurrency != currency {
		return result, failure.NewValidationError("currency", fmt.Sprintf("property is still in %s, migrate the property currency first", propertyCurrency))
	}

	refs, err := s.planRepo.GetAll(ctx, gDto.QueryParams{}, s.planFilter())
	if err != nil {
		log.Error().Err(err).Msg("failed to list rate plan references")

		return result, fmt.Errorf("failed to list rate plan references: %w", err)
	}

	from := timezone.Today()
	to := from.AddDate(0, 0, s.horizon()-1)

	for _, ref := range refs {
		if !ref.Stale(currency) {
			continue
		}

		recreated, err := s.recreate(ctx, ref, currency)
		if err != nil {
			result.Fail(ref.ExternalRoomTypeID, err)

			continue
		}

		if ref.NightlyRate > 0 {
			if err = s.PushRates(ctx, recreated.ExternalRatePlanID, from, to, ref.NightlyRate); err != nil {
				result.Fail(ref.ExternalRoomTypeID, err)

				continue
			}
		}

		result.Synced++
	}

	log.Info().Int("recreated", result.Synced).Int("failed", result.Failed).Str("currency", currency).Msg("rate plans recreated")

	return result, nil
}

func (s *serviceImpl) RecomputeAvailability(ctx context.Context, category string, dates []time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecomputeAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	rooms, err := s.categoryRooms(ctx, category, roomModel.Room{})
	if err != nil {
		return err
	}

	if len(rooms) == 0 {
		log.Warn().Str("category", category).Msg("no active rooms in category, availability not pushed")

		return nil
	}

	mapping, err := s.categoryMapping(ctx, category)
	if err != nil {
		return err
	}

	if mapping.ID == constant.Empty {
		if mapping, err = s.createRoomType(ctx, category, rooms); err != nil {
			return err
		}
	}

	byCount := map[int][]time.Time{}

	for _, date := range dates {
		day := timezone.Date(date)

		booked, err := s.bookingRepo.CountActiveOnDate(ctx, category, day)
		if err != nil {
			log.Error().Err(err).Str("category", category).Time("day", day).Msg("failed to count bookings")

			return fmt.Errorf("failed to count bookings: %w", err)
		}

		available := max(len(rooms)-booked, 0)
		byCount[available] = append(byCount[available], day)
	}

	for _, count := range slices.Sorted(maps.Keys(byCount)) {
		if err = s.PushAvailability(ctx, mapping.ExternalRoomTypeID, byCount[count], count); err != nil {
			return err
		}
	}

	return nil
}

func (s *serviceImpl) Resolve(ctx context.Context, roomID string) (mapping model.RoomMapping, plan model.RatePlan, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		return mapping, plan, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty {
		return mapping, plan, failure.NewMappingError("room", roomID)
	}

	mapping, err = s.mappingFor(ctx, room)
	if err != nil {
		return mapping, plan, err
	}

	if mapping.ExternalRoomTypeID == constant.Empty {
		return mapping, plan, failure.NewMappingError("room", room.Number)
	}

	plan, err = s.ensurePlan(ctx, mapping.ExternalRoomTypeID, room.BasePrice)
	if err != nil {
		return mapping, plan, err
	}

	return mapping, plan, nil
}

func (s *serviceImpl) RoomFor(ctx context.Context, externalRoomTypeID, currentRoomID string) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomFor")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if externalRoomTypeID == constant.Empty {
		return constant.Empty, failure.NewMappingError("room type", externalRoomTypeID)
	}

	mappings, err := s.mappingRepo.GetAll(ctx, gDto.QueryParams{}, s.mappingFilter(eq(model.FieldExternalRoomTypeID, externalRoomTypeID)))
	if err != nil {
		log.Error().Err(err).Str("roomType", externalRoomTypeID).Msg("failed to get room mappings")

		return constant.Empty, fmt.Errorf("failed to get room mappings: %w", err)
	}

	first := constant.Empty

	for _, mapping := range mappings {
		if mapping.CategoryLevel() {
			continue
		}

		if mapping.RoomID.String == currentRoomID {
			return currentRoomID, nil
		}

		if first == constant.Empty {
			first = mapping.RoomID.String
		}
	}

	if first != constant.Empty && currentRoomID == constant.Empty {
		return first, nil
	}

	for _, mapping := range mappings {
		if !mapping.CategoryLevel() {
			continue
		}

		rooms, err := s.categoryRooms(ctx, mapping.Category, roomModel.Room{})
		if err != nil {
			return constant.Empty, err
		}

		if slices.ContainsFunc(rooms, func(room roomModel.Room) bool { return room.ID == currentRoomID }) {
			return currentRoomID, nil
		}

		if first == constant.Empty && len(rooms) > 0 {
			first = rooms[0].ID
		}
	}

	if first != constant.Empty {
		return first, nil
	}

	return constant.Empty, failure.NewMappingError("room type", externalRoomTypeID)
}
