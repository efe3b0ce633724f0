package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staysync/config"
	"staysync/infras/channel"
	"staysync/infras/metrics"
	"staysync/infras/otel"
	bookingRepository "staysync/internal/domains/booking/repository"
	bookingService "staysync/internal/domains/booking/service"
	channelModel "staysync/internal/domains/channel/model"
	"staysync/internal/domains/reconciliation/model"
	"staysync/shared/cache"
	"staysync/shared/constant"
	"staysync/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	lockImport       = "reconciliation:import"
	defaultPageLimit = 100
	importLockTTL    = 10 * time.Minute
)

type Reconciliation interface {
	// ImportAll walks the external booking collection and writes every booking the store does not
	// know yet. A failing item is counted and never aborts the run.
	ImportAll(ctx context.Context, filter model.ImportFilter) (model.ImportResult, error)
}

type serviceImpl struct {
	api         channel.API
	bookingRepo bookingRepository.Booking
	booking     bookingService.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(api channel.API, bookingRepo bookingRepository.Booking, booking bookingService.Booking, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Reconciliation {
	return &serviceImpl{
		api:         api,
		bookingRepo: bookingRepo,
		booking:     booking,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) pageLimit() int {
	if s.cfg.Sync.ImportPageLimit > 0 {
		return s.cfg.Sync.ImportPageLimit
	}

	return defaultPageLimit
}

func (s *serviceImpl) ImportAll(ctx context.Context, filter model.ImportFilter) (res model.ImportResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ImportAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	res.Failures = []string{}

	unlock, err := s.cache.Lock(ctx, lockImport, importLockTTL)
	if errors.Is(err, cache.ErrLockHeld) {
		return res, &failure.ConflictError{Message: "a reconciliation run is already in progress"}
	}

	if err != nil {
		return res, fmt.Errorf("failed to lock reconciliation: %w", err)
	}
	defer unlock()

	query := filter.BookingFilter(s.cfg.Channel.PropertyID, s.pageLimit())

	defer func() {
		metrics.AddReconciliation(metrics.OutcomeImported, res.Imported)
		metrics.AddReconciliation(metrics.OutcomeSkipped, res.Skipped)
		metrics.AddReconciliation(metrics.OutcomeFailed, res.Errors)

		log.Info().Int("imported", res.Imported).Int("skipped", res.Skipped).Int("errors", res.Errors).Msg("reconciliation finished")
	}()

	for {
		page, err := s.api.ListBookings(ctx, query)
		if err != nil {
			log.Error().Err(err).Int("page", query.Page).Msg("failed to list external bookings")

			return res, fmt.Errorf("failed to list external bookings: %w", err)
		}

		if err = s.importPage(ctx, page.Bookings, &res); err != nil {
			return res, err
		}

		if !page.HasNext() || len(page.Bookings) == 0 {
			return res, nil
		}

		query.Page++
	}
}

func (s *serviceImpl) importPage(ctx context.Context, bookings []channelModel.Booking, res *model.ImportResult) error {
	ids := make([]string, 0, len(bookings))

	for _, ext := range bookings {
		if ext.ID != constant.Empty {
			ids = append(ids, ext.ID)
		}
	}

	existing, err := s.bookingRepo.ExistingExternalIDs(ctx, ids)
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing external ids")

		return fmt.Errorf("failed to check existing external ids: %w", err)
	}

	if existing == nil {
		existing = map[string]bool{}
	}

	for _, ext := range bookings {
		if ext.ID != constant.Empty && existing[ext.ID] {
			res.Skipped++

			continue
		}

		if _, _, err = s.booking.UpsertExternal(ctx, ext); err != nil {
			log.Warn().Err(err).Str("externalID", ext.ID).Msg("failed to import external booking")

			res.Errors++
			res.Failures = append(res.Failures, fmt.Sprintf("booking %q: %s", ext.ID, err))

			continue
		}

		existing[ext.ID] = true
		res.Imported++
	}

	return nil
}
