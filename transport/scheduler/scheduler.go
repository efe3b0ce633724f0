package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"staysync/config"
	"staysync/infras/otel"
	"staysync/internal/domains/reconciliation/model"
	"staysync/internal/domains/reconciliation/service"
	"staysync/shared/constant"
	"staysync/shared/timezone"

	"github.com/rs/zerolog/log"
)

// Scheduler reruns the reconciliation import on a fixed interval. After a clean run only bookings
// updated since that run started are requested. A failed run, or one where any booking failed to
// import, keeps the previous window so those bookings are fetched again.
type Scheduler struct {
	reconciliation service.Reconciliation
	interval       time.Duration
	otel           otel.Otel

	mu    sync.Mutex
	since time.Time
}

func New(reconciliation service.Reconciliation, config *config.Config, otel otel.Otel) *Scheduler {
	return &Scheduler{
		reconciliation: reconciliation,
		interval:       time.Duration(config.Sync.ImportIntervalSeconds) * time.Second,
		otel:           otel,
	}
}

// Run ticks until ctx is cancelled. A zero interval disables the schedule.
func (s *Scheduler) Run(ctx context.Context) {
	if s.interval <= 0 {
		log.Info().Msg("Scheduled import disabled")

		return
	}

	log.Info().Dur("interval", s.interval).Msg("Scheduled import started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		_, _ = s.Tick(ctx)

		select {
		case <-ctx.Done():
			log.Info().Msg("Scheduled import stopped")

			return
		case <-ticker.C:
		}
	}
}

// Tick runs one import.
func (s *Scheduler) Tick(ctx context.Context) (result model.ImportResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelSchedulerScopeName, constant.OtelSchedulerScopeName+".Import")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	started := timezone.Now()

	result, err = s.reconciliation.ImportAll(ctx, model.ImportFilter{UpdatedSince: s.since})
	if err != nil {
		log.Error().Err(err).Time("since", s.since).Msg("scheduled import failed")

		return result, fmt.Errorf("scheduled import: %w", err)
	}

	if result.Errors == 0 {
		s.since = started
	} else {
		log.Warn().Int("errors", result.Errors).Time("since", s.since).Msg("import window kept until failed bookings are imported")
	}

	log.Info().
		Int("imported", result.Imported).
		Int("skipped", result.Skipped).
		Int("errors", result.Errors).
		Msg("scheduled import finished")

	return result, nil
}
