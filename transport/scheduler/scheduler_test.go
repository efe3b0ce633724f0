package scheduler_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"staysync/config"
	otelMocks "staysync/infras/otel/mocks"
	"staysync/internal/domains/reconciliation/mocks"
	"staysync/internal/domains/reconciliation/model"
	"staysync/transport/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTickNarrowsAfterSuccess(t *testing.T) {
	reconciliation := mocks.NewMockReconciliation(gomock.NewController(t))
	s := scheduler.New(reconciliation, &config.Config{}, otelMocks.NewOtel())

	var firstSince time.Time

	gomock.InOrder(
		reconciliation.EXPECT().ImportAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter model.ImportFilter) (model.ImportResult, error) {
			assert.True(t, filter.UpdatedSince.IsZero())

			return model.ImportResult{Imported: 3}, nil
		}),
		reconciliation.EXPECT().ImportAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter model.ImportFilter) (model.ImportResult, error) {
			assert.False(t, filter.UpdatedSince.IsZero())
			firstSince = filter.UpdatedSince

			return model.ImportResult{}, errors.New("channel unavailable")
		}),
		reconciliation.EXPECT().ImportAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter model.ImportFilter) (model.ImportResult, error) {
			assert.True(t, firstSince.Equal(filter.UpdatedSince))

			return model.ImportResult{Skipped: 1}, nil
		}),
	)

	res, err := s.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Imported)

	_, err = s.Tick(context.Background())
	require.Error(t, err)

	_, err = s.Tick(context.Background())
	require.NoError(t, err)
}

func TestTickKeepsWindowAfterItemErrors(t *testing.T) {
	reconciliation := mocks.NewMockReconciliation(gomock.NewController(t))
	s := scheduler.New(reconciliation, &config.Config{}, otelMocks.NewOtel())

	gomock.InOrder(
		reconciliation.EXPECT().ImportAll(gomock.Any(), gomock.Any()).Return(model.ImportResult{Imported: 2, Errors: 1}, nil),
		reconciliation.EXPECT().ImportAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter model.ImportFilter) (model.ImportResult, error) {
			assert.True(t, filter.UpdatedSince.IsZero())

			return model.ImportResult{Imported: 1}, nil
		}),
		reconciliation.EXPECT().ImportAll(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, filter model.ImportFilter) (model.ImportResult, error) {
			assert.False(t, filter.UpdatedSince.IsZero())

			return model.ImportResult{}, nil
		}),
	)

	res, err := s.Tick(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Errors)

	_, err = s.Tick(context.Background())
	require.NoError(t, err)

	_, err = s.Tick(context.Background())
	require.NoError(t, err)
}

func TestRunDisabled(t *testing.T) {
	reconciliation := mocks.NewMockReconciliation(gomock.NewController(t))
	s := scheduler.New(reconciliation, &config.Config{}, otelMocks.NewOtel())

	done := make(chan struct{})

	go func() {
		s.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("disabled scheduler kept running")
	}
}

func TestRunStopsWithContext(t *testing.T) {
	reconciliation := mocks.NewMockReconciliation(gomock.NewController(t))

	cfg := &config.Config{}
	cfg.Sync.ImportIntervalSeconds = 3600

	reconciliation.EXPECT().ImportAll(gomock.Any(), gomock.Any()).Return(model.ImportResult{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	s := scheduler.New(reconciliation, cfg, otelMocks.NewOtel())

	done := make(chan struct{})

	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler ignored cancellation")
	}
}
