package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"staysync/config"
	otelMocks "staysync/infras/otel/mocks"
	"staysync/shared/cache"
	cacheMocks "staysync/shared/cache/mocks"
	"staysync/transport/http/middleware"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func limited(t *testing.T, enable bool) (*cacheMocks.MockRedisCache, http.Handler) {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	redis := cacheMocks.NewMockRedisCache(gomock.NewController(t))
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })

	return redis, middleware.NewAppMiddleware(otelMocks.NewOtel(), cfg, redis).RateLimit()(next)
}

func storedCount(count int) func(context.Context, string, any) error {
	return func(_ context.Context, _ string, value any) error {
		*value.(*int) = count

		return nil
	}
}

func TestRateLimitDisabled(t *testing.T) {
	_, handler := limited(t, false)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimitCountsPerClientAddress(t *testing.T) {
	redis, handler := limited(t, true)

	redis.EXPECT().Get(gomock.Any(), "limiter:ip:10.0.0.7", gomock.Any()).Return(cache.Nil)
	redis.EXPECT().Save(gomock.Any(), "limiter:ip:10.0.0.7", 1, 60).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/channel", nil)
	req.RemoteAddr = "10.0.0.7:51234"

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitHashesAPIKey(t *testing.T) {
	redis, handler := limited(t, true)

	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(storedCount(1))
	redis.EXPECT().Save(gomock.Any(), gomock.Any(), 2, 60).DoAndReturn(func(_ context.Context, key string, _ any, _ int) error {
		assert.True(t, strings.HasPrefix(key, "limiter:key:"))
		assert.NotContains(t, key, "operator-secret")

		return nil
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	req.Header.Set("X-API-Key", "operator-secret")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimitExceeded(t *testing.T) {
	redis, handler := limited(t, true)

	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(storedCount(2))
	redis.EXPECT().Save(gomock.Any(), gomock.Any(), 3, 60).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
}

func TestRateLimitRedisDown(t *testing.T) {
	redis, handler := limited(t, true)

	redis.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}
